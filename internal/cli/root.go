package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/asset-tracker/internal/config"
	"github.com/asset-tracker/internal/database"
	"github.com/asset-tracker/internal/repository"
	"github.com/asset-tracker/internal/service"
	"github.com/asset-tracker/internal/ui"
)

// app хранит подключение и сервисы, общие для всех подкоманд
type app struct {
	dbPath string

	db              *gorm.DB
	assetService    service.AssetService
	empService      service.EmployeeService
	transferService service.TransferService
}

// NewRootCmd строит дерево команд assetctl
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "assetctl",
		Short: "Manage the asset and employee register",
		Long: ui.StyleTitle.Render("assetctl") + " - asset and employee register\n\n" +
			"Lists, filters, deletes and moves records through CSV files.\n" +
			"The store is configured through DB_* environment variables or --db.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}

	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database file (overrides DB_DRIVER and DB_PATH)")

	root.AddCommand(newAssetsCmd(a))
	root.AddCommand(newEmployeesCmd(a))
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newExportCmd(a))

	return root
}

// Execute запускает корневую команду и завершает процесс с кодом 1 при ошибке
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

// open загружает конфигурацию, открывает хранилище и создаёт сервисы
func (a *app) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database.Driver = config.DriverSQLite
		cfg.Database.Path = a.dbPath
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.Log.Level,
	})))

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.EnsureSchema(cmd.Context(), db); err != nil {
		database.Close(db)
		return err
	}

	a.db = db
	a.assetService = service.NewAssetService(repository.NewAssetRepository(db))
	a.empService = service.NewEmployeeService(repository.NewEmployeeRepository(db))
	a.transferService = service.NewTransferService(a.assetService, a.empService)

	slog.Debug("store opened", slog.String("driver", cfg.Database.Driver))
	return nil
}

func (a *app) close(_ *cobra.Command, _ []string) error {
	if a.db == nil {
		return nil
	}
	err := database.Close(a.db)
	a.db = nil
	return err
}
