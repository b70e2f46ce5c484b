package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asset-tracker/internal/config"
	"github.com/asset-tracker/internal/database"
	"github.com/asset-tracker/internal/handler"
	"github.com/asset-tracker/internal/repository"
	"github.com/asset-tracker/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close(db)

	// Создание и дополнение схемы
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("failed to ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	assetRepo := repository.NewAssetRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Инициализация сервисов
	assetService := service.NewAssetService(assetRepo)
	empService := service.NewEmployeeService(empRepo)
	transferService := service.NewTransferService(assetService, empService)

	// Инициализация хендлеров
	router := handler.NewRouter(
		handler.NewAssetHandler(assetService, logger),
		handler.NewEmployeeHandler(empService, logger),
		handler.NewTransferHandler(transferService, logger),
		logger,
	)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
