package database

import (
	"fmt"
	"time"

	"github.com/asset-tracker/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const postgresAttempts = 30

// Open открывает хранилище выбранным драйвером.
// Для sqlite пул ограничен одним соединением: один пользователь, один писатель.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(cfg, gormCfg)
	case config.DriverSQLite, "":
		db, err := gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store %s: %w", cfg.DSN(), err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func openPostgres(cfg config.DatabaseConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for range postgresAttempts {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err == nil {
			sqlDB, _ := db.DB()
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", postgresAttempts, err)
}

// Close закрывает нижележащий пул соединений
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
