package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// LogConfig - уровень логирования (DEBUG, INFO, WARN, ERROR)
type LogConfig struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string `env:"SERVER_PORT" envDefault:"8080"`
}

// DatabaseConfig - настройки хранилища.
// Path используется для sqlite, остальные поля для postgres.
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	Path     string `env:"DB_PATH" envDefault:"assets.db"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"assets"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
		)
	}
	return c.Path
}

// Load загружает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return &cfg, nil
}
