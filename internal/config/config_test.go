package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "DB_DRIVER", "DB_PATH", "SERVER_PORT", "LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.DSN() != "assets.db" {
		t.Errorf("expected assets.db, got %s", cfg.Database.DSN())
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("expected INFO log level, got %s", cfg.Log.Level)
	}
}

func TestLoadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("expected DEBUG log level, got %s", cfg.Log.Level)
	}

	t.Setenv("LOG_LEVEL", "loud")
	if _, err := Load(); err == nil {
		t.Errorf("expected error for unknown log level")
	}
}

func TestLoadPostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "tracker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	dsn := cfg.Database.DSN()
	if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "dbname=tracker") {
		t.Errorf("unexpected dsn %q", dsn)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
