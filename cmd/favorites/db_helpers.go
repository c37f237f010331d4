package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/wikimedia/favorites/db"
	"github.com/wikimedia/favorites/internal/pathutil"
)

func dbConfigFromViper() db.Config {
	cfg := db.DefaultConfig()

	if v := viper.GetString("db.driver"); v != "" {
		cfg.Driver = v
	}
	if v := viper.GetString("db.dsn"); v != "" {
		cfg.DSN = pathutil.ExpandHomePath(v)
	}
	if viper.IsSet("db.automigrate") {
		cfg.AutoMigrate = viper.GetBool("db.automigrate")
	}

	if v := viper.GetInt("db.pool.max_open_conns"); v > 0 {
		cfg.Pool.MaxOpenConns = v
	}
	if v := viper.GetInt("db.pool.max_idle_conns"); v > 0 {
		cfg.Pool.MaxIdleConns = v
	}
	cfg.Pool.ConnMaxLifetime = viper.GetDuration("db.pool.conn_max_lifetime")
	if cfg.Pool.ConnMaxLifetime < 0 {
		cfg.Pool.ConnMaxLifetime = 0
	}

	if v := viper.GetInt("db.sqlite.busy_timeout_ms"); v > 0 {
		cfg.SQLite.BusyTimeoutMs = v
	}
	if viper.IsSet("db.sqlite.wal") {
		cfg.SQLite.WAL = viper.GetBool("db.sqlite.wal")
	}
	if viper.IsSet("db.sqlite.foreign_keys") {
		cfg.SQLite.ForeignKeys = viper.GetBool("db.sqlite.foreign_keys")
	}

	return cfg
}

// openDB opens the configured database and runs migrations when enabled.
func openDB(ctx context.Context, log *slog.Logger) (*gorm.DB, error) {
	cfg := dbConfigFromViper()

	gdb, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(gdb); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		log.Debug("database schema migrated", "driver", cfg.Driver)
	}
	return gdb, nil
}
