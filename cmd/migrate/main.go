package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/AlostXD/police-lumos-rp/internal/config"
	"github.com/AlostXD/police-lumos-rp/internal/database"
	"github.com/AlostXD/police-lumos-rp/internal/database/migrations"
	"github.com/AlostXD/police-lumos-rp/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the crimes table schema to the configured database",
	Long: `Migrate executes the embedded SQL schema for DB_DRIVER (postgres or
sqlite). Every statement is idempotent, so it is safe to run repeatedly.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return migrate(cmd.Context(), cfg, logger)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Migration failed:", err)
		os.Exit(1)
	}
}

// openSQL opens a plain database/sql handle; the gorm drivers are not
// needed to run a schema file.
func openSQL(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return sql.Open("postgres", database.PostgresDSN(cfg))
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		return sql.Open("sqlite", cfg.DBPath)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.DBDriver)
	}
}

func migrate(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	schema, err := migrations.Schema(cfg.DBDriver)
	if err != nil {
		return err
	}

	db, err := openSQL(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close connection", zap.Error(err))
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected", zap.String("driver", cfg.DBDriver))

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM crimes").Scan(&count); err != nil {
		return fmt.Errorf("verify crimes table: %w", err)
	}
	logger.Info("migration applied", zap.String("driver", cfg.DBDriver), zap.Int64("crimes", count))
	return nil
}
