package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/AlostXD/police-lumos-rp/internal/config"
)

func TestMigrate_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "data", "crimes.db"),
	}
	ctx := context.Background()

	require.NoError(t, migrate(ctx, cfg, zaptest.NewLogger(t)))
	// idempotent
	require.NoError(t, migrate(ctx, cfg, zaptest.NewLogger(t)))

	db, err := sql.Open("sqlite", cfg.DBPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO crimes (article, title) VALUES ('157', 'Roubo')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO crimes (article, title) VALUES ('157', 'Roubo again')`)
	assert.Error(t, err, "article must be unique")

	_, err = db.Exec(`INSERT INTO crimes (article) VALUES ('')`)
	assert.Error(t, err, "empty article rejected")
}

func TestMigrate_UnknownDriver(t *testing.T) {
	err := migrate(context.Background(), &config.Config{DBDriver: "mysql"}, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestOpenSQL_UnknownDriver(t *testing.T) {
	_, err := openSQL(&config.Config{DBDriver: "oracle"})
	assert.ErrorIs(t, err, config.ErrUnknownDriver)
}
