package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlostXD/police-lumos-rp/internal/config"
)

func TestNewLoader_DatabaseIsClosed(t *testing.T) {
	localDB = true
	t.Cleanup(func() { localDB = false })

	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "crimes.db"),
	}
	load, closeFn, err := newLoader(rootCmd, cfg)
	require.NoError(t, err)

	require.NoError(t, closeFn())
	_, err = load(context.Background())
	assert.Error(t, err, "queries fail once the connection is released")
}

func TestNewLoader_DatabaseNeedsValidConfig(t *testing.T) {
	localDB = true
	t.Cleanup(func() { localDB = false })

	_, _, err := newLoader(rootCmd, &config.Config{DBDriver: config.DriverPostgres})
	assert.ErrorIs(t, err, config.ErrMissingDBConfig)
}

func TestNewLoader_API(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/crimes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"article":"157","title":"Roubo"}]`))
	}))
	defer srv.Close()

	load, closeFn, err := newLoader(rootCmd, &config.Config{APIURL: srv.URL + "/api/v1"})
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	crimes, err := load(context.Background())
	require.NoError(t, err)
	require.Len(t, crimes, 1)
	assert.Equal(t, "157", crimes[0].Article)
}
