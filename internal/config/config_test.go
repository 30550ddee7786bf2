package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delavector/officedb/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	require.Equal(t, "officedb.db", cfg.Storage.SQLitePath)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OFFICEDB_STORAGE_BACKEND", "csv")
	t.Setenv("OFFICEDB_CSV_DIR", "/tmp/office")
	t.Setenv("OFFICEDB_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.BackendCSV, cfg.Storage.Backend)
	require.Equal(t, "/tmp/office", cfg.Storage.CSVDir)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "storage:\n  backend: csv\n  csv_dir: ./data\ncities:\n  path: steden.csv\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("OFFICEDB_CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.BackendCSV, cfg.Storage.Backend)
	require.Equal(t, "./data", cfg.Storage.CSVDir)
	require.Equal(t, "steden.csv", cfg.Cities.Path)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("OFFICEDB_STORAGE_BACKEND", "oracle")
	_, err := config.Load()
	require.Error(t, err)
}
