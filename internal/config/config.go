package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends selectable via config.
const (
	BackendSQLite = "sqlite"
	BackendCSV    = "csv"
)

// Config defines application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Cities  CitiesConfig  `yaml:"cities"`
	Log     LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	// Backend is either "sqlite" or "csv".
	Backend string `yaml:"backend"`
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string `yaml:"sqlite_path"`
	// CSVDir is the directory holding the csv backend's files.
	CSVDir string `yaml:"csv_dir"`
}

type CitiesConfig struct {
	// Path points at an optional postcode list; empty uses the builtin sample.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			SQLitePath: "officedb.db",
			CSVDir:     "data",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("OFFICEDB_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if backend := os.Getenv("OFFICEDB_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if dbPath := os.Getenv("OFFICEDB_SQLITE_PATH"); dbPath != "" {
		cfg.Storage.SQLitePath = dbPath
	}
	if dir := os.Getenv("OFFICEDB_CSV_DIR"); dir != "" {
		cfg.Storage.CSVDir = dir
	}
	if path := os.Getenv("OFFICEDB_CITIES_PATH"); path != "" {
		cfg.Cities.Path = path
	}
	if level := os.Getenv("OFFICEDB_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Storage.Backend != BackendSQLite && cfg.Storage.Backend != BackendCSV {
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
