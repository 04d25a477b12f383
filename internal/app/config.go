package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dori/wille/internal/db"
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds application configuration
type Config struct {
	DataDir  string `toml:"data_dir"`
	DBPath   string `toml:"db_path"`
	Storage  string `toml:"storage"`
	LogLevel string `toml:"log_level"`
	Theme    string `toml:"theme"`
	Notify   bool   `toml:"notify"`
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:  db.DefaultDataDir(),
		Storage:  StorageSQLite,
		LogLevel: "info",
		Theme:    "nord",
		Notify:   true,
	}
}

// DefaultConfigPath returns where the config file is looked up
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wille", "config.toml")
}

// LoadConfig layers the config file at path (if it exists) and the
// WILLE_* environment variables over the defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
			}
		}
	}

	if v := os.Getenv("WILLE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("WILLE_STORAGE"); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv("WILLE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Override applies command-line values on top of a loaded config
func (c *Config) Override(dataDir, storage string) error {
	if dataDir != "" {
		if c.DBPath == filepath.Join(c.DataDir, db.FileName) {
			c.DBPath = ""
		}
		c.DataDir = dataDir
	}
	if storage != "" {
		c.Storage = storage
	}
	return c.finalize()
}

// finalize fills derived values and validates the result
func (c *Config) finalize() error {
	if c.DataDir == "" {
		c.DataDir = db.DefaultDataDir()
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, db.FileName)
	}

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	switch c.Storage {
	case "":
		c.Storage = StorageSQLite
	case StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q (want %s or %s)", c.Storage, StorageSQLite, StorageMemory)
	}
	return nil
}
