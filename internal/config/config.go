package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

// EnvDatabaseURL overrides database.dsn when set, so a deployment can point
// the service at its database with a single environment value.
const EnvDatabaseURL = "TRACKER_DATABASE_URL"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver,omitempty"` // "postgres", "sqlite" or "memory"
	DSN    string `yaml:"dsn,omitempty"`    // connection string, or file path for sqlite
}

// Load reads the config file at path. A missing file at the default path is
// not an error: the service can run entirely off TRACKER_DATABASE_URL.
func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultPath:
		// Defaults below.
	default:
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if strings.TrimSpace(cfg.Database.Driver) == "" {
		cfg.Database.Driver = "postgres"
	}
	if v := strings.TrimSpace(os.Getenv(EnvDatabaseURL)); v != "" {
		cfg.Database.DSN = v
	}

	return &cfg, nil
}
