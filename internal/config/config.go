package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the build optimizer.
type Config struct {
	// Catalog cache files
	CharacterCache string `yaml:"character_cache"`
	ItemCache      string `yaml:"item_cache"`

	// Logging
	LogLevel string `yaml:"log_level"`

	Search   SearchConfig   `yaml:"search"`
	Sim      SimConfig      `yaml:"sim"`
	Database DatabaseConfig `yaml:"database"`
}

// SearchConfig tunes the build search.
type SearchConfig struct {
	// Yield to the scheduler after this many candidate checks.
	YieldEvery int `yaml:"yield_every"`

	// Extra priority stats to try per character, each as its own
	// weighted search pass.
	Priorities []string `yaml:"priorities"`
}

// SimConfig tunes the combat simulation.
type SimConfig struct {
	MaxSwings  int     `yaml:"max_swings"`
	MaxSeconds float64 `yaml:"max_seconds"`
	Seed       uint64  `yaml:"seed"` // 0 = non-deterministic
}

// DatabaseConfig holds PostgreSQL connection parameters for the
// optional result store.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		CharacterCache: "cache/characters.json",
		ItemCache:      "cache/items.json",
		LogLevel:       "info",
		Search: SearchConfig{
			YieldEvery: 64,
		},
		Sim: SimConfig{
			MaxSwings:  3000,
			MaxSeconds: 300,
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "godforge",
			Password: "godforge",
			DBName:   "godforge",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
