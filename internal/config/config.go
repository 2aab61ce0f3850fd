package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file path.
const EnvPath = "DUNGEON_CONFIG"

// DefaultPath is used when neither -config nor EnvPath is given.
const DefaultPath = "config/dungeon.yaml"

// Dungeon holds all configuration for the dungeon loader CLI.
type Dungeon struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Levels
	LevelsDir    string `yaml:"levels_dir"`
	StrictBounds bool   `yaml:"strict_bounds"` // reject entities outside width×height
	Watch        bool   `yaml:"watch"`         // reload levels on change

	// Observability
	MetricsAddr string `yaml:"metrics_addr"` // empty disables /metrics

	// Level storage
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
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

// DefaultDungeon returns Dungeon config with sensible defaults.
func DefaultDungeon() Dungeon {
	return Dungeon{
		LogLevel:  "info",
		LevelsDir: "dungeons",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "dungeon",
			Password: "dungeon",
			DBName:   "dungeon",
			SSLMode:  "disable",
		},
	}
}

// ResolvePath picks the config path: explicit flag, then EnvPath, then DefaultPath.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// LoadDungeon loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDungeon(path string) (Dungeon, error) {
	cfg := DefaultDungeon()

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

	if cfg.LevelsDir == "" {
		return cfg, fmt.Errorf("parsing config %s: levels_dir must not be empty", path)
	}
	return cfg, nil
}
