package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig
	Solver  SolverConfig
	Storage StorageConfig
	Log     LogConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string
}

// SolverConfig holds fixpoint engine settings.
type SolverConfig struct {
	MaxIterations int
	Workers       int
	Parallel      bool
}

// StorageConfig selects and locates the puzzle store.
type StorageConfig struct {
	Backend    string // "fs" or "sqlite"
	Path       string
	Migrations string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix NONOGRAM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("solver.maxiterations", 100)
	v.SetDefault("solver.workers", 0)
	v.SetDefault("solver.parallel", true)
	v.SetDefault("storage.backend", "fs")
	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.migrations", "./internal/infrastructure/storage/migrations")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NONOGRAM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "nonogram"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NONOGRAM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
