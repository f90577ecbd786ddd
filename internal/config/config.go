// Package config loads server configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// ServerConfig configures the transport layer.
type ServerConfig struct {
	WebSocket       WebSocketConfig `mapstructure:"websocket"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
}

// WebSocketConfig configures the websocket gateway.
type WebSocketConfig struct {
	Address string `mapstructure:"address"`
	Path    string `mapstructure:"path"`
}

// DatabaseConfig configures the optional save store.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig bounds the game engine.
type EngineConfig struct {
	SolverMaxDepth int `mapstructure:"solver_max_depth"`
	MaxSessions    int `mapstructure:"max_sessions"`
}

// Load reads the config file at path (optional; defaults apply when it
// is absent) and merges GARDENFALL_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.websocket.address", ":8089")
	v.SetDefault("server.websocket.path", "/ws")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("engine.solver_max_depth", 12)
	v.SetDefault("engine.max_sessions", 256)

	v.SetEnvPrefix("GARDENFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return nil, fmt.Errorf("config: database enabled without a url")
	}
	return &cfg, nil
}
