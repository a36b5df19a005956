package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ServiceConfig configures the spectator stream server.
type ServiceConfig struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	BindAddress string        `toml:"bind_address"`
	TickRate    time.Duration `toml:"tick_rate"`
	ConfigDir   string        `toml:"config_dir"`
	WriteWait   time.Duration `toml:"write_wait"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// DefaultService returns the settings used when no file is supplied.
func DefaultService() ServiceConfig {
	return ServiceConfig{
		Server: ServerConfig{
			BindAddress: ":8080",
			TickRate:    100 * time.Millisecond,
			ConfigDir:   "assets",
			WriteWait:   10 * time.Second,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadService reads a TOML service config, filling defaults for anything
// the file leaves out. An empty path yields the defaults.
func LoadService(path string) (ServiceConfig, error) {
	cfg := DefaultService()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load service config: %w", err)
	}
	if cfg.Server.TickRate <= 0 {
		cfg.Server.TickRate = 100 * time.Millisecond
	}
	if cfg.Server.WriteWait <= 0 {
		cfg.Server.WriteWait = 10 * time.Second
	}
	return cfg, nil
}
