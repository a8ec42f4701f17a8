// Package config loads naming strategy configuration from files, env vars,
// and flags, and validates it.
package config

import (
	"better-naming/internal/logging"
	"better-naming/naming"
)

// Config holds the application configuration.
type Config struct {
	Naming  naming.Options `mapstructure:"naming"`
	Logging LoggingConfig  `mapstructure:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// LoggerConfig converts the logging section for logging.NewLogger.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	}
}

// NamingOptions returns the options for naming.New.
func (c *Config) NamingOptions() naming.Options {
	return c.Naming
}
