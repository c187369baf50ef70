package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ReplayPath string // hcl files with frame blocks
	ConfigPath string // hcl files with view/relay blocks, optional

	LogFormat       string
	LogLevel        string
	LogFile         string
	HealthcheckPort int
	Headless        bool
	FrameDuration   time.Duration // overrides the view config when > 0
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ReplayPath == "" {
		return nil, errors.New("ReplayPath is a required configuration field and cannot be empty")
	}
	if cfg.FrameDuration < 0 {
		return nil, errors.New("FrameDuration cannot be negative")
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, errors.New("HealthcheckPort must be between 0 and 65535")
	}
	return &cfg, nil
}

// Paths returns the paths the loader must read, config first.
func (c *Config) Paths() []string {
	var paths []string
	if c.ConfigPath != "" {
		paths = append(paths, c.ConfigPath)
	}
	return append(paths, c.ReplayPath)
}
