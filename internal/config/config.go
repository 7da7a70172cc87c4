// Package config provides configuration for sgf-extract.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game count, 2=running commentary

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string

	// Workers is the number of files loaded concurrently.
	Workers int

	// Embedded configuration structs
	Game      *GameConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogLevel:   "warn",
		Workers:    1,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Workers < 1 {
		return invalidf("workers must be at least 1, got %d", c.Workers)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
