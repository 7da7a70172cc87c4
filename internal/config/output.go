package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// OutputFormat represents the different ways a game can be written.
type OutputFormat int

const (
	ASCII OutputFormat = iota // Plain text board dump
	LaTeX                     // igo diagrams
	JSON                      // Game tree as JSON
	Stats                     // One line of statistics per game
)

var outputFormatNames = [...]string{
	ASCII: "ascii",
	LaTeX: "latex",
	JSON:  "json",
	Stats: "stats",
}

// String returns the name used on the command line.
func (f OutputFormat) String() string {
	if int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a format name into an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for i, n := range outputFormatNames {
		if strings.EqualFold(n, name) {
			return OutputFormat(i), nil
		}
	}
	return ASCII, fmt.Errorf("output format %q: %w", name, errors.ErrInvalidConfig)
}

// FinalPosition selects the last position of the main line.
const FinalPosition = -1

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects the writer
	Format OutputFormat

	// DiagramStep is the number of moves shown in each LaTeX diagram
	DiagramStep int

	// Position is the position id printed in ASCII format
	Position int

	// JSONIndent pretty-prints JSON output
	JSONIndent bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      ASCII,
		DiagramStep: 50,
		Position:    FinalPosition,
		JSONIndent:  true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < ASCII || o.Format > Stats {
		return invalidf("unknown output format %d", o.Format)
	}
	if o.DiagramStep < 1 {
		return invalidf("diagram step must be at least 1, got %d", o.DiagramStep)
	}
	if o.Position < FinalPosition {
		return invalidf("position must be %d or a position id, got %d", FinalPosition, o.Position)
	}
	return nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, errors.ErrInvalidConfig)...)
}

func validateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return nil
	}
	return invalidf("unknown log level %q", level)
}
