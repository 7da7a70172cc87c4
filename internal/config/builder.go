package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithDiagramStep sets the number of moves per LaTeX diagram.
func (b *ConfigBuilder) WithDiagramStep(step int) *ConfigBuilder {
	b.cfg.Output.DiagramStep = step
	return b
}

// WithPosition selects the position printed in ASCII format.
func (b *ConfigBuilder) WithPosition(id int) *ConfigBuilder {
	b.cfg.Output.Position = id
	return b
}

// WithBoardSize sets the board size used when a record declares none.
func (b *ConfigBuilder) WithBoardSize(size int) *ConfigBuilder {
	b.cfg.Game.BoardSize = size
	return b
}

// SkipIllegalMoves controls whether failed placements abort a record.
func (b *ConfigBuilder) SkipIllegalMoves(skip bool) *ConfigBuilder {
	b.cfg.Game.SkipIllegalMoves = skip
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithWorkers sets the number of concurrent file loaders.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
