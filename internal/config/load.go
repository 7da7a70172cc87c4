package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SGF"

// fileConfig mirrors the settings that can come from a file or the environment.
type fileConfig struct {
	BoardSize          int    `mapstructure:"board_size"`
	SkipIllegalMoves   bool   `mapstructure:"skip_illegal_moves"`
	Format             string `mapstructure:"format"`
	DiagramStep        int    `mapstructure:"diagram_step"`
	Position           int    `mapstructure:"position"`
	JSONIndent         bool   `mapstructure:"json_indent"`
	SuppressDuplicates bool   `mapstructure:"suppress_duplicates"`
	Workers            int    `mapstructure:"workers"`
	LogLevel           string `mapstructure:"log_level"`
	Verbosity          int    `mapstructure:"verbosity"`
}

// Load builds a Config from defaults, then the optional config file at path
// (YAML, TOML or JSON by extension), then SGF_* environment variables.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	v := viper.New()
	v.SetDefault("board_size", cfg.Game.BoardSize)
	v.SetDefault("skip_illegal_moves", cfg.Game.SkipIllegalMoves)
	v.SetDefault("format", cfg.Output.Format.String())
	v.SetDefault("diagram_step", cfg.Output.DiagramStep)
	v.SetDefault("position", cfg.Output.Position)
	v.SetDefault("json_indent", cfg.Output.JSONIndent)
	v.SetDefault("suppress_duplicates", cfg.Duplicate.Suppress)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("verbosity", cfg.Verbosity)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "reading %s: %v", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decoding configuration: %v", err)
	}

	format, err := ParseOutputFormat(fc.Format)
	if err != nil {
		return nil, err
	}

	cfg.Game.BoardSize = fc.BoardSize
	cfg.Game.SkipIllegalMoves = fc.SkipIllegalMoves
	cfg.Output.Format = format
	cfg.Output.DiagramStep = fc.DiagramStep
	cfg.Output.Position = fc.Position
	cfg.Output.JSONIndent = fc.JSONIndent
	cfg.Duplicate.Suppress = fc.SuppressDuplicates
	cfg.Workers = fc.Workers
	cfg.LogLevel = fc.LogLevel
	cfg.Verbosity = fc.Verbosity

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
