// Package logging builds the zap loggers used across sgf-extract.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// New returns a console logger writing to cfg.LogFile at cfg.LogLevel.
func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	w := cfg.LogFile
	if w == nil {
		w = os.Stderr
	}
	return NewWithWriter(w, level), nil
}

// NewWithWriter returns a console logger writing to w at the given level.
func NewWithWriter(w io.Writer, level zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// ParseLevel converts a level name into a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("log level %q: %w", name, errors.ErrInvalidConfig)
	}
	return level, nil
}
