package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	sgferrors "github.com/lgbarn/sgf-extract-go/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.WarnLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.name, err)
			}
			if err != nil && !errors.Is(err, sgferrors.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNew_WritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&buf).WithLogLevel("warn").Build()

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Infow("hidden", "file", "a.sgf")
	log.Warnw("skipping move", "file", "b.sgf", "move", 12)
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	for _, want := range []string{"WARN", "skipping move", "b.sgf", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.NewConfigBuilder().WithLogLevel("verbose").Build()
	if _, err := New(cfg); !errors.Is(err, sgferrors.ErrInvalidConfig) {
		t.Errorf("New error = %v, want ErrInvalidConfig", err)
	}
}

func TestNop(t *testing.T) {
	Nop().Errorw("discarded", "k", "v")
}
