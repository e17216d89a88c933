package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFiltersDebug(t *testing.T) {
	tests := []struct {
		level   log.Level
		wantDbg bool
	}{
		{log.InfoLevel, false},
		{log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			logger.Debug("cache miss", "format", "png")
			if got := strings.Contains(buf.String(), "cache miss"); got != tt.wantDbg {
				t.Errorf("debug logged = %v, want %v (output %q)", got, tt.wantDbg, buf.String())
			}
		})
	}
}

func TestProgressExported(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		cached bool
		want   string
		reject string
	}{
		{"rendered", 3, false, "Exported 3 artifact(s) (", "from cache"},
		{"cached", 1, true, "Exported 1 artifact(s) from cache (", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newProgress(newLogger(&buf, log.InfoLevel)).exported(tt.n, tt.cached)
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
			if tt.reject != "" && strings.Contains(out, tt.reject) {
				t.Errorf("output %q should not contain %q", out, tt.reject)
			}
			if !strings.Contains(out, "ms)") && !strings.Contains(out, "s)") {
				t.Errorf("output %q missing elapsed time", out)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should fall back to log.Default")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext did not return the attached logger")
	}
	loggerFromContext(ctx).Info("exporting", "sprite", "heart.toml")
	if !strings.Contains(buf.String(), "heart.toml") {
		t.Errorf("attached logger output = %q", buf.String())
	}
}
