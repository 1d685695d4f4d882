package cliutil

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/ZaguanLabs/frontkit"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				var cfgErr *frontkit.ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewPrinter(t *testing.T) {
	p := NewPrinter()
	if got := p.Sprintf("%d bytes", 1234567); got != "1,234,567 bytes" {
		t.Errorf("Sprintf() = %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantDebug bool
	}{
		{name: "default warn", args: nil},
		{name: "debug flag", args: []string{"--log-level", "debug"}, wantDebug: true},
		{name: "quiet overrides", args: []string{"--log-level", "debug", "--quiet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			app := NewApp("tool", "test", &stdout, &stderr)
			app.Action = func(c *cli.Context) error {
				logger, err := NewLogger(c, "warn")
				if err != nil {
					return err
				}
				logger.Debug("debug line")
				logger.Error("error line")
				return nil
			}

			if err := app.Run(append([]string{"tool"}, tt.args...)); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			out := stderr.String()
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "error line") {
				t.Errorf("error line missing:\n%s", out)
			}
		})
	}
}

func TestNewApp_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := NewApp("tool", "test", &stdout, &stderr)

	if err := app.Run([]string{"tool", "--version"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(stdout.String(), frontkit.Version) {
		t.Errorf("expected version in output, got %q", stdout.String())
	}
}
