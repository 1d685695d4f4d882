// Package cliutil holds the setup shared by the command-line tools: the
// common flags, config loading, and logging.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ZaguanLabs/frontkit"
	"github.com/ZaguanLabs/frontkit/config"
)

// NewApp returns an app writing to stdout and stderr with the flags every
// tool accepts. Callers append their own flags and set Action.
func NewApp(name, usage string, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            name,
		Usage:           usage,
		Version:         frontkit.FullVersion(),
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags:           CommonFlags(),
	}
}

// CommonFlags returns fresh instances of the shared flags.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
			EnvVars: []string{config.EnvPrefix + "CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "print a unified diff instead of writing files",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "diagnostics level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
}

// LoadConfig loads the file named by --config, if any, plus the environment.
func LoadConfig(c *cli.Context) (config.Config, error) {
	return config.Load(c.String("config"))
}

// NewLogger builds the diagnostics logger on the app's error writer. The
// --log-level flag wins over level; --quiet wins over both.
func NewLogger(c *cli.Context, level string) (*slog.Logger, error) {
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if c.Bool("quiet") {
		lvl = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: lvl})), nil
}

// ParseLevel maps a level name to a slog level. Empty means warn.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelWarn, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, &frontkit.ConfigError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", name)}
	}
	return lvl, nil
}

// NewPrinter returns a printer that groups digits the English way (1,234).
func NewPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}
