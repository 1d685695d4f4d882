// Command updatepages adds responsive layout and motion animations to the
// listing pages of the web app.
//
// With no arguments it rewrites the five built-in pages relative to the
// current directory. Missing pages are reported and counted as failures;
// the command still exits 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ZaguanLabs/frontkit/internal/cliutil"
	"github.com/ZaguanLabs/frontkit/rewrite"
	"github.com/ZaguanLabs/frontkit/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	app := cliutil.NewApp("updatepages", "add responsive layout and animations to listing pages", stdout, stderr)
	app.ArgsUsage = "[page ...]"
	app.Flags = append(app.Flags,
		&cli.StringFlag{
			Name:  "root",
			Usage: "directory page paths are relative to",
		},
	)
	app.Action = updatePages

	return app.Run(append([]string{app.Name}, args...))
}

func updatePages(c *cli.Context) error {
	cfg, err := cliutil.LoadConfig(c)
	if err != nil {
		return err
	}

	logger, err := cliutil.NewLogger(c, cfg.Log.Level)
	if err != nil {
		return err
	}

	root := cfg.Pages.Root
	if c.IsSet("root") {
		root = c.String("root")
	}

	pages := cfg.Pages.Files
	if c.Args().Present() {
		pages = c.Args().Slice()
	}

	store := storage.New(root)
	logger.Debug("updating pages", "root", store.Root(), "pages", len(pages), "dry_run", c.Bool("dry-run"))

	updater := rewrite.NewUpdater(store,
		rewrite.WithOutput(c.App.Writer),
		rewrite.WithLogger(logger),
		rewrite.WithDryRun(c.Bool("dry-run")),
	)
	report := updater.Run(c.Context, pages)

	logger.Info("pages processed", "succeeded", report.Succeeded(), "failed", report.Failed())
	return nil
}
