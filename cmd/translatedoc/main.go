// Command translatedoc rewrites a document from Vietnamese to English with a
// fixed phrase dictionary, longest phrases first.
//
// With no arguments it reads Agents.md and writes Agents.md.new in the
// current directory. The input file is never modified.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ZaguanLabs/frontkit"
	"github.com/ZaguanLabs/frontkit/cache"
	"github.com/ZaguanLabs/frontkit/config"
	"github.com/ZaguanLabs/frontkit/internal/cliutil"
	"github.com/ZaguanLabs/frontkit/processor"
	"github.com/ZaguanLabs/frontkit/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	app := cliutil.NewApp("translatedoc", "translate a document with a phrase dictionary", stdout, stderr)
	app.Flags = append(app.Flags,
		&cli.StringFlag{Name: "root", Usage: "directory relative paths resolve against"},
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "document to translate"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default: input + \".new\")"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "content format: text or html"},
		&cli.StringFlag{Name: "dictionary", Aliases: []string{"d"}, Usage: "YAML phrase dictionary (default: built-in)"},
		&cli.StringFlag{Name: "cache", Usage: "cache backend: redis:// URL or memory"},
		&cli.StringFlag{Name: "cache-file", Usage: "snapshot file for the in-memory cache"},
		&cli.DurationFlag{Name: "cache-ttl", Usage: "cache entry lifetime (0 keeps entries forever)"},
		&cli.IntFlag{Name: "progress-every", Usage: "report progress every N lines"},
		&cli.BoolFlag{Name: "normalize", Usage: "normalize dictionary and document to NFC before matching"},
		&cli.BoolFlag{Name: "check", Usage: "report lines still detected as the source language"},
	)
	app.Action = translateDocument

	return app.Run(append([]string{app.Name}, args...))
}

// applyFlags overlays flags set on the command line onto cfg.
func applyFlags(c *cli.Context, cfg *config.Config) error {
	tc := &cfg.Translate

	if c.IsSet("root") {
		tc.Root = c.String("root")
	}
	if c.IsSet("input") {
		tc.Input = c.String("input")
		if !c.IsSet("output") {
			tc.Output = tc.Input + ".new"
		}
	}
	if c.IsSet("output") {
		tc.Output = c.String("output")
	}
	if c.IsSet("format") {
		tc.Format = c.String("format")
	}
	if c.IsSet("dictionary") {
		tc.Dictionary = c.String("dictionary")
	}
	if c.IsSet("progress-every") {
		tc.ProgressEvery = c.Int("progress-every")
	}
	if c.IsSet("normalize") {
		tc.Normalize = c.Bool("normalize")
	}
	if c.IsSet("check") {
		tc.CheckResidual = c.Bool("check")
	}
	if c.IsSet("cache") {
		cfg.Cache.URL = c.String("cache")
	}
	if c.IsSet("cache-file") {
		cfg.Cache.File = c.String("cache-file")
	}
	if c.IsSet("cache-ttl") {
		cfg.Cache.TTL = c.Duration("cache-ttl")
	}

	return cfg.Validate()
}

func translateDocument(c *cli.Context) error {
	ctx := c.Context
	out := c.App.Writer

	cfg, err := cliutil.LoadConfig(c)
	if err != nil {
		return err
	}
	if err := applyFlags(c, &cfg); err != nil {
		return err
	}
	tc := cfg.Translate

	logger, err := cliutil.NewLogger(c, cfg.Log.Level)
	if err != nil {
		return err
	}

	store := storage.New(tc.Root)

	dict, err := loadDictionary(c, store, tc.Dictionary)
	if err != nil {
		return err
	}

	handle, err := cache.Open(ctx, cache.Config{URL: cfg.Cache.URL, File: cfg.Cache.File, TTL: cfg.Cache.TTL}, store)
	if err != nil {
		return err
	}
	defer func() {
		if err := handle.Close(ctx); err != nil {
			logger.Warn("closing cache failed", "error", err)
		}
	}()

	opts := []frontkit.TranslatorOption{
		frontkit.WithProcessor(processor.NewTextProcessor()),
		frontkit.WithProcessor(processor.NewHTMLProcessor()),
		frontkit.WithCache(handle.Cache),
		frontkit.WithNormalization(tc.Normalize),
		frontkit.WithLogger(logger),
		frontkit.WithProgress(func(done, total int) {
			fmt.Fprintf(out, "Processed %d/%d lines...\n", done, total)
		}, tc.ProgressEvery),
	}
	if tc.CheckResidual {
		detector, err := frontkit.NewResidualDetector(tc.SourceLang, tc.TargetLang)
		if err != nil {
			return err
		}
		opts = append(opts, frontkit.WithResidualCheck(detector))
	}

	translator := frontkit.NewTranslator(dict, opts...)

	fmt.Fprintf(out, "Translating %s...\n", tc.Input)

	report, err := translator.TranslateDocument(ctx, store, frontkit.DocumentJob{
		Input:       tc.Input,
		Output:      tc.Output,
		ContentType: tc.Format,
		DryRun:      c.Bool("dry-run"),
	})
	if err != nil {
		return err
	}

	logger.Info("document translated",
		"lines", report.Lines, "translated", report.Translated, "cached", report.Cached)

	printReport(out, report, tc, c.Bool("dry-run"))
	return nil
}

func loadDictionary(c *cli.Context, store *storage.Store, path string) (*frontkit.Dictionary, error) {
	if path == "" {
		return frontkit.DefaultDictionary()
	}

	data, err := store.ReadFile(c.Context, path)
	if err != nil {
		return nil, &frontkit.FileError{Path: path, Op: "read", Cause: err}
	}
	return frontkit.ParseDictionary(data)
}

func printReport(w io.Writer, report *frontkit.DocumentReport, tc config.TranslateConfig, dryRun bool) {
	p := cliutil.NewPrinter()

	if dryRun {
		fmt.Fprint(w, report.Diff)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "📝 Dry run: %s not written\n", report.Output)
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "✅ Translation complete!")
	}

	p.Fprintf(w, "Old size: %d bytes\n", report.OldSize)
	p.Fprintf(w, "New size: %d bytes\n", report.NewSize)
	fmt.Fprintf(w, "Reduction: %.1f%%\n", report.Reduction())

	if len(report.Residual) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "⚠️  %d lines still look like %s:\n", len(report.Residual), frontkit.GetLanguageName(tc.SourceLang))
		for _, r := range report.Residual {
			fmt.Fprintf(w, "  line %d: %s\n", r.Number, r.Text)
		}
	}

	if dryRun {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Output: %s\n", report.Output)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "To apply: mv %s %s\n", report.Output, report.Input)
}
