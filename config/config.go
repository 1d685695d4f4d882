// Package config loads tool configuration from defaults, a YAML file, and
// the environment, in that order of precedence (later wins).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ZaguanLabs/frontkit"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FRONTKIT_"

// DefaultPageFiles are the pages rewritten when no list is configured.
var DefaultPageFiles = []string{
	"app/albums/[category]/page.tsx",
	"app/albums/event/page.tsx",
	"app/projects/page.tsx",
	"app/events/page.tsx",
	"app/styles/page.tsx",
}

// Config is the full tool configuration.
type Config struct {
	Pages     PagesConfig     `yaml:"pages" envPrefix:"PAGES_"`
	Translate TranslateConfig `yaml:"translate" envPrefix:"TRANSLATE_"`
	Cache     CacheConfig     `yaml:"cache" envPrefix:"CACHE_"`
	Log       LogConfig       `yaml:"log" envPrefix:"LOG_"`
}

// PagesConfig configures the page updater.
type PagesConfig struct {
	Root  string   `yaml:"root" env:"ROOT"`
	Files []string `yaml:"files" env:"FILES" envSeparator:","`
}

// TranslateConfig configures the document translator.
type TranslateConfig struct {
	Root          string `yaml:"root" env:"ROOT"`
	Input         string `yaml:"input" env:"INPUT"`
	Output        string `yaml:"output" env:"OUTPUT"` // defaults to Input + ".new"
	Format        string `yaml:"format" env:"FORMAT"`
	Dictionary    string `yaml:"dictionary" env:"DICTIONARY"` // YAML phrase file; built-in when empty
	SourceLang    string `yaml:"source_lang" env:"SOURCE_LANG"`
	TargetLang    string `yaml:"target_lang" env:"TARGET_LANG"`
	ProgressEvery int    `yaml:"progress_every" env:"PROGRESS_EVERY"`
	Normalize     bool   `yaml:"normalize" env:"NORMALIZE"`
	CheckResidual bool   `yaml:"check_residual" env:"CHECK_RESIDUAL"`
}

// CacheConfig configures the line translation cache.
type CacheConfig struct {
	URL  string        `yaml:"url" env:"URL"`
	File string        `yaml:"file" env:"FILE"`
	TTL  time.Duration `yaml:"ttl" env:"TTL"`
}

// LogConfig configures diagnostics logging.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
}

// Default returns the configuration matching the tools' built-in behavior.
func Default() Config {
	files := make([]string, len(DefaultPageFiles))
	copy(files, DefaultPageFiles)

	return Config{
		Pages: PagesConfig{
			Root:  ".",
			Files: files,
		},
		Translate: TranslateConfig{
			Root:          ".",
			Input:         "Agents.md",
			Format:        frontkit.ContentTypeText,
			SourceLang:    "vi",
			TargetLang:    "en",
			ProgressEvery: frontkit.DefaultProgressInterval,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and FRONTKIT_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified config
		if err != nil {
			return cfg, &frontkit.FileError{Path: path, Op: "read", Cause: err}
		}
		if err := Parse(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, &frontkit.ConfigError{Field: "env", Message: err.Error()}
	}

	return cfg, cfg.Validate()
}

// Parse overlays YAML data onto cfg.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &frontkit.ConfigError{Field: "file", Message: err.Error()}
	}
	return nil
}

// Validate checks cross-field constraints and fills derived defaults.
func (c *Config) Validate() error {
	if c.Translate.Output == "" && c.Translate.Input != "" {
		c.Translate.Output = c.Translate.Input + ".new"
	}
	if c.Translate.Output == c.Translate.Input {
		return &frontkit.ConfigError{Field: "translate.output", Message: "must differ from translate.input"}
	}

	switch c.Translate.Format {
	case frontkit.ContentTypeText, frontkit.ContentTypeHTML:
	default:
		return &frontkit.ConfigError{
			Field:   "translate.format",
			Message: fmt.Sprintf("unsupported format %q (want text or html)", c.Translate.Format),
		}
	}

	if c.Translate.ProgressEvery < 0 {
		return &frontkit.ConfigError{Field: "translate.progress_every", Message: "must not be negative"}
	}
	if c.Cache.TTL < 0 {
		return &frontkit.ConfigError{Field: "cache.ttl", Message: "must not be negative"}
	}

	return nil
}
