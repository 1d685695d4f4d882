package frontkit

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

// DefaultProgressInterval is how many nodes pass between progress callbacks.
const DefaultProgressInterval = 100

// Translator rewrites content through a phrase dictionary.
type Translator struct {
	dictionary    *Dictionary
	cache         TranslationCache
	processors    map[string]ContentProcessor
	progress      ProgressFunc
	progressEvery int
	normalize     bool
	residual      ResidualChecker
	logger        *slog.Logger
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ContentProcessor is the interface for content processing.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error)
	ContentType() string
}

// FileStore reads and writes whole files.
type FileStore interface {
	Exists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
}

// ResidualChecker reports lines still written in the source language.
type ResidualChecker interface {
	Residual(lines []string) []ResidualLine
}

// ProgressFunc receives the number of processed nodes and the total.
type ProgressFunc func(done, total int)

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) TranslatorOption {
	return func(t *Translator) {
		t.processors[processor.ContentType()] = processor
	}
}

// WithProgress sets a callback invoked every interval nodes.
// A non-positive interval uses DefaultProgressInterval.
func WithProgress(fn ProgressFunc, interval int) TranslatorOption {
	return func(t *Translator) {
		t.progress = fn
		if interval > 0 {
			t.progressEvery = interval
		}
	}
}

// WithNormalization converts both the dictionary and the content to NFC
// before matching. The output is NFC as well.
func WithNormalization(enabled bool) TranslatorOption {
	return func(t *Translator) {
		t.normalize = enabled
	}
}

// WithResidualCheck enables reporting of untranslated lines after a document
// translation.
func WithResidualCheck(checker ResidualChecker) TranslatorOption {
	return func(t *Translator) {
		t.residual = checker
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator creates a new Translator backed by dict.
func NewTranslator(dict *Dictionary, opts ...TranslatorOption) *Translator {
	t := &Translator{
		dictionary:    dict,
		processors:    make(map[string]ContentProcessor),
		progressEvery: DefaultProgressInterval,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.normalize {
		t.dictionary = t.dictionary.Normalize(norm.NFC)
	}

	return t
}

// Process translates content of the specified type.
func (t *Translator) Process(ctx context.Context, content string, contentType string) (*ProcessedContent, error) {
	processor, ok := t.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	if t.normalize {
		content = norm.NFC.String(content)
	}

	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return &ProcessedContent{Content: content}, nil
	}

	translations, cachedCount, translatedCount, err := t.translateNodes(ctx, nodes)
	if err != nil {
		return nil, err
	}

	result, err := processor.Apply(parsed, nodes, translations)
	if err != nil {
		return nil, err
	}

	return &ProcessedContent{
		Content:         result,
		TranslatedCount: translatedCount,
		CachedCount:     cachedCount,
		TotalNodes:      len(nodes),
	}, nil
}

// translateNodes runs every node through the dictionary, using the cache
// where possible. Only changed texts end up in the returned map.
func (t *Translator) translateNodes(ctx context.Context, nodes []TextNode) (map[string]string, int, int, error) {
	translations := make(map[string]string)
	done := make(map[string]string)
	cachedCount := 0
	translatedCount := 0
	fingerprint := t.dictionary.Fingerprint()

	for i, node := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, 0, 0, err
		}

		out, seen := done[node.Hash]
		if !seen {
			out, seen = t.lookup(node.Hash, fingerprint)
			if seen {
				cachedCount++
			} else {
				out = t.dictionary.TranslateLine(node.Text)
				t.store(node.Hash, fingerprint, out)
			}
			done[node.Hash] = out
		}

		if out != node.Text {
			translations[node.Hash] = out
			translatedCount++
		}

		if t.progress != nil && (i+1)%t.progressEvery == 0 {
			t.progress(i+1, len(nodes))
		}
	}

	return translations, cachedCount, translatedCount, nil
}

func (t *Translator) lookup(hash, fingerprint string) (string, bool) {
	if t.cache == nil {
		return "", false
	}
	return t.cache.Get(CacheKey(hash, fingerprint))
}

func (t *Translator) store(hash, fingerprint, value string) {
	if t.cache == nil {
		return
	}
	if err := t.cache.Set(CacheKey(hash, fingerprint), value); err != nil {
		t.logger.Warn("cache set failed", "error", &CacheError{Message: "set", Cause: err})
	}
}

// Dictionary returns the dictionary in use, normalized if normalization is on.
func (t *Translator) Dictionary() *Dictionary {
	return t.dictionary
}
