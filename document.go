package frontkit

import (
	"context"
	"path/filepath"
	"strings"
)

// DocumentJob describes one document translation.
type DocumentJob struct {
	Input       string
	Output      string
	ContentType string // defaults to ContentTypeText
	DryRun      bool   // compute the result and a diff without writing
}

// DocumentReport summarizes a document translation.
type DocumentReport struct {
	Input      string
	Output     string
	Lines      int   // lines read from Input
	OldSize    int64 // bytes
	NewSize    int64 // bytes
	Translated int   // nodes whose text changed
	Cached     int   // cache hits
	Residual   []ResidualLine
	Diff       string // unified diff, dry runs only
}

// Reduction returns the size reduction in percent. Growth is negative.
func (r *DocumentReport) Reduction() float64 {
	if r.OldSize == 0 {
		return 0
	}
	return float64(r.OldSize-r.NewSize) / float64(r.OldSize) * 100
}

// TranslateDocument translates job.Input into job.Output.
//
// The output is always a separate file: a job whose output resolves to the
// input path is rejected. A missing input aborts before anything is written.
func (t *Translator) TranslateDocument(ctx context.Context, store FileStore, job DocumentJob) (*DocumentReport, error) {
	if job.ContentType == "" {
		job.ContentType = ContentTypeText
	}
	if job.Input == "" {
		return nil, &ConfigError{Field: "input", Message: "must not be empty"}
	}
	if job.Output == "" || filepath.Clean(job.Output) == filepath.Clean(job.Input) {
		return nil, &ConfigError{Field: "output", Message: "must be set and differ from the input path"}
	}

	data, err := store.ReadFile(ctx, job.Input)
	if err != nil {
		return nil, &FileError{Path: job.Input, Op: "read", Cause: err}
	}
	content := string(data)

	t.logger.Debug("translating document",
		"input", job.Input, "output", job.Output, "bytes", len(data), "phrases", t.dictionary.Len())

	result, err := t.Process(ctx, content, job.ContentType)
	if err != nil {
		return nil, err
	}

	report := &DocumentReport{
		Input:      job.Input,
		Output:     job.Output,
		Lines:      len(SplitLines(content)),
		OldSize:    int64(len(data)),
		NewSize:    int64(len(result.Content)),
		Translated: result.TranslatedCount,
		Cached:     result.CachedCount,
	}

	if t.residual != nil {
		report.Residual = t.residual.Residual(SplitLines(result.Content))
	}

	if job.DryRun {
		diff, err := UnifiedDiff(job.Input, job.Output, content, result.Content)
		if err != nil {
			return nil, err
		}
		report.Diff = diff
		return report, nil
	}

	if err := store.WriteFile(ctx, job.Output, []byte(result.Content)); err != nil {
		return nil, &FileError{Path: job.Output, Op: "write", Cause: err}
	}

	return report, nil
}

// SplitLines splits s after every "\n". A final line without a terminator is
// kept; an empty string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
