package frontkit

import (
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"
)

// minResidualLetters is the shortest line, in letters, worth classifying.
// Shorter fragments (list markers, single words) are not reliable.
const minResidualLetters = 8

// ResidualLine is a translated line that still reads as the source language.
type ResidualLine struct {
	Number int // 1-based
	Text   string
}

// ResidualDetector flags lines whose detected language is still the source
// language after translation.
type ResidualDetector struct {
	detector lingua.LanguageDetector
	source   lingua.Language
}

// NewResidualDetector builds a detector that only distinguishes between the
// source and target languages.
func NewResidualDetector(source, target string) (*ResidualDetector, error) {
	src, ok := LookupLanguage(source)
	if !ok {
		return nil, &ConfigError{Field: "source_lang", Message: "unsupported language " + source}
	}
	tgt, ok := LookupLanguage(target)
	if !ok {
		return nil, &ConfigError{Field: "target_lang", Message: "unsupported language " + target}
	}
	if src.Code == tgt.Code {
		return nil, &ConfigError{Field: "target_lang", Message: "must differ from source_lang"}
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(src.detect, tgt.detect).
		Build()

	return &ResidualDetector{detector: detector, source: src.detect}, nil
}

// Residual returns the lines detected as the source language.
func (d *ResidualDetector) Residual(lines []string) []ResidualLine {
	var out []ResidualLine
	for i, line := range lines {
		text := strings.TrimSpace(line)
		if countLetters(text) < minResidualLetters {
			continue
		}
		if lang, ok := d.detector.DetectLanguageOf(text); ok && lang == d.source {
			out = append(out, ResidualLine{Number: i + 1, Text: text})
		}
	}
	return out
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// Verify ResidualDetector implements ResidualChecker
var _ ResidualChecker = (*ResidualDetector)(nil)
