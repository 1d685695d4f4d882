package frontkit

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed dictionaries/vi_en.yaml
var defaultDictionaryYAML []byte

// Phrase is one source -> target substitution.
type Phrase struct {
	Source string
	Target string
}

// Dictionary is an immutable phrase table.
//
// Phrases are substituted longest source first (measured in runes), so a
// phrase is replaced whole before any shorter phrase contained in it gets a
// chance to match. Phrases of equal length keep their declaration order.
type Dictionary struct {
	phrases     []Phrase // declaration order
	ordered     []Phrase // substitution order
	fingerprint string
}

// NewDictionary builds a dictionary from phrases in declaration order.
// A repeated source keeps its first position and takes the last target.
// Empty sources are dropped.
func NewDictionary(phrases []Phrase) *Dictionary {
	index := make(map[string]int, len(phrases))
	merged := make([]Phrase, 0, len(phrases))

	for _, p := range phrases {
		if p.Source == "" {
			continue
		}
		if i, ok := index[p.Source]; ok {
			merged[i].Target = p.Target
			continue
		}
		index[p.Source] = len(merged)
		merged = append(merged, p)
	}

	ordered := make([]Phrase, len(merged))
	copy(ordered, merged)
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i].Source) > utf8.RuneCountInString(ordered[j].Source)
	})

	h := sha256.New()
	for _, p := range ordered {
		h.Write([]byte(p.Source))
		h.Write([]byte{0})
		h.Write([]byte(p.Target))
		h.Write([]byte{0})
	}

	return &Dictionary{
		phrases:     merged,
		ordered:     ordered,
		fingerprint: hex.EncodeToString(h.Sum(nil))[:16],
	}
}

// ParseDictionary reads a YAML mapping of source phrase to target phrase.
// Mapping order is preserved.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Field: "dictionary", Message: err.Error()}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewDictionary(nil), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return NewDictionary(nil), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ConfigError{
			Field:   "dictionary",
			Message: fmt.Sprintf("line %d: expected a mapping of phrases", root.Line),
		}
	}

	phrases := make([]Phrase, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, &ConfigError{
				Field:   "dictionary",
				Message: fmt.Sprintf("line %d: phrase and translation must be strings", key.Line),
			}
		}
		phrases = append(phrases, Phrase{Source: key.Value, Target: value.Value})
	}

	return NewDictionary(phrases), nil
}

// DefaultDictionary returns the built-in Vietnamese -> English dictionary.
func DefaultDictionary() (*Dictionary, error) {
	return ParseDictionary(defaultDictionaryYAML)
}

// TranslateLine applies every phrase to line in substitution order,
// replacing all literal occurrences. Substitutions are sequential: a later,
// shorter phrase sees the output of the earlier ones.
func (d *Dictionary) TranslateLine(line string) string {
	result := line
	for _, p := range d.ordered {
		if p.Source == p.Target {
			continue
		}
		result = strings.ReplaceAll(result, p.Source, p.Target)
	}
	return result
}

// Normalize returns a copy of the dictionary with every source phrase
// converted to the given Unicode normalization form.
func (d *Dictionary) Normalize(form norm.Form) *Dictionary {
	phrases := make([]Phrase, len(d.phrases))
	for i, p := range d.phrases {
		phrases[i] = Phrase{Source: form.String(p.Source), Target: p.Target}
	}
	return NewDictionary(phrases)
}

// Len returns the number of distinct phrases.
func (d *Dictionary) Len() int {
	return len(d.phrases)
}

// Phrases returns the phrases in declaration order.
func (d *Dictionary) Phrases() []Phrase {
	out := make([]Phrase, len(d.phrases))
	copy(out, d.phrases)
	return out
}

// Ordered returns the phrases in substitution order.
func (d *Dictionary) Ordered() []Phrase {
	out := make([]Phrase, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Fingerprint identifies the dictionary contents. Cache keys include it so a
// dictionary edit invalidates previously cached lines.
func (d *Dictionary) Fingerprint() string {
	return d.fingerprint
}
