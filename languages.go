package frontkit

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Language describes a natural language a dictionary can translate between.
type Language struct {
	Code   string // ISO 639-1 code, e.g. "vi"
	Name   string // Human-readable name
	detect lingua.Language
}

// languages lists the languages with detection support.
var languages = map[string]Language{
	"de": {Code: "de", Name: "German", detect: lingua.German},
	"en": {Code: "en", Name: "English", detect: lingua.English},
	"es": {Code: "es", Name: "Spanish", detect: lingua.Spanish},
	"fr": {Code: "fr", Name: "French", detect: lingua.French},
	"id": {Code: "id", Name: "Indonesian", detect: lingua.Indonesian},
	"ja": {Code: "ja", Name: "Japanese", detect: lingua.Japanese},
	"ko": {Code: "ko", Name: "Korean", detect: lingua.Korean},
	"th": {Code: "th", Name: "Thai", detect: lingua.Thai},
	"vi": {Code: "vi", Name: "Vietnamese", detect: lingua.Vietnamese},
	"zh": {Code: "zh", Name: "Chinese", detect: lingua.Chinese},
}

// LookupLanguage finds a language by code. Locale forms such as "vi_VN" and
// "vi-VN" resolve to their base language.
func LookupLanguage(code string) (Language, bool) {
	lang, ok := languages[normalizeBaseLang(code)]
	return lang, ok
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(code string) string {
	if lang, ok := LookupLanguage(code); ok {
		return lang.Name
	}
	return code
}

// normalizeBaseLang extracts the base language code (e.g., "en" from "en_US").
func normalizeBaseLang(code string) string {
	code = strings.ReplaceAll(code, "-", "_")
	base, _, _ := strings.Cut(code, "_")
	return strings.ToLower(base)
}
