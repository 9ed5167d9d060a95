package affect

import (
	"fmt"
	"strings"

	"github.com/bbalet/stopwords"
)

// StopWordFilter drops function words ("the", "and", ...) for a language.
type StopWordFilter struct {
	language Language
}

// NewStopWordFilter creates a filter for lang.
func NewStopWordFilter(lang Language) (*StopWordFilter, error) {
	if !IsStopWordLanguage(lang) {
		return nil, FormatLanguageError(lang)
	}
	return &StopWordFilter{language: lang}, nil
}

// IsStopWord reports whether word is a stop word.
//
// The stopwords library doesn't export its lists, so a word counts as a
// stop word when cleaning it leaves nothing behind.
func (f *StopWordFilter) IsStopWord(word string) bool {
	if strings.TrimSpace(word) == "" {
		return false
	}
	cleaned := stopwords.CleanString(word, string(f.language), false)
	return strings.TrimSpace(cleaned) == ""
}

// Filter returns words without the stop words, preserving order.
func (f *StopWordFilter) Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !f.IsStopWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsStopWordLanguage checks if stop-word filtering supports lang.
func IsStopWordLanguage(lang Language) bool {
	for _, supported := range GetSupportedLanguages() {
		if lang == supported {
			return true
		}
	}
	return false
}

// GetSupportedLanguages returns all supported languages
func GetSupportedLanguages() []Language {
	return []Language{English, Spanish, French, German}
}

// FormatLanguageError creates a formatted error for unsupported languages
func FormatLanguageError(lang Language) error {
	return fmt.Errorf("language %s is not supported. Supported languages: %v",
		string(lang), GetSupportedLanguages())
}
