package affect

import "fmt"

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

// An EmotionScore pairs an emotion label with a frequency.
type EmotionScore struct {
	Emotion   string  `json:"emotion"`   // The emotion label, e.g. "joy".
	Frequency float64 `json:"frequency"` // Share of all matched emotion occurrences (0.0-1.0).
}

// String returns the score as "label:frequency".
func (es EmotionScore) String() string {
	return fmt.Sprintf("%s:%.4f", es.Emotion, es.Frequency)
}

// Vocabulary answers whether a word is known. *Lexicon satisfies it.
type Vocabulary interface {
	Has(word string) bool
}

// VocabularyFunc adapts a plain function to the Vocabulary interface.
type VocabularyFunc func(word string) bool

// Has calls f(word).
func (f VocabularyFunc) Has(word string) bool {
	return f(word)
}
