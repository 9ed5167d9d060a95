package affect

import (
	"sort"

	"github.com/kljensen/snowball/english"
)

// A Lemmatizer reduces a word to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// IdentityLemmatizer returns every word unchanged.
type IdentityLemmatizer struct{}

// Lemma returns word.
func (IdentityLemmatizer) Lemma(word string) string {
	return word
}

// PartOfSpeech selects the detachment rules used by MorphyLemmatizer.
type PartOfSpeech int

const (
	Noun PartOfSpeech = iota
	Verb
	Adjective
)

type detachment struct {
	suffix, ending string
}

var detachmentRules = map[PartOfSpeech][]detachment{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// Irregular forms the suffix rules cannot reach.
var morphyExceptions = map[PartOfSpeech]map[string]string{
	Noun: {
		"children": "child", "men": "man", "women": "woman", "mice": "mouse",
		"feet": "foot", "teeth": "tooth", "geese": "goose", "lives": "life",
		"wives": "wife", "knives": "knife", "leaves": "leaf", "wolves": "wolf",
	},
	Verb: {
		"was": "be", "were": "be", "been": "be", "went": "go", "gone": "go",
		"ran": "run", "felt": "feel", "lost": "lose", "won": "win",
		"fought": "fight", "wept": "weep", "cried": "cry", "died": "die",
	},
	Adjective: {
		"better": "good", "best": "good", "worse": "bad", "worst": "bad",
	},
}

// MorphyLemmatizer lemmatizes with WordNet-style suffix detachment. A
// candidate lemma is only accepted when the vocabulary knows it; among
// accepted candidates the shortest wins. Words with no accepted candidate
// are returned unchanged.
//
// The vocabulary is usually the lexicon, not a dictionary of nouns, so any
// lexicon key counts as a valid lemma whatever its part of speech. With
// "new" in the lexicon, "news" lemmatizes to "new", which WordNet would not
// do. Supply a noun Vocabulary through VocabularyFunc when that matters.
type MorphyLemmatizer struct {
	vocab Vocabulary
	pos   PartOfSpeech
}

// NewMorphyLemmatizer returns a noun lemmatizer validated against vocab.
// With a nil vocab only irregular forms are rewritten.
func NewMorphyLemmatizer(vocab Vocabulary) *MorphyLemmatizer {
	return &MorphyLemmatizer{vocab: vocab, pos: Noun}
}

// WithPOS returns a copy of the lemmatizer using the rules for pos.
func (m *MorphyLemmatizer) WithPOS(pos PartOfSpeech) *MorphyLemmatizer {
	return &MorphyLemmatizer{vocab: m.vocab, pos: pos}
}

// Lemma returns the dictionary form of word.
func (m *MorphyLemmatizer) Lemma(word string) string {
	if word == "" {
		return word
	}

	if exc, ok := morphyExceptions[m.pos][word]; ok {
		if m.vocab == nil {
			return exc
		}
		if lemma, ok := m.shortestKnown([]string{word, exc}); ok {
			return lemma
		}
	}
	if m.vocab == nil {
		return word
	}

	candidates := []string{word}
	for _, rule := range detachmentRules[m.pos] {
		n := len(word) - len(rule.suffix)
		if n > 0 && word[n:] == rule.suffix {
			candidates = append(candidates, word[:n]+rule.ending)
		}
	}
	if lemma, ok := m.shortestKnown(candidates); ok {
		return lemma
	}
	return word
}

func (m *MorphyLemmatizer) shortestKnown(candidates []string) (string, bool) {
	best, found := "", false
	for _, c := range candidates {
		if !m.vocab.Has(c) {
			continue
		}
		if !found || len(c) < len(best) {
			best, found = c, true
		}
	}
	return best, found
}

// StemLemmatizer maps a word onto the vocabulary word sharing its Snowball
// English stem, so that "loving" and "loved" both resolve to "love".
type StemLemmatizer struct {
	known map[string]bool
	stems map[string]string
}

// NewStemLemmatizer indexes words by stem. When several words share a stem
// the shortest (then alphabetically first) represents it.
func NewStemLemmatizer(words []string) *StemLemmatizer {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	sl := &StemLemmatizer{
		known: make(map[string]bool, len(sorted)),
		stems: make(map[string]string, len(sorted)),
	}
	for _, w := range sorted {
		sl.known[w] = true
		stem := english.Stem(w, true)
		if _, ok := sl.stems[stem]; !ok {
			sl.stems[stem] = w
		}
	}
	return sl
}

// Lemma returns word itself when indexed, else the indexed word with the
// same stem, else word.
func (sl *StemLemmatizer) Lemma(word string) string {
	if sl.known[word] {
		return word
	}
	if lemma, ok := sl.stems[english.Stem(word, true)]; ok {
		return lemma
	}
	return word
}
