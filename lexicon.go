package affect

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// NRCLex designates the bundled lexicon: a sample of the NRC Word-Emotion
// Association Lexicon (EmoLex) in the same word to labels shape, covering
// about ninety common words. The full EmoLex is licensed by the National
// Research Council Canada and is not redistributed here; obtain it from NRC
// and load it with OpenLexicon(path) or LoadLexiconFile.
const NRCLex = "NRCLex"

//go:embed data/*.json
var builtinFS embed.FS

// builtinLexicons maps a designator to its file inside builtinFS.
var builtinLexicons = map[string]string{
	NRCLex: "data/nrc_en.json",
}

type builtinEntry struct {
	once    sync.Once
	lexicon *Lexicon
	err     error
}

var builtinCache = func() map[string]*builtinEntry {
	cache := make(map[string]*builtinEntry, len(builtinLexicons))
	for name := range builtinLexicons {
		cache[name] = &builtinEntry{}
	}
	return cache
}()

// A Lexicon maps words to the ordered emotion labels associated with them.
//
// A Lexicon is immutable once constructed and is safe for concurrent use.
// Labels repeated within one word's list are preserved and count once per
// repetition during analysis.
type Lexicon struct {
	name   string
	words  map[string][]string
	labels []string
}

// OpenLexicon resolves source to a lexicon. source is either the name of a
// built-in lexicon (see BuiltinLexicons) or a path to a JSON lexicon file.
//
// For example,
//
//	lex, err := affect.OpenLexicon(affect.NRCLex)
//	lex, err := affect.OpenLexicon("testdata/custom.json")
func OpenLexicon(source string) (*Lexicon, error) {
	if _, ok := builtinLexicons[source]; ok {
		return BuiltinLexicon(source)
	}
	if isPathLike(source) {
		return LoadLexiconFile(source)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLexicon, source)
}

// isPathLike reports whether s looks like a filesystem path rather than a
// (mistyped) designator.
func isPathLike(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if strings.ContainsRune(s, '/') || strings.ContainsRune(s, os.PathSeparator) {
		return true
	}
	if filepath.Ext(s) != "" {
		return true
	}
	_, err := os.Stat(s)
	return err == nil
}

// BuiltinLexicons returns the designators accepted by BuiltinLexicon.
func BuiltinLexicons() []string {
	names := make([]string, 0, len(builtinLexicons))
	for name := range builtinLexicons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinLexicon returns the bundled lexicon called name. Each built-in
// lexicon is parsed once and shared.
func BuiltinLexicon(name string) (*Lexicon, error) {
	file, ok := builtinLexicons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLexicon, name)
	}
	entry := builtinCache[name]
	entry.once.Do(func() {
		data, err := builtinFS.ReadFile(file)
		if err != nil {
			entry.err = fmt.Errorf("%w: error reading built-in lexicon %s: %w", ErrLexiconFormat, name, err)
			return
		}
		entry.lexicon, entry.err = parseLexicon(name, data)
	})
	return entry.lexicon, entry.err
}

// LoadLexiconFile reads a JSON lexicon from path. The file must hold a
// single object whose values are non-empty arrays of strings.
func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading lexicon file: %w", ErrLexiconFormat, err)
	}
	return parseLexicon(filepath.Base(path), data)
}

// LoadLexicon reads a JSON lexicon from r.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	return decodeLexicon("custom", r)
}

// LexiconFromMap builds a lexicon from an in-memory mapping. The map is
// copied, so later changes to m do not affect the lexicon.
func LexiconFromMap(m map[string][]string) (*Lexicon, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: mapping is nil", ErrLexiconFormat)
	}
	return newLexicon("custom", m)
}

func decodeLexicon(name string, r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading lexicon: %w", ErrLexiconFormat, err)
	}
	return parseLexicon(name, data)
}

func parseLexicon(name string, data []byte) (*Lexicon, error) {
	// Unmarshal, unlike a Decoder, rejects data after the top-level object.
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: error parsing lexicon JSON: %w", ErrLexiconFormat, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrLexiconFormat)
	}
	return newLexicon(name, raw)
}

func newLexicon(name string, m map[string][]string) (*Lexicon, error) {
	words := make(map[string][]string, len(m))
	seen := make(map[string]bool)
	for word, emotions := range m {
		if len(emotions) == 0 {
			return nil, fmt.Errorf("%w: word %q has no emotions", ErrLexiconFormat, word)
		}
		words[word] = append([]string(nil), emotions...)
		for _, e := range emotions {
			seen[e] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for e := range seen {
		labels = append(labels, e)
	}
	sort.Strings(labels)

	return &Lexicon{name: name, words: words, labels: labels}, nil
}

// Name returns the designator or file name the lexicon was loaded from.
func (lex *Lexicon) Name() string {
	return lex.name
}

// Emotions returns a copy of the labels associated with word.
func (lex *Lexicon) Emotions(word string) ([]string, bool) {
	emotions, ok := lex.words[word]
	if !ok {
		return nil, false
	}
	return append([]string(nil), emotions...), true
}

// Has reports whether word is a lexicon key.
func (lex *Lexicon) Has(word string) bool {
	_, ok := lex.words[word]
	return ok
}

// Len returns the number of words in the lexicon.
func (lex *Lexicon) Len() int {
	return len(lex.words)
}

// Words returns all lexicon keys in sorted order.
func (lex *Lexicon) Words() []string {
	words := make([]string, 0, len(lex.words))
	for w := range lex.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Labels returns the distinct emotion labels used by the lexicon, sorted.
func (lex *Lexicon) Labels() []string {
	return append([]string(nil), lex.labels...)
}

// emotions returns the stored slice without copying; callers must not
// modify it.
func (lex *Lexicon) emotions(word string) ([]string, bool) {
	emotions, ok := lex.words[word]
	return emotions, ok
}
