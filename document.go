package affect

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might disable case folding:
//
//	doc, err := affect.NewDocument("...", affect.WithCaseFolding(false))
type DocOpt func(opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Normalize   bool       // If true, apply Unicode NFC normalization first
	Segment     bool       // If true, split into sentences before tokenizing
	FoldCase    bool       // If true, case-fold every word
	Punctuation bool       // If true, keep punctuation tokens
	Tokenizer   Tokenizer  // Word tokenizer applied to each sentence
	Lemmatizer  Lemmatizer // Lemmatizer applied to each word
	StopWords   bool       // If true, drop stop words of Language
	Language    Language   // Language used for stop words
}

// UsingWordTokenizer specifies the Tokenizer that splits sentences into words.
func UsingWordTokenizer(t Tokenizer) DocOpt {
	return func(opts *DocOpts) {
		opts.Tokenizer = t
	}
}

// UsingLemmatizer specifies the Lemmatizer; nil disables lemmatization.
func UsingLemmatizer(l Lemmatizer) DocOpt {
	return func(opts *DocOpts) {
		opts.Lemmatizer = l
	}
}

// WithNormalization can enable (the default) or disable NFC normalization.
func WithNormalization(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Normalize = include
	}
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Segment = include
	}
}

// WithCaseFolding can enable (the default) or disable case folding.
func WithCaseFolding(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.FoldCase = include
	}
}

// WithPunctuation keeps punctuation tokens instead of stripping them.
func WithPunctuation(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Punctuation = include
	}
}

// WithStopWordRemoval drops stop words of lang from the words.
func WithStopWordRemoval(lang Language) DocOpt {
	return func(opts *DocOpts) {
		opts.StopWords = true
		opts.Language = lang
	}
}

func defaultDocOpts() DocOpts {
	return DocOpts{
		Normalize: true,
		Segment:   true,
		FoldCase:  true,
		Tokenizer: NewWordTokenizer(),
		Language:  English,
	}
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in the (normalized) text
	End   int    // End position in the (normalized) text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// A Document represents a parsed body of text.
type Document struct {
	Text string

	sentences []Sentence
	words     []string
	lemmas    []string
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// Words returns `doc`'s words before lemmatization.
func (doc *Document) Words() []string {
	return doc.words
}

// Lemmas returns `doc`'s words after lemmatization, one per word.
func (doc *Document) Lemmas() []string {
	return doc.lemmas
}

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
)

// loadSegmenter builds the punkt English sentence tokenizer once. Its
// training data ships inside the sentences module.
func loadSegmenter() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

// NewDocument creates a Document according to the user-specified options.
//
// For example,
//
//	doc, err := affect.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	base := defaultDocOpts()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	return newDocument(text, base)
}

func newDocument(text string, base DocOpts) (*Document, error) {
	doc := Document{Text: text}

	if base.Normalize {
		text = norm.NFC.String(text)
	}

	if base.Segment {
		seg, err := loadSegmenter()
		if err != nil {
			return nil, err
		}
		for _, s := range seg.Tokenize(text) {
			if strings.TrimSpace(s.Text) == "" {
				continue
			}
			doc.sentences = append(doc.sentences, Sentence{Text: s.Text, Start: s.Start, End: s.End})
		}
	} else if strings.TrimSpace(text) != "" {
		doc.sentences = []Sentence{{Text: text, Start: 0, End: len(text)}}
	}

	tokenizer := base.Tokenizer
	if tokenizer == nil {
		tokenizer = WhitespaceTokenizer{}
	}
	var caser cases.Caser
	if base.FoldCase {
		caser = cases.Fold()
	}
	var stops *StopWordFilter
	if base.StopWords {
		var err error
		if stops, err = NewStopWordFilter(base.Language); err != nil {
			return nil, err
		}
	}

	for _, sent := range doc.sentences {
		for _, tok := range tokenizer.Tokenize(sent.Text) {
			if !base.Punctuation {
				if tok = stripPunctuation(tok); tok == "" {
					continue
				}
			}
			if base.FoldCase {
				tok = caser.String(tok)
			}
			if stops != nil && stops.IsStopWord(tok) {
				continue
			}
			doc.words = append(doc.words, tok)
		}
	}

	doc.lemmas = make([]string, len(doc.words))
	for i, w := range doc.words {
		if base.Lemmatizer != nil {
			doc.lemmas[i] = base.Lemmatizer.Lemma(w)
		} else {
			doc.lemmas[i] = w
		}
	}

	return &doc, nil
}

// stripPunctuation trims punctuation around a word. Clitics such as "'s"
// and "'ll" are kept verbatim.
func stripPunctuation(tok string) string {
	if strings.HasPrefix(tok, "'") && len(tok) > 1 {
		return tok
	}
	return strings.TrimFunc(tok, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// TextTokenizer is the default Tokenizer: it builds a Document and returns
// its lemmas.
type TextTokenizer struct {
	opts DocOpts
}

// NewTextTokenizer returns a TextTokenizer; opts are applied to every
// Document it builds. It fails when the sentence segmenter cannot load.
//
// Words are case folded by default, so "Happy" matches a lexicon entry for
// "happy". Pass WithCaseFolding(false) to match words exactly as written,
// as a plain lemma lookup would.
func NewTextTokenizer(opts ...DocOpt) (*TextTokenizer, error) {
	base := defaultDocOpts()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Segment {
		if _, err := loadSegmenter(); err != nil {
			return nil, err
		}
	}
	if base.StopWords && !IsStopWordLanguage(base.Language) {
		return nil, FormatLanguageError(base.Language)
	}
	return &TextTokenizer{opts: base}, nil
}

// Tokenize returns the lemmas of text, or nil if the Document cannot be
// built. Use TokenizeErr to see why.
func (tt *TextTokenizer) Tokenize(text string) []string {
	lemmas, _ := tt.TokenizeErr(text)
	return lemmas
}

// TokenizeErr returns the lemmas of text and any error raised while
// building the Document.
func (tt *TextTokenizer) TokenizeErr(text string) ([]string, error) {
	doc, err := newDocument(text, tt.opts)
	if err != nil {
		return nil, err
	}
	return doc.Lemmas(), nil
}
