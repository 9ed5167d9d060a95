package affect

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Analyzer measures the emotional affect of text against a lexicon.
//
// Each load replaces the analyzer's profile wholesale; nothing carries over
// between loads. An Analyzer is meant for a single goroutine, although the
// Profiles it hands out may be shared freely.
type Analyzer struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
	profile   *Profile
	logger    zerolog.Logger

	// set when the tokenizer was derived from the lexicon and must follow it
	defaultTokenizer bool
}

// AnalyzerOpt represents a setting that changes how an Analyzer is built.
type AnalyzerOpt func(a *Analyzer)

// UsingTokenizer specifies the Tokenizer used by LoadText.
func UsingTokenizer(t Tokenizer) AnalyzerOpt {
	return func(a *Analyzer) {
		a.tokenizer = t
	}
}

// WithLogger sets the logger for debug output. The default discards it.
func WithLogger(logger zerolog.Logger) AnalyzerOpt {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates an analyzer for lex.
//
// Unless UsingTokenizer is given, LoadText uses a TextTokenizer whose noun
// lemmatizer is validated against lex.
func NewAnalyzer(lex *Lexicon, opts ...AnalyzerOpt) (*Analyzer, error) {
	if lex == nil {
		return nil, ErrNilLexicon
	}

	a := &Analyzer{
		lexicon: lex,
		logger:  zerolog.Nop(),
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}

	if a.tokenizer == nil {
		tok, err := defaultTokenizerFor(lex)
		if err != nil {
			return nil, fmt.Errorf("failed to build tokenizer: %w", err)
		}
		a.tokenizer = tok
		a.defaultTokenizer = true
	}
	a.profile = Analyze(lex, nil)

	a.logger.Debug().
		Str("lexicon", lex.Name()).
		Int("words", lex.Len()).
		Msg("analyzer ready")

	return a, nil
}

// Open resolves source with OpenLexicon and creates an analyzer for it.
//
// For example,
//
//	a, err := affect.Open(affect.NRCLex)
//	profile := a.LoadText("What a wonderful, happy day.")
func Open(source string, opts ...AnalyzerOpt) (*Analyzer, error) {
	lex, err := OpenLexicon(source)
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(lex, opts...)
}

func defaultTokenizerFor(lex *Lexicon) (*TextTokenizer, error) {
	return NewTextTokenizer(UsingLemmatizer(NewMorphyLemmatizer(lex)))
}

// LoadLexicon swaps in the lexicon resolved from source and re-analyzes the
// current words against it. On failure the analyzer is left untouched.
func (a *Analyzer) LoadLexicon(source string) error {
	lex, err := OpenLexicon(source)
	if err != nil {
		return err
	}

	tokenizer := a.tokenizer
	if a.defaultTokenizer {
		if tokenizer, err = defaultTokenizerFor(lex); err != nil {
			return fmt.Errorf("failed to build tokenizer: %w", err)
		}
	}

	profile := Analyze(lex, a.profile.words)
	a.lexicon, a.tokenizer, a.profile = lex, tokenizer, profile

	a.logger.Debug().
		Str("lexicon", lex.Name()).
		Int("words", lex.Len()).
		Msg("lexicon replaced")

	return nil
}

// LoadTokens analyzes pre-tokenized text. Use it when you prefer to
// tokenize and lemmatize yourself; tokens are matched verbatim.
func (a *Analyzer) LoadTokens(tokens []string) *Profile {
	profile := Analyze(a.lexicon, tokens)
	a.profile = profile

	a.logger.Debug().
		Int("tokens", len(tokens)).
		Int("matched", len(profile.affectDict)).
		Int("emotions", profile.Total()).
		Msg("profile computed")

	return profile
}

// errTokenizer is a Tokenizer that can also report why it produced nothing.
type errTokenizer interface {
	TokenizeErr(text string) ([]string, error)
}

// LoadText tokenizes and lemmatizes text, then analyzes the lemmas. A
// tokenizer failure is logged and yields an empty profile.
func (a *Analyzer) LoadText(text string) *Profile {
	var tokens []string
	if et, ok := a.tokenizer.(errTokenizer); ok {
		var err error
		if tokens, err = et.TokenizeErr(text); err != nil {
			a.logger.Error().Err(err).Int("bytes", len(text)).Msg("tokenization failed")
		}
	} else {
		tokens = a.tokenizer.Tokenize(text)
	}
	return a.LoadTokens(tokens)
}

// Lexicon returns the active lexicon.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Profile returns the profile of the last load.
func (a *Analyzer) Profile() *Profile {
	return a.profile
}

// Words returns the tokens of the last load.
func (a *Analyzer) Words() []string {
	return a.profile.Words()
}

// AffectList returns the emotions of every matched token of the last load.
func (a *Analyzer) AffectList() []string {
	return a.profile.AffectList()
}

// AffectDict returns the lexicon filtered to the words of the last load.
func (a *Analyzer) AffectDict() map[string][]string {
	return a.profile.AffectDict()
}

// RawEmotionScores returns the emotion counts of the last load.
func (a *Analyzer) RawEmotionScores() map[string]int {
	return a.profile.RawEmotionScores()
}

// AffectFrequencies returns the emotion frequencies of the last load.
func (a *Analyzer) AffectFrequencies() map[string]float64 {
	return a.profile.AffectFrequencies()
}

// TopEmotions returns the most frequent emotions of the last load.
func (a *Analyzer) TopEmotions() []EmotionScore {
	return a.profile.TopEmotions()
}
