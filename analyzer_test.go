package affect

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioLexicon(t testing.TB) *Lexicon {
	lex, err := LexiconFromMap(map[string][]string{
		"happy": {"joy", "positive"},
		"sad":   {"sadness", "negative"},
	})
	require.NoError(t, err)
	return lex
}

func newTestAnalyzer(t testing.TB, lex *Lexicon) *Analyzer {
	a, err := NewAnalyzer(lex, UsingTokenizer(WhitespaceTokenizer{}))
	require.NoError(t, err)
	return a
}

func TestHappySadScenario(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))
	a.LoadTokens([]string{"happy", "happy", "sad"})

	assert.Equal(t,
		[]string{"joy", "positive", "joy", "positive", "sadness", "negative"},
		a.AffectList())
	assert.Equal(t,
		map[string][]string{"happy": {"joy", "positive"}, "sad": {"sadness", "negative"}},
		a.AffectDict())
	assert.Equal(t,
		map[string]int{"joy": 2, "positive": 2, "sadness": 1, "negative": 1},
		a.RawEmotionScores())

	freqs := a.AffectFrequencies()
	require.Len(t, freqs, 4)
	assert.InDelta(t, 1.0/3, freqs["joy"], 1e-12)
	assert.InDelta(t, 1.0/3, freqs["positive"], 1e-12)
	assert.InDelta(t, 1.0/6, freqs["sadness"], 1e-12)
	assert.InDelta(t, 1.0/6, freqs["negative"], 1e-12)

	top := a.TopEmotions()
	require.Len(t, top, 2)
	assert.Equal(t, "joy", top[0].Emotion)
	assert.Equal(t, "positive", top[1].Emotion)
	assert.InDelta(t, 1.0/3, top[0].Frequency, 1e-12)
	assert.InDelta(t, 1.0/3, top[1].Frequency, 1e-12)

	assert.Equal(t, 6, a.Profile().Total())
	assert.Equal(t, []string{"happy", "happy", "sad"}, a.Words())
}

func TestNoMatchingTokens(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))
	p := a.LoadTokens([]string{"table", "chair", "Happy"})

	assert.False(t, p.HasMatches())
	assert.Equal(t, 0, p.Total())
	assert.Empty(t, p.AffectList())
	assert.Empty(t, p.AffectDict())
	assert.Empty(t, p.RawEmotionScores())
	assert.Empty(t, p.AffectFrequencies())
	assert.NotNil(t, p.AffectFrequencies())
	assert.Empty(t, p.TopEmotions())
	assert.NotNil(t, p.TopEmotions())
	assert.Empty(t, p.Ranked())
}

func TestEmptyTokenSequence(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))

	for _, tokens := range [][]string{nil, {}} {
		p := a.LoadTokens(tokens)
		assert.Empty(t, p.AffectList())
		assert.Empty(t, p.AffectDict())
		assert.Empty(t, p.AffectFrequencies())
		assert.Empty(t, p.TopEmotions())
		assert.Empty(t, p.Words())
	}
}

func TestFreshAnalyzerHasEmptyProfile(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))

	assert.Empty(t, a.AffectList())
	assert.Empty(t, a.TopEmotions())
	assert.False(t, a.Profile().HasMatches())
}

func TestAffectListLength(t *testing.T) {
	lex, err := BuiltinLexicon(NRCLex)
	require.NoError(t, err)

	sequences := [][]string{
		{"happy"},
		{"war", "peace", "war", "table"},
		{"love", "hate", "fear", "trust", "hope", "the"},
		{"nothing", "here"},
		{"death", "death", "death"},
	}

	for _, tokens := range sequences {
		want := 0
		for _, tok := range tokens {
			if emotions, ok := lex.Emotions(tok); ok {
				want += len(emotions)
			}
		}
		p := Analyze(lex, tokens)
		assert.Len(t, p.AffectList(), want, "tokens %v", tokens)
		assert.Equal(t, want, p.Total())
	}
}

func TestFrequenciesSumToOne(t *testing.T) {
	lex, err := BuiltinLexicon(NRCLex)
	require.NoError(t, err)

	sequences := [][]string{
		{"happy", "sad"},
		{"war", "peace", "war", "table"},
		{"death"},
		{"love", "love", "love", "hate"},
	}

	for _, tokens := range sequences {
		p := Analyze(lex, tokens)
		require.True(t, p.HasMatches())

		sum := 0.0
		for _, f := range p.AffectFrequencies() {
			sum += f
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "tokens %v", tokens)
	}
}

func TestTopEmotionsAreMaximal(t *testing.T) {
	lex, err := BuiltinLexicon(NRCLex)
	require.NoError(t, err)

	sequences := [][]string{
		{"happy", "sad", "war"},
		{"love", "hate", "love"},
		{"horror", "murder", "gift"},
	}

	for _, tokens := range sequences {
		p := Analyze(lex, tokens)
		freqs := p.AffectFrequencies()

		maxFreq := math.Inf(-1)
		for _, f := range freqs {
			maxFreq = math.Max(maxFreq, f)
		}

		want := 0
		for _, f := range freqs {
			if f == maxFreq {
				want++
			}
		}

		top := p.TopEmotions()
		assert.Len(t, top, want, "tokens %v", tokens)
		for _, score := range top {
			assert.Equal(t, maxFreq, score.Frequency)
			assert.Equal(t, maxFreq, freqs[score.Emotion])
		}
	}
}

func TestReloadIsIdempotent(t *testing.T) {
	lex, err := BuiltinLexicon(NRCLex)
	require.NoError(t, err)
	a := newTestAnalyzer(t, lex)

	first := a.LoadTokens([]string{"happy", "war", "happy", "table"})
	a.LoadTokens([]string{"sad", "death", "gift"})
	again := a.LoadTokens([]string{"happy", "war", "happy", "table"})

	assert.Equal(t, first.Words(), again.Words())
	assert.Equal(t, first.AffectList(), again.AffectList())
	assert.Equal(t, first.AffectDict(), again.AffectDict())
	assert.Equal(t, first.RawEmotionScores(), again.RawEmotionScores())
	assert.Equal(t, first.AffectFrequencies(), again.AffectFrequencies())
	assert.Equal(t, first.TopEmotions(), again.TopEmotions())
}

func TestProfilesAreImmutable(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))
	tokens := []string{"happy", "sad"}
	p := a.LoadTokens(tokens)

	tokens[0] = "sad"
	p.AffectList()[0] = "changed"
	p.AffectDict()["happy"][0] = "changed"
	p.RawEmotionScores()["joy"] = 100

	a.LoadTokens([]string{"sad"})

	assert.Equal(t, []string{"happy", "sad"}, p.Words())
	assert.Equal(t, []string{"joy", "positive", "sadness", "negative"}, p.AffectList())
	assert.Equal(t, 1, p.Score("joy"))

	emotions, _ := a.Lexicon().Emotions("happy")
	assert.Equal(t, []string{"joy", "positive"}, emotions)
}

func TestRepeatedLabelsCount(t *testing.T) {
	lex, err := LexiconFromMap(map[string][]string{"furious": {"anger", "anger", "negative"}})
	require.NoError(t, err)

	p := Analyze(lex, []string{"furious"})
	assert.Equal(t, map[string]int{"anger": 2, "negative": 1}, p.RawEmotionScores())
	assert.Equal(t, []EmotionScore{{Emotion: "anger", Frequency: 2.0 / 3}}, p.TopEmotions())
}

func TestRanked(t *testing.T) {
	p := Analyze(scenarioLexicon(t), []string{"sad", "happy", "happy"})

	ranked := p.Ranked()
	require.Len(t, ranked, 4)
	assert.Equal(t, "joy", ranked[0].Emotion)
	assert.Equal(t, "positive", ranked[1].Emotion)
	assert.Equal(t, "sadness", ranked[2].Emotion)
	assert.Equal(t, "negative", ranked[3].Emotion)
	assert.InDelta(t, 1.0/6, p.Frequency("negative"), 1e-12)
	assert.Zero(t, p.Frequency("anger"))
}

func TestNewAnalyzerNilLexicon(t *testing.T) {
	_, err := NewAnalyzer(nil)
	assert.ErrorIs(t, err, ErrNilLexicon)
}

func TestOpenAnalyzer(t *testing.T) {
	_, err := Open("no-such-lexicon")
	assert.ErrorIs(t, err, ErrUnknownLexicon)

	a, err := Open(NRCLex)
	require.NoError(t, err)
	assert.Equal(t, NRCLex, a.Lexicon().Name())
}

func TestLoadText(t *testing.T) {
	a, err := Open(NRCLex)
	require.NoError(t, err)

	p := a.LoadText("The Children cried at the funeral.")

	assert.Equal(t,
		map[string][]string{
			"child":   {"anticipation", "joy", "positive"},
			"funeral": {"sadness"},
		},
		p.AffectDict())
	assert.Equal(t, 4, p.Total())
	assert.Len(t, p.TopEmotions(), 4)
	assert.Contains(t, p.Words(), "child")
	assert.Contains(t, p.Words(), "the")
}

func TestLoadTextWithCustomTokenizer(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))
	p := a.LoadText("happy sad. happy")

	// "sad." is not stripped by a plain whitespace split.
	assert.Equal(t, []string{"joy", "positive", "joy", "positive"}, p.AffectList())
}

func TestLoadLexiconReplacesAtomically(t *testing.T) {
	a := newTestAnalyzer(t, scenarioLexicon(t))
	before := a.LoadTokens([]string{"happy", "sad"})

	err := a.LoadLexicon(writeLexicon(t, `{"happy": "joy"}`))
	require.ErrorIs(t, err, ErrLexiconFormat)
	assert.Same(t, before, a.Profile())
	assert.True(t, a.Lexicon().Has("sad"))

	err = a.LoadLexicon("unknown")
	require.ErrorIs(t, err, ErrUnknownLexicon)
	assert.Same(t, before, a.Profile())

	require.NoError(t, a.LoadLexicon(writeLexicon(t, `{"sad": ["grief"]}`)))
	assert.False(t, a.Lexicon().Has("happy"))
	assert.Equal(t, []string{"happy", "sad"}, a.Words())
	assert.Equal(t, []string{"grief"}, a.AffectList())
	assert.Equal(t, []string{"joy", "positive", "sadness", "negative"}, before.AffectList())
}

func TestAnalyzerLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	a, err := NewAnalyzer(scenarioLexicon(t), WithLogger(logger), UsingTokenizer(WhitespaceTokenizer{}))
	require.NoError(t, err)
	a.LoadTokens([]string{"happy"})

	assert.Contains(t, buf.String(), `"message":"analyzer ready"`)
	assert.Contains(t, buf.String(), `"message":"profile computed"`)
	assert.Contains(t, buf.String(), `"matched":1`)
}

func TestAnalyzerLogsTokenizerFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	broken := &TextTokenizer{opts: DocOpts{StopWords: true, Language: Language("xx")}}

	a, err := NewAnalyzer(scenarioLexicon(t), WithLogger(logger), UsingTokenizer(broken))
	require.NoError(t, err)
	p := a.LoadText("happy")

	assert.False(t, p.HasMatches())
	assert.Contains(t, buf.String(), `"message":"tokenization failed"`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestLoadTextFoldsCase(t *testing.T) {
	a, err := NewAnalyzer(scenarioLexicon(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"joy", "positive"}, a.LoadText("Happy").AffectList())

	exact, err := NewTextTokenizer(WithCaseFolding(false))
	require.NoError(t, err)
	a, err = NewAnalyzer(scenarioLexicon(t), UsingTokenizer(exact))
	require.NoError(t, err)
	assert.Empty(t, a.LoadText("Happy").AffectList())
}

func BenchmarkLoadTokens(b *testing.B) {
	lex, err := BuiltinLexicon(NRCLex)
	if err != nil {
		b.Fatal(err)
	}
	a := newTestAnalyzer(b, lex)
	tokens := []string{"the", "happy", "child", "cried", "at", "the", "funeral", "of", "a", "hero"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.LoadTokens(tokens)
	}
}

func BenchmarkLoadText(b *testing.B) {
	a, err := Open(NRCLex)
	if err != nil {
		b.Fatal(err)
	}
	texts := []string{
		"The wedding was a wonderful celebration of love and hope.",
		"Fear and panic spread after the storm destroyed the town.",
		"It's an ordinary table with four legs.",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.LoadText(texts[i%len(texts)])
	}
}
