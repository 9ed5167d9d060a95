package affect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSegmentation(t *testing.T) {
	doc, err := NewDocument("This is one. This is two.")
	require.NoError(t, err)

	sents := doc.Sentences()
	require.Len(t, sents, 2)
	assert.Equal(t, "This is one.", strings.TrimSpace(sents[0].Text))
	assert.Equal(t, "This is two.", strings.TrimSpace(sents[1].String()))
}

func TestDocumentWithoutSegmentation(t *testing.T) {
	doc, err := NewDocument("This is one. This is two.", WithSegmentation(false))
	require.NoError(t, err)

	require.Len(t, doc.Sentences(), 1)
	assert.Equal(t, []string{"this", "is", "one", "this", "is", "two"}, doc.Words())
}

func TestDocumentWords(t *testing.T) {
	tests := []struct {
		desc     string
		text     string
		opts     []DocOpt
		expected []string
	}{
		{
			"strips punctuation and folds case",
			"The children were crying. I love happy dogs!",
			nil,
			[]string{"the", "children", "were", "crying", "i", "love", "happy", "dogs"},
		},
		{
			"keeps clitics",
			"It's done, isn't it?",
			nil,
			[]string{"it", "'s", "done", "is", "n't", "it"},
		},
		{
			"keeps case",
			"Happy Days",
			[]DocOpt{WithCaseFolding(false)},
			[]string{"Happy", "Days"},
		},
		{
			"keeps punctuation",
			"Wow, joy!",
			[]DocOpt{WithPunctuation(true), WithSegmentation(false)},
			[]string{"wow", ",", "joy", "!"},
		},
		{
			"drops stop words",
			"The dog and the cat",
			[]DocOpt{WithStopWordRemoval(English)},
			[]string{"dog", "cat"},
		},
		{
			"whitespace word tokenizer",
			"happy, sad",
			[]DocOpt{UsingWordTokenizer(WhitespaceTokenizer{}), WithSegmentation(false)},
			[]string{"happy", "sad"},
		},
		{
			"empty text",
			"   ",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			doc, err := NewDocument(tt.text, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.Words())
		})
	}
}

func TestDocumentLemmas(t *testing.T) {
	lex, err := LexiconFromMap(map[string][]string{
		"child": {"joy"},
		"dog":   {"trust"},
		"love":  {"joy"},
	})
	require.NoError(t, err)

	doc, err := NewDocument("The children love dogs.", UsingLemmatizer(NewMorphyLemmatizer(lex)))
	require.NoError(t, err)

	assert.Equal(t, []string{"the", "children", "love", "dogs"}, doc.Words())
	assert.Equal(t, []string{"the", "child", "love", "dog"}, doc.Lemmas())
}

func TestDocumentNormalization(t *testing.T) {
	decomposed := "cafe\u0301"

	doc, err := NewDocument(decomposed, WithSegmentation(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9"}, doc.Words())

	doc, err = NewDocument(decomposed, WithSegmentation(false), WithNormalization(false), WithCaseFolding(false))
	require.NoError(t, err)
	assert.Equal(t, []string{decomposed}, doc.Words())
}

func TestDocumentUnsupportedStopWordLanguage(t *testing.T) {
	_, err := NewDocument("text", WithStopWordRemoval(Language("xx")))
	assert.Error(t, err)

	_, err = NewTextTokenizer(WithStopWordRemoval(Language("xx")))
	assert.Error(t, err)
}

func TestTextTokenizer(t *testing.T) {
	lex, err := BuiltinLexicon(NRCLex)
	require.NoError(t, err)

	tok, err := NewTextTokenizer(UsingLemmatizer(NewMorphyLemmatizer(lex)))
	require.NoError(t, err)

	got := tok.Tokenize("Tears and smiles at the Wedding.")
	assert.Equal(t, []string{"tear", "and", "smile", "at", "the", "wedding"}, got)
}

func TestTextTokenizerCaseFolding(t *testing.T) {
	folded, err := NewTextTokenizer()
	require.NoError(t, err)
	assert.Equal(t, []string{"happy"}, folded.Tokenize("Happy"))

	exact, err := NewTextTokenizer(WithCaseFolding(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"Happy"}, exact.Tokenize("Happy"))
}

func TestTextTokenizerReportsDocumentErrors(t *testing.T) {
	// Bypasses the constructor, which would reject the language up front.
	tok := &TextTokenizer{opts: DocOpts{
		Tokenizer: NewWordTokenizer(),
		StopWords: true,
		Language:  Language("xx"),
	}}

	lemmas, err := tok.TokenizeErr("happy days")
	assert.Error(t, err)
	assert.Nil(t, lemmas)
	assert.Nil(t, tok.Tokenize("happy days"))
}
