package affect

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// A Tokenizer turns raw text into an ordered sequence of word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc adapts a plain function to the Tokenizer interface.
type TokenizerFunc func(text string) []string

// Tokenize calls f(text).
func (f TokenizerFunc) Tokenize(text string) []string {
	return f(text)
}

// WhitespaceTokenizer splits text on Unicode white space and nothing else.
type WhitespaceTokenizer struct{}

// Tokenize returns the white-space separated fields of text.
func (WhitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

type TokenTester func(string) bool

// WordTokenizer splits a sentence into words, peeling off leading symbols,
// trailing punctuation and English contractions.
type WordTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
}

type WordTokenizerOpt func(*WordTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) WordTokenizerOpt {
	return func(tokenizer *WordTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) WordTokenizerOpt {
	return func(tokenizer *WordTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) WordTokenizerOpt {
	return func(tokenizer *WordTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) WordTokenizerOpt {
	return func(tokenizer *WordTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided map of emoticons.
func UsingEmoticons(x map[string]int) WordTokenizerOpt {
	return func(tokenizer *WordTokenizer) {
		tokenizer.emoticons = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) WordTokenizerOpt {
	return func(tokenizer *WordTokenizer) {
		tokenizer.contractions = x
	}
}

// NewWordTokenizer returns a WordTokenizer with English defaults.
func NewWordTokenizer(opts ...WordTokenizerOpt) *WordTokenizer {
	tok := new(WordTokenizer)

	tok.contractions = contractions
	tok.emoticons = emoticons
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *WordTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *WordTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// Emoticons and abbreviations like "U.S." stay whole.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// $100 -> [$, 100].
			tokens = addToken(token[:1], tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Well) -> [Well, )].
			suffs = append([]string{token[len(token)-1:]}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
			break
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words and punctuation.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string

	cache := map[string][]string{}
	for _, span := range strings.Fields(t.sanitizer.Replace(text)) {
		toks, found := cache[span]
		if !found {
			toks = t.doSplit(span)
			cache[span] = toks
		}
		tokens = append(tokens, toks...)
	}

	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasAnyIndex returns the position of the first split case found inside a
// longer s, or -1.
func hasAnyIndex(s string, cases []string) int {
	n := len(s)
	for _, c := range cases {
		idx := strings.Index(s, c)
		if idx >= 0 && n > len(c) {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "'ve", "'d", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]int{
	"(-8":     1,
	"(-;":     1,
	"(-_-)":   1,
	"(:":      1,
	"(=":      1,
	"-__-":    1,
	"8-)":     1,
	"8-D":     1,
	":(":      1,
	":((":     1,
	":)":      1,
	":))":     1,
	":-(":     1,
	":-)":     1,
	":-/":     1,
	":-D":     1,
	":-P":     1,
	":-p":     1,
	":-|":     1,
	":D":      1,
	":P":      1,
	":o":      1,
	";)":      1,
	";-)":     1,
	"<3":      1,
	"=(":      1,
	"=)":      1,
	"=D":      1,
	"O_o":     1,
	"XD":      1,
	"^_^":     1,
	"o_O":     1,
	"xD":      1,
	"¯\\(ツ)/¯": 1,
}
