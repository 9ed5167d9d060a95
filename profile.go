package affect

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Profile is the affect profile of one token sequence: the emotions its
// lexicon words carry, how often each occurs and which dominate.
//
// A Profile is immutable. Every accessor returns a fresh copy, so callers
// can't disturb the profile or the lexicon it was built from.
type Profile struct {
	words       []string
	affectList  []string
	affectDict  map[string][]string
	rawScores   map[string]int
	frequencies map[string]float64
	top         []EmotionScore

	// emotion labels in order of first appearance in affectList
	order []string
}

// Analyze matches tokens against lex and aggregates the result.
//
// When no token matches, the profile has no frequencies and no top
// emotions; HasMatches reports false.
func Analyze(lex *Lexicon, tokens []string) *Profile {
	p := &Profile{
		words:       append([]string{}, tokens...),
		affectList:  []string{},
		affectDict:  make(map[string][]string),
		rawScores:   make(map[string]int),
		frequencies: make(map[string]float64),
		top:         []EmotionScore{},
	}

	for _, tok := range tokens {
		emotions, ok := lex.emotions(tok)
		if !ok {
			continue
		}
		p.affectList = append(p.affectList, emotions...)
		p.affectDict[tok] = emotions
	}

	for _, e := range p.affectList {
		if _, seen := p.rawScores[e]; !seen {
			p.order = append(p.order, e)
		}
		p.rawScores[e]++
	}

	counts := make([]float64, len(p.order))
	for i, e := range p.order {
		counts[i] = float64(p.rawScores[e])
	}
	total := floats.Sum(counts)
	if total == 0 {
		return p
	}

	freqs := make([]float64, len(p.order))
	for i, e := range p.order {
		freqs[i] = counts[i] / total
		p.frequencies[e] = freqs[i]
	}

	maxFreq := floats.Max(freqs)
	for i, e := range p.order {
		if freqs[i] == maxFreq {
			p.top = append(p.top, EmotionScore{Emotion: e, Frequency: maxFreq})
		}
	}

	return p
}

// Words returns the analyzed token sequence.
func (p *Profile) Words() []string {
	return append([]string{}, p.words...)
}

// AffectList returns the emotions of every matched token, in token order.
func (p *Profile) AffectList() []string {
	return append([]string{}, p.affectList...)
}

// AffectDict returns the lexicon restricted to the matched words.
func (p *Profile) AffectDict() map[string][]string {
	out := make(map[string][]string, len(p.affectDict))
	for w, emotions := range p.affectDict {
		out[w] = append([]string{}, emotions...)
	}
	return out
}

// RawEmotionScores returns how often each emotion occurs in AffectList.
func (p *Profile) RawEmotionScores() map[string]int {
	out := make(map[string]int, len(p.rawScores))
	for e, n := range p.rawScores {
		out[e] = n
	}
	return out
}

// AffectFrequencies returns each emotion's share of Total.
func (p *Profile) AffectFrequencies() map[string]float64 {
	out := make(map[string]float64, len(p.frequencies))
	for e, f := range p.frequencies {
		out[e] = f
	}
	return out
}

// TopEmotions returns every emotion at the maximum frequency, ties
// included, in order of first appearance.
func (p *Profile) TopEmotions() []EmotionScore {
	return append([]EmotionScore{}, p.top...)
}

// Total returns the number of matched emotion occurrences.
func (p *Profile) Total() int {
	return len(p.affectList)
}

// HasMatches reports whether any token was found in the lexicon.
func (p *Profile) HasMatches() bool {
	return len(p.affectList) > 0
}

// Score returns the raw count of emotion.
func (p *Profile) Score(emotion string) int {
	return p.rawScores[emotion]
}

// Frequency returns the frequency of emotion, 0 if it never occurred.
func (p *Profile) Frequency(emotion string) float64 {
	return p.frequencies[emotion]
}

// Ranked returns all emotions by descending frequency. Ties keep their
// order of first appearance.
func (p *Profile) Ranked() []EmotionScore {
	ranked := make([]EmotionScore, len(p.order))
	for i, e := range p.order {
		ranked[i] = EmotionScore{Emotion: e, Frequency: p.frequencies[e]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	return ranked
}
