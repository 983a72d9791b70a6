package nlp

import (
	"sort"
	"strings"
)

const (
	SuggestionThreshold = 0.3
	MaxSuggestions      = 5

	// suggestionDistance is how far into a candidate a match may start
	// before the offset alone costs a full point of score.
	suggestionDistance = 100
)

// StaticSuggestions are offered alongside the party names, short names and symbols.
var StaticSuggestions = []string{
	"Which party has lotus symbol",
	"two leaves belongs to which party",
	"Who is CM candidate of BJP",
	"Tell me about TVK",
}

type suggestionCandidate struct {
	text  string
	runes []rune
}

// Suggester completes partially typed queries against a fixed candidate list.
// It is safe for concurrent use.
type Suggester struct {
	candidates []suggestionCandidate
}

func NewSuggester(parties []PartyRecord) *Suggester {
	texts := make([]string, 0, len(parties)*3+len(StaticSuggestions))
	for _, p := range parties {
		texts = append(texts, p.Name)
	}
	for _, p := range parties {
		texts = append(texts, p.ShortName)
	}
	for _, p := range parties {
		texts = append(texts, p.Symbol)
	}
	texts = append(texts, StaticSuggestions...)

	s := &Suggester{candidates: make([]suggestionCandidate, 0, len(texts))}
	seen := make(map[string]struct{}, len(texts))
	for _, text := range texts {
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		s.candidates = append(s.candidates, suggestionCandidate{
			text:  text,
			runes: []rune(normalize(text)),
		})
	}

	return s
}

func (s *Suggester) Candidates() []string {
	out := make([]string, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c.text)
	}
	return out
}

// Suggest returns up to limit candidates scoring within SuggestionThreshold,
// best first. A score is the error ratio plus the match offset over
// suggestionDistance; ties keep candidate order.
func (s *Suggester) Suggest(query string, limit int) []string {
	pattern := []rune(normalize(strings.TrimSpace(query)))
	if len(pattern) == 0 || limit <= 0 {
		return []string{}
	}

	type scored struct {
		text  string
		score float64
	}

	matches := make([]scored, 0, len(s.candidates))
	for _, c := range s.candidates {
		score, ok := fuzzyScore(pattern, c.runes, suggestionDistance)
		if ok && score <= SuggestionThreshold {
			matches = append(matches, scored{text: c.text, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.text)
	}
	return out
}
