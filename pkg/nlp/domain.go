package nlp

import "strings"

// IsElectionRelated reports whether text is in the assistant's domain: some
// token and keyword contain one another, or the text names a party or symbol.
func (e *Engine) IsElectionRelated(text string) bool {
	lowered := normalize(text)
	return e.isElectionRelated(lowered, tokenize(lowered))
}

func (e *Engine) isElectionRelated(lowered string, tokens []string) bool {
	for _, token := range tokens {
		for _, keyword := range e.keywords {
			if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
				return true
			}
		}
	}

	for _, p := range e.parties {
		if strings.Contains(lowered, p.name) ||
			strings.Contains(lowered, p.shortName) ||
			strings.Contains(lowered, p.symbol) {
			return true
		}
	}

	return false
}
