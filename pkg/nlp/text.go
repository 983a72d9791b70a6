package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalize folds text to the form every comparison in the engine is made in.
func normalize(text string) string {
	result, _, err := transform.String(norm.NFC, text)
	if err != nil {
		result = text
	}
	return strings.ToLower(result)
}

// tokenize splits normalized text into words. Apostrophes inside a word are
// kept so contractions stay a single token.
func tokenize(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, "'’")
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '\'' || r == '’'
}

func Tokenize(text string) []string {
	return tokenize(normalize(text))
}
