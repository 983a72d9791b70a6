package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuzzyScore(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		want    float64
	}{
		{"lotus", "lotus", 0},
		{"lot", "lotus", 0},
		{"lotas", "lotus", 0.2},
		{"lotus", "which party has lotus symbol", 0.16},
		{"lotas", "which party has lotus symbol", 0.36},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+"/"+tc.text, func(t *testing.T) {
			got, ok := fuzzyScore([]rune(tc.pattern), []rune(tc.text), 100)
			require.True(t, ok)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}

	_, ok := fuzzyScore(nil, []rune("lotus"), 100)
	require.False(t, ok)
}
