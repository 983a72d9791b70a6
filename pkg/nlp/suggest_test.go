package nlp_test

import (
	"testing"

	"ElectionAssistant/pkg/nlp"

	"github.com/stretchr/testify/require"
)

func defaultSuggester(t *testing.T) *nlp.Suggester {
	t.Helper()
	return nlp.NewSuggester(defaultEngine(t).Parties())
}

func TestSuggestToleratesTypos(t *testing.T) {
	s := defaultSuggester(t)

	cases := []struct {
		query string
		want  string
	}{
		{"lotas", "Lotus"},
		{"Whistel", "Whistle"},
		{"lot", "Lotus"},
		{"tel me abut tvk", "Tell me about TVK"},
		{"dravda munetra", "Dravida Munnetra Kazhagam"},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := s.Suggest(tc.query, nlp.MaxSuggestions)
			require.NotEmpty(t, got)
			require.Equal(t, tc.want, got[0])
		})
	}
}

func TestSuggestCapsResults(t *testing.T) {
	s := defaultSuggester(t)

	require.Greater(t, len(s.Suggest("a", 100)), nlp.MaxSuggestions)

	got := s.Suggest("a", nlp.MaxSuggestions)
	require.Len(t, got, nlp.MaxSuggestions)
	require.Equal(t, "All India Anna Dravida Munnetra Kazhagam", got[0])
}

func TestSuggestNoMatch(t *testing.T) {
	s := defaultSuggester(t)

	require.Empty(t, s.Suggest("", nlp.MaxSuggestions))
	require.Empty(t, s.Suggest("   ", nlp.MaxSuggestions))
	require.Empty(t, s.Suggest("zzzzqq", nlp.MaxSuggestions))
	require.Empty(t, s.Suggest("lotus", 0))
}

func TestSuggesterCandidates(t *testing.T) {
	parties := []nlp.PartyRecord{
		{Name: "Alpha Party", ShortName: "AP", Symbol: "Lotus", Slogans: []string{"a"}, CMCandidate: "A"},
		{Name: "Beta Party", ShortName: "BP", Symbol: "Lotus", Slogans: []string{"b"}, CMCandidate: "B"},
	}

	want := append([]string{"Alpha Party", "Beta Party", "AP", "BP", "Lotus"}, nlp.StaticSuggestions...)
	require.Equal(t, want, nlp.NewSuggester(parties).Candidates())
}
