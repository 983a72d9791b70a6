package main

import (
	"ElectionAssistant/pkg/nlp"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *nlp.Engine {
	t.Helper()
	ds, err := nlp.DefaultDataset()
	require.NoError(t, err)
	return nlp.NewEngine(ds)
}

func TestReplAnswersEachLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("what's the weather\n\nwho is the cm candidate of dmk\nexit\nvote\n")

	err := repl(newEngine(t), in, &out, false)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, nlp.RejectionMessage)
	assert.Contains(t, text, "The CM candidate for DMK is M. K. Stalin.")
	assert.NotContains(t, text, nlp.ClarificationMessage, "input after exit is not read")
}

func TestReplPrintsAnalysis(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("what is the symbol of bjp\n")

	err := repl(newEngine(t), in, &out, true)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "related: true")
	assert.Contains(t, text, "entity:  BJP (PARTY)")
}
