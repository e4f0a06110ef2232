package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const maskChar = '*'

// The dictionary uses distinctive words to avoid partial collisions
// (e.g. "he" inside "The").
func TestProfanityStage_Censor(t *testing.T) {
	req := require.New(t)
	stage, err := NewProfanityStage([]string{"badger", "snake", "mushroom"}, maskChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		hits     []string
	}{
		{
			name:     "simple word, spacing preserved around it",
			input:    "The badger is here",
			expected: "The ****** is here",
			hits:     []string{"badger"},
		},
		{
			name:     "multiple occurrences",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			hits:     []string{"badger", "badger", "badger"},
		},
		{
			name:     "leet speak with internal punctuation",
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			hits:     []string{"badger"},
		},
		{
			name:     "uppercase and heavy noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			hits:     []string{"snake", "badger"},
		},
		{
			name:     "utf-8 text around a hit",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			hits:     []string{"badger"},
		},
		{
			name:     "word against trailing punctuation",
			input:    "I love badger!",
			expected: "I love ******!",
			hits:     []string{"badger"},
		},
		{
			name:     "nothing to censor",
			input:    "patterns-lab is harmless",
			expected: "patterns-lab is harmless",
			hits:     nil,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
			hits:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			censored, hits := stage.Censor(tt.input)
			req.Equal(tt.expected, censored)
			req.ElementsMatch(tt.hits, hits)
		})
	}
}

func TestNewProfanityStage_EmptyDictionary(t *testing.T) {
	_, err := NewProfanityStage(nil, maskChar)
	require.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestProfanityStage_PassesRewrittenMessage(t *testing.T) {
	req := require.New(t)
	stage, err := NewProfanityStage([]string{"badger"}, maskChar)
	req.NoError(err)

	out, err := stage.Handle(NewMessage("alice", "badger alert"))
	req.NoError(err)
	req.Equal("****** alert", out.Content)
}
