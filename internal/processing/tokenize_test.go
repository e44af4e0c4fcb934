package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
		{
			name:     "only stop words and short tokens",
			text:     "el la de y a",
			expected: []string{},
		},
		{
			name:     "spanish sentence keeps accented words",
			text:     "Me encanta este día. Odio la lluvia.",
			expected: []string{"encanta", "día", "odio", "lluvia"},
		},
		{
			name:     "english sentence lowercased",
			text:     "I LOVE this Day. I hate the RAIN!",
			expected: []string{"love", "day", "hate", "rain"},
		},
		{
			name:     "punctuation and digits",
			text:     "Version 2.0 shipped in 2024, finally!!",
			expected: []string{"version", "shipped", "2024", "finally"},
		},
		{
			name:     "contractions split on apostrophe",
			text:     "don't",
			expected: []string{"don"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.text))
		})
	}
}

func TestTokenizeNormalizesDecomposedAccents(t *testing.T) {
	decomposed := "cancio\u0301n"
	assert.Equal(t, []string{"canci\u00f3n"}, Tokenize(decomposed))
}

func TestFilterIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"El perro de mi vecino ladra mucho, pero es muy bueno.",
		"The quick brown fox jumps over the lazy dog because it can.",
		"a an the ya yo tú él ñu año",
	}

	for _, in := range inputs {
		once := Tokenize(in)
		assert.Equal(t, once, Filter(once), "input %q", in)
	}
}

func TestCustomStopWords(t *testing.T) {
	tok := NewTokenizer(NewStopWordSet("Lluvia"))
	assert.Equal(t, []string{"odio"}, tok.Tokenize("Odio la lluvia"))
}

func TestDefaultStopWords(t *testing.T) {
	set := DefaultStopWords()
	assert.Greater(t, set.Len(), 250)

	for _, w := range []string{"para", "también", "yourselves", "the", "qué"} {
		assert.True(t, set.Contains(w), w)
	}
	assert.False(t, set.Contains("lluvia"))
	assert.False(t, StopWordSet{}.Contains("the"))
}

func TestParseStopWords(t *testing.T) {
	words := ParseStopWords("# header\n\n uno \ndos\n#skip\n")
	assert.Equal(t, []string{"uno", "dos"}, words)
}
