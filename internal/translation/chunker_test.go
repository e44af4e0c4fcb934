package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		maxChars       int
		expectedChunks int
	}{
		{"empty input", "", 10, 0},
		{"fits in one chunk", "Hola. Adiós.", 100, 1},
		{"default limit", "Hola. Adiós.", 0, 1},
		{"split on sentences", "Uno dos. Tres cuatro. Cinco seis.", 12, 3},
		{"groups short sentences", "Uno. Dos. Tres. Cuatro.", 10, 3},
		{"oversized sentence gets own chunk", "Hi. " + strings.Repeat("x", 30) + ". Bye.", 10, 3},
		{"no delimiters", strings.Repeat("y", 25), 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkText(tt.text, tt.maxChars)
			assert.Len(t, chunks, tt.expectedChunks)
			assert.Equal(t, tt.text, strings.Join(chunks, ""), "chunks must reassemble the input")
		})
	}
}

func TestChunkTextRespectsLimit(t *testing.T) {
	text := strings.Repeat("El día está muy bonito hoy. ", 40)
	for _, chunk := range ChunkText(text, 100) {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 100)
	}
}

func TestChunkSegments(t *testing.T) {
	text := "Uno. Dos. Tres. Cuatro."
	groups := ChunkSegments(text, 10)
	assert.Equal(t, [][]string{{"Uno. ", "Dos. "}, {"Tres. "}, {"Cuatro."}}, groups)

	var joined strings.Builder
	for _, group := range groups {
		joined.WriteString(strings.Join(group, ""))
	}
	assert.Equal(t, text, joined.String())

	assert.Nil(t, ChunkSegments("", 10))
	assert.Equal(t, [][]string{{"Hola. ", "Adiós."}}, ChunkSegments("Hola. Adiós.", 0))
}

func TestChunkedTranslator(t *testing.T) {
	var calls []string
	upper := TranslatorFunc(func(_ context.Context, text, _, _ string) (string, error) {
		calls = append(calls, text)
		return strings.ToUpper(text), nil
	})

	out, err := NewChunkedTranslator(upper, 10).Translate(context.Background(), "Uno dos. Tres cuatro.", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "UNO DOS. TRES CUATRO.", out)
	assert.Equal(t, []string{"Uno dos. ", "Tres cuatro."}, calls)
}

func TestChunkedTranslatorSingleChunkPassesThrough(t *testing.T) {
	echo := TranslatorFunc(func(_ context.Context, text, _, _ string) (string, error) {
		return text + " ", nil
	})
	out, err := NewChunkedTranslator(echo, 100).Translate(context.Background(), "Hola.", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hola. ", out)
}

func TestChunkedTranslatorFailsWhole(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	flaky := TranslatorFunc(func(_ context.Context, text, _, _ string) (string, error) {
		n++
		if n == 2 {
			return "", boom
		}
		return text, nil
	})

	_, err := NewChunkedTranslator(flaky, 10).Translate(context.Background(), "Uno dos. Tres cuatro.", "es", "en")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chunk 2 of 2")
}
