package translation

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxChars keeps each request below the web endpoint's 5000 character cap.
const DefaultMaxChars = 4500

// ChunkText splits text into pieces of at most maxChars runes, cutting only
// after a sentence delimiter run and its trailing whitespace. A single
// sentence longer than maxChars becomes its own chunk.
func ChunkText(text string, maxChars int) []string {
	if text == "" {
		return nil
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return []string{text}
	}

	groups := ChunkSegments(text, maxChars)
	chunks := make([]string, len(groups))
	for i, group := range groups {
		chunks[i] = strings.Join(group, "")
	}
	return chunks
}

// ChunkSegments groups the sentence segments of text so that each group
// holds at most maxChars runes. Segments keep their trailing whitespace, so
// joining every group in order gives back text.
func ChunkSegments(text string, maxChars int) [][]string {
	if text == "" {
		return nil
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var chunks [][]string
	var current []string
	currentChars := 0

	for _, segment := range segments(text) {
		n := utf8.RuneCountInString(segment)

		if n > maxChars {
			if len(current) > 0 {
				chunks = append(chunks, current)
				current = nil
				currentChars = 0
			}
			chunks = append(chunks, []string{segment})
			continue
		}

		if currentChars+n > maxChars && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			currentChars = 0
		}

		current = append(current, segment)
		currentChars += n
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// segments cuts text after each delimiter run plus following whitespace.
// Concatenating the result gives back text.
func segments(text string) []string {
	var out []string
	start := 0
	i := 0
	for i < len(text) {
		if strings.IndexByte(sentenceDelimiters, text[i]) < 0 {
			i++
			continue
		}
		for i < len(text) && strings.IndexByte(sentenceDelimiters, text[i]) >= 0 {
			i++
		}
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		out = append(out, text[start:i])
		start = i
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

const sentenceDelimiters = ".!?"

// ChunkedTranslator sends long texts to the backend one chunk at a time and
// joins the pieces. Any failing chunk fails the whole text.
type ChunkedTranslator struct {
	next     Translator
	maxChars int
}

func NewChunkedTranslator(next Translator, maxChars int) *ChunkedTranslator {
	return &ChunkedTranslator{next: next, maxChars: maxChars}
}

func (c *ChunkedTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	chunks := ChunkText(text, c.maxChars)
	if len(chunks) <= 1 {
		return c.next.Translate(ctx, text, source, target)
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		translated, err := c.next.Translate(ctx, chunk, source, target)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, strings.TrimSpace(translated))
	}
	return strings.Join(parts, " "), nil
}
