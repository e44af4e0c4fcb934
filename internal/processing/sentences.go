package processing

import (
	"iter"
	"strings"

	"github.com/spacesedan/sentilens/internal/models"
)

const sentenceDelimiters = ".!?"

// Sentences yields the trimmed, non-empty pieces of text between runs of
// '.', '!' and '?'. The sequence can be ranged over any number of times.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for rest != "" {
			var part string
			i := strings.IndexAny(rest, sentenceDelimiters)
			if i < 0 {
				part, rest = rest, ""
			} else {
				part = rest[:i]
				j := i + 1
				for j < len(rest) && strings.IndexByte(sentenceDelimiters, rest[j]) >= 0 {
					j++
				}
				rest = rest[j:]
			}

			if s := strings.TrimSpace(part); s != "" {
				if !yield(s) {
					return
				}
			}
		}
	}
}

func SplitSentences(text string) []string {
	out := []string{}
	for s := range Sentences(text) {
		out = append(out, s)
	}
	return out
}

// PairSentences matches sentences by index. Sentences beyond the shorter
// of the two texts are dropped.
func PairSentences(original, translated string) []models.SentencePair {
	next, stop := iter.Pull(Sentences(translated))
	defer stop()

	pairs := []models.SentencePair{}
	for orig := range Sentences(original) {
		tr, ok := next()
		if !ok {
			break
		}
		pairs = append(pairs, models.SentencePair{Original: orig, Translated: tr})
	}
	return pairs
}
