package processing

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MinTokenRunes is the shortest token kept by the filter; anything at or
// below two characters is dropped.
const MinTokenRunes = 3

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}\p{M}_]+`)

type Tokenizer struct {
	stopWords StopWordSet
}

func NewTokenizer(stopWords StopWordSet) *Tokenizer {
	return &Tokenizer{stopWords: stopWords}
}

var defaultTokenizer = NewTokenizer(DefaultStopWords())

// Tokenize lowercases text and returns its word tokens with stop words and
// short tokens removed, in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	words := wordPattern.FindAllString(norm.NFC.String(lower(text)), -1)
	return t.Filter(words)
}

// Filter keeps tokens longer than two runes that are not stop words.
// Filtering an already filtered sequence returns it unchanged.
func (t *Tokenizer) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < MinTokenRunes {
			continue
		}
		if t.stopWords.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

func Filter(tokens []string) []string {
	return defaultTokenizer.Filter(tokens)
}

// cases.Caser is stateful, so a fresh one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
