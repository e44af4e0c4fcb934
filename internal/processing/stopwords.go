package processing

import (
	"bufio"
	"embed"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/unicode/norm"
)

//go:embed data/stopwords_*.txt
var stopWordFiles embed.FS

// StopWordFiles lists the embedded lists merged into the default set.
var StopWordFiles = []string{
	"data/stopwords_es.txt",
	"data/stopwords_en.txt",
}

// defaultStopWords is built once and never mutated afterwards.
var defaultStopWords = mustLoadStopWords()

// StopWordSet is a read-only set of lowercase, NFC normalized words.
type StopWordSet struct {
	words mapset.Set[string]
}

func NewStopWordSet(words ...string) StopWordSet {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		if w = normalizeWord(w); w != "" {
			set.Add(w)
		}
	}
	return StopWordSet{words: set}
}

// DefaultStopWords returns the combined Spanish and English list.
func DefaultStopWords() StopWordSet {
	return defaultStopWords
}

func (s StopWordSet) Contains(word string) bool {
	if s.words == nil {
		return false
	}
	return s.words.Contains(word)
}

func (s StopWordSet) Len() int {
	if s.words == nil {
		return 0
	}
	return s.words.Cardinality()
}

// ParseStopWords reads one word per line; blank lines and lines starting
// with '#' are skipped.
func ParseStopWords(data string) []string {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

func mustLoadStopWords() StopWordSet {
	var words []string
	for _, name := range StopWordFiles {
		data, err := stopWordFiles.ReadFile(name)
		if err != nil {
			panic(fmt.Errorf("[Processing] failed to read embedded stop words %s: %w", name, err))
		}
		words = append(words, ParseStopWords(string(data))...)
	}
	return NewStopWordSet(words...)
}

func normalizeWord(w string) string {
	return norm.NFC.String(lower(strings.TrimSpace(w)))
}
