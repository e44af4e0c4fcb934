// Package report renders an analysis as a terminal dashboard or HTML page.
package report

import (
	"fmt"
	"strings"

	"github.com/spacesedan/sentilens/internal/input"
	"github.com/spacesedan/sentilens/internal/models"
	"github.com/spacesedan/sentilens/internal/sentiment"
)

const (
	TextModeTopWords = 8
	FileModeTopWords = 5
	MaxSentenceCards = 6
	SentenceChars    = 100
)

type Options struct {
	Mode         input.Mode
	TopWords     int
	MaxSentences int
	// Preview is the truncated input shown above file reports.
	Preview   string
	Source    string
	Threshold float64
}

// DefaultOptions mirrors the two page modes: the direct text view shows more
// keywords than the file view.
func DefaultOptions(mode input.Mode) Options {
	opts := Options{
		Mode:         mode,
		TopWords:     TextModeTopWords,
		MaxSentences: MaxSentenceCards,
		Threshold:    sentiment.DefaultThreshold,
	}
	if mode == input.ModeFile {
		opts.TopWords = FileModeTopWords
	}
	return opts
}

type sentenceCard struct {
	Index       int
	Original    string
	Label       models.SentimentLabel
	Polarity    float64
	Unavailable bool
}

type wordBar struct {
	Word    string
	Count   int
	Percent float64
}

// view is the presentation model shared by both renderers.
type view struct {
	Label              models.SentimentLabel
	Polarity           float64
	Subjectivity       float64
	SubjectivityLevel  sentiment.SubjectivityLevel
	PolarityPercent    float64
	SubjectivityPct    float64
	TokenCount         int
	Words              []wordBar
	Sentences          []sentenceCard
	MoreSentences      int
	TranslationWarning string
	Mode               input.Mode
	Source             string
	Preview            string
	Threshold          float64
	About              []string
}

func buildView(res *models.AnalysisResult, opts Options) view {
	v := view{
		Label:             res.Label,
		Polarity:          res.Polarity,
		Subjectivity:      res.Subjectivity,
		SubjectivityLevel: sentiment.ClassifySubjectivity(res.Subjectivity),
		PolarityPercent:   NormalizePolarity(res.Polarity) * 100,
		SubjectivityPct:   clamp01(res.Subjectivity) * 100,
		TokenCount:        res.TokenCount,
		Mode:              opts.Mode,
		Source:            opts.Source,
		Preview:           opts.Preview,
		Threshold:         opts.Threshold,
	}
	v.About = aboutLines(opts.Threshold)

	if res.Translation.Fallback {
		v.TranslationWarning = fmt.Sprintf("Translation %s→%s unavailable, the original text was analyzed as is.",
			res.Translation.Source, res.Translation.Target)
	}

	top := res.WordFrequencies.Top(opts.TopWords)
	if len(top) > 0 {
		highest := top[0].Count
		for _, wc := range top {
			v.Words = append(v.Words, wordBar{
				Word:    wc.Word,
				Count:   wc.Count,
				Percent: float64(wc.Count) / float64(highest) * 100,
			})
		}
	}

	if opts.Mode != input.ModeFile {
		for i, pair := range res.SentencePairs {
			if opts.MaxSentences > 0 && i >= opts.MaxSentences {
				v.MoreSentences = len(res.SentencePairs) - i
				break
			}
			card := sentenceCard{
				Index:       i + 1,
				Original:    input.Truncate(pair.Original, SentenceChars),
				Label:       pair.Label,
				Unavailable: pair.Unavailable || pair.Score == nil,
			}
			if pair.Score != nil {
				card.Polarity = pair.Score.Polarity
			}
			v.Sentences = append(v.Sentences, card)
		}
	}
	return v
}

// NormalizePolarity maps [-1,1] onto [0,1] for progress bars.
func NormalizePolarity(p float64) float64 {
	return clamp01((p + 1) / 2)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func bar(fraction float64, width int) string {
	filled := int(clamp01(fraction)*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
