package sentiment

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/sentilens/internal/models"
)

// Scorer returns polarity in [-1,1] and subjectivity in [0,1] for a text.
type Scorer interface {
	Score(ctx context.Context, text string) (models.SentimentScore, error)
}

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")
	return input
}

// VaderScorer scores English text with the VADER lexicon. Polarity is the
// compound score; subjectivity is the share of the text carrying positive or
// negative valence.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(ctx context.Context, text string) (models.SentimentScore, error) {
	if err := ctx.Err(); err != nil {
		return models.SentimentScore{}, err
	}

	plainText := strings.Join(strings.Fields(RemoveLinks(text)), " ")
	if plainText == "" {
		return models.SentimentScore{}, nil
	}

	scores := v.analyzer.PolarityScores(plainText)
	return models.SentimentScore{
		Polarity:     clamp(scores.Compound, -1, 1),
		Subjectivity: clamp(scores.Positive+scores.Negative, 0, 1),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
