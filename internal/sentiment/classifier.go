package sentiment

import "github.com/spacesedan/sentilens/internal/models"

// DefaultThreshold is the polarity magnitude a score must exceed to count as
// positive or negative. Some deployments used 0.05; it stays configurable.
const DefaultThreshold = 0.1

// HighSubjectivity is the subjectivity above which text reads as opinion.
const HighSubjectivity = 0.5

type Classifier struct {
	Threshold float64
}

func NewClassifier(threshold float64) Classifier {
	if threshold < 0 {
		threshold = -threshold
	}
	return Classifier{Threshold: threshold}
}

func DefaultClassifier() Classifier {
	return Classifier{Threshold: DefaultThreshold}
}

func (c Classifier) Classify(polarity float64) models.SentimentLabel {
	switch {
	case polarity > c.Threshold:
		return models.Positive
	case polarity < -c.Threshold:
		return models.Negative
	default:
		return models.Neutral
	}
}

type SubjectivityLevel string

const (
	SubjectivityHigh SubjectivityLevel = "high"
	SubjectivityLow  SubjectivityLevel = "low"
)

func ClassifySubjectivity(subjectivity float64) SubjectivityLevel {
	if subjectivity > HighSubjectivity {
		return SubjectivityHigh
	}
	return SubjectivityLow
}
