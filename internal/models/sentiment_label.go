package models

type SentimentLabel string

const (
	Positive SentimentLabel = "POSITIVE"
	Negative SentimentLabel = "NEGATIVE"
	Neutral  SentimentLabel = "NEUTRAL"
)

func (l SentimentLabel) Emoji() string {
	switch l {
	case Positive:
		return "😊"
	case Negative:
		return "😔"
	default:
		return "😐"
	}
}

// Color is the dashboard accent used for the label.
func (l SentimentLabel) Color() string {
	switch l {
	case Positive:
		return "#4ecdc4"
	case Negative:
		return "#ff6b6b"
	default:
		return "#45b7d1"
	}
}

// CSSClass maps the label to the report stylesheet.
func (l SentimentLabel) CSSClass() string {
	switch l {
	case Positive:
		return "sentiment-positive"
	case Negative:
		return "sentiment-negative"
	default:
		return "sentiment-neutral"
	}
}
