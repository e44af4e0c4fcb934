package models

type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// AnalysisResult is produced once per analysis request and is not modified
// after it is returned.
type AnalysisResult struct {
	Polarity        float64            `json:"polarity"`
	Subjectivity    float64            `json:"subjectivity"`
	Label           SentimentLabel     `json:"label"`
	SentencePairs   []SentencePair     `json:"sentence_pairs"`
	WordFrequencies WordFrequencies    `json:"word_frequencies"`
	TokenCount      int                `json:"token_count"`
	OriginalText    string             `json:"original_text"`
	TranslatedText  string             `json:"translated_text"`
	Translation     TranslationOutcome `json:"translation"`
}

// SentencePair matches an original sentence to its translation by position.
// Score is nil when Unavailable is set.
type SentencePair struct {
	Original    string          `json:"original"`
	Translated  string          `json:"translated"`
	Score       *SentimentScore `json:"score,omitempty"`
	Label       SentimentLabel  `json:"label,omitempty"`
	Unavailable bool            `json:"unavailable,omitempty"`
	Reason      string          `json:"reason,omitempty"`
}

type TranslationOutcome struct {
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
	Source   string `json:"source"`
	Target   string `json:"target"`
}
