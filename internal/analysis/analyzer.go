// Package analysis runs the translate, score, split and count pipeline for a
// single request.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/sentilens/internal/input"
	"github.com/spacesedan/sentilens/internal/models"
	"github.com/spacesedan/sentilens/internal/processing"
	"github.com/spacesedan/sentilens/internal/sentiment"
	"github.com/spacesedan/sentilens/internal/translation"
)

const sentenceUnavailable = "analysis unavailable"

type Analyzer struct {
	translator *translation.Service
	scorer     sentiment.Scorer
	classifier sentiment.Classifier
	tokenizer  *processing.Tokenizer
}

type Option func(*Analyzer)

func WithClassifier(c sentiment.Classifier) Option {
	return func(a *Analyzer) { a.classifier = c }
}

func WithTokenizer(t *processing.Tokenizer) Option {
	return func(a *Analyzer) { a.tokenizer = t }
}

func New(translator *translation.Service, scorer sentiment.Scorer, opts ...Option) *Analyzer {
	a := &Analyzer{
		translator: translator,
		scorer:     scorer,
		classifier: sentiment.DefaultClassifier(),
		tokenizer:  processing.NewTokenizer(processing.DefaultStopWords()),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs one synchronous pass over text. Translation failures fall back
// to the original text and single sentence scoring failures only mark that
// sentence; scoring the whole text must succeed.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, input.ErrEmptyInput
	}
	start := time.Now()

	tr := a.translator.Translate(ctx, text)
	outcome := models.TranslationOutcome{
		Fallback: tr.IsFallback(),
		Source:   a.translator.Source(),
		Target:   a.translator.Target(),
	}
	if tr.Err != nil {
		outcome.Reason = tr.Err.Error()
	}

	overall, err := a.scorer.Score(ctx, tr.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to score text: %w", err)
	}

	pairs := processing.PairSentences(text, tr.Text)
	unavailable := 0
	for i := range pairs {
		score, err := a.scorer.Score(ctx, pairs[i].Translated)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			slog.Warn("[Analyzer] Sentence scoring failed",
				slog.Int("sentence", i+1),
				slog.String("error", err.Error()))
			pairs[i].Unavailable = true
			pairs[i].Reason = sentenceUnavailable
			unavailable++
			continue
		}
		pairs[i].Score = &score
		pairs[i].Label = a.classifier.Classify(score.Polarity)
	}

	tokens := a.tokenizer.Tokenize(tr.Text)
	frequencies := processing.CountFrequencies(tokens)

	result := &models.AnalysisResult{
		Polarity:        overall.Polarity,
		Subjectivity:    overall.Subjectivity,
		Label:           a.classifier.Classify(overall.Polarity),
		SentencePairs:   pairs,
		WordFrequencies: frequencies,
		TokenCount:      len(tokens),
		OriginalText:    text,
		TranslatedText:  tr.Text,
		Translation:     outcome,
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.String("label", string(result.Label)),
		slog.Float64("polarity", result.Polarity),
		slog.Float64("subjectivity", result.Subjectivity),
		slog.Int("sentences", len(pairs)),
		slog.Int("unavailable_sentences", unavailable),
		slog.Int("tokens", result.TokenCount),
		slog.Bool("translation_fallback", outcome.Fallback),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}
