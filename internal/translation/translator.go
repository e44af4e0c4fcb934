// Package translation wraps translation backends behind a fallback-aware service.
package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

var (
	// ErrUnavailable is returned by backends that cannot translate at all.
	ErrUnavailable = errors.New("translation unavailable")
	// ErrEmptyTranslation marks a backend response with no text in it.
	ErrEmptyTranslation = errors.New("empty translation")
)

// Translator is a translation backend.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(ctx context.Context, text, source, target string) (string, error)

func (f TranslatorFunc) Translate(ctx context.Context, text, source, target string) (string, error) {
	return f(ctx, text, source, target)
}

// Unavailable always fails, so every request falls back to the input text.
type Unavailable struct{}

func (Unavailable) Translate(context.Context, string, string, string) (string, error) {
	return "", ErrUnavailable
}

type Outcome int

const (
	Translated Outcome = iota
	Fallback
)

func (o Outcome) String() string {
	switch o {
	case Translated:
		return "translated"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is either a translation or a fallback to the untouched input. Err
// holds the backend failure when Outcome is Fallback.
type Result struct {
	Text    string
	Outcome Outcome
	Err     error
}

func (r Result) IsFallback() bool {
	return r.Outcome == Fallback
}

type Service struct {
	translator Translator
	source     string
	target     string
}

func NewService(translator Translator, source, target string) *Service {
	if translator == nil {
		translator = Unavailable{}
	}
	return &Service{translator: translator, source: source, target: target}
}

func (s *Service) Source() string { return s.source }
func (s *Service) Target() string { return s.target }

// Translate never fails: any backend error yields a Fallback result whose
// Text is exactly the input.
func (s *Service) Translate(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" || strings.EqualFold(s.source, s.target) {
		return Result{Text: text, Outcome: Translated}
	}

	start := time.Now()
	translated, err := s.translator.Translate(ctx, text, s.source, s.target)
	if err == nil && strings.TrimSpace(translated) == "" {
		err = ErrEmptyTranslation
	}
	if err != nil {
		slog.Warn("[Translation] Falling back to original text",
			slog.String("source", s.source),
			slog.String("target", s.target),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return Result{Text: text, Outcome: Fallback, Err: err}
	}

	slog.Debug("[Translation] Text translated",
		slog.String("source", s.source),
		slog.String("target", s.target),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)))
	return Result{Text: translated, Outcome: Translated}
}
