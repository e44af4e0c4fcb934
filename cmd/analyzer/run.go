package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/sentilens/config"
	"github.com/spacesedan/sentilens/internal/analysis"
	"github.com/spacesedan/sentilens/internal/input"
	"github.com/spacesedan/sentilens/internal/models"
	"github.com/spacesedan/sentilens/internal/report"
	"github.com/spacesedan/sentilens/internal/sentiment"
	"github.com/spacesedan/sentilens/internal/translation"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func run(ctx context.Context, cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", string(input.ModeText), `input mode: "text" (direct text) or "file" (text file)`)
	text := fs.String("text", "", "text to analyze; taken from arguments or stdin when empty")
	file := fs.String("file", "", "path of a .txt, .csv or .md file, used in file mode")
	htmlOut := fs.String("html", "", "also write the dashboard as an HTML page to this path")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	doc, err := acquire(input.Mode(*mode), *text, *file, fs.Args(), stdin)
	if err != nil {
		return reportInputError(stderr, err)
	}

	translator, cleanup := buildTranslator(ctx, cfg)
	defer cleanup()

	analyzer := analysis.New(
		translation.NewService(translator, cfg.Translation.SourceLang, cfg.Translation.TargetLang),
		sentiment.NewVaderScorer(),
		analysis.WithClassifier(sentiment.NewClassifier(cfg.SentimentThreshold)),
	)

	res, err := analyzer.Analyze(ctx, doc.Text)
	if err != nil {
		slog.Error("[Main] Analysis failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "error: analysis failed: %v\n", err)
		return exitError
	}

	opts := report.DefaultOptions(doc.Mode)
	opts.Threshold = cfg.SentimentThreshold
	if doc.Mode == input.ModeFile {
		opts.Source = doc.Name
		opts.Preview = doc.Preview(cfg.PreviewChars)
	}

	if err := report.NewTerminalRenderer(opts).Render(stdout, res); err != nil {
		slog.Error("[Main] Failed to render report", slog.String("error", err.Error()))
		return exitError
	}

	if *htmlOut != "" {
		if err := writeHTML(*htmlOut, opts, res); err != nil {
			slog.Error("[Main] Failed to write HTML report", slog.String("error", err.Error()))
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		slog.Info("[Main] HTML report written", slog.String("path", *htmlOut))
	}
	return exitOK
}

func acquire(mode input.Mode, text, file string, args []string, stdin io.Reader) (input.Document, error) {
	switch mode {
	case input.ModeText:
		if text == "" && len(args) > 0 {
			text = strings.Join(args, " ")
		}
		if text == "" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return input.Document{}, fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}
		return input.FromText(text)
	case input.ModeFile:
		if file == "" {
			return input.Document{}, fmt.Errorf("%w: -file is required in file mode", errUsage)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return input.Document{}, fmt.Errorf("failed to read file: %w", err)
		}
		return input.FromFile(file, data)
	default:
		return input.Document{}, fmt.Errorf("%w: unknown mode %q", errUsage, mode)
	}
}

func reportInputError(w io.Writer, err error) int {
	switch {
	case errors.Is(err, input.ErrEmptyInput):
		slog.Warn("[Main] Empty input, nothing to analyze")
		fmt.Fprintln(w, "warning: please enter some text to analyze")
		return exitUsage
	case errors.Is(err, errUsage):
		fmt.Fprintf(w, "error: %v\n", err)
		return exitUsage
	default:
		slog.Error("[Main] Failed to process input", slog.String("error", err.Error()))
		fmt.Fprintf(w, "error: failed to process the input: %v\n", err)
		return exitError
	}
}

func writeHTML(path string, opts report.Options, res *models.AnalysisResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create html report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close html report: %w", cerr)
		}
	}()
	return report.NewHTMLRenderer(opts).Render(f, res)
}
