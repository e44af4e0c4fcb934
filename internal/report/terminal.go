package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/sentilens/internal/input"
	"github.com/spacesedan/sentilens/internal/models"
)

const barWidth = 30

type TerminalRenderer struct {
	Options Options
}

func NewTerminalRenderer(opts Options) *TerminalRenderer {
	return &TerminalRenderer{Options: opts}
}

func (r *TerminalRenderer) Render(w io.Writer, res *models.AnalysisResult) error {
	v := buildView(res, r.Options)
	p := &printer{w: w}

	p.line("🧠 Sentiment Analyzer")
	if v.Source != "" {
		p.line("   source: %s", v.Source)
	}
	if v.Preview != "" {
		p.line("")
		p.line("── Preview ──")
		p.line("%s", v.Preview)
	}
	if v.TranslationWarning != "" {
		p.line("")
		p.line("⚠️  %s", v.TranslationWarning)
	}

	p.line("")
	p.line("        %s %s", v.Label.Emoji(), v.Label)
	p.line("        %.3f", v.Polarity)
	p.line("")

	p.line("Sentiment      %.3f", v.Polarity)
	p.line("Subjectivity   %.3f", v.Subjectivity)
	if v.Mode != input.ModeFile {
		p.line("Keywords       %d", v.TokenCount)
	}

	p.line("")
	p.line("📊 Detailed analysis")
	p.line("Sentiment intensity  %s %.3f", bar(v.PolarityPercent/100, barWidth), v.Polarity)
	p.line("Subjectivity level   %s %.3f", bar(v.SubjectivityPct/100, barWidth), v.Subjectivity)

	if len(v.Words) > 0 {
		p.line("")
		p.line("🔤 Most frequent words")
		width := 0
		for _, wb := range v.Words {
			width = max(width, len([]rune(wb.Word)))
		}
		for _, wb := range v.Words {
			pad := strings.Repeat(" ", width-len([]rune(wb.Word)))
			p.line("  %s%s %s %d", wb.Word, pad, bar(wb.Percent/100, barWidth), wb.Count)
		}
	}

	if len(v.Sentences) > 0 {
		p.line("")
		p.line("💬 Sentence analysis")
		for _, card := range v.Sentences {
			if card.Unavailable {
				p.line("  ⚠️  Sentence %d • analysis unavailable", card.Index)
			} else {
				p.line("  %s Sentence %d • Sentiment: %.3f", card.Label.Emoji(), card.Index, card.Polarity)
			}
			p.line("     %q", card.Original)
		}
		if v.MoreSentences > 0 {
			p.line("  … %d more sentences not shown", v.MoreSentences)
		}
	}

	p.line("")
	p.line("ℹ️  About the analysis")
	for _, l := range aboutLines(v.Threshold) {
		p.line("  %s", l)
	}

	return p.err
}

func aboutLines(threshold float64) []string {
	return []string{
		"Sentiment: emotional charge of the text, -1 (negative) to 1 (positive)",
		fmt.Sprintf("  - Positive (> %g): optimistic, favourable content", threshold),
		fmt.Sprintf("  - Negative (< -%g): pessimistic, unfavourable content", threshold),
		fmt.Sprintf("  - Neutral (-%g to %g): balanced content", threshold, threshold),
		"Subjectivity: amount of personal opinion, 0 (objective) to 1 (subjective)",
		"  - High (> 0.5): opinions and personal judgement",
		"  - Low (<= 0.5): facts and objective information",
	}
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
