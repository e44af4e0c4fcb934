package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/spacesedan/sentilens/internal/models"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{
			"score": func(f float64) string { return fmt.Sprintf("%.3f", f) },
			"pct":   func(f float64) string { return fmt.Sprintf("%.1f%%", f) },
		}).
		ParseFS(templateFS, "templates/report.html.tmpl"),
)

// HTMLRenderer writes a self-contained dashboard page.
type HTMLRenderer struct {
	Options Options
}

func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{Options: opts}
}

func (r *HTMLRenderer) Render(w io.Writer, res *models.AnalysisResult) error {
	if err := reportTemplate.Execute(w, buildView(res, r.Options)); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}
