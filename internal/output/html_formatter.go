package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/alex-de-haas/haas.mortgage/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with the full amortization
// tables.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/schedule.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("schedule").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"month": FormatMonth,
	"add":   func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		GeneratedAt    string
	}{
		ScenarioComparison: results,
		Recommendation:     AnalyzeScenarios(results),
		GeneratedAt:        time.Now().Format("2006-01-02 15:04"),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
