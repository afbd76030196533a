package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	"github.com/alex-de-haas/haas.mortgage/pkg/dateutil"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Months", "PayoffDate", "TotalPaid", "TotalInterest", "TotalExtra", "InterestSaved", "MonthsSaved"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	base := []string{
		"(base plan)",
		intToString(results.Base.Months),
		dateutil.FormatMonth(results.Base.PayoffDate),
		results.Base.TotalPaid.String(),
		results.Base.TotalInterest.String(),
		results.Base.TotalExtra.String(),
		"0.00",
		"0",
	}
	if err := w.Write(base); err != nil {
		return nil, err
	}

	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			intToString(sc.Totals.Months),
			dateutil.FormatMonth(sc.Totals.PayoffDate),
			sc.Totals.TotalPaid.String(),
			sc.Totals.TotalInterest.String(),
			sc.Totals.TotalExtra.String(),
			sc.InterestSaved.String(),
			intToString(sc.MonthsSaved),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
