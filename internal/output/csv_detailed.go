package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	"github.com/alex-de-haas/haas.mortgage/pkg/dateutil"
)

// CSVDetailedExporter provides the raw schedule detail per scenario/month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "DueDate", "PlannedPayment", "PlannedPrincipal", "PlannedInterest", "ActualPayment", "InterestPaid", "PrincipalPaid", "ExtraPayment", "Shortfall", "BalanceAfter"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, row := range sc.Schedule {
			record := []string{
				sc.Name,
				intToString(row.MonthIndex),
				dateutil.FormatMonth(row.DueDate),
				row.PlannedPayment.String(),
				row.PlannedPrincipal.String(),
				row.PlannedInterest.String(),
				row.ActualPayment.String(),
				row.InterestPaid.String(),
				row.PrincipalPaid.String(),
				row.ExtraPayment.String(),
				row.Shortfall.String(),
				row.BalanceAfter.String(),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
