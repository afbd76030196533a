package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/alex-de-haas/haas.mortgage/internal/domain"
)

// ConsoleLiteFormatter provides a concise console style summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "AMORTIZATION SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Loan: %s at %s over %d months from %s\n",
		FormatCurrency(results.Loan.Principal),
		FormatPercentage(results.Loan.AnnualRatePercent),
		results.Loan.TermMonths,
		FormatMonth(results.Loan.StartMonth),
	)
	fmt.Fprintf(&buf, "Base plan: %d months, interest %s, payoff %s\n",
		results.Base.Months,
		FormatCurrency(results.Base.TotalInterest),
		FormatMonth(results.Base.PayoffDate),
	)
	fmt.Fprintln(&buf)
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "%s: Months=%d Interest=%s Saved=%s MonthsSaved=%d\n",
			sc.Name,
			sc.Totals.Months,
			FormatCurrency(sc.Totals.TotalInterest),
			FormatCurrency(sc.InterestSaved),
			sc.MonthsSaved,
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best: %s (saves %s)\n", rec.ScenarioName, FormatCurrency(rec.InterestSaved))
	}
	return buf.Bytes(), nil
}
