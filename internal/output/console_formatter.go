package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/alex-de-haas/haas.mortgage/internal/domain"
)

// ConsoleFormatter renders the detailed console report: the loan header, the
// base plan summary and the full month-by-month ledger of every scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "MORTGAGE AMORTIZATION ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "LOAN:")
	fmt.Fprintf(&buf, "  Principal:    %s\n", FormatCurrency(results.Loan.Principal))
	fmt.Fprintf(&buf, "  Annual Rate:  %s\n", FormatPercentage(results.Loan.AnnualRatePercent))
	fmt.Fprintf(&buf, "  Term:         %d months\n", results.Loan.TermMonths)
	fmt.Fprintf(&buf, "  First Due:    %s\n", FormatMonth(results.Loan.StartMonth))
	fmt.Fprintln(&buf)
	writeTotals(&buf, "BASE PLAN (no overrides)", results.Base)
	fmt.Fprintln(&buf)

	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for i, sc := range scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeTotals(&buf, "TOTALS", sc.Totals)
		fmt.Fprintf(&buf, "  Interest Saved vs Base: %s\n", FormatCurrency(sc.InterestSaved))
		fmt.Fprintf(&buf, "  Months Saved vs Base:   %d\n", sc.MonthsSaved)
		fmt.Fprintln(&buf)
		writeLedger(&buf, sc.Schedule)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Best scenario: %s (saves %s, %d months)\n",
			rec.ScenarioName, FormatCurrency(rec.InterestSaved), rec.MonthsSaved)
	}
	return buf.Bytes(), nil
}

func writeTotals(buf *bytes.Buffer, title string, totals domain.ScheduleTotals) {
	fmt.Fprintf(buf, "%s:\n", title)
	fmt.Fprintf(buf, "  Months to Payoff: %d\n", totals.Months)
	if !totals.PayoffDate.IsZero() {
		fmt.Fprintf(buf, "  Payoff Date:      %s\n", FormatMonth(totals.PayoffDate))
	}
	fmt.Fprintf(buf, "  Total Paid:       %s\n", FormatCurrency(totals.TotalPaid))
	fmt.Fprintf(buf, "  Total Interest:   %s\n", FormatCurrency(totals.TotalInterest))
	fmt.Fprintf(buf, "  Total Extra:      %s\n", FormatCurrency(totals.TotalExtra))
}

func writeLedger(buf *bytes.Buffer, schedule domain.Schedule) {
	fmt.Fprintf(buf, "%5s  %-9s  %12s  %12s  %12s  %12s  %12s  %12s\n",
		"Month", "Due", "Planned", "Actual", "Interest", "Principal", "Extra/Short", "Balance")
	for _, row := range schedule {
		extraOrShort := row.ExtraPayment
		if row.Shortfall.IsPositive() {
			extraOrShort = row.Shortfall.Mul(minusOne)
		}
		fmt.Fprintf(buf, "%5d  %-9s  %12s  %12s  %12s  %12s  %12s  %12s\n",
			row.MonthIndex,
			row.DueDate.Format("Jan 2006"),
			row.PlannedPayment.String(),
			row.ActualPayment.String(),
			row.InterestPaid.String(),
			row.PrincipalPaid.String(),
			extraOrShort.String(),
			row.BalanceAfter.String(),
		)
	}
}
