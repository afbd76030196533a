package calculation

import (
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// Summarize reduces a schedule to its totals. An empty schedule yields zero
// totals with a zero payoff date.
func Summarize(schedule domain.Schedule) domain.ScheduleTotals {
	totals := domain.ScheduleTotals{
		TotalInterest: dec.Zero(),
		TotalPaid:     dec.Zero(),
		TotalExtra:    dec.Zero(),
		Months:        schedule.Months(),
	}
	for _, row := range schedule {
		totals.TotalInterest = totals.TotalInterest.Add(row.InterestPaid)
		totals.TotalPaid = totals.TotalPaid.Add(row.ActualPayment)
		totals.TotalExtra = totals.TotalExtra.Add(row.ExtraPayment)
	}
	if payoff, ok := schedule.PayoffDate(); ok {
		totals.PayoffDate = payoff
	}
	return totals
}
