package domain

import (
	"time"

	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// ScheduleRow is one ledger entry per month. Rows form a strict chain: each
// row's BalanceAfter is the next row's starting balance.
type ScheduleRow struct {
	MonthIndex       int       `json:"month_index"`
	DueDate          time.Time `json:"due_date"`
	PlannedPayment   dec.Money `json:"planned_payment"`
	PlannedPrincipal dec.Money `json:"planned_principal"`
	PlannedInterest  dec.Money `json:"planned_interest"`
	ActualPayment    dec.Money `json:"actual_payment"`
	InterestPaid     dec.Money `json:"interest_paid"`
	PrincipalPaid    dec.Money `json:"principal_paid"`
	ExtraPayment     dec.Money `json:"extra_payment"`
	Shortfall        dec.Money `json:"shortfall"`
	BalanceAfter     dec.Money `json:"balance_after"`
}

// Schedule is the ordered month-by-month ledger produced by the generator.
// It is regenerated in full on every call, never patched incrementally.
type Schedule []ScheduleRow

// Months returns the number of rows, i.e. months until payoff or truncation.
func (s Schedule) Months() int {
	return len(s)
}

// PayoffDate returns the due date of the final row. The second return value
// is false for an empty schedule.
func (s Schedule) PayoffDate() (time.Time, bool) {
	if len(s) == 0 {
		return time.Time{}, false
	}
	return s[len(s)-1].DueDate, true
}

// RemainingBalance returns the balance outstanding after the final row, or
// zero for an empty schedule.
func (s Schedule) RemainingBalance() dec.Money {
	if len(s) == 0 {
		return dec.Zero()
	}
	return s[len(s)-1].BalanceAfter
}

// ScheduleTotals summarizes a schedule: the trivial reduction over its rows.
type ScheduleTotals struct {
	TotalInterest dec.Money `json:"total_interest"`
	TotalPaid     dec.Money `json:"total_paid"`
	TotalExtra    dec.Money `json:"total_extra"`
	Months        int       `json:"months"`
	PayoffDate    time.Time `json:"payoff_date"`
}

// ScenarioSummary is the result of running one scenario: its schedule and
// totals, plus the no-override base totals it is always measured against.
type ScenarioSummary struct {
	Name          string         `json:"name"`
	Schedule      Schedule       `json:"schedule"`
	Totals        ScheduleTotals `json:"totals"`
	Base          ScheduleTotals `json:"base"`
	InterestSaved dec.Money      `json:"interest_saved"`
	MonthsSaved   int            `json:"months_saved"`
}

// ScenarioComparison is the full output for a configuration: the base plan
// totals and every scenario's summary, consumed by the output formatters.
type ScenarioComparison struct {
	Loan      LoanParameters    `json:"loan"`
	Base      ScheduleTotals    `json:"base"`
	Scenarios []ScenarioSummary `json:"scenarios"`
}
