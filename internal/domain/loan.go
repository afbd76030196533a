package domain

import (
	"time"

	"github.com/shopspring/decimal"

	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// LoanParameters describes a fixed-rate loan. It is an immutable input to a
// schedule computation and is never mutated by the engine.
type LoanParameters struct {
	Principal         dec.Money       `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
	StartMonth        time.Time       `json:"start_month"`
}

// MonthlyRate returns the simple monthly interest rate as a fraction,
// annualRatePercent / 100 / 12.
func (lp LoanParameters) MonthlyRate() decimal.Decimal {
	return lp.AnnualRatePercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// IsDegenerate reports whether the parameters yield an empty schedule by
// definition rather than by error.
func (lp LoanParameters) IsDegenerate() bool {
	return !lp.Principal.IsPositive() || lp.TermMonths <= 0
}

// PaymentOverrides maps a 1-based month index to the actual payment made that
// month. The map is sparse: an absent key means "use the planned payment",
// never "zero payment". The generator reads it but never mutates it.
type PaymentOverrides map[int]dec.Money

// Scenario is one payment plan to evaluate against the shared loan: a set of
// per-month overrides and/or a flat extra amount applied to every month of
// the base plan.
type Scenario struct {
	Name         string           `json:"name"`
	Overrides    PaymentOverrides `json:"overrides,omitempty"`
	ExtraMonthly *dec.Money       `json:"extra_monthly,omitempty"`
}

// Configuration is a fully-validated calculation input: one loan and the
// scenarios to run against it.
type Configuration struct {
	Loan      LoanParameters `json:"loan"`
	Scenarios []Scenario     `json:"scenarios"`
}
