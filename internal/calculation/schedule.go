package calculation

import (
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	"github.com/alex-de-haas/haas.mortgage/pkg/dateutil"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// hardCapMonths bounds runaway schedules from pathological inputs (e.g. a
// near-zero effective payment that never reduces the balance). The loop
// condition is strict, so a capped schedule has at most hardCapMonths-1 rows.
const hardCapMonths = 1200

// payoffEpsilon is the residual balance below which the loan counts as
// settled, in currency units.
var payoffEpsilon = dec.NewMoney(0.01)

// ScheduleGenerator produces amortization schedules. Generate is a pure
// function of its inputs; the generator itself only carries a logger for the
// truncation diagnostic.
type ScheduleGenerator struct {
	Logger Logger
}

// NewScheduleGenerator creates a generator with a no-op logger.
func NewScheduleGenerator() *ScheduleGenerator {
	return &ScheduleGenerator{Logger: NopLogger{}}
}

// Generate computes the month-by-month ledger for a loan with the given
// payment overrides. It is total: degenerate parameters (non-positive
// principal or term) yield an empty schedule, and pathological inputs are
// bounded by the hard month cap rather than reported as an error.
//
// Planned principal is straight-line: the remaining balance divided evenly
// over the months left in the nominal term. It is recomputed every month, so
// the plan re-levels itself after under- or over-payments. This is the
// intended behavior, not an annuity approximation.
func (g *ScheduleGenerator) Generate(loan domain.LoanParameters, overrides domain.PaymentOverrides) domain.Schedule {
	if loan.IsDegenerate() {
		return domain.Schedule{}
	}

	monthlyRate := loan.MonthlyRate()
	balance := loan.Principal
	dueDate := dateutil.MonthStart(loan.StartMonth)

	schedule := make(domain.Schedule, 0, loan.TermMonths)
	for month := 1; (month <= loan.TermMonths || balance.GreaterThan(payoffEpsilon)) && month < hardCapMonths; month++ {
		// Months left in the nominal term, floored at 1 so an overrun month
		// still computes a finite planned principal.
		monthsRemaining := loan.TermMonths - month + 1
		if monthsRemaining < 1 {
			monthsRemaining = 1
		}

		plannedPrincipal := dec.Min(balance.DivInt(int64(monthsRemaining)), balance)
		plannedInterest := balance.Mul(monthlyRate)
		plannedPayment := plannedPrincipal.Add(plannedInterest)

		actualPayment := plannedPayment
		if override, ok := overrides[month]; ok {
			actualPayment = override
		}

		// Interest is paid first, capped at what is due; only the remainder
		// reduces principal, and never below a zero balance.
		interestPaid := dec.Min(actualPayment, plannedInterest)
		principalPaid := dec.Max(actualPayment.Sub(interestPaid), dec.Zero())
		principalPaid = dec.Min(principalPaid, balance)
		balanceAfter := dec.Max(balance.Sub(principalPaid), dec.Zero())

		schedule = append(schedule, domain.ScheduleRow{
			MonthIndex:       month,
			DueDate:          dueDate,
			PlannedPayment:   plannedPayment,
			PlannedPrincipal: plannedPrincipal,
			PlannedInterest:  plannedInterest,
			ActualPayment:    actualPayment,
			InterestPaid:     interestPaid,
			PrincipalPaid:    principalPaid,
			ExtraPayment:     dec.Max(actualPayment.Sub(plannedPayment), dec.Zero()),
			Shortfall:        dec.Max(plannedPayment.Sub(actualPayment), dec.Zero()),
			BalanceAfter:     balanceAfter,
		})

		balance = balanceAfter
		dueDate = dateutil.AddMonths(dueDate, 1)

		// The loan may settle at, before, or after the nominal term.
		if balance.LessThanOrEqual(payoffEpsilon) {
			break
		}
	}

	if balance.GreaterThan(payoffEpsilon) {
		g.Logger.Warnf("schedule truncated at %d months with %s still outstanding", len(schedule), balance.Format())
	}

	return schedule
}

// FlatExtraOverrides builds an override map that adds a flat amount to every
// month of the given base (no-override) schedule. This is the caller-side
// "pay X extra every month" transformation; it is not part of the generator.
func FlatExtraOverrides(base domain.Schedule, amount dec.Money) domain.PaymentOverrides {
	overrides := make(domain.PaymentOverrides, len(base))
	for _, row := range base {
		overrides[row.MonthIndex] = row.PlannedPayment.Add(amount)
	}
	return overrides
}
