package calculation

import (
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// Engine orchestrates schedule generation and aggregation. Savings are always
// measured against the unmodified base plan, so every scenario run computes
// the schedule twice: once with an empty override map and once with the
// scenario's overrides.
type Engine struct {
	Generator *ScheduleGenerator
	Logger    Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		Generator: NewScheduleGenerator(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine and its generator. If nil is
// provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.Generator.Logger = l
}

// RunScenario evaluates one payment scenario against the loan. A scenario's
// flat extra amount is expanded into overrides on top of the base plan first;
// explicit per-month overrides then take precedence over the expanded ones.
func (e *Engine) RunScenario(loan domain.LoanParameters, scenario domain.Scenario) domain.ScenarioSummary {
	base := e.Generator.Generate(loan, nil)
	baseTotals := Summarize(base)

	overrides := scenario.Overrides
	if scenario.ExtraMonthly != nil && scenario.ExtraMonthly.IsPositive() {
		expanded := FlatExtraOverrides(base, *scenario.ExtraMonthly)
		for month, amount := range scenario.Overrides {
			expanded[month] = amount
		}
		overrides = expanded
	}

	schedule := e.Generator.Generate(loan, overrides)
	totals := Summarize(schedule)

	return domain.ScenarioSummary{
		Name:          scenario.Name,
		Schedule:      schedule,
		Totals:        totals,
		Base:          baseTotals,
		InterestSaved: dec.Max(baseTotals.TotalInterest.Sub(totals.TotalInterest), dec.Zero()),
		MonthsSaved:   baseTotals.Months - totals.Months,
	}
}

// RunScenarios evaluates every scenario in the configuration and returns the
// comparison consumed by the output formatters.
func (e *Engine) RunScenarios(config *domain.Configuration) *domain.ScenarioComparison {
	base := e.Generator.Generate(config.Loan, nil)

	comparison := &domain.ScenarioComparison{
		Loan:      config.Loan,
		Base:      Summarize(base),
		Scenarios: make([]domain.ScenarioSummary, 0, len(config.Scenarios)),
	}
	for _, scenario := range config.Scenarios {
		comparison.Scenarios = append(comparison.Scenarios, e.RunScenario(config.Loan, scenario))
	}
	return comparison
}
