package output

import (
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// Recommendation identifies the scenario that saves the most interest versus
// the base plan.
type Recommendation struct {
	ScenarioName  string
	InterestSaved dec.Money
	MonthsSaved   int
}

// AnalyzeScenarios picks the scenario with the highest interest savings.
// Returns a zero Recommendation when no scenario beats the base plan.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	best := Recommendation{InterestSaved: dec.Zero()}
	for _, sc := range results.Scenarios {
		if sc.InterestSaved.GreaterThan(best.InterestSaved) {
			best = Recommendation{
				ScenarioName:  sc.Name,
				InterestSaved: sc.InterestSaved,
				MonthsSaved:   sc.MonthsSaved,
			}
		}
	}
	return best
}
