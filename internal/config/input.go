package config

import (
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	"github.com/alex-de-haas/haas.mortgage/pkg/dateutil"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// InputParser handles parsing of scenario configuration files. It owns the
// boundary coercions: the engine only ever sees validated numeric inputs,
// with malformed override entries filtered rather than passed through.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileLoan is the YAML shape of the loan block. The term may be given in
// months or years; the start month is a "YYYY-MM" string.
type fileLoan struct {
	Principal         decimal.Decimal `yaml:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent"`
	TermMonths        int             `yaml:"term_months"`
	TermYears         float64         `yaml:"term_years"`
	StartMonth        string          `yaml:"start_month"`
}

type fileScenario struct {
	Name         string                  `yaml:"name"`
	Overrides    map[int]decimal.Decimal `yaml:"overrides"`
	ExtraMonthly *decimal.Decimal        `yaml:"extra_monthly"`
}

type fileConfig struct {
	Loan      fileLoan       `yaml:"loan"`
	Scenarios []fileScenario `yaml:"scenarios"`
}

// LoadFromFile loads a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates raw YAML configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config, err := ip.buildConfiguration(&fc)
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// buildConfiguration converts the file shape into domain types, applying the
// boundary coercions along the way.
func (ip *InputParser) buildConfiguration(fc *fileConfig) (*domain.Configuration, error) {
	termMonths := fc.Loan.TermMonths
	if termMonths == 0 && fc.Loan.TermYears > 0 {
		termMonths = int(math.Round(fc.Loan.TermYears * 12))
	}

	if fc.Loan.StartMonth == "" {
		return nil, fmt.Errorf("loan start_month is required")
	}
	startMonth, err := dateutil.ParseMonth(fc.Loan.StartMonth)
	if err != nil {
		return nil, fmt.Errorf("loan start_month: %w", err)
	}

	config := &domain.Configuration{
		Loan: domain.LoanParameters{
			Principal:         dec.NewMoneyFromDecimal(fc.Loan.Principal),
			AnnualRatePercent: fc.Loan.AnnualRatePercent,
			TermMonths:        termMonths,
			StartMonth:        startMonth,
		},
		Scenarios: make([]domain.Scenario, 0, len(fc.Scenarios)),
	}

	for _, fs := range fc.Scenarios {
		scenario := domain.Scenario{
			Name:      fs.Name,
			Overrides: CoerceOverrides(fs.Overrides),
		}
		if fs.ExtraMonthly != nil {
			extra := dec.Max(dec.NewMoneyFromDecimal(*fs.ExtraMonthly), dec.Zero())
			scenario.ExtraMonthly = &extra
		}
		config.Scenarios = append(config.Scenarios, scenario)
	}
	return config, nil
}

// CoerceOverrides filters an override map down to what the generator may see:
// month indexes below 1 are dropped and negative amounts are clamped to zero.
// Absent entries stay absent; they mean "use the planned payment".
func CoerceOverrides(raw map[int]decimal.Decimal) domain.PaymentOverrides {
	if len(raw) == 0 {
		return nil
	}
	overrides := make(domain.PaymentOverrides, len(raw))
	for month, amount := range raw {
		if month < 1 {
			continue
		}
		overrides[month] = dec.Max(dec.NewMoneyFromDecimal(amount), dec.Zero())
	}
	return overrides
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if !config.Loan.Principal.IsPositive() {
		return fmt.Errorf("loan principal must be positive")
	}
	if config.Loan.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("loan annual rate cannot be negative")
	}
	if config.Loan.TermMonths <= 0 {
		return fmt.Errorf("loan term must be positive")
	}
	if config.Loan.StartMonth.IsZero() {
		return fmt.Errorf("loan start month is required")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration matching the
// example YAML emitted by the CLI.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startMonth, _ := dateutil.ParseMonth("2025-12")
	extra := dec.NewMoney(500)

	return &domain.Configuration{
		Loan: domain.LoanParameters{
			Principal:         dec.NewMoney(315000),
			AnnualRatePercent: decimal.NewFromFloat(3.54),
			TermMonths:        360,
			StartMonth:        startMonth,
		},
		Scenarios: []domain.Scenario{
			{
				Name: "Skip first payment",
				Overrides: domain.PaymentOverrides{
					1: dec.Zero(),
				},
			},
			{
				Name:         "Extra 500 per month",
				ExtraMonthly: &extra,
			},
		},
	}
}

// ExampleYAML is the commented scenario file written by the example command.
const ExampleYAML = `# Mortgage amortization scenario file.
#
# The loan block describes the fixed-rate loan. The term may be given as
# term_months or term_years (rounded to whole months).
loan:
  principal: 315000
  annual_rate_percent: 3.54
  term_months: 360
  start_month: "2025-12"

# Each scenario is evaluated against the loan above and compared with the
# unmodified base plan. Overrides map a 1-based month index to the actual
# payment made that month; months without an override use the planned
# payment. extra_monthly adds a flat amount to every planned payment.
scenarios:
  - name: "Skip first payment"
    overrides:
      1: 0
  - name: "Extra 500 per month"
    extra_monthly: 500
`
