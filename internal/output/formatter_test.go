package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-de-haas/haas.mortgage/internal/calculation"
	"github.com/alex-de-haas/haas.mortgage/internal/config"
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
)

func exampleResults(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	cfg := config.NewInputParser().CreateExampleConfiguration()
	return calculation.NewEngine().RunScenarios(cfg)
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "console", expected: "console"},
		{name: "verbose", expected: "console"},
		{name: "console-verbose", expected: "console"},
		{name: "summary", expected: "console-lite"},
		{name: "csv", expected: "csv"},
		{name: "csv-detailed", expected: "detailed-csv"},
		{name: "detailed-csv", expected: "detailed-csv"},
		{name: "JSON", expected: "json"},
		{name: "html-report", expected: "html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("carrier-pigeon"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Contains(t, names, "console")
	assert.Contains(t, names, "console-lite")
	assert.Contains(t, names, "csv")
	assert.Contains(t, names, "detailed-csv")
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "html")
}

func TestCSVSummarizer(t *testing.T) {
	data, err := CSVSummarizer{}.Format(exampleResults(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// header + base row + two scenarios
	require.Len(t, lines, 4)
	assert.Equal(t, "Scenario,Months,PayoffDate,TotalPaid,TotalInterest,TotalExtra,InterestSaved,MonthsSaved", lines[0])
	assert.Contains(t, lines[1], "(base plan)")
	assert.Contains(t, lines[1], "360")
	assert.Contains(t, string(data), "Extra 500 per month")
	assert.Contains(t, string(data), "Skip first payment")
}

func TestCSVDetailedExporter(t *testing.T) {
	results := exampleResults(t)
	data, err := CSVDetailedExporter{}.Format(results)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	wantRows := 1
	for _, sc := range results.Scenarios {
		wantRows += len(sc.Schedule)
	}
	assert.Len(t, lines, wantRows)
	assert.Contains(t, lines[0], "PlannedPayment")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(exampleResults(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "loan")
	assert.Contains(t, decoded, "base")
	assert.Contains(t, decoded, "scenarios")
}

func TestConsoleFormatters(t *testing.T) {
	results := exampleResults(t)

	full, err := ConsoleFormatter{}.Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(full), "MORTGAGE AMORTIZATION ANALYSIS")
	assert.Contains(t, string(full), "SCENARIO 1:")
	assert.Contains(t, string(full), "Best scenario: Extra 500 per month")

	lite, err := ConsoleLiteFormatter{}.Format(results)
	require.NoError(t, err)
	assert.Contains(t, string(lite), "AMORTIZATION SCENARIO SUMMARY")
	assert.Contains(t, string(lite), "Extra 500 per month")
	assert.Less(t, len(lite), len(full))
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(exampleResults(t))
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Mortgage Amortization Report")
	assert.Contains(t, html, "Extra 500 per month")
	assert.Contains(t, html, "$315000.00")
}

func TestAnalyzeScenarios(t *testing.T) {
	rec := AnalyzeScenarios(exampleResults(t))
	assert.Equal(t, "Extra 500 per month", rec.ScenarioName)
	assert.True(t, rec.InterestSaved.IsPositive())
	assert.Positive(t, rec.MonthsSaved)
}

func TestAnalyzeScenarios_NoWinner(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	// A scenario without overrides matches the base plan exactly and saves
	// nothing, so no recommendation is made.
	cfg.Scenarios = []domain.Scenario{{Name: "as planned"}}
	rec := AnalyzeScenarios(calculation.NewEngine().RunScenarios(cfg))
	assert.Empty(t, rec.ScenarioName)
}
