package output

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alex-de-haas/haas.mortgage/pkg/dateutil"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// FormatCurrency formats a monetary amount as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount dec.Money) string { return amount.Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMonth renders a due date as its human-readable month label.
func FormatMonth(t time.Time) string { return dateutil.FormatMonthLabel(t) }
