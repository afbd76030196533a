package output

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1804.25", FormatCurrency(dec.NewMoney(1804.25)))
	assert.Equal(t, "$0.00", FormatCurrency(dec.Zero()))
	assert.Equal(t, "$929.25", FormatCurrency(dec.NewMoney(929.2549)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "3.54%", FormatPercentage(decimal.NewFromFloat(3.54)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
}

func TestFormatMonthHelper(t *testing.T) {
	assert.Equal(t, "December 2025", FormatMonth(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}
