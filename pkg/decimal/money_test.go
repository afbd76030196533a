package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1804.25")
	require.NoError(t, err)
	assert.True(t, m.Equal(NewMoney(1804.25)))

	_, err = NewMoneyFromString("not a number")
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	m := NewMoney(929.2549)
	assert.Equal(t, "929.25", m.Round().String())

	// Half cents round away from zero
	assert.Equal(t, "0.13", NewMoney(0.125).Round().String())
	assert.Equal(t, "-0.13", NewMoney(-0.125).Round().String())
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(875)
	b := NewMoney(929.25)

	assert.True(t, a.Add(b).Equal(NewMoney(1804.25)))
	assert.True(t, b.Sub(a).Equal(NewMoney(54.25)))
	assert.True(t, a.Mul(decimal.NewFromInt(2)).Equal(NewMoney(1750)))
	assert.True(t, NewMoney(315000).DivInt(360).Equal(a))
}

func TestComparisons(t *testing.T) {
	small := NewMoney(1)
	big := NewMoney(2)

	assert.True(t, small.LessThan(big))
	assert.True(t, big.GreaterThan(small))
	assert.True(t, small.LessThanOrEqual(small))
	assert.True(t, big.GreaterThanOrEqual(big))
	assert.False(t, small.Equal(big))
}

func TestMinMax(t *testing.T) {
	small := NewMoney(1)
	big := NewMoney(2)

	assert.True(t, Min(small, big).Equal(small))
	assert.True(t, Min(big, small).Equal(small))
	assert.True(t, Max(small, big).Equal(big))
	assert.True(t, Max(big, small).Equal(big))
}

func TestSignPredicates(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, NewMoney(1).IsPositive())
	assert.True(t, NewMoney(-1).IsNegative())
	assert.False(t, Zero().IsPositive())
}

func TestStringAndFormat(t *testing.T) {
	m := NewMoney(1804.25)
	assert.Equal(t, "1804.25", m.String())
	assert.Equal(t, "$1804.25", m.Format())
	assert.Equal(t, "875.00", NewMoney(875).String())
}
