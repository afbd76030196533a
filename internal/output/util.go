package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var minusOne = decimal.NewFromInt(-1)

func intToString(i int) string { return strconv.Itoa(i) }
