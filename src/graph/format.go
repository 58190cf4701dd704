package graph

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatYLabel renders an axis marker. Percentage labels keep one decimal and
// treat v as already being in percent units (3 -> "3.0%"); plain labels use
// the shortest exact representation (3 -> "3", 2.5 -> "2.5").
func FormatYLabel(v float64, asPercentage bool) string {
	if asPercentage {
		return decimal.NewFromFloat(v).StringFixed(1) + "%"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
