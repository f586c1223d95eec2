package finans

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 1.5 means 1.5%.
type Percent float64

// ratio returns a/b as a Percent, or 0 when b is zero.
func ratio(a, b decimal.Decimal) Percent {
	if b.IsZero() {
		return 0
	}
	return Percent(a.Div(b).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
