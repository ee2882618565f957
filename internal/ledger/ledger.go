// Package ledger holds the pure computations over an account's movement
// history. Nothing here mutates a movement list; callers own their state.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary is the aggregate view of a movement history.
type Summary struct {
	Income   decimal.Decimal // sum of deposits
	Outflow  decimal.Decimal // absolute sum of withdrawals, never negative
	Interest decimal.Decimal // credited interest across qualifying deposits
}

// Balance sums all movements. An empty history has balance zero.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m)
	}
	return total
}

// Summarize computes income, outflow, and credited interest for a movement
// history at the given percentage rate. Interest accrues per deposit as
// deposit * rate / 100, and a deposit's interest is credited only when it
// reaches minCredit; the threshold applies per movement, not to the total.
func Summarize(movements []decimal.Decimal, ratePercent, minCredit decimal.Decimal) Summary {
	s := Summary{Income: decimal.Zero, Outflow: decimal.Zero, Interest: decimal.Zero}
	for _, m := range movements {
		if m.IsPositive() {
			s.Income = s.Income.Add(m)
			interest := m.Mul(ratePercent).Div(hundred)
			if interest.GreaterThanOrEqual(minCredit) {
				s.Interest = s.Interest.Add(interest)
			}
		} else {
			s.Outflow = s.Outflow.Sub(m)
		}
	}
	return s
}

// SortedMovements returns a copy of movements, ascending when requested and
// in original insertion order otherwise. The input is never reordered.
func SortedMovements(movements []decimal.Decimal, ascending bool) []decimal.Decimal {
	out := make([]decimal.Decimal, len(movements))
	copy(out, movements)
	if ascending {
		sort.Slice(out, func(i, j int) bool { return out[i].LessThan(out[j]) })
	}
	return out
}
