package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// coercePin accepts a pin sent as a JSON number or string and returns its
// numeric value.
func coercePin(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		pin, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("parsing pin %q: %w", n, err)
		}
		return pin, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to pin", v)
	}
}

// coerceAmount accepts an amount sent as a JSON number or string.
func coerceAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Zero, fmt.Errorf("cannot convert %T to amount", v)
	}
}
