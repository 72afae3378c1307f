package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmount converts a currency string such as "12.34" into cents.
// Negative values and more than two decimal places are rejected.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative")
	}
	cents := d.Mul(hundred)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("amount has more than two decimal places")
	}
	if cents.GreaterThanOrEqual(decimal.NewFromInt(1_000_000_000_00)) { // 限制最大金额为10亿
		return 0, fmt.Errorf("amount too large")
	}
	return cents.IntPart(), nil
}

// FormatCent renders cents as a two-decimal string, e.g. 1234 -> "12.34".
func FormatCent(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// Percent returns part/total*100 rounded to two places; 0 when total is 0.
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).Mul(hundred).
		DivRound(decimal.NewFromInt(total), 2).InexactFloat64()
}
