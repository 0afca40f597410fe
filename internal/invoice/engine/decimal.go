package engine

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// round2 rounds to two decimal places, half up. Every monetary amount is
// rounded at the point of computation, never carried at higher precision.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// pctOf computes base * pct/100 at two-decimal scale.
func pctOf(base, pct decimal.Decimal) decimal.Decimal {
	return round2(base.Mul(pct).Div(hundred))
}
