package engine

import "github.com/shopspring/decimal"

// applyRounding computes the grand total from the pre-round total
// (taxable + total GST). With rounding enabled the total is rounded to the
// nearest whole currency unit and the signed difference is captured as the
// round-off amount; otherwise the round-off is zero and the total keeps its
// two-decimal scale.
func applyRounding(preRound decimal.Decimal, roundTotal bool) (grandTotal, roundOff decimal.Decimal) {
	if !roundTotal {
		return round2(preRound), decimal.Zero
	}
	grandTotal = preRound.Round(0)
	roundOff = grandTotal.Sub(preRound)
	return grandTotal, round2(roundOff)
}
