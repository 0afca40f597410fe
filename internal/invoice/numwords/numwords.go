// Package numwords renders amounts as Indian-system words for invoice
// display ("Eleven Thousand Eight Hundred Rupees Only").
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// InRupees renders an amount using the Indian grouping (crore, lakh,
// thousand). Paise are rendered when present; negative amounts are
// prefixed with "Minus".
func InRupees(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	amount = amount.Abs().Round(2)

	rupees := amount.Truncate(0)
	paise := amount.Sub(rupees).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var b strings.Builder
	if negative {
		b.WriteString("Minus ")
	}

	r := rupees.IntPart()
	if r == 0 {
		b.WriteString("Zero Rupees")
	} else {
		b.WriteString(integerWords(r))
		b.WriteString(" Rupees")
	}

	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(integerWords(paise))
		b.WriteString(" Paise")
	}

	b.WriteString(" Only")
	return b.String()
}

// integerWords renders 1..n in the Indian system: crore (1e7), lakh (1e5),
// thousand, hundred.
func integerWords(n int64) string {
	var parts []string

	appendPart := func(value int64, label string) {
		if value > 0 {
			word := belowThousand(value)
			if label != "" {
				word += " " + label
			}
			parts = append(parts, word)
		}
	}

	appendPart(n/10_000_000, "Crore")
	n %= 10_000_000
	appendPart(n/100_000, "Lakh")
	n %= 100_000
	appendPart(n/1_000, "Thousand")
	n %= 1_000
	appendPart(n, "")

	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n >= 20 {
		word := tens[n/10]
		if n%10 > 0 {
			word += " " + ones[n%10]
		}
		parts = append(parts, word)
	} else if n > 0 {
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, " ")
}
