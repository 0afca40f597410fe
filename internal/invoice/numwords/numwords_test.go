package numwords

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInRupees(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Zero Rupees Only"},
		{"1", "One Rupees Only"},
		{"11800", "Eleven Thousand Eight Hundred Rupees Only"},
		{"10620.00", "Ten Thousand Six Hundred Twenty Rupees Only"},
		{"99.99", "Ninety Nine Rupees and Ninety Nine Paise Only"},
		{"0.40", "Zero Rupees and Forty Paise Only"},
		{"100000", "One Lakh Rupees Only"},
		{"12345678.05", "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees and Five Paise Only"},
		{"-250.50", "Minus Two Hundred Fifty Rupees and Fifty Paise Only"},
		{"21", "Twenty One Rupees Only"},
		{"115", "One Hundred Fifteen Rupees Only"},
	}
	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			got := InRupees(decimal.RequireFromString(tc.amount))
			assert.Equal(t, tc.want, got)
		})
	}
}
