package engine

import (
	"testing"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// Lines at the same GST rate but with different cess land in one compliance
// bucket and two display buckets; the two groupings must stay distinct.
func breakdownItems() []invoicedomain.InvoiceLineItem {
	return []invoicedomain.InvoiceLineItem{
		{
			HSNCode:        strPtr("8517"),
			CGSTRate:       decimal.NewFromInt(9),
			SGSTRate:       decimal.NewFromInt(9),
			CessRate:       decimal.Zero,
			TaxableAmount:  dec("10000.00"),
			TotalTaxAmount: dec("1800.00"),
			LineTotal:      dec("11800.00"),
		},
		{
			HSNCode:        strPtr("8517"),
			CGSTRate:       decimal.NewFromInt(9),
			SGSTRate:       decimal.NewFromInt(9),
			CessRate:       decimal.NewFromInt(12),
			TaxableAmount:  dec("5000.00"),
			TotalTaxAmount: dec("1500.00"),
			LineTotal:      dec("6500.00"),
		},
		{
			HSNCode:        strPtr("8504"),
			CGSTRate:       decimal.NewFromInt(9),
			SGSTRate:       decimal.NewFromInt(9),
			CessRate:       decimal.Zero,
			TaxableAmount:  dec("2000.00"),
			TotalTaxAmount: dec("360.00"),
			LineTotal:      dec("2360.00"),
		},
	}
}

func TestComplianceBreakdownGroupsByRateAndHSN(t *testing.T) {
	buckets := ComplianceBreakdown(breakdownItems(), false)

	// All three lines share rate 18; HSN splits them into two buckets.
	require.Len(t, buckets, 2)

	assert.True(t, buckets[0].Rate.Equal(decimal.NewFromInt(18)))
	assert.Equal(t, "8504", buckets[0].HSNCode)
	assert.True(t, buckets[0].TaxableAmount.Equal(dec("2000.00")))

	assert.Equal(t, "8517", buckets[1].HSNCode)
	assert.True(t, buckets[1].TaxableAmount.Equal(dec("15000.00")))
	assert.True(t, buckets[1].TotalTax.Equal(dec("3300.00")))
}

func TestDisplaySummaryGroupsByCombinedRate(t *testing.T) {
	summary := DisplaySummary(breakdownItems())

	// Cess pushes the second line into its own display bucket (rate 30).
	require.Len(t, summary, 2)

	assert.True(t, summary[0].CombinedRate.Equal(decimal.NewFromInt(18)))
	assert.True(t, summary[0].TaxableAmount.Equal(dec("12000.00")))
	assert.Equal(t, []string{"8504", "8517"}, summary[0].HSNCodes)

	assert.True(t, summary[1].CombinedRate.Equal(decimal.NewFromInt(30)))
	assert.True(t, summary[1].TaxableAmount.Equal(dec("5000.00")))
	assert.Equal(t, []string{"8517"}, summary[1].HSNCodes)
}

func TestSerializeBreakdown(t *testing.T) {
	buckets := ComplianceBreakdown(breakdownItems(), false)
	got := SerializeBreakdown(buckets)
	assert.Equal(t, "18.00:2000.00:360.00|18.00:15000.00:3300.00", got)
}

func TestSerializeBreakdownEmpty(t *testing.T) {
	assert.Equal(t, "", SerializeBreakdown(nil))
}
