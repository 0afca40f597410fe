package domain

import "github.com/shopspring/decimal"

// RateBucket is one bucket of the compliance grouping: lines keyed by
// (total GST rate, interstate, HSN code). It feeds InvoiceGSTDetails.
type RateBucket struct {
	Rate          decimal.Decimal `json:"rate"`
	Interstate    bool            `json:"interstate"`
	HSNCode       string          `json:"hsn_code"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
}

// RateSummaryItem is one bucket of the display grouping: lines keyed by
// combined rate including cess, with the distinct HSN codes present in the
// bucket. It feeds the user-facing tax summary.
//
// The two groupings intentionally use different keys; consumers must not
// assume they share bucket boundaries.
type RateSummaryItem struct {
	CombinedRate  decimal.Decimal `json:"combined_rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	LineTotal     decimal.Decimal `json:"line_total"`
	HSNCodes      []string        `json:"hsn_codes"`
}
