package engine

import (
	"fmt"
	"sort"
	"strings"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	"github.com/shopspring/decimal"
)

// ComplianceBreakdown buckets computed lines for the GST compliance record.
// Key: (cgst+sgst+igst rate, interstate, HSN code). Cess is excluded from
// the bucket rate but included in the bucket's tax total.
func ComplianceBreakdown(items []invoicedomain.InvoiceLineItem, interstate bool) []invoicedomain.RateBucket {
	type key struct {
		rate       string
		interstate bool
		hsn        string
	}

	buckets := make(map[key]*invoicedomain.RateBucket)
	order := make([]key, 0, len(items))
	for _, item := range items {
		rate := item.CGSTRate.Add(item.SGSTRate).Add(item.IGSTRate)
		hsn := ""
		if item.HSNCode != nil {
			hsn = *item.HSNCode
		}
		k := key{rate: rate.String(), interstate: interstate, hsn: hsn}
		b, ok := buckets[k]
		if !ok {
			b = &invoicedomain.RateBucket{
				Rate:          rate,
				Interstate:    interstate,
				HSNCode:       hsn,
				TaxableAmount: decimal.Zero,
				TotalTax:      decimal.Zero,
			}
			buckets[k] = b
			order = append(order, k)
		}
		b.TaxableAmount = b.TaxableAmount.Add(item.TaxableAmount)
		b.TotalTax = b.TotalTax.Add(item.TotalTaxAmount)
	}

	out := make([]invoicedomain.RateBucket, 0, len(order))
	for _, k := range order {
		out = append(out, *buckets[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Rate.Equal(out[j].Rate) {
			return out[i].Rate.LessThan(out[j].Rate)
		}
		return out[i].HSNCode < out[j].HSNCode
	})
	return out
}

// SerializeBreakdown flattens compliance buckets to the stored
// "rate:taxable:totalTax|..." form.
func SerializeBreakdown(buckets []invoicedomain.RateBucket) string {
	parts := make([]string, 0, len(buckets))
	for _, b := range buckets {
		parts = append(parts, fmt.Sprintf("%s:%s:%s",
			b.Rate.StringFixed(2),
			b.TaxableAmount.StringFixed(2),
			b.TotalTax.StringFixed(2),
		))
	}
	return strings.Join(parts, "|")
}

// DisplaySummary buckets computed lines for the user-facing tax summary.
// Key: combined rate including cess. Distinct HSN codes present in a
// bucket are collected sorted. Buckets are ordered ascending by rate.
//
// This grouping is intentionally different from ComplianceBreakdown;
// consumers must not assume shared bucket boundaries.
func DisplaySummary(items []invoicedomain.InvoiceLineItem) []invoicedomain.RateSummaryItem {
	type bucket struct {
		item invoicedomain.RateSummaryItem
		hsns map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	for _, item := range items {
		rate := item.CGSTRate.Add(item.SGSTRate).Add(item.IGSTRate).Add(item.CessRate)
		k := rate.String()
		b, ok := buckets[k]
		if !ok {
			b = &bucket{
				item: invoicedomain.RateSummaryItem{
					CombinedRate:  rate,
					TaxableAmount: decimal.Zero,
					TaxAmount:     decimal.Zero,
					LineTotal:     decimal.Zero,
				},
				hsns: make(map[string]struct{}),
			}
			buckets[k] = b
		}
		b.item.TaxableAmount = b.item.TaxableAmount.Add(item.TaxableAmount)
		b.item.TaxAmount = b.item.TaxAmount.Add(item.TotalTaxAmount)
		b.item.LineTotal = b.item.LineTotal.Add(item.LineTotal)
		if item.HSNCode != nil && *item.HSNCode != "" {
			b.hsns[*item.HSNCode] = struct{}{}
		}
	}

	out := make([]invoicedomain.RateSummaryItem, 0, len(buckets))
	for _, b := range buckets {
		for hsn := range b.hsns {
			b.item.HSNCodes = append(b.item.HSNCodes, hsn)
		}
		sort.Strings(b.item.HSNCodes)
		out = append(out, b.item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinedRate.LessThan(out[j].CombinedRate)
	})
	return out
}
