package engine

import (
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/shopspring/decimal"
)

// aggregate carries the invoice-level sums across the pipeline.
type aggregate struct {
	Items []invoicedomain.InvoiceLineItem

	Subtotal       decimal.Decimal
	TotalDiscount  decimal.Decimal
	TaxableAmount  decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTAmount     decimal.Decimal
	IGSTAmount     decimal.Decimal
	CessAmount     decimal.Decimal
	TotalGSTAmount decimal.Decimal
	EffectiveRate  decimal.Decimal

	Warnings []string
}

// aggregateLines computes every line and the invoice sums. rates is indexed
// by line and holds nil where no rate applies.
//
// The global discount is distributed pro rata over the lines' post-line-
// discount taxable amounts before line tax is computed, so the summed line
// tax matches tax on what is actually charged. The distributed shares sum
// exactly to the global discount (largest-remainder on the final line).
func aggregateLines(
	req invoicedomain.BuildRequest,
	rates []*taxdomain.GSTRate,
	interstate bool,
) aggregate {
	agg := aggregate{
		Subtotal:       decimal.Zero,
		TotalDiscount:  decimal.Zero,
		TaxableAmount:  decimal.Zero,
		CGSTAmount:     decimal.Zero,
		SGSTAmount:     decimal.Zero,
		IGSTAmount:     decimal.Zero,
		CessAmount:     decimal.Zero,
		TotalGSTAmount: decimal.Zero,
		EffectiveRate:  decimal.Zero,
	}

	bases := make([]decimal.Decimal, len(req.Lines))
	baseTotal := decimal.Zero
	for i, line := range req.Lines {
		sub := round2(line.Quantity.Mul(line.UnitPrice))
		var d decimal.Decimal
		if line.DiscountPercent.IsPositive() {
			d = pctOf(sub, line.DiscountPercent)
		} else {
			d = round2(line.DiscountAmount)
		}
		bases[i] = sub.Sub(d)
		baseTotal = baseTotal.Add(bases[i])
	}

	global := globalDiscount(req, baseTotal, &agg)
	shares := distribute(global, bases, baseTotal)

	for i, line := range req.Lines {
		item, warnings := computeLine(line, i, rates[i], interstate, shares[i])
		agg.Warnings = append(agg.Warnings, warnings...)

		agg.Items = append(agg.Items, item)
		agg.Subtotal = agg.Subtotal.Add(round2(line.Quantity.Mul(line.UnitPrice)))
		agg.TotalDiscount = agg.TotalDiscount.Add(item.DiscountAmount)
		agg.TaxableAmount = agg.TaxableAmount.Add(item.TaxableAmount)
		agg.CGSTAmount = agg.CGSTAmount.Add(item.CGSTAmount)
		agg.SGSTAmount = agg.SGSTAmount.Add(item.SGSTAmount)
		agg.IGSTAmount = agg.IGSTAmount.Add(item.IGSTAmount)
		agg.CessAmount = agg.CessAmount.Add(item.CessAmount)
	}

	agg.TotalGSTAmount = agg.CGSTAmount.
		Add(agg.SGSTAmount).
		Add(agg.IGSTAmount).
		Add(agg.CessAmount)
	agg.EffectiveRate = weightedRate(agg.Items)

	return agg
}

// globalDiscount resolves the invoice-level discount. Percentage is
// computed on the post-line-discount subtotal; percentage wins when both
// fields are supplied.
func globalDiscount(req invoicedomain.BuildRequest, baseTotal decimal.Decimal, agg *aggregate) decimal.Decimal {
	if req.GlobalDiscountPercent.IsPositive() {
		if !req.GlobalDiscountAmount.IsZero() {
			agg.Warnings = append(agg.Warnings,
				"both global discount amount and percent supplied; percentage applied")
		}
		return pctOf(baseTotal, req.GlobalDiscountPercent)
	}

	g := round2(req.GlobalDiscountAmount)
	if len(req.Lines) == 0 && !g.IsZero() {
		agg.Warnings = append(agg.Warnings, "global discount ignored: invoice has no line items")
		return decimal.Zero
	}
	return g
}

// distribute splits total pro rata over bases, two-decimal shares summing
// exactly to total. A non-positive base total falls back to an even split.
func distribute(total decimal.Decimal, bases []decimal.Decimal, baseTotal decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(bases))
	for i := range shares {
		shares[i] = decimal.Zero
	}
	if total.IsZero() || len(bases) == 0 {
		return shares
	}

	allocated := decimal.Zero
	n := decimal.NewFromInt(int64(len(bases)))
	for i := range bases {
		if i == len(bases)-1 {
			shares[i] = total.Sub(allocated)
			break
		}
		var share decimal.Decimal
		if baseTotal.IsPositive() {
			share = round2(total.Mul(bases[i]).Div(baseTotal))
		} else {
			share = round2(total.Div(n))
		}
		shares[i] = share
		allocated = allocated.Add(share)
	}
	return shares
}

// weightedRate is the taxable-amount-weighted average of the per-line
// effective rates (max(cgst+sgst, igst) + cess). Zero or negative total
// taxable yields zero.
func weightedRate(items []invoicedomain.InvoiceLineItem) decimal.Decimal {
	weighted := decimal.Zero
	taxableTotal := decimal.Zero
	for _, item := range items {
		combined := item.CGSTRate.Add(item.SGSTRate)
		if item.IGSTRate.GreaterThan(combined) {
			combined = item.IGSTRate
		}
		combined = combined.Add(item.CessRate)

		weighted = weighted.Add(item.TaxableAmount.Mul(combined))
		taxableTotal = taxableTotal.Add(item.TaxableAmount)
	}
	if !taxableTotal.IsPositive() {
		return decimal.Zero
	}
	return round2(weighted.Div(taxableTotal))
}
