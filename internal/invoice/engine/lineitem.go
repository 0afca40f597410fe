package engine

import (
	"fmt"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/shopspring/decimal"
)

// computeLine turns one requested line into a computed line item.
//
// extraDiscount is this line's allocated share of the invoice-level global
// discount; it is folded into the line's discount amount before the taxable
// amount is derived, so line tax is charged on what the customer actually
// pays. rate is nil when the effective mode does not apply tax or no entry
// resolved; in that case all four components are exactly zero and the line
// total equals the taxable amount.
func computeLine(
	req invoicedomain.LineItemRequest,
	index int,
	rate *taxdomain.GSTRate,
	interstate bool,
	extraDiscount decimal.Decimal,
) (invoicedomain.InvoiceLineItem, []string) {
	var warnings []string

	lineSubtotal := round2(req.Quantity.Mul(req.UnitPrice))

	// Percentage wins over the absolute amount; both non-zero is accepted
	// but flagged so the caller can surface it.
	var discount decimal.Decimal
	switch {
	case req.DiscountPercent.IsPositive():
		discount = pctOf(lineSubtotal, req.DiscountPercent)
		if !req.DiscountAmount.IsZero() {
			warnings = append(warnings, fmt.Sprintf(
				"line %d: both discount amount and percent supplied; percentage applied", index+1))
		}
	default:
		discount = round2(req.DiscountAmount)
	}

	discount = discount.Add(extraDiscount)
	taxable := lineSubtotal.Sub(discount)
	if taxable.IsNegative() {
		warnings = append(warnings, fmt.Sprintf(
			"line %d: discount exceeds line subtotal; taxable amount is negative", index+1))
	}

	item := invoicedomain.InvoiceLineItem{
		ProductID:      req.ProductID,
		Description:    req.Description,
		HSNCode:        req.HSNCode,
		Quantity:       req.Quantity,
		UnitPrice:      round2(req.UnitPrice),
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		CGSTAmount:     decimal.Zero,
		SGSTAmount:     decimal.Zero,
		IGSTAmount:     decimal.Zero,
		CessAmount:     decimal.Zero,
		SortOrder:      index,
	}

	if rate == nil {
		item.TotalTaxAmount = decimal.Zero
		item.LineTotal = taxable
		return item, warnings
	}

	item.CGSTRate = rate.CGSTRate
	item.SGSTRate = rate.SGSTRate
	item.IGSTRate = rate.IGSTRate
	item.CessRate = rate.CessRate

	// Each component is rounded independently before summation; interstate
	// and intrastate treatment are mutually exclusive.
	if interstate {
		item.IGSTAmount = pctOf(taxable, rate.IGSTRate)
	} else {
		item.CGSTAmount = pctOf(taxable, rate.CGSTRate)
		item.SGSTAmount = pctOf(taxable, rate.SGSTRate)
	}
	item.CessAmount = pctOf(taxable, rate.CessRate)

	item.TotalTaxAmount = item.CGSTAmount.
		Add(item.SGSTAmount).
		Add(item.IGSTAmount).
		Add(item.CessAmount)
	item.LineTotal = taxable.Add(item.TotalTaxAmount)

	return item, warnings
}
