// Package engine implements the GST invoice calculation pipeline: mode
// resolution, interstate detection, per-line tax computation, aggregation,
// rounding, breakdown reporting, and invoice numbering.
//
// The pipeline is pure: given the same input it produces the same output,
// and it holds no state between calls. Rate lookup, persistence, and the
// wall clock stay outside (see the service layer).
package engine

import (
	"strconv"
	"time"

	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/avinaxhroy/billme/internal/gstin"
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BuildInput is everything one build call needs. Rates is indexed by line;
// entries are nil where no rate applies (the service resolves product and
// fallback rates before invoking the pipeline, and leaves all entries nil
// when the effective mode does not apply tax).
type BuildInput struct {
	Request invoicedomain.BuildRequest
	Config  gstconfigdomain.GSTConfiguration
	Rates   []*taxdomain.GSTRate

	// Now is the issue instant from the caller's clock.
	Now time.Time
	// Seq feeds the invoice number; see Number.
	Seq int64

	// AmountInWords renders the grand total for display; nil skips it.
	AmountInWords func(decimal.Decimal) string
}

// Build runs the full pipeline and returns a complete, internally
// consistent invoice, or an error with nothing partially built.
func Build(in BuildInput) (*invoicedomain.InvoiceWithDetails, error) {
	req := in.Request

	if req.Type == "" {
		req.Type = invoicedomain.TypeSale
	}
	if !req.Type.Valid() {
		return nil, invoicedomain.ErrInvalidType
	}
	if len(in.Rates) != len(req.Lines) {
		return nil, invoicedomain.ErrInvalidRequest
	}
	for _, line := range req.Lines {
		if line.Quantity.IsNegative() || line.UnitPrice.IsNegative() {
			return nil, invoicedomain.ErrInvalidLine
		}
	}

	mode := ResolveMode(req.ModeOverride, in.Config.DefaultMode)
	interstate := mode.AppliesTax() && IsInterstate(in.Config, req.CustomerGSTIN)

	// Advisory only: a bad customer GSTIN never blocks the build, it just
	// forces intrastate treatment (no usable state code).
	var gstinCheck gstin.Validation
	if req.CustomerGSTIN != "" {
		gstinCheck = gstin.Validate(req.CustomerGSTIN)
	}

	rates := in.Rates
	if !mode.AppliesTax() {
		rates = make([]*taxdomain.GSTRate, len(req.Lines))
	}

	agg := aggregateLines(req, rates, interstate)

	preRound := agg.TaxableAmount.Add(agg.TotalGSTAmount)
	grandTotal, roundOff := applyRounding(preRound, in.Config.RoundTotal)

	invoiceDate := in.Now
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}

	inv := invoicedomain.Invoice{
		InvoiceNumber: Number(req.Type, in.Seq),
		TransactionID: req.TransactionID,
		Type:          req.Type,

		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerGSTIN:   req.CustomerGSTIN,

		GSTMode:    mode,
		Interstate: interstate,

		Subtotal:       agg.Subtotal,
		DiscountAmount: agg.TotalDiscount,
		TaxableAmount:  agg.TaxableAmount,
		CGSTAmount:     agg.CGSTAmount,
		SGSTAmount:     agg.SGSTAmount,
		IGSTAmount:     agg.IGSTAmount,
		CessAmount:     agg.CessAmount,
		TotalGSTAmount: agg.TotalGSTAmount,
		EffectiveRate:  agg.EffectiveRate,
		RoundOffAmount: roundOff,
		GrandTotal:     grandTotal,

		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		AmountPaid:    round2(req.AmountPaid),

		InvoiceDate: invoiceDate,
		DueDate:     req.DueDate,

		Notes: req.Notes,
		Terms: req.Terms,

		Metadata: lineMetadata(req.Lines),
	}

	if in.AmountInWords != nil {
		inv.AmountInWords = in.AmountInWords(grandTotal)
	}

	out := &invoicedomain.InvoiceWithDetails{
		Invoice:            inv,
		Items:              agg.Items,
		Config:             in.Config,
		CustomerGSTINCheck: gstinCheck,
		Warnings:           agg.Warnings,
	}

	// The compliance snapshot exists only when tax applies; the display
	// summary additionally requires a mode that shows tax on the invoice
	// and the configuration flag. PARTIAL_GST keeps the snapshot internal.
	if mode.AppliesTax() {
		buckets := ComplianceBreakdown(agg.Items, interstate)
		out.GSTDetails = &invoicedomain.InvoiceGSTDetails{
			ShopGSTIN:      in.Config.GSTIN,
			GSTMode:        mode,
			Interstate:     interstate,
			TaxableAmount:  agg.TaxableAmount,
			CGSTAmount:     agg.CGSTAmount,
			SGSTAmount:     agg.SGSTAmount,
			IGSTAmount:     agg.IGSTAmount,
			CessAmount:     agg.CessAmount,
			TotalGSTAmount: agg.TotalGSTAmount,
			RateBreakdown:  SerializeBreakdown(buckets),
		}
		if mode.ShowOnInvoice() && in.Config.ShowTaxSummary {
			out.RateSummary = DisplaySummary(agg.Items)
		}
	}

	return out, nil
}

// lineMetadata collects opaque serial/IMEI references keyed by line
// position, for warranty lookups. Nil when no line carries any.
func lineMetadata(lines []invoicedomain.LineItemRequest) datatypes.JSONMap {
	var serials map[string]any
	for i, line := range lines {
		if len(line.SerialNumbers) == 0 {
			continue
		}
		if serials == nil {
			serials = make(map[string]any)
		}
		serials[strconv.Itoa(i+1)] = line.SerialNumbers
	}
	if serials == nil {
		return nil
	}
	return datatypes.JSONMap{"serial_numbers": serials}
}
