// Package domain contains the invoice value objects: the build request, the
// computed invoice with its tax split, and the compliance snapshot.
package domain

import (
	"time"

	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice is a fully computed, tax-compliant invoice. All monetary fields
// are fixed-point with two-digit scale; the model-level invariants are
//
//	TotalGSTAmount = CGSTAmount + SGSTAmount + IGSTAmount + CessAmount
//	GrandTotal     = TaxableAmount + TotalGSTAmount + RoundOffAmount
type Invoice struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id,string"`

	InvoiceNumber string      `gorm:"column:invoice_number;type:text;not null;uniqueIndex" json:"invoice_number"`
	TransactionID string      `gorm:"column:transaction_id;type:text;not null;index" json:"transaction_id"`
	Type          InvoiceType `gorm:"type:text;not null;default:'SALE'" json:"type"`

	CustomerID      *snowflake.ID `gorm:"index" json:"customer_id,string,omitempty"`
	CustomerName    string        `gorm:"type:text" json:"customer_name"`
	CustomerAddress string        `gorm:"type:text" json:"customer_address"`
	CustomerGSTIN   string        `gorm:"column:customer_gstin;type:text" json:"customer_gstin"`

	GSTMode    taxdomain.GSTMode `gorm:"column:gst_mode;type:text;not null" json:"gst_mode"`
	Interstate bool              `gorm:"not null;default:false" json:"interstate"`

	Subtotal       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"subtotal"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(14,2);not null" json:"discount_amount"`
	TaxableAmount  decimal.Decimal `gorm:"column:taxable_amount;type:numeric(14,2);not null" json:"taxable_amount"`

	CGSTAmount     decimal.Decimal `gorm:"column:cgst_amount;type:numeric(14,2);not null" json:"cgst_amount"`
	SGSTAmount     decimal.Decimal `gorm:"column:sgst_amount;type:numeric(14,2);not null" json:"sgst_amount"`
	IGSTAmount     decimal.Decimal `gorm:"column:igst_amount;type:numeric(14,2);not null" json:"igst_amount"`
	CessAmount     decimal.Decimal `gorm:"column:cess_amount;type:numeric(14,2);not null" json:"cess_amount"`
	TotalGSTAmount decimal.Decimal `gorm:"column:total_gst_amount;type:numeric(14,2);not null" json:"total_gst_amount"`

	// EffectiveRate is the taxable-amount-weighted average rate across
	// lines, for reporting.
	EffectiveRate decimal.Decimal `gorm:"column:effective_rate;type:numeric(6,2);not null" json:"effective_rate"`

	RoundOffAmount decimal.Decimal `gorm:"column:round_off_amount;type:numeric(14,2);not null" json:"round_off_amount"`
	GrandTotal     decimal.Decimal `gorm:"column:grand_total;type:numeric(14,2);not null" json:"grand_total"`

	AmountInWords string `gorm:"column:amount_in_words;type:text" json:"amount_in_words"`

	PaymentMethod PaymentMethod   `gorm:"column:payment_method;type:text" json:"payment_method"`
	PaymentStatus PaymentStatus   `gorm:"column:payment_status;type:text" json:"payment_status"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid;type:numeric(14,2);not null" json:"amount_paid"`

	InvoiceDate time.Time  `gorm:"column:invoice_date;not null" json:"invoice_date"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`

	Notes string `gorm:"type:text" json:"notes"`
	Terms string `gorm:"type:text" json:"terms"`

	Metadata datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceLineItem is one computed line. Invariants:
//
//	TaxableAmount  = Quantity*UnitPrice - DiscountAmount
//	TotalTaxAmount = CGSTAmount + SGSTAmount + IGSTAmount + CessAmount
//	LineTotal      = TaxableAmount + TotalTaxAmount
//
// and exactly one of {CGST&SGST, IGST} is non-zero when tax applies.
type InvoiceLineItem struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	InvoiceID snowflake.ID `gorm:"not null;index" json:"invoice_id,string"`

	ProductID   *snowflake.ID `gorm:"index" json:"product_id,string,omitempty"`
	Description string        `gorm:"type:text" json:"description"`
	HSNCode     *string       `gorm:"column:hsn_code;type:text" json:"hsn_code,omitempty"`

	Quantity       decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"column:unit_price;type:numeric(14,2);not null" json:"unit_price"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(14,2);not null" json:"discount_amount"`
	TaxableAmount  decimal.Decimal `gorm:"column:taxable_amount;type:numeric(14,2);not null" json:"taxable_amount"`

	CGSTRate decimal.Decimal `gorm:"column:cgst_rate;type:numeric(6,2);not null" json:"cgst_rate"`
	SGSTRate decimal.Decimal `gorm:"column:sgst_rate;type:numeric(6,2);not null" json:"sgst_rate"`
	IGSTRate decimal.Decimal `gorm:"column:igst_rate;type:numeric(6,2);not null" json:"igst_rate"`
	CessRate decimal.Decimal `gorm:"column:cess_rate;type:numeric(6,2);not null" json:"cess_rate"`

	CGSTAmount decimal.Decimal `gorm:"column:cgst_amount;type:numeric(14,2);not null" json:"cgst_amount"`
	SGSTAmount decimal.Decimal `gorm:"column:sgst_amount;type:numeric(14,2);not null" json:"sgst_amount"`
	IGSTAmount decimal.Decimal `gorm:"column:igst_amount;type:numeric(14,2);not null" json:"igst_amount"`
	CessAmount decimal.Decimal `gorm:"column:cess_amount;type:numeric(14,2);not null" json:"cess_amount"`

	TotalTaxAmount decimal.Decimal `gorm:"column:total_tax_amount;type:numeric(14,2);not null" json:"total_tax_amount"`
	LineTotal      decimal.Decimal `gorm:"column:line_total;type:numeric(14,2);not null" json:"line_total"`

	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"sort_order"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (InvoiceLineItem) TableName() string { return "invoice_line_items" }

// InvoiceGSTDetails is the denormalized compliance snapshot written only
// when the resolved mode applies tax. RateBreakdown is the serialized
// compliance grouping ("rate:taxable:totalTax|...").
type InvoiceGSTDetails struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id,string"`
	InvoiceID snowflake.ID `gorm:"not null;uniqueIndex" json:"invoice_id,string"`

	ShopGSTIN  string            `gorm:"column:shop_gstin;type:text" json:"shop_gstin"`
	GSTMode    taxdomain.GSTMode `gorm:"column:gst_mode;type:text;not null" json:"gst_mode"`
	Interstate bool              `gorm:"not null" json:"interstate"`

	TaxableAmount  decimal.Decimal `gorm:"column:taxable_amount;type:numeric(14,2);not null" json:"taxable_amount"`
	CGSTAmount     decimal.Decimal `gorm:"column:cgst_amount;type:numeric(14,2);not null" json:"cgst_amount"`
	SGSTAmount     decimal.Decimal `gorm:"column:sgst_amount;type:numeric(14,2);not null" json:"sgst_amount"`
	IGSTAmount     decimal.Decimal `gorm:"column:igst_amount;type:numeric(14,2);not null" json:"igst_amount"`
	CessAmount     decimal.Decimal `gorm:"column:cess_amount;type:numeric(14,2);not null" json:"cess_amount"`
	TotalGSTAmount decimal.Decimal `gorm:"column:total_gst_amount;type:numeric(14,2);not null" json:"total_gst_amount"`

	RateBreakdown string `gorm:"column:rate_breakdown;type:text" json:"rate_breakdown"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (InvoiceGSTDetails) TableName() string { return "invoice_gst_details" }
