package domain

import (
	"time"

	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// InvoiceType selects the number prefix and the document kind.
type InvoiceType string

const (
	TypeSale       InvoiceType = "SALE"
	TypeReturn     InvoiceType = "RETURN"
	TypeCreditNote InvoiceType = "CREDIT_NOTE"
	TypeDebitNote  InvoiceType = "DEBIT_NOTE"
	TypeProforma   InvoiceType = "PROFORMA"
	TypeQuote      InvoiceType = "QUOTE"
)

func (t InvoiceType) Valid() bool {
	switch t {
	case TypeSale, TypeReturn, TypeCreditNote, TypeDebitNote, TypeProforma, TypeQuote:
		return true
	}
	return false
}

// Prefix maps the invoice type to its number prefix.
func (t InvoiceType) Prefix() string {
	switch t {
	case TypeReturn:
		return "RTN"
	case TypeCreditNote:
		return "CN"
	case TypeDebitNote:
		return "DN"
	case TypeProforma:
		return "PRO"
	case TypeQuote:
		return "QUO"
	default:
		return "INV"
	}
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentUPI    PaymentMethod = "UPI"
	PaymentCredit PaymentMethod = "CREDIT"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
)

// LineItemRequest is one draft line of an invoice build call.
// DiscountPercent and DiscountAmount are mutually exclusive; when both are
// non-zero the percentage wins and the engine attaches an advisory warning.
type LineItemRequest struct {
	ProductID   *snowflake.ID `json:"product_id,string,omitempty"`
	Description string        `json:"description"`
	HSNCode     *string       `json:"hsn_code,omitempty"`
	// RateCategory overrides the product's rate category for this line.
	RateCategory string `json:"rate_category,omitempty"`

	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`

	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`

	// SerialNumbers are opaque to the engine; they are persisted in the
	// invoice metadata for warranty lookups.
	SerialNumbers []string `json:"serial_numbers,omitempty"`
}

// BuildRequest is the caller-supplied draft order for one invoice build.
type BuildRequest struct {
	// TransactionID correlates the invoice with the POS session; when
	// empty the service assigns a ULID.
	TransactionID string `json:"transaction_id"`

	CustomerID      *snowflake.ID `json:"customer_id,string,omitempty"`
	CustomerName    string        `json:"customer_name"`
	CustomerAddress string        `json:"customer_address"`
	CustomerGSTIN   string        `json:"customer_gstin"`

	Lines []LineItemRequest `json:"lines"`

	// Global discount applies on top of line discounts; amount and
	// percent are mutually exclusive, percentage wins.
	GlobalDiscountAmount  decimal.Decimal `json:"global_discount_amount"`
	GlobalDiscountPercent decimal.Decimal `json:"global_discount_percent"`

	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`

	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	Type InvoiceType `json:"type"`

	// ModeOverride, when valid, takes precedence over the configuration's
	// default GST mode for this invoice only.
	ModeOverride *taxdomain.GSTMode `json:"mode_override,omitempty"`

	Notes string `json:"notes"`
	Terms string `json:"terms"`
}
