package domain

import (
	"context"
	"errors"
	"time"

	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/avinaxhroy/billme/internal/gstin"
	"github.com/avinaxhroy/billme/pkg/db/pagination"
)

// InvoiceWithDetails is the full result of one build call: the computed
// invoice, its lines, the compliance snapshot (present only when the
// resolved mode applies tax), the display summary, the configuration
// snapshot used, and any advisory findings.
type InvoiceWithDetails struct {
	Invoice    Invoice                        `json:"invoice"`
	Items      []InvoiceLineItem              `json:"items"`
	GSTDetails *InvoiceGSTDetails             `json:"gst_details,omitempty"`
	Config     gstconfigdomain.GSTConfiguration `json:"config"`

	// RateSummary is the display grouping; shown only when the
	// configuration enables the tax summary.
	RateSummary []RateSummaryItem `json:"rate_summary,omitempty"`

	// CustomerGSTINCheck is advisory; an invalid customer GSTIN never
	// blocks invoice creation.
	CustomerGSTINCheck gstin.Validation `json:"customer_gstin_check"`

	// Warnings are advisory validation findings (ambiguous discounts,
	// negative taxable amounts).
	Warnings []string `json:"warnings,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req BuildRequest) (*InvoiceWithDetails, error)
	GetByID(ctx context.Context, id string) (*InvoiceWithDetails, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
}

type ListRequest struct {
	pagination.Pagination

	Type          *InvoiceType
	PaymentStatus *PaymentStatus
	CustomerID    *string
	InvoiceNumber *string
	From          *time.Time
	To            *time.Time
}

type ListResponse struct {
	pagination.PageInfo
	Invoices []Invoice `json:"invoices"`
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
	// ErrDuplicateNumber surfaces a unique-index collision on the invoice
	// number; the sequence restarts from the clock on boot, so back-to-back
	// restarts can land in an already-used window.
	ErrDuplicateNumber = errors.New("duplicate_invoice_number")
	ErrInvalidType     = errors.New("invalid_invoice_type")
	ErrInvalidLine     = errors.New("invalid_line_item")
	ErrInvalidRequest  = errors.New("invalid_request")
)
