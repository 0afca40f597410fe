package domain

import (
	"context"

	"github.com/avinaxhroy/billme/internal/gstin"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
)

// Provider is the engine-facing read side: the single active configuration.
// A missing configuration is fatal to invoice building.
type Provider interface {
	Active(ctx context.Context) (*GSTConfiguration, error)
}

type Service interface {
	Get(ctx context.Context) (*Response, error)
	Upsert(ctx context.Context, req UpsertRequest) (*Response, error)
}

type Repository interface {
	GetActive(ctx context.Context) (*GSTConfiguration, error)
	Save(ctx context.Context, cfg *GSTConfiguration) error
}

type UpsertRequest struct {
	LegalName           string            `json:"legal_name"`
	GSTIN               string            `json:"gstin"`
	DefaultMode         taxdomain.GSTMode `json:"default_mode"`
	DefaultRateCategory string            `json:"default_rate_category"`

	RoundTotal           *bool `json:"round_total,omitempty"`
	ShowGSTINOnInvoice   *bool `json:"show_gstin_on_invoice,omitempty"`
	ShowTaxSummary       *bool `json:"show_tax_summary,omitempty"`
	PriceIncludesTax     *bool `json:"price_includes_tax,omitempty"`
	AutoDetectInterstate *bool `json:"auto_detect_interstate,omitempty"`
}

type Response struct {
	Configuration GSTConfiguration `json:"configuration"`
	// GSTINCheck is advisory: a malformed shop GSTIN is stored anyway and
	// the caller decides whether to warn.
	GSTINCheck gstin.Validation `json:"gstin_check"`
}
