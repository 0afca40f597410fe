package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Resolver returns the applicable GST rate for a line at invoice time.
// Product-specific HSN lookup wins over the category lookup. A nil result
// with a nil error means no entry exists and the caller falls back; a
// missing rate is never an error.
type Resolver interface {
	Resolve(ctx context.Context, hsnCode *string, category string, at time.Time) (*GSTRate, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
}

type ListRequest struct {
	Category  string
	HSNCode   string
	IsEnabled *bool
}

type CreateRequest struct {
	Category      string          `json:"category"`
	HSNCode       *string         `json:"hsn_code"`
	CGSTRate      decimal.Decimal `json:"cgst_rate"`
	SGSTRate      decimal.Decimal `json:"sgst_rate"`
	IGSTRate      decimal.Decimal `json:"igst_rate"`
	CessRate      decimal.Decimal `json:"cess_rate"`
	EffectiveFrom *time.Time      `json:"effective_from"`
	EffectiveTo   *time.Time      `json:"effective_to"`
	IsEnabled     *bool           `json:"is_enabled"`
}

type UpdateRequest struct {
	ID          string           `json:"id"`
	HSNCode     *string          `json:"hsn_code,omitempty"`
	CGSTRate    *decimal.Decimal `json:"cgst_rate,omitempty"`
	SGSTRate    *decimal.Decimal `json:"sgst_rate,omitempty"`
	IGSTRate    *decimal.Decimal `json:"igst_rate,omitempty"`
	CessRate    *decimal.Decimal `json:"cess_rate,omitempty"`
	EffectiveTo *time.Time       `json:"effective_to,omitempty"`
	IsEnabled   *bool            `json:"is_enabled,omitempty"`
}

type Response struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	HSNCode       *string         `json:"hsn_code,omitempty"`
	CGSTRate      decimal.Decimal `json:"cgst_rate"`
	SGSTRate      decimal.Decimal `json:"sgst_rate"`
	IGSTRate      decimal.Decimal `json:"igst_rate"`
	CessRate      decimal.Decimal `json:"cess_rate"`
	EffectiveFrom time.Time       `json:"effective_from"`
	EffectiveTo   *time.Time      `json:"effective_to,omitempty"`
	IsEnabled     bool            `json:"is_enabled"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
