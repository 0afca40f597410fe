package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. HSNCode and RateCategory drive GST rate
// resolution; StockQuantity is decremented when an invoice is persisted.
type Product struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id,string"`

	Name string `gorm:"type:text;not null" json:"name"`
	Slug string `gorm:"type:text;not null;uniqueIndex" json:"slug"`

	HSNCode      *string `gorm:"column:hsn_code;type:text;index" json:"hsn_code,omitempty"`
	RateCategory string  `gorm:"column:rate_category;type:text" json:"rate_category"`

	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(14,2);not null" json:"unit_price"`
	StockQuantity int64           `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrNotFound     = errors.New("not_found")
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id snowflake.ID) (*Product, error)
	FindByIDs(ctx context.Context, ids []snowflake.ID) (map[snowflake.ID]Product, error)
	List(ctx context.Context, filter ListRequest) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	LowStock(ctx context.Context, threshold int64) ([]Product, error)
	// AdjustStock adds delta (negative for sales) to stock_quantity.
	AdjustStock(ctx context.Context, id snowflake.ID, delta int64) error
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, req ListRequest) ([]Product, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Product, error)
	LowStock(ctx context.Context) ([]Product, error)
}

type ListRequest struct {
	Name     string
	HSNCode  string
	IsActive *bool
}

type UpsertRequest struct {
	Name          string          `json:"name"`
	HSNCode       *string         `json:"hsn_code,omitempty"`
	RateCategory  string          `json:"rate_category"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity *int64          `json:"stock_quantity,omitempty"`
	IsActive      *bool           `json:"is_active,omitempty"`
}
