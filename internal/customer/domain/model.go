package domain

import (
	"context"
	"errors"
	"time"

	"github.com/avinaxhroy/billme/internal/gstin"
	"github.com/bwmarrin/snowflake"
)

// Customer is a shop customer. GSTIN is optional; walk-in/B2C sales carry
// none and are always treated as intrastate.
type Customer struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id,string"`

	Name    string  `gorm:"type:text;not null" json:"name"`
	Phone   string  `gorm:"type:text;index" json:"phone"`
	Email   *string `gorm:"type:text" json:"email,omitempty"`
	Address string  `gorm:"type:text" json:"address"`

	GSTIN     *string `gorm:"type:text" json:"gstin,omitempty"`
	StateCode *string `gorm:"column:state_code;type:text" json:"state_code,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}
	return nil
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, filter ListRequest) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
}

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Update(ctx context.Context, id string, req UpsertRequest) (*Response, error)
}

type ListRequest struct {
	Name  string
	Phone string
}

type UpsertRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	Address string  `json:"address"`
	GSTIN   *string `json:"gstin,omitempty"`
}

type Response struct {
	Customer   Customer         `json:"customer"`
	GSTINCheck gstin.Validation `json:"gstin_check"`
}
