// Package domain holds the shop-level GST configuration consumed read-only
// by the invoice calculation engine.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
)

// GSTConfiguration is the shop's tax setup. Exactly one row is active at a
// time; the invoice engine receives a snapshot of it per build call and
// never mutates it.
type GSTConfiguration struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id,string"`

	LegalName string `gorm:"type:text;not null" json:"legal_name"`
	GSTIN     string `gorm:"type:text" json:"gstin"`
	// StateCode is derived from GSTIN on save; kept denormalized so
	// interstate detection does not re-parse per invoice.
	StateCode string `gorm:"column:state_code;type:text" json:"state_code"`

	DefaultMode         taxdomain.GSTMode `gorm:"column:default_mode;type:text;not null" json:"default_mode"`
	DefaultRateCategory string            `gorm:"column:default_rate_category;type:text;not null" json:"default_rate_category"`

	RoundTotal           bool `gorm:"column:round_total;not null;default:true" json:"round_total"`
	ShowGSTINOnInvoice   bool `gorm:"column:show_gstin_on_invoice;not null;default:true" json:"show_gstin_on_invoice"`
	ShowTaxSummary       bool `gorm:"column:show_tax_summary;not null;default:true" json:"show_tax_summary"`
	PriceIncludesTax     bool `gorm:"column:price_includes_tax;not null;default:false" json:"price_includes_tax"`
	AutoDetectInterstate bool `gorm:"column:auto_detect_interstate;not null;default:true" json:"auto_detect_interstate"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GSTConfiguration) TableName() string { return "gst_configurations" }

func (c *GSTConfiguration) Validate() error {
	if c.LegalName == "" {
		return ErrInvalidLegalName
	}
	if !c.DefaultMode.Valid() {
		return ErrInvalidMode
	}
	if c.DefaultMode.AppliesTax() && c.DefaultRateCategory == "" {
		return ErrMissingRateCategory
	}
	return nil
}
