package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// GSTMode represents how GST is applied to an invoice. The four modes are
// a closed set; every downstream component dispatches on them through the
// predicates below instead of scattered comparisons.
type GSTMode string

const (
	// GSTModeFull charges tax and shows the full breakdown on the invoice.
	GSTModeFull GSTMode = "FULL_GST"
	// GSTModePartial charges tax but restricts the breakdown to internal
	// copies of the invoice.
	GSTModePartial GSTMode = "PARTIAL_GST"
	// GSTModeReference displays the applicable rate without charging it.
	GSTModeReference GSTMode = "GST_REFERENCE"
	// GSTModeNone leaves all tax fields unpopulated.
	GSTModeNone GSTMode = "NO_GST"
)

func (m GSTMode) Valid() bool {
	switch m {
	case GSTModeFull, GSTModePartial, GSTModeReference, GSTModeNone:
		return true
	}
	return false
}

// AppliesTax reports whether invoices under this mode carry non-zero tax
// amounts.
func (m GSTMode) AppliesTax() bool {
	return m == GSTModeFull || m == GSTModePartial
}

// ShowOnInvoice reports whether the tax breakdown (or referenced rate) may
// appear on the customer-facing invoice copy.
func (m GSTMode) ShowOnInvoice() bool {
	return m == GSTModeFull || m == GSTModeReference
}

// GSTRate is a rate-table entry: the per-component percentages for a rate
// category, optionally pinned to an HSN/SAC code, valid over an effective
// range. Which entry applies to a product is the resolver's job; the
// calculation engine only consumes the resolved entry.
type GSTRate struct {
	ID snowflake.ID `gorm:"primaryKey" json:"id,string"`

	Category string  `gorm:"type:text;not null;index" json:"category"`
	HSNCode  *string `gorm:"column:hsn_code;type:text;index" json:"hsn_code,omitempty"`

	CGSTRate decimal.Decimal `gorm:"column:cgst_rate;type:numeric(6,2);not null" json:"cgst_rate"`
	SGSTRate decimal.Decimal `gorm:"column:sgst_rate;type:numeric(6,2);not null" json:"sgst_rate"`
	IGSTRate decimal.Decimal `gorm:"column:igst_rate;type:numeric(6,2);not null" json:"igst_rate"`
	CessRate decimal.Decimal `gorm:"column:cess_rate;type:numeric(6,2);not null" json:"cess_rate"`

	EffectiveFrom time.Time  `gorm:"not null" json:"effective_from"`
	EffectiveTo   *time.Time `gorm:"" json:"effective_to,omitempty"`

	IsEnabled bool `gorm:"column:is_enabled;not null;default:true" json:"is_enabled"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GSTRate) TableName() string { return "gst_rates" }

func (r *GSTRate) Validate() error {
	if r.Category == "" {
		return ErrInvalidCategory
	}
	for _, rate := range []decimal.Decimal{r.CGSTRate, r.SGSTRate, r.IGSTRate, r.CessRate} {
		if rate.IsNegative() {
			return ErrInvalidRate
		}
	}
	if r.EffectiveTo != nil && r.EffectiveTo.Before(r.EffectiveFrom) {
		return ErrInvalidEffectiveRange
	}
	return nil
}

// EffectiveAt reports whether the entry covers the given instant.
func (r GSTRate) EffectiveAt(t time.Time) bool {
	if t.Before(r.EffectiveFrom) {
		return false
	}
	return r.EffectiveTo == nil || !t.After(*r.EffectiveTo)
}
