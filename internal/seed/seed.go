// Package seed inserts the standard GST rate slabs on first boot so a
// fresh install can bill immediately.
package seed

import (
	"context"
	"errors"
	"time"

	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// standardSlabs are the GST council's common rate slabs. The category
// names double as the default rate categories products reference.
var standardSlabs = []struct {
	Category string
	Rate     int64
}{
	{"exempt", 0},
	{"gst-5", 5},
	{"gst-12", 12},
	{"gst-18", 18},
	{"gst-28", 28},
}

// EnsureStandardRates seeds the slab categories when the rate table is
// empty. User-defined rates are never touched.
func EnsureStandardRates(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&taxdomain.GSTRate{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, slab := range standardSlabs {
			full := decimal.NewFromInt(slab.Rate)
			half := full.Div(decimal.NewFromInt(2))

			rate := taxdomain.GSTRate{
				ID:            node.Generate(),
				Category:      slab.Category,
				CGSTRate:      half,
				SGSTRate:      half,
				IGSTRate:      full,
				CessRate:      decimal.Zero,
				EffectiveFrom: now,
				IsEnabled:     true,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := tx.Create(&rate).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
