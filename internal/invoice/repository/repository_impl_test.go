package repository

import (
	"context"
	"testing"
	"time"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&productdomain.Product{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceLineItem{},
		&invoicedomain.InvoiceGSTDetails{},
	))
	return db
}

func storedInvoice(id snowflake.ID, number string) *invoicedomain.InvoiceWithDetails {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	return &invoicedomain.InvoiceWithDetails{
		Invoice: invoicedomain.Invoice{
			ID:            id,
			InvoiceNumber: number,
			TransactionID: "txn-" + number,
			Type:          invoicedomain.TypeSale,
			GSTMode:       "FULL_GST",
			GrandTotal:    decimal.NewFromInt(100),
			InvoiceDate:   now,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		Items: []invoicedomain.InvoiceLineItem{
			{
				ID:        id + 1,
				InvoiceID: id,
				Quantity:  decimal.NewFromInt(1),
				UnitPrice: decimal.NewFromInt(100),
			},
		},
	}
}

func TestSaveDuplicateInvoiceNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, storedInvoice(snowflake.ID(100), "INV000042"), nil))

	// A restarted sequence can land in an already-used window; the unique
	// index collision must surface as the sentinel, not a raw driver error.
	err := repo.Save(ctx, storedInvoice(snowflake.ID(200), "INV000042"), nil)
	assert.ErrorIs(t, err, invoicedomain.ErrDuplicateNumber)

	// The failed save leaves nothing behind.
	var invoices int64
	require.NoError(t, db.Model(&invoicedomain.Invoice{}).Count(&invoices).Error)
	assert.Equal(t, int64(1), invoices)

	var items int64
	require.NoError(t, db.Model(&invoicedomain.InvoiceLineItem{}).Count(&items).Error)
	assert.Equal(t, int64(1), items)
}

func TestSaveAppliesStockAdjustments(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := productdomain.Product{
		ID:            snowflake.ID(10),
		Name:          "Handset",
		Slug:          "handset",
		RateCategory:  "gst-18",
		UnitPrice:     decimal.NewFromInt(100),
		StockQuantity: 5,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&product).Error)

	err := repo.Save(ctx, storedInvoice(snowflake.ID(300), "INV000043"), []invoicedomain.StockAdjustment{
		{ProductID: product.ID, Delta: -2},
	})
	require.NoError(t, err)

	var updated productdomain.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, int64(3), updated.StockQuantity)
}
