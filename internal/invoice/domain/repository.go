package domain

import (
	"context"

	"github.com/avinaxhroy/billme/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
)

// StockAdjustment decrements a product's stock as part of the same
// transaction that persists the invoice.
type StockAdjustment struct {
	ProductID snowflake.ID
	Delta     int64
}

type Repository interface {
	// Save persists the invoice, its lines, and the compliance snapshot
	// (when present) atomically, applying stock adjustments in the same
	// transaction.
	Save(ctx context.Context, result *InvoiceWithDetails, adjustments []StockAdjustment) error

	FindByID(ctx context.Context, id snowflake.ID) (*Invoice, []InvoiceLineItem, *InvoiceGSTDetails, error)
	List(ctx context.Context, req ListRequest) ([]Invoice, pagination.PageInfo, error)
}
