package repository

import (
	"context"
	"errors"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"github.com/avinaxhroy/billme/pkg/db"
	"github.com/avinaxhroy/billme/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) invoicedomain.Repository {
	return &repository{db: db}
}

func (r *repository) Save(ctx context.Context, result *invoicedomain.InvoiceWithDetails, adjustments []invoicedomain.StockAdjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result.Invoice).Error; err != nil {
			if db.IsDuplicateKeyErr(err) {
				return invoicedomain.ErrDuplicateNumber
			}
			return err
		}
		if len(result.Items) > 0 {
			if err := tx.Create(&result.Items).Error; err != nil {
				return err
			}
		}
		if result.GSTDetails != nil {
			if err := tx.Create(result.GSTDetails).Error; err != nil {
				return err
			}
		}
		for _, adj := range adjustments {
			err := tx.Model(&productdomain.Product{}).
				Where("id = ?", adj.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", adj.Delta)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*invoicedomain.Invoice, []invoicedomain.InvoiceLineItem, *invoicedomain.InvoiceGSTDetails, error) {
	var invoice invoicedomain.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}

	var items []invoicedomain.InvoiceLineItem
	err = r.db.WithContext(ctx).
		Where("invoice_id = ?", id).
		Order("sort_order ASC").
		Find(&items).Error
	if err != nil {
		return nil, nil, nil, err
	}

	var details invoicedomain.InvoiceGSTDetails
	err = r.db.WithContext(ctx).First(&details, "invoice_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &invoice, items, nil, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}
	return &invoice, items, &details, nil
}

func (r *repository) List(ctx context.Context, req invoicedomain.ListRequest) ([]invoicedomain.Invoice, pagination.PageInfo, error) {
	stmt := r.db.WithContext(ctx).Model(&invoicedomain.Invoice{})

	if req.Type != nil {
		stmt = stmt.Where("type = ?", *req.Type)
	}
	if req.PaymentStatus != nil {
		stmt = stmt.Where("payment_status = ?", *req.PaymentStatus)
	}
	if req.CustomerID != nil {
		stmt = stmt.Where("customer_id = ?", *req.CustomerID)
	}
	if req.InvoiceNumber != nil {
		stmt = stmt.Where("invoice_number = ?", *req.InvoiceNumber)
	}
	if req.From != nil {
		stmt = stmt.Where("invoice_date >= ?", *req.From)
	}
	if req.To != nil {
		stmt = stmt.Where("invoice_date < ?", *req.To)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, pagination.PageInfo{}, err
	}

	var invoices []invoicedomain.Invoice
	err := stmt.
		Order("invoice_date DESC, id DESC").
		Offset(req.Offset()).
		Limit(req.Limit()).
		Find(&invoices).Error
	if err != nil {
		return nil, pagination.PageInfo{}, err
	}

	return invoices, pagination.BuildPageInfo(req.Pagination, total), nil
}
