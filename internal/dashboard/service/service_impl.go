package service

import (
	"context"
	"time"

	"github.com/avinaxhroy/billme/internal/clock"
	"github.com/avinaxhroy/billme/internal/config"
	dashboarddomain "github.com/avinaxhroy/billme/internal/dashboard/domain"
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	log       *zap.Logger
	db        *gorm.DB
	clock     clock.Clock
	products  productdomain.Repository
	reporting *config.ReportingConfigHolder
}

type ServiceParams struct {
	fx.In

	Log       *zap.Logger
	DB        *gorm.DB
	Clock     clock.Clock
	Products  productdomain.Repository
	Reporting *config.ReportingConfigHolder
}

func NewService(p ServiceParams) dashboarddomain.Service {
	return &service{
		log:       p.Log.Named("dashboard.service"),
		db:        p.DB,
		clock:     p.Clock,
		products:  p.Products,
		reporting: p.Reporting,
	}
}

func (s *service) Summary(ctx context.Context) (*dashboarddomain.Summary, error) {
	cfg := s.reporting.Get()
	now := s.clock.Now()
	to := now
	from := now.AddDate(0, 0, -cfg.SummaryDays).Truncate(24 * time.Hour)

	sales, err := s.dailySales(ctx, from, to)
	if err != nil {
		return nil, err
	}
	rates, err := s.rateCollections(ctx, from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.topProducts(ctx, from, to, cfg.TopProductsLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.LowStock(ctx, int64(cfg.LowStockThreshold))
	if err != nil {
		return nil, err
	}

	return &dashboarddomain.Summary{
		From:        from,
		To:          to,
		Sales:       sales,
		Rates:       rates,
		TopProducts: top,
		LowStock:    lowStock,
	}, nil
}

// Credit notes and returns carry negative business meaning but positive
// stored amounts, so sales roll-ups count SALE invoices only.

func (s *service) dailySales(ctx context.Context, from, to time.Time) ([]dashboarddomain.DailySales, error) {
	var rows []dashboarddomain.DailySales
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			DATE(invoice_date) AS day,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(taxable_amount), 0) AS taxable_total,
			COALESCE(SUM(total_gst_amount), 0) AS gst_total,
			COALESCE(SUM(grand_total), 0) AS grand_total
		FROM invoices
		WHERE type = ? AND invoice_date >= ? AND invoice_date < ?
		GROUP BY DATE(invoice_date)
		ORDER BY day ASC
	`, invoicedomain.TypeSale, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *service) rateCollections(ctx context.Context, from, to time.Time) ([]dashboarddomain.RateCollection, error) {
	var rows []dashboarddomain.RateCollection
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			li.cgst_rate + li.sgst_rate + li.igst_rate AS rate,
			COALESCE(SUM(li.taxable_amount), 0) AS taxable_total,
			COALESCE(SUM(li.cgst_amount), 0) AS cgst_total,
			COALESCE(SUM(li.sgst_amount), 0) AS sgst_total,
			COALESCE(SUM(li.igst_amount), 0) AS igst_total,
			COALESCE(SUM(li.cess_amount), 0) AS cess_total
		FROM invoice_line_items li
		JOIN invoices i ON i.id = li.invoice_id
		WHERE i.type = ? AND i.invoice_date >= ? AND i.invoice_date < ?
		GROUP BY li.cgst_rate + li.sgst_rate + li.igst_rate
		ORDER BY rate ASC
	`, invoicedomain.TypeSale, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *service) topProducts(ctx context.Context, from, to time.Time, limit int) ([]dashboarddomain.TopProduct, error) {
	var rows []dashboarddomain.TopProduct
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			li.product_id AS product_id,
			COALESCE(p.name, li.description) AS name,
			COALESCE(SUM(li.quantity), 0) AS quantity_sold,
			COALESCE(SUM(li.line_total), 0) AS revenue
		FROM invoice_line_items li
		JOIN invoices i ON i.id = li.invoice_id
		LEFT JOIN products p ON p.id = li.product_id
		WHERE i.type = ? AND i.invoice_date >= ? AND i.invoice_date < ?
			AND li.product_id IS NOT NULL
		GROUP BY li.product_id, COALESCE(p.name, li.description)
		ORDER BY revenue DESC
		LIMIT ?
	`, invoicedomain.TypeSale, from, to, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
