// Package domain defines the reporting aggregates for the shop dashboard.
package domain

import (
	"context"
	"time"

	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"github.com/shopspring/decimal"
)

// DailySales is one day's revenue roll-up.
type DailySales struct {
	Day          time.Time       `json:"day"`
	InvoiceCount int64           `json:"invoice_count"`
	TaxableTotal decimal.Decimal `json:"taxable_total"`
	GSTTotal     decimal.Decimal `json:"gst_total"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// RateCollection is tax collected per effective GST rate, split into its
// components, across the reporting window.
type RateCollection struct {
	Rate         decimal.Decimal `json:"rate"`
	TaxableTotal decimal.Decimal `json:"taxable_total"`
	CGSTTotal    decimal.Decimal `json:"cgst_total"`
	SGSTTotal    decimal.Decimal `json:"sgst_total"`
	IGSTTotal    decimal.Decimal `json:"igst_total"`
	CessTotal    decimal.Decimal `json:"cess_total"`
}

// TopProduct ranks products by revenue across the reporting window.
type TopProduct struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type Summary struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	Sales       []DailySales            `json:"sales"`
	Rates       []RateCollection        `json:"rates"`
	TopProducts []TopProduct            `json:"top_products"`
	LowStock    []productdomain.Product `json:"low_stock"`
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}
