package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinaxhroy/billme/internal/clock"
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	gstconfigrepo "github.com/avinaxhroy/billme/internal/gstconfig/repository"
	gstconfigservice "github.com/avinaxhroy/billme/internal/gstconfig/service"
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	invoicerepo "github.com/avinaxhroy/billme/internal/invoice/repository"
	"github.com/avinaxhroy/billme/internal/observability/metrics"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	productrepo "github.com/avinaxhroy/billme/internal/product/repository"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, hsnCode *string, category string, at time.Time) (*taxdomain.GSTRate, error) {
	args := m.Called(ctx, hsnCode, category, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxdomain.GSTRate), args.Error(1)
}

type stubProvider struct {
	cfg *gstconfigdomain.GSTConfiguration
	err error
}

func (p *stubProvider) Active(ctx context.Context) (*gstconfigdomain.GSTConfiguration, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.cfg, nil
}

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

func testConfig() *gstconfigdomain.GSTConfiguration {
	return &gstconfigdomain.GSTConfiguration{
		LegalName:            "Sharma Mobiles",
		GSTIN:                "27AAPFU0939F1ZV",
		StateCode:            "27",
		DefaultMode:          taxdomain.GSTModeFull,
		DefaultRateCategory:  "gst-18",
		RoundTotal:           true,
		ShowTaxSummary:       true,
		AutoDetectInterstate: true,
		IsActive:             true,
	}
}

func testRate18() *taxdomain.GSTRate {
	return &taxdomain.GSTRate{
		Category:  "gst-18",
		CGSTRate:  decimal.NewFromInt(9),
		SGSTRate:  decimal.NewFromInt(9),
		IGSTRate:  decimal.NewFromInt(18),
		IsEnabled: true,
	}
}

func newTestService(t *testing.T, db *gorm.DB, resolver taxdomain.Resolver, provider gstconfigdomain.Provider) invoicedomain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC))

	return NewService(ServiceParams{
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clk,
		Seq:      NewSequencer(clk),
		Repo:     invoicerepo.NewRepository(db),
		Products: productrepo.NewRepository(db),
		Rates:    resolver,
		Config:   provider,
		Metrics:  metrics.New(),
	})
}

func TestCreatePersistsInvoiceAndDecrementsStock(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	products := productrepo.NewRepository(db)
	product := &productdomain.Product{
		ID:            snowflake.ID(1001),
		Name:          "Handset",
		Slug:          "handset",
		HSNCode:       strPtr("8517"),
		RateCategory:  "gst-18",
		UnitPrice:     decimal.NewFromInt(5000),
		StockQuantity: 10,
		IsActive:      true,
	}
	require.NoError(t, products.Create(ctx, product))

	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything, "gst-18", mock.Anything).Return(testRate18(), nil)

	svc := newTestService(t, db, resolver, &stubProvider{cfg: testConfig()})

	productID := product.ID
	resp, err := svc.Create(ctx, invoicedomain.BuildRequest{
		CustomerName: "Walk-in",
		Lines: []invoicedomain.LineItemRequest{
			{ProductID: &productID, Quantity: decimal.NewFromInt(2)},
		},
		PaymentMethod: invoicedomain.PaymentCash,
		PaymentStatus: invoicedomain.PaymentStatusPaid,
	})
	require.NoError(t, err)

	// Unit price and description hydrate from the catalog.
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Handset", resp.Items[0].Description)
	assert.True(t, resp.Invoice.TaxableAmount.Equal(decimal.RequireFromString("10000")))
	assert.True(t, resp.Invoice.GrandTotal.Equal(decimal.RequireFromString("11800")))
	assert.NotEmpty(t, resp.Invoice.TransactionID)
	assert.Contains(t, resp.Invoice.InvoiceNumber, "INV")
	assert.Equal(t, "Eleven Thousand Eight Hundred Rupees Only", resp.Invoice.AmountInWords)
	require.NotNil(t, resp.GSTDetails)
	assert.NotEmpty(t, resp.RateSummary)

	var stored invoicedomain.Invoice
	require.NoError(t, db.First(&stored, "id = ?", resp.Invoice.ID).Error)
	assert.Equal(t, resp.Invoice.InvoiceNumber, stored.InvoiceNumber)

	var itemCount int64
	require.NoError(t, db.Model(&invoicedomain.InvoiceLineItem{}).Where("invoice_id = ?", resp.Invoice.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(1), itemCount)

	updated, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), updated.StockQuantity)

	resolver.AssertExpectations(t)
}

func TestCreateReturnRestoresStock(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	products := productrepo.NewRepository(db)
	product := &productdomain.Product{
		ID:            snowflake.ID(1002),
		Name:          "Charger",
		Slug:          "charger",
		RateCategory:  "gst-18",
		UnitPrice:     decimal.NewFromInt(500),
		StockQuantity: 3,
		IsActive:      true,
	}
	require.NoError(t, products.Create(ctx, product))

	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything, "gst-18", mock.Anything).Return(testRate18(), nil)

	svc := newTestService(t, db, resolver, &stubProvider{cfg: testConfig()})

	productID := product.ID
	resp, err := svc.Create(ctx, invoicedomain.BuildRequest{
		Type: invoicedomain.TypeReturn,
		Lines: []invoicedomain.LineItemRequest{
			{ProductID: &productID, Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Invoice.InvoiceNumber, "RTN")

	updated, err := products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.StockQuantity)
}

func TestCreateFailsWithoutActiveConfiguration(t *testing.T) {
	db := openTestDB(t)

	svc := newTestService(t, db, &mockResolver{}, &stubProvider{err: gstconfigdomain.ErrNoActiveConfiguration})

	_, err := svc.Create(context.Background(), invoicedomain.BuildRequest{
		Lines: []invoicedomain.LineItemRequest{
			{Description: "Ad hoc", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	assert.ErrorIs(t, err, gstconfigdomain.ErrNoActiveConfiguration)

	var count int64
	require.NoError(t, db.Model(&invoicedomain.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOnFreshInstallFailsCleanly(t *testing.T) {
	// A fresh install has no configuration row at all; the real provider
	// reports that as a nil configuration rather than an error, and invoice
	// building must still abort with the sentinel instead of panicking.
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&gstconfigdomain.GSTConfiguration{}))
	ctx := context.Background()

	provider := gstconfigservice.NewProvider(gstconfigrepo.NewRepository(db))
	cfg, err := provider.Active(ctx)
	require.NoError(t, err)
	require.Nil(t, cfg)

	svc := newTestService(t, db, &mockResolver{}, provider)

	_, err = svc.Create(ctx, invoicedomain.BuildRequest{
		Lines: []invoicedomain.LineItemRequest{
			{Description: "Ad hoc", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	assert.ErrorIs(t, err, gstconfigdomain.ErrNoActiveConfiguration)

	var count int64
	require.NoError(t, db.Model(&invoicedomain.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetByIDFailsCleanlyWithNilConfiguration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything, "gst-18", mock.Anything).Return(testRate18(), nil)

	svc := newTestService(t, db, resolver, &stubProvider{cfg: testConfig()})
	created, err := svc.Create(ctx, invoicedomain.BuildRequest{
		Lines: []invoicedomain.LineItemRequest{
			{Description: "Ad hoc", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	// Configuration deactivated after the invoice was written.
	bare := newTestService(t, db, resolver, &stubProvider{})
	_, err = bare.GetByID(ctx, created.Invoice.ID.String())
	assert.ErrorIs(t, err, gstconfigdomain.ErrNoActiveConfiguration)
}

func TestCreateUnknownProductFails(t *testing.T) {
	db := openTestDB(t)

	resolver := &mockResolver{}
	svc := newTestService(t, db, resolver, &stubProvider{cfg: testConfig()})

	missing := snowflake.ID(9999)
	_, err := svc.Create(context.Background(), invoicedomain.BuildRequest{
		Lines: []invoicedomain.LineItemRequest{
			{ProductID: &missing, Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, productdomain.ErrNotFound)
}

func TestGetByIDReturnsStoredInvoice(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything, "gst-18", mock.Anything).Return(testRate18(), nil)

	svc := newTestService(t, db, resolver, &stubProvider{cfg: testConfig()})

	created, err := svc.Create(ctx, invoicedomain.BuildRequest{
		Lines: []invoicedomain.LineItemRequest{
			{Description: "Ad hoc", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1000)},
		},
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.Invoice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Invoice.InvoiceNumber, got.Invoice.InvoiceNumber)
	assert.Len(t, got.Items, 1)
	require.NotNil(t, got.GSTDetails)
	assert.NotEmpty(t, got.RateSummary)
}

func TestGetByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db, &mockResolver{}, &stubProvider{cfg: testConfig()})

	_, err := svc.GetByID(context.Background(), "12345")
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, invoicedomain.ErrInvalidID)
}

func TestListFiltersAndPaginates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, mock.Anything, "gst-18", mock.Anything).Return(testRate18(), nil)

	svc := newTestService(t, db, resolver, &stubProvider{cfg: testConfig()})

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, invoicedomain.BuildRequest{
			Lines: []invoicedomain.LineItemRequest{
				{Description: "Ad hoc", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
			},
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, invoicedomain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Invoices, 3)
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.False(t, resp.HasMore)

	saleType := invoicedomain.TypeReturn
	resp, err = svc.List(ctx, invoicedomain.ListRequest{Type: &saleType})
	require.NoError(t, err)
	assert.Empty(t, resp.Invoices)
}

func strPtr(s string) *string { return &s }
