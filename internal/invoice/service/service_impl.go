package service

import (
	"context"
	"time"

	"github.com/avinaxhroy/billme/internal/clock"
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/avinaxhroy/billme/internal/gstin"
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	"github.com/avinaxhroy/billme/internal/invoice/engine"
	"github.com/avinaxhroy/billme/internal/invoice/numwords"
	"github.com/avinaxhroy/billme/internal/observability/metrics"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	seq      *Sequencer
	repo     invoicedomain.Repository
	products productdomain.Repository
	rates    taxdomain.Resolver
	config   gstconfigdomain.Provider
	metrics  *metrics.Metrics
}

type ServiceParams struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Seq      *Sequencer
	Repo     invoicedomain.Repository
	Products productdomain.Repository
	Rates    taxdomain.Resolver
	Config   gstconfigdomain.Provider
	Metrics  *metrics.Metrics
}

func NewService(p ServiceParams) invoicedomain.Service {
	return &service{
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		seq:      p.Seq,
		repo:     p.Repo,
		products: p.Products,
		rates:    p.Rates,
		config:   p.Config,
		metrics:  p.Metrics,
	}
}

func (s *service) Create(ctx context.Context, req invoicedomain.BuildRequest) (*invoicedomain.InvoiceWithDetails, error) {
	cfg, err := s.config.Active(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, gstconfigdomain.ErrNoActiveConfiguration
	}

	now := s.clock.Now()
	if req.TransactionID == "" {
		req.TransactionID = ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	}

	products, err := s.hydrateLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	rates := make([]*taxdomain.GSTRate, len(req.Lines))
	for i, line := range req.Lines {
		category := line.RateCategory
		if category == "" {
			category = cfg.DefaultRateCategory
		}
		rate, err := s.rates.Resolve(ctx, line.HSNCode, category, now)
		if err != nil {
			return nil, err
		}
		rates[i] = rate
	}

	result, err := engine.Build(engine.BuildInput{
		Request:       req,
		Config:        *cfg,
		Rates:         rates,
		Now:           now,
		Seq:           s.seq.Next(),
		AmountInWords: numwords.InRupees,
	})
	if err != nil {
		return nil, err
	}

	s.assignIDs(result, now)

	adjustments := stockAdjustments(result.Invoice.Type, req.Lines, products)
	if err := s.repo.Save(ctx, result, adjustments); err != nil {
		s.log.Error("persist invoice",
			zap.String("invoice_number", result.Invoice.InvoiceNumber),
			zap.Error(err),
		)
		return nil, err
	}

	s.metrics.RecordInvoice(
		string(result.Invoice.Type),
		string(result.Invoice.GSTMode),
		result.Invoice.Interstate,
		result.Invoice.GrandTotal.InexactFloat64(),
	)
	s.log.Info("invoice created",
		zap.String("invoice_number", result.Invoice.InvoiceNumber),
		zap.String("transaction_id", result.Invoice.TransactionID),
		zap.String("gst_mode", string(result.Invoice.GSTMode)),
		zap.Bool("interstate", result.Invoice.Interstate),
		zap.String("grand_total", result.Invoice.GrandTotal.String()),
	)

	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*invoicedomain.InvoiceWithDetails, error) {
	invoiceID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, invoicedomain.ErrInvalidID
	}

	invoice, items, details, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, invoicedomain.ErrNotFound
	}

	cfg, err := s.config.Active(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, gstconfigdomain.ErrNoActiveConfiguration
	}

	out := &invoicedomain.InvoiceWithDetails{
		Invoice:    *invoice,
		Items:      items,
		GSTDetails: details,
		Config:     *cfg,
	}
	if invoice.CustomerGSTIN != "" {
		out.CustomerGSTINCheck = gstin.Validate(invoice.CustomerGSTIN)
	}
	if details != nil && invoice.GSTMode.ShowOnInvoice() && cfg.ShowTaxSummary {
		out.RateSummary = engine.DisplaySummary(items)
	}
	return out, nil
}

func (s *service) List(ctx context.Context, req invoicedomain.ListRequest) (*invoicedomain.ListResponse, error) {
	invoices, pageInfo, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return &invoicedomain.ListResponse{
		PageInfo: pageInfo,
		Invoices: invoices,
	}, nil
}

// hydrateLines fills line fields left empty by the caller from the product
// catalog. Explicit line values always win so ad hoc overrides at the
// counter keep working.
func (s *service) hydrateLines(ctx context.Context, lines []invoicedomain.LineItemRequest) (map[snowflake.ID]productdomain.Product, error) {
	var ids []snowflake.ID
	for _, line := range lines {
		if line.ProductID != nil {
			ids = append(ids, *line.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ProductID == nil {
			continue
		}
		product, ok := products[*lines[i].ProductID]
		if !ok {
			return nil, productdomain.ErrNotFound
		}
		if lines[i].Description == "" {
			lines[i].Description = product.Name
		}
		if lines[i].HSNCode == nil {
			lines[i].HSNCode = product.HSNCode
		}
		if lines[i].RateCategory == "" {
			lines[i].RateCategory = product.RateCategory
		}
		if lines[i].UnitPrice.IsZero() {
			lines[i].UnitPrice = product.UnitPrice
		}
	}
	return products, nil
}

func (s *service) assignIDs(result *invoicedomain.InvoiceWithDetails, now time.Time) {
	result.Invoice.ID = s.genID.Generate()
	result.Invoice.CreatedAt = now
	result.Invoice.UpdatedAt = now
	for i := range result.Items {
		result.Items[i].ID = s.genID.Generate()
		result.Items[i].InvoiceID = result.Invoice.ID
		result.Items[i].CreatedAt = now
	}
	if result.GSTDetails != nil {
		result.GSTDetails.ID = s.genID.Generate()
		result.GSTDetails.InvoiceID = result.Invoice.ID
		result.GSTDetails.CreatedAt = now
	}
}

// stockAdjustments maps invoice lines onto inventory deltas: sales consume
// stock, returns and credit notes restore it, and drafts (proforma, quote)
// leave it untouched.
func stockAdjustments(t invoicedomain.InvoiceType, lines []invoicedomain.LineItemRequest, products map[snowflake.ID]productdomain.Product) []invoicedomain.StockAdjustment {
	var direction int64
	switch t {
	case invoicedomain.TypeSale, invoicedomain.TypeDebitNote:
		direction = -1
	case invoicedomain.TypeReturn, invoicedomain.TypeCreditNote:
		direction = 1
	default:
		return nil
	}

	var out []invoicedomain.StockAdjustment
	for _, line := range lines {
		if line.ProductID == nil {
			continue
		}
		if _, ok := products[*line.ProductID]; !ok {
			continue
		}
		qty := line.Quantity.Round(0).IntPart()
		if qty == 0 {
			continue
		}
		out = append(out, invoicedomain.StockAdjustment{
			ProductID: *line.ProductID,
			Delta:     direction * qty,
		})
	}
	return out
}
