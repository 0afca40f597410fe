package service

import (
	"context"
	"strings"

	"github.com/avinaxhroy/billme/internal/clock"
	"github.com/avinaxhroy/billme/internal/config"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type service struct {
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      productdomain.Repository
	reporting *config.ReportingConfigHolder
}

type ServiceParams struct {
	fx.In

	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      productdomain.Repository
	Reporting *config.ReportingConfigHolder
}

func NewService(p ServiceParams) productdomain.Service {
	return &service{
		log:       p.Log.Named("product.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		reporting: p.Reporting,
	}
}

func (s *service) Create(ctx context.Context, req productdomain.UpsertRequest) (*productdomain.Product, error) {
	now := s.clock.Now()
	product := productdomain.Product{
		ID:        s.genID.Generate(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&product, req)

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &product); err != nil {
		s.log.Error("create product", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

func (s *service) Get(ctx context.Context, id string) (*productdomain.Product, error) {
	productID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, productdomain.ErrInvalidID
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, productdomain.ErrNotFound
	}
	return product, nil
}

func (s *service) List(ctx context.Context, req productdomain.ListRequest) ([]productdomain.Product, error) {
	return s.repo.List(ctx, req)
}

func (s *service) Update(ctx context.Context, id string, req productdomain.UpsertRequest) (*productdomain.Product, error) {
	productID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, productdomain.ErrInvalidID
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, productdomain.ErrNotFound
	}

	apply(product, req)
	product.UpdatedAt = s.clock.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.log.Error("update product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *service) LowStock(ctx context.Context) ([]productdomain.Product, error) {
	threshold := int64(s.reporting.Get().LowStockThreshold)
	return s.repo.LowStock(ctx, threshold)
}

func apply(product *productdomain.Product, req productdomain.UpsertRequest) {
	product.Name = strings.TrimSpace(req.Name)
	product.Slug = slug.Make(product.Name)
	product.HSNCode = req.HSNCode
	product.RateCategory = req.RateCategory
	product.UnitPrice = req.UnitPrice
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
}
