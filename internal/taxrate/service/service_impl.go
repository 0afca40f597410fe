package service

import (
	"context"
	"strings"
	"time"

	"github.com/avinaxhroy/billme/internal/clock"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  taxdomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  taxdomain.Repository
}

func NewService(p ServiceParam) taxdomain.Service {
	return &Service{
		log:   p.Log.Named("taxrate.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req taxdomain.CreateRequest) (*taxdomain.Response, error) {
	now := s.clock.Now()

	effectiveFrom := now
	if req.EffectiveFrom != nil {
		effectiveFrom = *req.EffectiveFrom
	}

	rate := &taxdomain.GSTRate{
		ID:            s.genID.Generate(),
		Category:      strings.TrimSpace(req.Category),
		HSNCode:       trimPtr(req.HSNCode),
		CGSTRate:      req.CGSTRate,
		SGSTRate:      req.SGSTRate,
		IGSTRate:      req.IGSTRate,
		CessRate:      req.CessRate,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		IsEnabled:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.IsEnabled != nil {
		rate.IsEnabled = *req.IsEnabled
	}

	if err := rate.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rate); err != nil {
		return nil, err
	}

	s.log.Info("gst rate created",
		zap.String("id", rate.ID.String()),
		zap.String("category", rate.Category),
	)
	return toResponse(rate), nil
}

func (s *Service) List(ctx context.Context, req taxdomain.ListRequest) ([]taxdomain.Response, error) {
	rates, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	out := make([]taxdomain.Response, 0, len(rates))
	for i := range rates {
		out = append(out, *toResponse(&rates[i]))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, req taxdomain.UpdateRequest) (*taxdomain.Response, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, taxdomain.ErrInvalidID
	}

	rate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, taxdomain.ErrNotFound
	}

	if req.HSNCode != nil {
		rate.HSNCode = trimPtr(req.HSNCode)
	}
	if req.CGSTRate != nil {
		rate.CGSTRate = *req.CGSTRate
	}
	if req.SGSTRate != nil {
		rate.SGSTRate = *req.SGSTRate
	}
	if req.IGSTRate != nil {
		rate.IGSTRate = *req.IGSTRate
	}
	if req.CessRate != nil {
		rate.CessRate = *req.CessRate
	}
	if req.EffectiveTo != nil {
		rate.EffectiveTo = req.EffectiveTo
	}
	if req.IsEnabled != nil {
		rate.IsEnabled = *req.IsEnabled
	}
	rate.UpdatedAt = s.clock.Now()

	if err := rate.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, rate); err != nil {
		return nil, err
	}
	return toResponse(rate), nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toResponse(rate *taxdomain.GSTRate) *taxdomain.Response {
	return &taxdomain.Response{
		ID:            rate.ID.String(),
		Category:      rate.Category,
		HSNCode:       rate.HSNCode,
		CGSTRate:      rate.CGSTRate,
		SGSTRate:      rate.SGSTRate,
		IGSTRate:      rate.IGSTRate,
		CessRate:      rate.CessRate,
		EffectiveFrom: rate.EffectiveFrom,
		EffectiveTo:   rate.EffectiveTo,
		IsEnabled:     rate.IsEnabled,
		CreatedAt:     rate.CreatedAt,
		UpdatedAt:     rate.UpdatedAt,
	}
}

type resolverParam struct {
	fx.In

	Repo taxdomain.Repository
}

type resolver struct {
	repo taxdomain.Repository
}

// NewResolver returns the rate lookup collaborator used by the invoice
// pipeline: HSN entry first, then the category entry, nil when neither
// exists. A missing rate is a fallback signal, never an error.
func NewResolver(p resolverParam) taxdomain.Resolver {
	return &resolver{repo: p.Repo}
}

func (r *resolver) Resolve(ctx context.Context, hsnCode *string, category string, at time.Time) (*taxdomain.GSTRate, error) {
	if hsnCode != nil && *hsnCode != "" {
		rate, err := r.repo.FindByHSN(ctx, *hsnCode, at)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			return rate, nil
		}
	}
	if category == "" {
		return nil, nil
	}
	return r.repo.FindByCategory(ctx, category, at)
}
