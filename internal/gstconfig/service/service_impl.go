package service

import (
	"context"
	"strings"

	"github.com/avinaxhroy/billme/internal/clock"
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/avinaxhroy/billme/internal/gstin"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  gstconfigdomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  gstconfigdomain.Repository
}

func NewService(p ServiceParam) gstconfigdomain.Service {
	return &Service{
		log:   p.Log.Named("gstconfig.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// NewProvider exposes the read side consumed by the invoice pipeline.
func NewProvider(repo gstconfigdomain.Repository) gstconfigdomain.Provider {
	return providerFunc{repo: repo}
}

type providerFunc struct {
	repo gstconfigdomain.Repository
}

func (p providerFunc) Active(ctx context.Context) (*gstconfigdomain.GSTConfiguration, error) {
	return p.repo.GetActive(ctx)
}

func (s *Service) Get(ctx context.Context) (*gstconfigdomain.Response, error) {
	cfg, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, gstconfigdomain.ErrNoActiveConfiguration
	}
	return s.toResponse(cfg), nil
}

func (s *Service) Upsert(ctx context.Context, req gstconfigdomain.UpsertRequest) (*gstconfigdomain.Response, error) {
	now := s.clock.Now()

	cfg, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &gstconfigdomain.GSTConfiguration{
			ID:                   s.genID.Generate(),
			RoundTotal:           true,
			ShowGSTINOnInvoice:   true,
			ShowTaxSummary:       true,
			AutoDetectInterstate: true,
			IsActive:             true,
			CreatedAt:            now,
		}
	}

	cfg.LegalName = strings.TrimSpace(req.LegalName)
	cfg.GSTIN = strings.ToUpper(strings.TrimSpace(req.GSTIN))
	cfg.DefaultMode = req.DefaultMode
	cfg.DefaultRateCategory = strings.TrimSpace(req.DefaultRateCategory)

	if req.RoundTotal != nil {
		cfg.RoundTotal = *req.RoundTotal
	}
	if req.ShowGSTINOnInvoice != nil {
		cfg.ShowGSTINOnInvoice = *req.ShowGSTINOnInvoice
	}
	if req.ShowTaxSummary != nil {
		cfg.ShowTaxSummary = *req.ShowTaxSummary
	}
	if req.PriceIncludesTax != nil {
		cfg.PriceIncludesTax = *req.PriceIncludesTax
	}
	if req.AutoDetectInterstate != nil {
		cfg.AutoDetectInterstate = *req.AutoDetectInterstate
	}
	cfg.UpdatedAt = now

	// State code is denormalized from a structurally valid GSTIN; an
	// invalid GSTIN is stored as typed and only reported advisorily.
	check := gstin.Validate(cfg.GSTIN)
	if check.Valid {
		cfg.StateCode = check.StateCode
	} else {
		cfg.StateCode = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	s.log.Info("gst configuration saved",
		zap.String("id", cfg.ID.String()),
		zap.String("default_mode", string(cfg.DefaultMode)),
		zap.Bool("gstin_valid", check.Valid),
	)
	return &gstconfigdomain.Response{Configuration: *cfg, GSTINCheck: check}, nil
}

func (s *Service) toResponse(cfg *gstconfigdomain.GSTConfiguration) *gstconfigdomain.Response {
	var check gstin.Validation
	if cfg.GSTIN != "" {
		check = gstin.Validate(cfg.GSTIN)
	}
	return &gstconfigdomain.Response{Configuration: *cfg, GSTINCheck: check}
}
