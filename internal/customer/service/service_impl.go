package service

import (
	"context"
	"strings"

	customerdomain "github.com/avinaxhroy/billme/internal/customer/domain"
	"github.com/avinaxhroy/billme/internal/clock"
	"github.com/avinaxhroy/billme/internal/gstin"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  customerdomain.Repository
}

type ServiceParams struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  customerdomain.Repository
}

func NewService(p ServiceParams) customerdomain.Service {
	return &service{
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *service) Create(ctx context.Context, req customerdomain.UpsertRequest) (*customerdomain.Response, error) {
	now := s.clock.Now()
	customer := customerdomain.Customer{
		ID:        s.genID.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	check := apply(&customer, req)

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &customer); err != nil {
		s.log.Error("create customer", zap.Error(err))
		return nil, err
	}
	return &customerdomain.Response{Customer: customer, GSTINCheck: check}, nil
}

func (s *service) Get(ctx context.Context, id string) (*customerdomain.Response, error) {
	customerID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, customerdomain.ErrInvalidID
	}

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, customerdomain.ErrNotFound
	}

	resp := &customerdomain.Response{Customer: *customer}
	if customer.GSTIN != nil {
		resp.GSTINCheck = gstin.Validate(*customer.GSTIN)
	}
	return resp, nil
}

func (s *service) List(ctx context.Context, req customerdomain.ListRequest) ([]customerdomain.Response, error) {
	customers, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := make([]customerdomain.Response, 0, len(customers))
	for _, c := range customers {
		item := customerdomain.Response{Customer: c}
		if c.GSTIN != nil {
			item.GSTINCheck = gstin.Validate(*c.GSTIN)
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req customerdomain.UpsertRequest) (*customerdomain.Response, error) {
	customerID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, customerdomain.ErrInvalidID
	}

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, customerdomain.ErrNotFound
	}

	check := apply(customer, req)
	customer.UpdatedAt = s.clock.Now()

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		s.log.Error("update customer", zap.Error(err))
		return nil, err
	}
	return &customerdomain.Response{Customer: *customer, GSTINCheck: check}, nil
}

// apply copies the request onto the customer and revalidates the GSTIN. A
// malformed GSTIN is stored as given and only flagged in the response; the
// invoice engine rechecks it at billing time.
func apply(customer *customerdomain.Customer, req customerdomain.UpsertRequest) gstin.Validation {
	customer.Name = strings.TrimSpace(req.Name)
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.Email = req.Email
	customer.Address = req.Address
	customer.GSTIN = req.GSTIN
	customer.StateCode = nil

	var check gstin.Validation
	if req.GSTIN != nil && *req.GSTIN != "" {
		check = gstin.Validate(*req.GSTIN)
		if check.Valid {
			code := check.StateCode
			customer.StateCode = &code
		}
	}
	return check
}
