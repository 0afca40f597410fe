package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, rate *GSTRate) error
	FindByID(ctx context.Context, id snowflake.ID) (*GSTRate, error)
	List(ctx context.Context, filter ListRequest) ([]GSTRate, error)
	Update(ctx context.Context, rate *GSTRate) error

	// FindByHSN returns the enabled entry for an HSN code effective at t,
	// or nil when none exists.
	FindByHSN(ctx context.Context, hsnCode string, at time.Time) (*GSTRate, error)
	// FindByCategory returns the enabled entry for a rate category
	// effective at t, or nil when none exists.
	FindByCategory(ctx context.Context, category string, at time.Time) (*GSTRate, error)
}
