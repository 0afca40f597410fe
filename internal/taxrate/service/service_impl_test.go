package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinaxhroy/billme/internal/clock"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/avinaxhroy/billme/internal/taxrate/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (taxdomain.Service, taxdomain.Resolver, *clock.FakeClock) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&taxdomain.GSTRate{}))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	repo := repository.NewRepository(db)

	svc := NewService(ServiceParam{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clk,
		Repo:  repo,
	})
	return svc, NewResolver(resolverParam{Repo: repo}), clk
}

func createRate(t *testing.T, svc taxdomain.Service, category string, hsn *string, cgst, sgst, igst int64) *taxdomain.Response {
	t.Helper()
	resp, err := svc.Create(context.Background(), taxdomain.CreateRequest{
		Category: category,
		HSNCode:  hsn,
		CGSTRate: decimal.NewFromInt(cgst),
		SGSTRate: decimal.NewFromInt(sgst),
		IGSTRate: decimal.NewFromInt(igst),
	})
	require.NoError(t, err)
	return resp
}

func TestResolveHSNWinsOverCategory(t *testing.T) {
	svc, resolver, clk := setup(t)
	ctx := context.Background()

	hsn := "8517"
	createRate(t, svc, "gst-18", nil, 9, 9, 18)
	createRate(t, svc, "gst-12", &hsn, 6, 6, 12)

	rate, err := resolver.Resolve(ctx, &hsn, "gst-18", clk.Now())
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, rate.IGSTRate.Equal(decimal.NewFromInt(12)))
	assert.True(t, rate.EffectiveAt(clk.Now()))

	rate, err = resolver.Resolve(ctx, nil, "gst-18", clk.Now())
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, rate.IGSTRate.Equal(decimal.NewFromInt(18)))
}

func TestResolveUnknownReturnsNil(t *testing.T) {
	svc, resolver, clk := setup(t)
	ctx := context.Background()

	createRate(t, svc, "gst-18", nil, 9, 9, 18)

	unknown := "9999"
	rate, err := resolver.Resolve(ctx, &unknown, "gst-5", clk.Now())
	require.NoError(t, err)
	assert.Nil(t, rate)

	rate, err = resolver.Resolve(ctx, nil, "", clk.Now())
	require.NoError(t, err)
	assert.Nil(t, rate)
}

func TestResolveHonorsEffectiveWindow(t *testing.T) {
	svc, resolver, clk := setup(t)
	ctx := context.Background()

	lastWeek := clk.Now().Add(-7 * 24 * time.Hour)
	created, err := svc.Create(ctx, taxdomain.CreateRequest{
		Category:      "gst-18",
		CGSTRate:      decimal.NewFromInt(9),
		SGSTRate:      decimal.NewFromInt(9),
		IGSTRate:      decimal.NewFromInt(18),
		EffectiveFrom: &lastWeek,
	})
	require.NoError(t, err)

	// Close the entry yesterday; today's lookup falls through.
	yesterday := clk.Now().Add(-24 * time.Hour)
	_, err = svc.Update(ctx, taxdomain.UpdateRequest{
		ID:          created.ID,
		EffectiveTo: &yesterday,
	})
	require.NoError(t, err)

	rate, err := resolver.Resolve(ctx, nil, "gst-18", clk.Now())
	require.NoError(t, err)
	assert.Nil(t, rate)

	rate, err = resolver.Resolve(ctx, nil, "gst-18", yesterday)
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, rate.EffectiveAt(yesterday))
	assert.False(t, rate.EffectiveAt(clk.Now()))
}

func TestResolveSkipsDisabledRates(t *testing.T) {
	svc, resolver, clk := setup(t)
	ctx := context.Background()

	created := createRate(t, svc, "gst-18", nil, 9, 9, 18)

	disabled := false
	_, err := svc.Update(ctx, taxdomain.UpdateRequest{ID: created.ID, IsEnabled: &disabled})
	require.NoError(t, err)

	rate, err := resolver.Resolve(ctx, nil, "gst-18", clk.Now())
	require.NoError(t, err)
	assert.Nil(t, rate)
}

func TestCreateRejectsInvalidRates(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Create(context.Background(), taxdomain.CreateRequest{
		Category: "gst-18",
		CGSTRate: decimal.NewFromInt(-1),
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), taxdomain.CreateRequest{})
	assert.ErrorIs(t, err, taxdomain.ErrInvalidCategory)
}

func TestUpdateUnknownRate(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Update(context.Background(), taxdomain.UpdateRequest{ID: "123456"})
	assert.ErrorIs(t, err, taxdomain.ErrNotFound)

	_, err = svc.Update(context.Background(), taxdomain.UpdateRequest{ID: "abc"})
	assert.ErrorIs(t, err, taxdomain.ErrInvalidID)
}

func TestListFilters(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	hsn := "8517"
	createRate(t, svc, "gst-18", &hsn, 9, 9, 18)
	createRate(t, svc, "gst-5", nil, 2, 3, 5)

	all, err := svc.List(ctx, taxdomain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.List(ctx, taxdomain.ListRequest{HSNCode: "8517"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "gst-18", got[0].Category)
}
