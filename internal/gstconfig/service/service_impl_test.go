package service

import (
	"context"
	"testing"
	"time"

	"github.com/avinaxhroy/billme/internal/clock"
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/avinaxhroy/billme/internal/gstconfig/repository"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (gstconfigdomain.Service, gstconfigdomain.Provider) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&gstconfigdomain.GSTConfiguration{}))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	repo := repository.NewRepository(db)
	svc := NewService(ServiceParam{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		Repo:  repo,
	})
	return svc, NewProvider(repo)
}

func TestGetWithoutConfiguration(t *testing.T) {
	svc, provider := setup(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, gstconfigdomain.ErrNoActiveConfiguration)

	cfg, err := provider.Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	svc, provider := setup(t)
	ctx := context.Background()

	resp, err := svc.Upsert(ctx, gstconfigdomain.UpsertRequest{
		LegalName:           "Sharma Mobiles",
		GSTIN:               "27aapfu0939f1zv",
		DefaultMode:         taxdomain.GSTModeFull,
		DefaultRateCategory: "gst-18",
	})
	require.NoError(t, err)
	assert.Equal(t, "27AAPFU0939F1ZV", resp.Configuration.GSTIN)
	assert.Equal(t, "27", resp.Configuration.StateCode)
	assert.True(t, resp.GSTINCheck.Valid)
	assert.True(t, resp.Configuration.RoundTotal)
	firstID := resp.Configuration.ID

	// Second upsert edits the same row instead of creating a sibling.
	rounding := false
	resp, err = svc.Upsert(ctx, gstconfigdomain.UpsertRequest{
		LegalName:           "Sharma Mobiles & Sons",
		GSTIN:               "27AAPFU0939F1ZV",
		DefaultMode:         taxdomain.GSTModeFull,
		DefaultRateCategory: "gst-18",
		RoundTotal:          &rounding,
	})
	require.NoError(t, err)
	assert.Equal(t, firstID, resp.Configuration.ID)
	assert.False(t, resp.Configuration.RoundTotal)

	active, err := provider.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "Sharma Mobiles & Sons", active.LegalName)
}

func TestUpsertKeepsInvalidGSTINAdvisory(t *testing.T) {
	svc, _ := setup(t)

	resp, err := svc.Upsert(context.Background(), gstconfigdomain.UpsertRequest{
		LegalName:           "Cash Counter",
		GSTIN:               "NOTAGSTIN",
		DefaultMode:         taxdomain.GSTModeFull,
		DefaultRateCategory: "gst-18",
	})
	require.NoError(t, err)
	assert.Equal(t, "NOTAGSTIN", resp.Configuration.GSTIN)
	assert.Empty(t, resp.Configuration.StateCode)
	assert.False(t, resp.GSTINCheck.Valid)
}

func TestUpsertValidation(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Upsert(context.Background(), gstconfigdomain.UpsertRequest{
		DefaultMode:         taxdomain.GSTModeFull,
		DefaultRateCategory: "gst-18",
	})
	assert.ErrorIs(t, err, gstconfigdomain.ErrInvalidLegalName)

	_, err = svc.Upsert(context.Background(), gstconfigdomain.UpsertRequest{
		LegalName:   "Sharma Mobiles",
		DefaultMode: taxdomain.GSTModeFull,
	})
	assert.Error(t, err)

	_, err = svc.Upsert(context.Background(), gstconfigdomain.UpsertRequest{
		LegalName:   "Sharma Mobiles",
		DefaultMode: "SOMETHING",
	})
	assert.Error(t, err)
}
