package engine

import (
	"testing"

	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsInterstate(t *testing.T) {
	cfg := intrastateConfig()

	tests := []struct {
		name          string
		customerGSTIN string
		want          bool
	}{
		{"different state", "29AAPFU0939F1ZV", true},
		{"same state", "27BBPFU0939F1ZV", false},
		{"no customer gstin", "", false},
		{"malformed customer gstin", "ABC123", false},
		{"unknown state prefix", "99AAPFU0939F1ZV", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsInterstate(cfg, tc.customerGSTIN))
		})
	}
}

func TestIsInterstateAutoDetectOff(t *testing.T) {
	cfg := intrastateConfig()
	cfg.AutoDetectInterstate = false
	assert.False(t, IsInterstate(cfg, "29AAPFU0939F1ZV"))
}

func TestIsInterstateShopStateFromGSTIN(t *testing.T) {
	cfg := intrastateConfig()
	cfg.StateCode = ""
	assert.True(t, IsInterstate(cfg, "29AAPFU0939F1ZV"))

	cfg.GSTIN = ""
	assert.False(t, IsInterstate(cfg, "29AAPFU0939F1ZV"))
}

func TestResolveMode(t *testing.T) {
	full := taxdomain.GSTModeFull
	invalid := taxdomain.GSTMode("BOGUS")

	assert.Equal(t, taxdomain.GSTModeFull, ResolveMode(&full, taxdomain.GSTModeNone))
	assert.Equal(t, taxdomain.GSTModePartial, ResolveMode(nil, taxdomain.GSTModePartial))
	assert.Equal(t, taxdomain.GSTModePartial, ResolveMode(&invalid, taxdomain.GSTModePartial))
	assert.Equal(t, taxdomain.GSTModeNone, ResolveMode(nil, invalid))
}

func TestModePredicates(t *testing.T) {
	assert.True(t, taxdomain.GSTModeFull.AppliesTax())
	assert.True(t, taxdomain.GSTModePartial.AppliesTax())
	assert.False(t, taxdomain.GSTModeReference.AppliesTax())
	assert.False(t, taxdomain.GSTModeNone.AppliesTax())

	assert.True(t, taxdomain.GSTModeFull.ShowOnInvoice())
	assert.False(t, taxdomain.GSTModePartial.ShowOnInvoice())
	assert.True(t, taxdomain.GSTModeReference.ShowOnInvoice())
	assert.False(t, taxdomain.GSTModeNone.ShowOnInvoice())
}
