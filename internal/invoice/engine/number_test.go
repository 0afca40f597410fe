package engine

import (
	"testing"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, "INV000001", Number(invoicedomain.TypeSale, 1))
	assert.Equal(t, "RTN123456", Number(invoicedomain.TypeReturn, 123456))
	assert.Equal(t, "CN000000", Number(invoicedomain.TypeCreditNote, 1_000_000))
	assert.Equal(t, "INV000007", Number(invoicedomain.TypeSale, 7_000_007))
	assert.Equal(t, "INV000005", Number(invoicedomain.TypeSale, -5))
}

func TestNumberSequenceIsCollisionFree(t *testing.T) {
	seen := make(map[string]struct{})
	for seq := int64(0); seq < 1000; seq++ {
		n := Number(invoicedomain.TypeSale, seq)
		_, dup := seen[n]
		assert.False(t, dup, "duplicate %s", n)
		seen[n] = struct{}{}
	}
}
