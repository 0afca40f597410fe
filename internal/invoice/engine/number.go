package engine

import (
	"fmt"

	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
)

// Number formats a human-readable invoice number: the type prefix followed
// by six decimal digits of the sequence. Callers feed a monotonically
// increasing sequence (see service.Sequencer) rather than a raw timestamp,
// which keeps the historical <PREFIX><6 digits> format without the
// same-millisecond collision of timestamp truncation.
func Number(t invoicedomain.InvoiceType, seq int64) string {
	if seq < 0 {
		seq = -seq
	}
	return fmt.Sprintf("%s%06d", t.Prefix(), seq%1_000_000)
}
