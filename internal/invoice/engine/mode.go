package engine

import (
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
)

// ResolveMode picks the effective GST mode for an invoice: a valid
// per-invoice override wins over the configuration default. An invalid
// default degrades to NO_GST rather than failing the build.
func ResolveMode(override *taxdomain.GSTMode, def taxdomain.GSTMode) taxdomain.GSTMode {
	if override != nil && override.Valid() {
		return *override
	}
	if def.Valid() {
		return def
	}
	return taxdomain.GSTModeNone
}
