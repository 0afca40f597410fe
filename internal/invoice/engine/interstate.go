package engine

import (
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"github.com/avinaxhroy/billme/internal/gstin"
)

// IsInterstate decides IGST vs CGST+SGST treatment. The transaction is
// interstate only when auto-detection is on, both parties have a usable
// state code, and the codes differ. Cash/walk-in customers without a GSTIN
// default to intrastate.
func IsInterstate(cfg gstconfigdomain.GSTConfiguration, customerGSTIN string) bool {
	if !cfg.AutoDetectInterstate {
		return false
	}

	shopState := cfg.StateCode
	if shopState == "" {
		shopState = gstin.StateCode(cfg.GSTIN)
	}
	if shopState == "" {
		return false
	}

	customerState := gstin.StateCode(customerGSTIN)
	if customerState == "" {
		return false
	}

	return shopState != customerState
}
