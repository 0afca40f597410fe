package domain

import "errors"

var (
	// ErrNoActiveConfiguration aborts invoice building entirely; the
	// engine refuses to produce a partial invoice without a configuration
	// snapshot.
	ErrNoActiveConfiguration = errors.New("no_active_gst_configuration")

	ErrInvalidLegalName    = errors.New("invalid_legal_name")
	ErrInvalidMode         = errors.New("invalid_gst_mode")
	ErrMissingRateCategory = errors.New("missing_default_rate_category")
)
