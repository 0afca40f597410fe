package domain

import "errors"

var (
	ErrInvalidID             = errors.New("invalid_id")
	ErrNotFound              = errors.New("not_found")
	ErrInvalidCategory       = errors.New("invalid_category")
	ErrInvalidRate           = errors.New("invalid_rate")
	ErrInvalidEffectiveRange = errors.New("invalid_effective_range")
)
