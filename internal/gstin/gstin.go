// Package gstin validates GST identification numbers (GSTIN) and resolves
// the state encoded in their first two digits.
package gstin

import (
	"regexp"
	"strings"
)

// GSTIN structure: 2 digit state code, 5 letter PAN prefix, 4 digit PAN
// number, 1 letter PAN entity, 1 alphanumeric entity code, literal 'Z',
// 1 alphanumeric checksum.
var pattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]$`)

// Validation is the advisory result of validating a GSTIN. A malformed
// GSTIN never fails the surrounding operation; callers decide whether to
// surface Err to the user.
type Validation struct {
	Valid     bool   `json:"valid"`
	Err       string `json:"error,omitempty"`
	StateCode string `json:"state_code,omitempty"`
	StateName string `json:"state_name,omitempty"`
}

// Validate checks the structural pattern and resolves the state code.
// It never returns a Go error; failures are carried as data.
func Validate(raw string) Validation {
	gstin := strings.ToUpper(strings.TrimSpace(raw))
	if gstin == "" {
		return Validation{Err: "gstin is empty"}
	}
	if len(gstin) != 15 {
		return Validation{Err: "gstin must be 15 characters"}
	}
	if !pattern.MatchString(gstin) {
		return Validation{Err: "gstin format is invalid"}
	}

	code := gstin[:2]
	name, ok := stateNames[code]
	if !ok {
		return Validation{Err: "unknown state code " + code}
	}

	return Validation{Valid: true, StateCode: code, StateName: name}
}

// StateCode extracts the two digit state code from a GSTIN, or "" when the
// GSTIN is not valid.
func StateCode(raw string) string {
	return Validate(raw).StateCode
}

// StateName resolves a bare two digit state code.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}
