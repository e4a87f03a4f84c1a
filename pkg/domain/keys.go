// Package domain holds the validated value types shared across the service.
// IDs and keys are parsed once at trust boundaries; the rest of the code
// only ever sees the typed form.
package domain

import (
	"fmt"
	"regexp"

	dErrors "keymint/pkg/domain-errors"
)

// keyPattern is compiled once at package init and owned here, so ParseKey
// stays a pure function with no first-use initialization.
var keyPattern = regexp.MustCompile(`^[A-Z]-[a-z0-9]{5}-[A-Z]$`)

// Key is a syntactically validated dedup key. Construction via ParseKey is
// the only validation point; a Key in hand is always well-formed.
type Key string

// ParseKey validates raw against the required shape: one uppercase ASCII
// letter, a dash, exactly five lowercase alphanumerics, a dash, one
// uppercase ASCII letter (e.g. "K-h53dk-A").
func ParseKey(raw string) (Key, error) {
	if !keyPattern.MatchString(raw) {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("key %q is not valid", raw))
	}
	return Key(raw), nil
}

// String returns the raw key text.
func (k Key) String() string {
	return string(k)
}

// TenantID is an opaque tenant namespace identifier. No format is enforced;
// the upstream contract accepts arbitrary strings and callers rely on that.
// Two TenantIDs are equal iff their raw strings are equal.
type TenantID string

// NewTenantID wraps a raw tenant string. It never fails.
func NewTenantID(raw string) TenantID {
	return TenantID(raw)
}

// String returns the raw tenant text.
func (t TenantID) String() string {
	return string(t)
}

// Identity is the globally unique number assigned to a (tenant, key) pair on
// first sighting. Identities are minted from one shared counter starting at
// 1 and are never reassigned.
type Identity uint64
