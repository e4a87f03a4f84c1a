// Package alloc provides the identity allocator: the single source of new
// identities for the whole registry. One instance is constructed at startup
// and injected wherever minting happens, so ownership stays explicit and the
// allocator is testable in isolation.
package alloc

import (
	"sync/atomic"

	"keymint/pkg/domain"
)

// Allocator hands out strictly monotonic identities. Safe for concurrent
// use; each Next call returns one more than the previous call returned.
type Allocator struct {
	last atomic.Uint64
}

// New constructs a fresh allocator. The first Next call returns 1.
func New() *Allocator {
	return &Allocator{}
}

// Next mints and returns the next identity.
func (a *Allocator) Next() domain.Identity {
	return domain.Identity(a.last.Add(1))
}

// Last returns the most recently minted identity, or 0 if none was minted.
// Used for observability only; never for allocation decisions.
func (a *Allocator) Last() domain.Identity {
	return domain.Identity(a.last.Load())
}
