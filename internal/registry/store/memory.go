// Package store holds the deduplication registry: the two-level concurrent
// map from tenant to (key -> identity).
package store

import (
	"context"
	"sync"

	"keymint/internal/registry/alloc"
	"keymint/pkg/domain"
)

// tenantEntry is one tenant's key table with its own lock, so operations on
// different tenants never contend once the tenant exists.
type tenantEntry struct {
	mu   sync.RWMutex
	keys map[domain.Key]domain.Identity
}

// InMemory is the in-memory deduplication registry. State lives for the
// process lifetime: tenants and keys are created lazily and never removed.
//
// Locking discipline: the outer lock guards only the tenant table and is
// released before any per-tenant lock is taken, so a slow insert under one
// tenant cannot block lookups under another. Both the tenant table and each
// key table are mutated through a double-checked insert-if-absent, never a
// separate read-check followed by a separate write.
type InMemory struct {
	alloc *alloc.Allocator

	mu      sync.RWMutex
	tenants map[domain.TenantID]*tenantEntry
}

// NewInMemory constructs an empty registry minting identities from allocator.
func NewInMemory(allocator *alloc.Allocator) *InMemory {
	return &InMemory{
		alloc:   allocator,
		tenants: make(map[domain.TenantID]*tenantEntry),
	}
}

// InsertOrGet returns the identity for (tenant, key), minting and recording
// a new one if the pair was never seen. isNew reports whether this call did
// the minting; among racing first callers exactly one observes isNew=true.
//
// A pair that already exists is served with read locks only: no allocator
// call, no structural mutation.
func (s *InMemory) InsertOrGet(_ context.Context, tenant domain.TenantID, key domain.Key) (domain.Identity, bool) {
	entry := s.tenantEntry(tenant)

	entry.mu.RLock()
	id, ok := entry.keys[key]
	entry.mu.RUnlock()
	if ok {
		return id, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	// Re-check under the write lock: a racing caller may have assigned the
	// key between our read and write sections. The allocator runs only once
	// the slot is known to be free, so no identity is ever minted twice for
	// one pair and none is discarded.
	if id, ok := entry.keys[key]; ok {
		return id, false
	}
	id = s.alloc.Next()
	entry.keys[key] = id
	return id, true
}

// tenantEntry returns the tenant's key table, materializing it on first
// sighting. Concurrent first-sightings of the same tenant all end up sharing
// the one entry created by whichever caller wins the write lock.
func (s *InMemory) tenantEntry(tenant domain.TenantID) *tenantEntry {
	s.mu.RLock()
	entry, ok := s.tenants[tenant]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.tenants[tenant]; ok {
		return entry
	}
	entry = &tenantEntry{keys: make(map[domain.Key]domain.Identity)}
	s.tenants[tenant] = entry
	return entry
}

// Stats is a point-in-time snapshot of registry size, for gauges.
type Stats struct {
	Tenants int
	Keys    int
}

// Stats counts tenants and assigned keys. It takes the outer lock briefly
// and each inner lock in turn; intended for scrape-time observability, not
// hot paths.
func (s *InMemory) Stats() Stats {
	s.mu.RLock()
	entries := make([]*tenantEntry, 0, len(s.tenants))
	for _, e := range s.tenants {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	st := Stats{Tenants: len(entries)}
	for _, e := range entries {
		e.mu.RLock()
		st.Keys += len(e.keys)
		e.mu.RUnlock()
	}
	return st
}
