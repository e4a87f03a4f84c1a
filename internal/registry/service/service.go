// Package service orchestrates one process call: validate the key, then
// insert-or-get against the dedup store. Transport adapters (HTTP, gRPC)
// shape the response envelope around the Result this package returns.
package service

import (
	"context"
	"log/slog"
	"time"

	"keymint/internal/registry/metrics"
	"keymint/internal/registry/store"
	"keymint/pkg/domain"
	dErrors "keymint/pkg/domain-errors"
)

// Store is the deduplication registry as the service needs it. InsertOrGet
// must be atomic per pair: exactly one caller for a never-seen pair gets
// isNew=true, and every caller gets the same identity.
type Store interface {
	InsertOrGet(ctx context.Context, tenant domain.TenantID, key domain.Key) (id domain.Identity, isNew bool)
	Stats() store.Stats
}

// Result is the outcome of one process call.
type Result struct {
	IsNew bool
	ID    domain.Identity
}

// Service validates input and delegates to the store.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional Service collaborators.
type Option func(s *Service)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics attaches registry metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service over the given store.
func New(st Store, opts ...Option) *Service {
	s := &Service{store: st}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process validates key, then returns the stable identity for (tenant, key),
// minting one on first sighting. Validation failures carry CodeValidation
// and leave the registry untouched. The tenant string is accepted as-is.
func (s *Service) Process(ctx context.Context, tenant, key string) (*Result, error) {
	k, err := domain.ParseKey(key)
	if err != nil {
		s.observe(metrics.OutcomeInvalidKey)
		return nil, err
	}

	start := time.Now()
	id, isNew := s.store.InsertOrGet(ctx, domain.NewTenantID(tenant), k)
	s.observeInsert(start)

	if isNew {
		s.observe(metrics.OutcomeMinted)
		s.updateSizeGauges()
		s.logNew(ctx, tenant, k, id)
	} else {
		s.observe(metrics.OutcomeDuplicate)
	}
	return &Result{IsNew: isNew, ID: id}, nil
}

func (s *Service) logNew(ctx context.Context, tenant string, key domain.Key, id domain.Identity) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, "identity minted",
		"tenant", tenant,
		"key", key.String(),
		"id", uint64(id),
	)
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveProcessed(outcome)
	}
}

func (s *Service) observeInsert(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveInsert(start)
	}
}

// updateSizeGauges refreshes the tenant/key gauges. Only called after a
// mint; duplicate lookups cannot change registry size.
func (s *Service) updateSizeGauges() {
	if s.metrics == nil {
		return
	}
	st := s.store.Stats()
	s.metrics.SetRegistrySize(st.Tenants, st.Keys)
}

// IsValidationError reports whether err came from key validation, so
// transports can map it to their client-error status.
func IsValidationError(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeValidation)
}
