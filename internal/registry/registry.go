// Package registry is the deduplicating identity registry bounded context.
// This file is the façade main wires against; the pieces live in the
// subpackages (alloc, store, service, handler, adapters, metrics).
package registry

import (
	"log/slog"

	grpcadapter "keymint/internal/registry/adapters/grpc"
	"keymint/internal/registry/alloc"
	"keymint/internal/registry/handler"
	"keymint/internal/registry/metrics"
	"keymint/internal/registry/service"
	"keymint/internal/registry/store"
)

// Service orchestrates validate + insert-or-get.
type Service = service.Service

// Handler wires HTTP endpoints to the registry service.
type Handler = handler.Handler

// GRPCServer exposes the registry service over gRPC.
type GRPCServer = grpcadapter.Server

// NewService constructs the registry service with a fresh allocator and an
// empty in-memory store. One allocator serves the whole registry, so
// identities are globally unique across tenants.
func NewService(logger *slog.Logger, m *metrics.Metrics) *Service {
	st := store.NewInMemory(alloc.New())
	return service.New(st, service.WithLogger(logger), service.WithMetrics(m))
}

// NewHandler constructs the HTTP handler for the registry routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}

// NewGRPCServer constructs the gRPC adapter for the registry service.
func NewGRPCServer(s *Service, logger *slog.Logger) *GRPCServer {
	return grpcadapter.NewServer(s, logger)
}
