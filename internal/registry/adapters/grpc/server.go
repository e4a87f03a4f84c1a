// Package grpc is the gRPC adapter exposing the registry service. It
// translates between protobuf types and domain results and handles
// gRPC-specific concerns; registry semantics live in the service.
package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	registryv1 "keymint/api/registry/v1"
	"keymint/internal/registry/service"
)

// Service defines the registry operation the adapter needs.
type Service interface {
	Process(ctx context.Context, tenant, key string) (*service.Result, error)
}

// Server implements registry.v1.RegistryService over the domain service.
type Server struct {
	registryv1.UnimplementedRegistryServiceServer
	service Service
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Server.
type Option func(s *Server)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates a gRPC registry server.
func NewServer(svc Service, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		service: svc,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process returns the stable identity for (tenant, key). An invalid key
// fails with INVALID_ARGUMENT naming the key; nothing is recorded in that
// case.
func (s *Server) Process(ctx context.Context, req *registryv1.ProcessRequest) (*registryv1.ProcessResponse, error) {
	result, err := s.service.Process(ctx, req.GetTenant(), req.GetKey())
	if err != nil {
		if service.IsValidationError(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.ErrorContext(ctx, "process failed",
			"tenant", req.GetTenant(),
			"error", err.Error(),
		)
		return nil, status.Error(codes.Internal, "failed to process key")
	}

	return &registryv1.ProcessResponse{
		IsNew:     result.IsNew,
		Id:        uint64(result.ID),
		Timestamp: s.now().Unix(),
	}, nil
}
