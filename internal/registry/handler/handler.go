// Package handler is the thin HTTP layer over the registry service. It
// delegates to the service without embedding registry logic so transport
// concerns stay isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"keymint/internal/platform/middleware"
	"keymint/internal/registry/service"
	dErrors "keymint/pkg/domain-errors"
	"keymint/pkg/platform/httputil"
)

// Service defines the registry operation the handler needs.
type Service interface {
	Process(ctx context.Context, tenant, key string) (*service.Result, error)
}

// Handler handles the registry endpoints.
type Handler struct {
	logger   *slog.Logger
	registry Service
	now      func() time.Time
}

// Option configures a Handler.
type Option func(h *Handler)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// New creates a registry Handler.
func New(registry Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		logger:   logger,
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the registry routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	apiRouter := chi.NewRouter()
	apiRouter.Use(middleware.Recovery(h.logger))
	apiRouter.Use(middleware.RequestID)
	apiRouter.Use(middleware.Logger(h.logger))
	apiRouter.Use(middleware.Timeout(10 * time.Second))
	apiRouter.Use(middleware.ContentTypeJSON)
	apiRouter.Post("/v1/process", h.handleProcess)

	r.Mount("/", apiRouter)
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid process request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.registry.Process(ctx, req.Tenant, req.Key)
	if err != nil {
		if service.IsValidationError(err) {
			h.logger.WarnContext(ctx, "key rejected",
				"request_id", requestID,
				"key", req.Key,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "process failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to process key"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, processResponse{
		IsNew:     result.IsNew,
		ID:        uint64(result.ID),
		Timestamp: h.now().Unix(),
	})
}
