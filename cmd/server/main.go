package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	registryv1 "keymint/api/registry/v1"
	"keymint/internal/platform/config"
	"keymint/internal/platform/httpserver"
	"keymint/internal/platform/logger"
	"keymint/internal/registry"
	"keymint/internal/registry/metrics"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Registry logic lives in internal/registry.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	m := metrics.New()
	svc := registry.NewService(log, m)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())
	registry.NewHandler(svc, log).Register(router)

	grpcSrv := grpc.NewServer()
	registryv1.RegisterRegistryServiceServer(grpcSrv, registry.NewGRPCServer(svc, log))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Error("failed to bind grpc listener", "addr", cfg.GRPCAddr, "error", err)
		os.Exit(1)
	}
	httpSrv := httpserver.New(cfg.HTTPAddr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting grpc server", "addr", cfg.GRPCAddr)
		return grpcSrv.Serve(lis)
	})
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		grpcSrv.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
