package config

import (
	"log/slog"
	"os"
	"strings"
)

// Server captures process-level configuration.
type Server struct {
	GRPCAddr string
	HTTPAddr string
	LogLevel slog.Level
}

// FromEnv builds a Server config from environment variables so main stays
// lean. The gRPC listener defaults to 8080, the port the upstream contract
// was published on; the HTTP listener carries health and metrics alongside
// the JSON API.
func FromEnv() Server {
	grpcAddr := os.Getenv("KEYMINT_GRPC_ADDR")
	if grpcAddr == "" {
		grpcAddr = ":8080"
	}
	httpAddr := os.Getenv("KEYMINT_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8081"
	}

	return Server{
		GRPCAddr: grpcAddr,
		HTTPAddr: httpAddr,
		LogLevel: parseLevel(os.Getenv("KEYMINT_LOG_LEVEL")),
	}
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
