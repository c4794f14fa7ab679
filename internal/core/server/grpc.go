// Package server provides gRPC and HTTP server lifecycle management.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/solatis/segmentvet/internal/core/api"
	"github.com/solatis/segmentvet/internal/core/config"
)

// GRPCServer manages gRPC server lifecycle.
type GRPCServer struct {
	server   *grpc.Server
	health   *health.Server
	listener net.Listener
	config   *config.ServerConfig
}

// NewGRPCServer creates gRPC server with request interceptor, tracing and
// service registration.
func NewGRPCServer(cfg *config.ServerConfig, service api.SegmentAPIServer, logger *slog.Logger) (*GRPCServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg cannot be nil")
	}
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			UnaryRequestInterceptor(logger, cfg.RequestTimeout),
		),
	}

	server := grpc.NewServer(opts...)
	api.RegisterSegmentAPIServer(server, service)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(api.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &GRPCServer{
		server: server,
		health: healthServer,
		config: cfg,
	}, nil
}

// Addr returns the configured listen address.
func (s *GRPCServer) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.GRPCPort)
}

// Start binds listener and serves gRPC requests.
// Context is provided for API consistency but Serve blocks until Shutdown is called.
func (s *GRPCServer) Start(ctx context.Context) error {
	addr := s.Addr()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	return s.Serve(listener)
}

// Serve serves gRPC requests on an already bound listener.
func (s *GRPCServer) Serve(listener net.Listener) error {
	s.listener = listener
	return s.server.Serve(listener)
}

// Shutdown marks the server not serving and gracefully stops it, forcing a
// stop after the configured shutdown timeout.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		return fmt.Errorf("shutdown cancelled by context: %w", ctx.Err())
	case <-timer.C:
		s.server.Stop()
		return fmt.Errorf("graceful shutdown timeout, forced stop")
	}
}
