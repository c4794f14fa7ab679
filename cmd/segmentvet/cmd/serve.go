package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solatis/segmentvet/internal/core/config"
	"github.com/solatis/segmentvet/internal/core/server"
	"github.com/solatis/segmentvet/internal/core/telemetry"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC and HTTP/JSON segment API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().String("host", "0.0.0.0", "listen host")
	cmd.Flags().Int("grpc-port", 50051, "gRPC server port")
	cmd.Flags().Int("http-port", 8080, "HTTP server port")
	return cmd
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("host") {
		host, _ := cmd.Flags().GetString("host")
		cfg.Server.Host = host
	}
	if cmd.Flags().Changed("grpc-port") {
		port, _ := cmd.Flags().GetInt("grpc-port")
		cfg.Server.GRPCPort = port
	}
	if cmd.Flags().Changed("http-port") {
		port, _ := cmd.Flags().GetInt("http-port")
		cfg.Server.HTTPPort = port
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := opts.log()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	service, err := opts.newService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	grpcServer, err := server.NewGRPCServer(&cfg.Server, service, logger)
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}
	httpServer, err := server.NewHTTPServer(&cfg.Server, service, logger)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	logger.Info("starting segmentvet",
		"version", Version,
		"grpc_addr", grpcServer.Addr(),
		"http_addr", httpServer.Addr(),
		"publisher", cfg.Publisher.Name,
	)

	errChan := make(chan error, 2)
	go func() { errChan <- grpcServer.Start(ctx) }()
	go func() { errChan <- httpServer.Start(ctx) }()

	var serveErr error
	select {
	case serveErr = <-errChan:
		logger.Error("server stopped", "error", serveErr)
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
	}

	shutdownCtx := context.Background()
	return errors.Join(
		serveErr,
		httpServer.Shutdown(shutdownCtx),
		grpcServer.Shutdown(shutdownCtx),
	)
}
