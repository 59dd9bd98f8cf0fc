package server

import (
	"context"
	"fmt"
	"net"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health reports the outcome of the last job run as the gRPC health of service.
type Health struct {
	service string
	server  *grpc.Server
	health  *health.Server
	logger  *zap.Logger
}

// NewHealth starts NOT_SERVING until the first run completes.
func NewHealth(service string, logger *zap.Logger) *Health {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(service, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.Register(grpcServer)

	return &Health{
		service: service,
		server:  grpcServer,
		health:  healthServer,
		logger:  logger.Named("health"),
	}
}

func (h *Health) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(h.service, status)
}

// Serve listens on addr and stops gracefully when ctx is done.
func (h *Health) Serve(ctx context.Context, addr string) error {
	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return h.serve(ctx, socket)
}

func (h *Health) serve(ctx context.Context, socket net.Listener) error {
	go func() {
		<-ctx.Done()
		h.logger.Info("shutting down health server")
		h.health.Shutdown()
		h.server.GracefulStop()
	}()

	h.logger.Info("starting health server", zap.String("addr", socket.Addr().String()))
	if err := h.server.Serve(socket); err != nil {
		return fmt.Errorf("serve health: %w", err)
	}
	return nil
}
