package rpc

import (
	"fmt"
	"net"

	"google.golang.org/grpc"
	healthgrpc "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/quantgrid/trading-engine/api/tradingpb"
	"github.com/quantgrid/trading-engine/pkg/config"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

// GrpcServer wires the trading service, health checking and (in
// development) reflection into one grpc.Server.
type GrpcServer struct {
	Server *grpc.Server

	logger logger.Interface
	health *healthgrpc.Server
	port   int
}

// NewGrpcServer assembles the gRPC server around the given service
// implementation.
func NewGrpcServer(cfg config.AppConfig, log logger.Interface, svc tradingpb.TradingEngineServer) *GrpcServer {
	server := grpc.NewServer()

	healthServer := healthgrpc.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(tradingpb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	tradingpb.RegisterTradingEngineServer(server, svc)

	if cfg.Environment == "development" {
		reflection.Register(server)
	}

	return &GrpcServer{
		Server: server,
		logger: log,
		health: healthServer,
		port:   cfg.GRPCPort,
	}
}

// Serve listens on the configured port and blocks until the server stops.
func (g *GrpcServer) Serve() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", g.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", g.port, err)
	}

	g.logger.Info("grpc server listening",
		logger.Field{Key: "port", Value: g.port},
	)

	return g.Server.Serve(lis)
}

// Stop marks the service unhealthy and drains in-flight calls.
func (g *GrpcServer) Stop() {
	g.health.Shutdown()
	g.Server.GracefulStop()
}
