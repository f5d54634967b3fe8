package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-flashcards/internal/config"
	myGRPC "github.com/MKhiriev/go-flashcards/internal/handler/grpc"
	"github.com/MKhiriev/go-flashcards/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen: %w", err)
	}

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight calls unless ctx expires first.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
