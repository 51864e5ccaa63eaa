// Package grpc exposes the authentication service over gRPC. The server wraps
// UserService and translates between wire messages and domain calls; the
// access token interceptor authenticates privileged methods.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/mkuznetsov/ssocore/internal/logging"
	pb "github.com/mkuznetsov/ssocore/internal/proto"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
	"github.com/mkuznetsov/ssocore/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	users   *services.UserService
	tokens  *auth.TokenService
	logger  logging.Logger
}

func NewGRPCServer(address string, logger logging.Logger, us *services.UserService, tokens *auth.TokenService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  logger.With("module", "grpc_server"),
		users:   us,
		tokens:  tokens,
	}
}

// Run announces the listen address and serves until ctx is cancelled, then
// drains in-flight calls with GracefulStop.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
