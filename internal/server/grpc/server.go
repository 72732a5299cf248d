// Package grpc exposes the task manager services as the
// taskmanager.v1.TaskManager gRPC API, used by the terminal client in
// remote mode.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/taskmanager/internal/logging"
	pb "github.com/dmitrijs2005/taskmanager/internal/proto"
	"github.com/dmitrijs2005/taskmanager/internal/services"
)

type GRPCServer struct {
	address         string
	users           *services.UserService
	tasks           *services.TaskService
	reports         *services.ReportService
	logger          logging.Logger
	jwtSecret       []byte
	sessionValidity time.Duration
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, ts *services.TaskService,
	rs *services.ReportService, secretKey string, sessionValidity time.Duration) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		users:           us,
		tasks:           ts,
		reports:         rs,
		jwtSecret:       []byte(secretKey),
		sessionValidity: sessionValidity,
	}
}

// NewServer builds a grpc.Server with the access interceptor and the
// TaskManager service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterTaskManagerServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
