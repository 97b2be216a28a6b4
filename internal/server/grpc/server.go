// Package grpc serves the tokengate Identity service defined in
// internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tokengate/internal/logging"
	pb "github.com/dmitrijs2005/tokengate/internal/proto"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/dmitrijs2005/tokengate/internal/server/services"
	"google.golang.org/grpc"
)

type AuthService interface {
	Mode() auth.Mode
	Login(ctx context.Context, email, password string) services.LoginResult
	RefreshToken(ctx context.Context, p *auth.Principal) services.LoginResult
	Logout(ctx context.Context, p *auth.Principal) services.Result
	LoadUser(ctx context.Context, p *auth.Principal) services.UserInfo
}

type AccountService interface {
	ChangePassword(ctx context.Context, p *auth.Principal, current, next string) services.Result
	ChangeUsername(ctx context.Context, p *auth.Principal, userName string) services.Result
}

type RegistrationService interface {
	Register(ctx context.Context, params services.RegistrationParams) services.RegistrationResult
	ConfirmEmail(ctx context.Context, userID, code string) services.Result
}

type AccessLedger interface {
	GetCapabilityAccess(ctx context.Context, p *auth.Principal, domain string) services.AccessResult
	SetCapabilityAccess(ctx context.Context, p *auth.Principal, domain string, requested models.Vector) services.AccessResult
}

type GRPCServer struct {
	pb.UnimplementedIdentityServer
	address      string
	auth         AuthService
	accounts     AccountService
	registration RegistrationService
	ledger       AccessLedger
	signer       *auth.TokenSigner
	logger       logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, as AuthService, acs AccountService,
	rs RegistrationService, al AccessLedger, signer *auth.TokenSigner) *GRPCServer {
	return &GRPCServer{
		address:      address,
		logger:       l.With("module", "grpc_server"),
		auth:         as,
		accounts:     acs,
		registration: rs,
		ledger:       al,
		signer:       signer,
	}
}

// NewServer returns a grpc.Server with the Identity service and the
// principal interceptor registered. It does not listen.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.principalInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterIdentityServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address, "mode", s.auth.Mode().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
