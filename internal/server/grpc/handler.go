package grpc

import (
	"context"

	"github.com/dmitrijs2005/tokengate/internal/common"
	pb "github.com/dmitrijs2005/tokengate/internal/proto"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/dmitrijs2005/tokengate/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func toStatus(r services.Result) *pb.Status {
	return &pb.Status{
		Valid:    r.Valid,
		Kind:     r.Kind.String(),
		Messages: append([]string{}, r.Messages...),
	}
}

// sendSession hands a new session id back in the response header.
func (s *GRPCServer) sendSession(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := grpc.SetHeader(ctx, metadata.Pairs(common.SessionHeaderName, id)); err != nil {
		s.logger.Warn(ctx, "set session header", "error", err)
	}
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res := s.auth.Login(ctx, req.GetEmail(), req.GetPassword())
	s.sendSession(ctx, res.SessionID)
	return &pb.LoginResponse{Status: toStatus(res.Result), Token: res.Token}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, _ *pb.Empty) (*pb.LoginResponse, error) {
	res := s.auth.RefreshToken(ctx, auth.PrincipalFromContext(ctx))
	return &pb.LoginResponse{Status: toStatus(res.Result), Token: res.Token}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.Empty) (*pb.Status, error) {
	return toStatus(s.auth.Logout(ctx, auth.PrincipalFromContext(ctx))), nil
}

func (s *GRPCServer) LoadUser(ctx context.Context, _ *pb.Empty) (*pb.UserInfoResponse, error) {
	info := s.auth.LoadUser(ctx, auth.PrincipalFromContext(ctx))
	return &pb.UserInfoResponse{
		Status:    toStatus(info.Result),
		Name:      info.Name,
		Roles:     info.Roles,
		Tokens:    info.Tokens,
		Engines:   info.Engines,
		HasEngine: info.HasEngine,
	}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.Status, error) {
	return toStatus(s.accounts.ChangePassword(ctx, auth.PrincipalFromContext(ctx), req.GetCurrentPassword(), req.GetNewPassword())), nil
}

func (s *GRPCServer) ChangeUsername(ctx context.Context, req *pb.ChangeUsernameRequest) (*pb.Status, error) {
	return toStatus(s.accounts.ChangeUsername(ctx, auth.PrincipalFromContext(ctx), req.GetUsername())), nil
}

func (s *GRPCServer) GetCapabilityAccess(ctx context.Context, req *pb.GetCapabilityRequest) (*pb.CapabilityResponse, error) {
	res := s.ledger.GetCapabilityAccess(ctx, auth.PrincipalFromContext(ctx), req.GetDomain())
	return &pb.CapabilityResponse{Status: toStatus(res.Result), Vector: res.Vector}, nil
}

func (s *GRPCServer) SetCapabilityAccess(ctx context.Context, req *pb.SetCapabilityRequest) (*pb.CapabilityResponse, error) {
	res := s.ledger.SetCapabilityAccess(ctx, auth.PrincipalFromContext(ctx), req.GetDomain(), models.Vector(req.GetVector()))
	return &pb.CapabilityResponse{Status: toStatus(res.Result), Vector: res.Vector}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	res := s.registration.Register(ctx, services.RegistrationParams{
		UserName:        req.GetUsername(),
		Email:           req.GetEmail(),
		Password:        req.GetPassword(),
		ConfirmPassword: req.GetConfirmPassword(),
	})
	s.sendSession(ctx, res.SessionID)
	return &pb.RegisterResponse{
		Status:      toStatus(res.Result),
		UserId:      res.UserID,
		CallbackUrl: res.CallbackURL,
		Token:       res.Token,
	}, nil
}

func (s *GRPCServer) ConfirmEmail(ctx context.Context, req *pb.ConfirmEmailRequest) (*pb.Status, error) {
	return toStatus(s.registration.ConfirmEmail(ctx, req.GetUserId(), req.GetCode())), nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
