package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tokengate/internal/common"
	pb "github.com/dmitrijs2005/tokengate/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.IdentityClient

	mu          sync.RWMutex
	accessToken string
	sessionID   string
}

func NewTokengateClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.credentialInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewIdentityClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func withHeader(ctx context.Context, key, value string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(key, value)
	return metadata.NewOutgoingContext(ctx, md)
}

// credentialInterceptor attaches whichever credential the client holds and
// remembers a session id the server hands back.
func (s *GRPCClient) credentialInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	s.mu.RLock()
	token, session := s.accessToken, s.sessionID
	s.mu.RUnlock()

	if token != "" {
		ctx = withHeader(ctx, common.AccessTokenHeaderName, token)
	}
	if session != "" {
		ctx = withHeader(ctx, common.SessionHeaderName, session)
	}

	var header metadata.MD
	opts = append(opts, grpc.Header(&header))

	if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
		return err
	}

	if ids := header.Get(common.SessionHeaderName); len(ids) > 0 && ids[0] != "" {
		s.mu.Lock()
		s.sessionID = ids[0]
		s.mu.Unlock()
	}
	return nil
}

func (s *GRPCClient) setToken(token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

// Forget drops the stored credential.
func (s *GRPCClient) Forget() {
	s.mu.Lock()
	s.accessToken, s.sessionID = "", ""
	s.mu.Unlock()
}

// HasCredential reports whether a token or session id is held.
func (s *GRPCClient) HasCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != "" || s.sessionID != ""
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetStatus().GetValid() {
		s.setToken(resp.GetToken())
	}
	return resp, nil
}

func (s *GRPCClient) RefreshToken(ctx context.Context) (*pb.LoginResponse, error) {
	resp, err := s.client.RefreshToken(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetStatus().GetValid() {
		s.setToken(resp.GetToken())
	}
	return resp, nil
}

// Logout ends the server session and forgets the local credential either way.
func (s *GRPCClient) Logout(ctx context.Context) (*pb.Status, error) {
	resp, err := s.client.Logout(ctx, &pb.Empty{})
	s.Forget()
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) LoadUser(ctx context.Context) (*pb.UserInfoResponse, error) {
	resp, err := s.client.LoadUser(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, current, next string) (*pb.Status, error) {
	req := &pb.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	resp, err := s.client.ChangePassword(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ChangeUsername(ctx context.Context, userName string) (*pb.Status, error) {
	resp, err := s.client.ChangeUsername(ctx, &pb.ChangeUsernameRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetCapabilityAccess(ctx context.Context, domain string) (*pb.CapabilityResponse, error) {
	resp, err := s.client.GetCapabilityAccess(ctx, &pb.GetCapabilityRequest{Domain: domain})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SetCapabilityAccess(ctx context.Context, domain string, vector []bool) (*pb.CapabilityResponse, error) {
	req := &pb.SetCapabilityRequest{Domain: domain, Vector: vector}
	resp, err := s.client.SetCapabilityAccess(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.GetStatus().GetValid() {
		s.setToken(resp.GetToken())
	}
	return resp, nil
}

func (s *GRPCClient) ConfirmEmail(ctx context.Context, userID, code string) (*pb.Status, error) {
	resp, err := s.client.ConfirmEmail(ctx, &pb.ConfirmEmailRequest{UserId: userID, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
