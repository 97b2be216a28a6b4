package grpc

import (
	"context"

	"github.com/dmitrijs2005/tokengate/internal/common"
	pb "github.com/dmitrijs2005/tokengate/internal/proto"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// publicMethods never look at credentials.
var publicMethods = map[string]bool{
	pb.Identity_Login_FullMethodName:        true,
	pb.Identity_Register_FullMethodName:     true,
	pb.Identity_ConfirmEmail_FullMethodName: true,
	pb.Identity_Ping_FullMethodName:         true,
}

// principalInterceptor attaches the caller's proof to the context. Missing
// or unverifiable proof is not rejected here; the services report it as an
// unauthenticated result.
func (s *GRPCServer) principalInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	if p := s.principalFromMetadata(ctx); p != nil {
		ctx = auth.WithPrincipal(ctx, p)
	}
	return handler(ctx, req)
}

func (s *GRPCServer) principalFromMetadata(ctx context.Context) *auth.Principal {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	switch s.auth.Mode() {
	case auth.ModeSession:
		if id := first(md, common.SessionHeaderName); id != "" {
			return auth.SessionPrincipal(id)
		}
	case auth.ModeBearer:
		token := first(md, common.AccessTokenHeaderName)
		if token == "" {
			return nil
		}
		claims, err := s.signer.Parse(token)
		if err != nil {
			s.logger.Debug(ctx, "rejected bearer token", "error", err)
			return nil
		}
		return auth.BearerPrincipal(claims)
	}
	return nil
}

func first(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
