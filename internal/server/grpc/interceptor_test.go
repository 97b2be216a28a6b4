package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	pb "github.com/dmitrijs2005/tokengate/internal/proto"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// capture runs the interceptor and returns the principal the handler saw.
func capture(t *testing.T, s *GRPCServer, ctx context.Context, method string) *auth.Principal {
	t.Helper()
	var seen *auth.Principal
	handler := func(ctx context.Context, req any) (any, error) {
		seen = auth.PrincipalFromContext(ctx)
		return "ok", nil
	}
	resp, err := s.principalInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	return seen
}

func TestInterceptor_BearerValidToken(t *testing.T) {
	f := newFixture(auth.ModeBearer)
	token, err := f.signer.Sign(&models.Account{ID: "3f1c1c1e-2a43-4b1e-9d8e-0c5f2a9a7b11", Email: "alice@example.com", UserName: "alice"})
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
	p := capture(t, f.srv, ctx, pb.Identity_LoadUser_FullMethodName)

	require.NotNil(t, p)
	assert.Equal(t, auth.SchemeBearer, p.Scheme)
	assert.Equal(t, "3f1c1c1e-2a43-4b1e-9d8e-0c5f2a9a7b11", p.Claims.NameIdentifier)
	assert.Equal(t, "alice@example.com", p.Claims.Subject)
}

func TestInterceptor_BearerInvalidTokenLeavesNoPrincipal(t *testing.T) {
	f := newFixture(auth.ModeBearer)
	other := auth.NewTokenSigner("other-secret", "tokengate", "tokengate-clients", time.Hour)
	token, err := other.Sign(&models.Account{ID: "u1", UserName: "alice"})
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
	assert.Nil(t, capture(t, f.srv, ctx, pb.Identity_LoadUser_FullMethodName))
}

func TestInterceptor_BearerModeIgnoresSessionHeader(t *testing.T) {
	f := newFixture(auth.ModeBearer)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.SessionHeaderName, "01HZX"))
	assert.Nil(t, capture(t, f.srv, ctx, pb.Identity_LoadUser_FullMethodName))
}

func TestInterceptor_Session(t *testing.T) {
	f := newFixture(auth.ModeSession)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.SessionHeaderName, "01HZX"))

	p := capture(t, f.srv, ctx, pb.Identity_SetCapabilityAccess_FullMethodName)
	require.NotNil(t, p)
	assert.Equal(t, auth.SchemeSession, p.Scheme)
	assert.Equal(t, "01HZX", p.SessionID)
}

func TestInterceptor_NoMetadata(t *testing.T) {
	f := newFixture(auth.ModeSession)
	assert.Nil(t, capture(t, f.srv, context.Background(), pb.Identity_LoadUser_FullMethodName))
}

func TestInterceptor_PublicMethodsSkipCredentials(t *testing.T) {
	f := newFixture(auth.ModeSession)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.SessionHeaderName, "01HZX"))

	for _, m := range []string{pb.Identity_Login_FullMethodName, pb.Identity_Register_FullMethodName, pb.Identity_ConfirmEmail_FullMethodName, pb.Identity_Ping_FullMethodName} {
		assert.Nil(t, capture(t, f.srv, ctx, m), m)
	}
}
