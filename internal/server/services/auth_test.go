package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/config"
	"github.com/dmitrijs2005/tokengate/internal/server/metrics"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSigner() *auth.TokenSigner {
	return auth.NewTokenSigner("k", "TestIssuer", "TestAudience", time.Hour)
}

func newAuthService(t *testing.T, mode auth.Mode, cfg *config.Config, accs ...*models.Account) (*AuthService, *memStore, *countingRecorder) {
	t.Helper()
	store := newMemStore(accs...)
	rm := &fakeRepoManager{s: store}
	issuer, err := auth.NewIssuer(mode, newSigner(), rm.Sessions(nil))
	require.NoError(t, err)
	if cfg == nil {
		cfg = &config.Config{}
	}
	rec := newCountingRecorder()
	return NewAuthService(nil, rm, issuer, fakeHasher{}, cfg, logging.Nop{}, rec), store, rec
}

func TestLogin_Bearer(t *testing.T) {
	s, _, rec := newAuthService(t, auth.ModeBearer, nil, newAlice(0, nil))

	res := s.Login(context.Background(), "Alice@Example.com", alicePass)
	require.True(t, res.Valid, res.Messages)
	assert.NotEmpty(t, res.Token)
	assert.Empty(t, res.SessionID)

	claims, err := newSigner().Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, aliceID, claims.NameIdentifier)
	assert.Equal(t, aliceEmail, claims.Subject)
	assert.Equal(t, 1, rec.logins["bearer/"+metrics.OutcomeOK])
}

func TestLogin_Session(t *testing.T) {
	s, store, _ := newAuthService(t, auth.ModeSession, nil, newAlice(0, nil))

	res := s.Login(context.Background(), aliceEmail, alicePass)
	require.True(t, res.Valid)
	assert.Empty(t, res.Token)
	require.NotEmpty(t, res.SessionID)
	assert.Equal(t, aliceID, store.sessions[res.SessionID].UserID)
}

func TestLogin_Rejections(t *testing.T) {
	unconfirmed := newAlice(0, nil)
	unconfirmed.EmailConfirmed = false

	tests := []struct {
		name     string
		cfg      *config.Config
		email    string
		password string
		want     string
	}{
		{name: "unknown email", email: "bob@example.com", password: alicePass, want: MsgIncorrectCredentials},
		{name: "wrong password", email: aliceEmail, password: "nope", want: MsgIncorrectCredentials},
		{name: "empty password", email: aliceEmail, password: "", want: MsgIncorrectCredentials},
		{name: "unconfirmed", cfg: &config.Config{RequireConfirmedAccount: true}, email: aliceEmail, password: alicePass, want: MsgEmailNotConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store, rec := newAuthService(t, auth.ModeSession, tt.cfg, unconfirmed)

			res := s.Login(context.Background(), tt.email, tt.password)
			assert.False(t, res.Valid)
			assert.Equal(t, KindValidationFailed, res.Kind)
			assert.Equal(t, []string{tt.want}, res.Messages)
			assert.Empty(t, res.Token)
			assert.Empty(t, store.sessions)
			assert.Equal(t, 1, rec.logins["session/"+metrics.OutcomeRejected])
		})
	}
}

func TestLogin_UnconfirmedAllowedByDefault(t *testing.T) {
	acc := newAlice(0, nil)
	acc.EmailConfirmed = false
	s, _, _ := newAuthService(t, auth.ModeBearer, nil, acc)

	assert.True(t, s.Login(context.Background(), aliceEmail, alicePass).Valid)
}

func TestLogin_StoreError(t *testing.T) {
	s, store, _ := newAuthService(t, auth.ModeBearer, nil, newAlice(0, nil))
	store.findErr = errors.New("db down")

	res := s.Login(context.Background(), aliceEmail, alicePass)
	assert.False(t, res.Valid)
	assert.Equal(t, KindPersistenceFailed, res.Kind)
}

func TestRefreshToken(t *testing.T) {
	s, _, _ := newAuthService(t, auth.ModeBearer, nil, newAlice(0, nil))
	ctx := context.Background()

	login := s.Login(ctx, aliceEmail, alicePass)
	claims, err := newSigner().Parse(login.Token)
	require.NoError(t, err)

	res := s.RefreshToken(ctx, auth.BearerPrincipal(claims))
	require.True(t, res.Valid)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, login.Token, res.Token, "each refresh issues a new token")

	res = s.RefreshToken(ctx, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, KindUnauthenticated, res.Kind)
	assert.Empty(t, res.Token)
}

func TestRefreshToken_SessionModeContinues(t *testing.T) {
	s, store, _ := newAuthService(t, auth.ModeSession, nil, newAlice(0, nil))

	res := s.RefreshToken(context.Background(), auth.SessionPrincipal(store.login(aliceID)))
	assert.True(t, res.Valid)
	assert.Empty(t, res.Token)
	assert.Empty(t, res.Messages)
}

func TestLogout(t *testing.T) {
	s, store, _ := newAuthService(t, auth.ModeSession, nil, newAlice(0, nil))
	ctx := context.Background()

	id := store.login(aliceID)
	p := auth.SessionPrincipal(id)

	assert.Equal(t, ok(), s.Logout(ctx, p))
	assert.NotContains(t, store.sessions, id)

	assert.Equal(t, KindUnauthenticated, s.LoadUser(ctx, p).Kind, "session is gone after sign-out")
	assert.True(t, s.Logout(ctx, nil).Valid)
	assert.True(t, s.Logout(ctx, p).Valid)
}

func TestLoadUser(t *testing.T) {
	s, store, _ := newAuthService(t, auth.ModeSession, nil, newAlice(7, vec("0100")))
	store.roles[aliceID] = []string{"Guest"}

	info := s.LoadUser(context.Background(), auth.SessionPrincipal(store.login(aliceID)))
	require.True(t, info.Valid)
	assert.Equal(t, "alice", info.Name)
	assert.Equal(t, []string{"Guest"}, info.Roles)
	assert.Equal(t, int64(7), info.Tokens)
	assert.Equal(t, vec("0100"), info.Engines)
	assert.True(t, info.HasEngine)
}

func TestLoadUser_ResolverOrdering(t *testing.T) {
	s, _, _ := newAuthService(t, auth.ModeBearer, nil)
	ctx := context.Background()

	info := s.LoadUser(ctx, &auth.Principal{})
	assert.Equal(t, KindUnauthenticated, info.Kind)
	assert.Equal(t, []string{MsgNoAuthenticatedUser}, info.Messages)

	claims := &auth.Claims{NameIdentifier: aliceID}
	info = s.LoadUser(ctx, auth.BearerPrincipal(claims))
	assert.Equal(t, KindNotFound, info.Kind)
	assert.Equal(t, []string{MsgUserNotFound}, info.Messages)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "insufficient_funds", KindInsufficientFunds.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
