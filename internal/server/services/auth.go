// Package services contains server-side business logic: sign-in and
// sessions, self-service account changes, registration with email
// confirmation, and the metered capability access ledger.
//
// Every operation returns a Result; domain failures never escape as errors.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/config"
	"github.com/dmitrijs2005/tokengate/internal/server/metrics"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/repomanager"
)

// Recorder receives business metrics. *metrics.Metrics implements it.
type Recorder interface {
	Login(mode, outcome string)
	CapabilityChange(domain, outcome string, charged int)
}

type nopRecorder struct{}

func (nopRecorder) Login(string, string)                 {}
func (nopRecorder) CapabilityChange(string, string, int) {}

func recorderOrNop(rec Recorder) Recorder {
	if rec == nil {
		return nopRecorder{}
	}
	return rec
}

// AuthService signs accounts in and out and reports who the caller is.
type AuthService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	resolver         *auth.Resolver
	issuer           auth.Issuer
	hasher           auth.Hasher
	requireConfirmed bool
	logger           logging.Logger
	metrics          Recorder
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, issuer auth.Issuer, hasher auth.Hasher,
	cfg *config.Config, l logging.Logger, rec Recorder) *AuthService {
	return &AuthService{
		db:               db,
		repomanager:      m,
		resolver:         auth.NewResolver(m.Accounts(db), m.Sessions(db)),
		issuer:           issuer,
		hasher:           hasher,
		requireConfirmed: cfg.RequireConfirmedAccount,
		logger:           l.With("module", "auth_service"),
		metrics:          recorderOrNop(rec),
	}
}

// Mode reports how credentials are issued.
func (s *AuthService) Mode() auth.Mode { return s.issuer.Mode() }

// Login verifies email and password and issues a fresh credential. A
// missing account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) LoginResult {
	mode := s.issuer.Mode().String()

	acc, err := s.repomanager.Accounts(s.db).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.metrics.Login(mode, metrics.OutcomeRejected)
			return LoginResult{Result: fail(KindValidationFailed, MsgIncorrectCredentials)}
		}
		s.logger.Error(ctx, "find account", "error", err)
		s.metrics.Login(mode, metrics.OutcomeError)
		return LoginResult{Result: fail(KindPersistenceFailed, MsgStoreUnavailable)}
	}

	if !s.hasher.Check(password, acc.PasswordHash) {
		s.metrics.Login(mode, metrics.OutcomeRejected)
		return LoginResult{Result: fail(KindValidationFailed, MsgIncorrectCredentials)}
	}

	if s.requireConfirmed && !acc.EmailConfirmed {
		s.metrics.Login(mode, metrics.OutcomeRejected)
		return LoginResult{Result: fail(KindValidationFailed, MsgEmailNotConfirmed)}
	}

	cred, err := s.issuer.Issue(ctx, acc)
	if err != nil {
		s.logger.Error(ctx, "issue credential", "user_id", acc.ID, "error", err)
		s.metrics.Login(mode, metrics.OutcomeError)
		return LoginResult{Result: fail(KindPersistenceFailed, MsgCredentialFailed)}
	}

	s.logger.Info(ctx, "signed in", "user_id", acc.ID, "mode", mode)
	s.metrics.Login(mode, metrics.OutcomeOK)
	return LoginResult{Result: ok(), Token: cred.Token, SessionID: cred.SessionID}
}

// RefreshToken reissues a bearer token for an authenticated caller. In
// session mode the session simply continues and no token is returned.
func (s *AuthService) RefreshToken(ctx context.Context, p *auth.Principal) LoginResult {
	acc, err := s.resolver.Resolve(ctx, p)
	if err != nil {
		return LoginResult{Result: resolveFailure(ctx, s.logger, err)}
	}

	if s.issuer.Mode() == auth.ModeSession {
		return LoginResult{Result: ok()}
	}

	cred, err := s.issuer.Issue(ctx, acc)
	if err != nil {
		s.logger.Error(ctx, "reissue token", "user_id", acc.ID, "error", err)
		return LoginResult{Result: fail(KindPersistenceFailed, MsgCredentialFailed)}
	}
	return LoginResult{Result: ok(), Token: cred.Token}
}

// Logout ends a server-side session when the caller presents one. It always
// succeeds; bearer tokens simply expire.
func (s *AuthService) Logout(ctx context.Context, p *auth.Principal) Result {
	if p.HasProof() && p.Scheme == auth.SchemeSession {
		if err := s.repomanager.Sessions(s.db).Delete(ctx, p.SessionID); err != nil {
			s.logger.Warn(ctx, "delete session", "error", err)
		}
	}
	return ok()
}

// LoadUser returns the caller's profile.
func (s *AuthService) LoadUser(ctx context.Context, p *auth.Principal) UserInfo {
	acc, err := s.resolver.Resolve(ctx, p)
	if err != nil {
		return UserInfo{Result: resolveFailure(ctx, s.logger, err)}
	}

	roles, err := s.repomanager.Accounts(s.db).Roles(ctx, acc.ID)
	if err != nil {
		s.logger.Error(ctx, "load roles", "user_id", acc.ID, "error", err)
		return UserInfo{Result: fail(KindPersistenceFailed, MsgStoreUnavailable)}
	}

	return UserInfo{
		Result:    ok(),
		Name:      acc.UserName,
		Roles:     roles,
		Tokens:    acc.Tokens,
		Engines:   acc.EngineAccess.Clone(),
		HasEngine: acc.EngineAccess.Any(),
	}
}
