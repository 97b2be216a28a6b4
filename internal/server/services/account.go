package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/repomanager"
	validation "github.com/go-ozzo/ozzo-validation"
)

var userNamePattern = regexp.MustCompile(`^[A-Za-z0-9\-._@+]+$`)

// AccountService lets an authenticated caller change its own credentials.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	resolver    *auth.Resolver
	hasher      auth.Hasher
	policy      auth.PasswordPolicy
	logger      logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher,
	policy auth.PasswordPolicy, l logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		resolver:    auth.NewResolver(m.Accounts(db), m.Sessions(db)),
		hasher:      hasher,
		policy:      policy,
		logger:      l.With("module", "account_service"),
	}
}

// ChangePassword replaces the caller's password after verifying the current
// one. Nothing is written unless every check passes.
func (s *AccountService) ChangePassword(ctx context.Context, p *auth.Principal, current, next string) Result {
	acc, err := s.resolver.Resolve(ctx, p)
	if err != nil {
		return resolveFailure(ctx, s.logger, err)
	}

	violations := s.policy.Violations(next)
	if !s.hasher.Check(current, acc.PasswordHash) {
		return fail(KindValidationFailed, append([]string{MsgIncorrectPassword}, violations...)...)
	}
	if len(violations) > 0 {
		return fail(KindValidationFailed, violations...)
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		s.logger.Error(ctx, "hash password", "user_id", acc.ID, "error", err)
		return fail(KindPersistenceFailed, MsgPersistFailed)
	}

	if err := s.repomanager.Accounts(s.db).UpdatePassword(ctx, acc.ID, hash); err != nil {
		return storeFailure(ctx, s.logger, err)
	}

	s.logger.Info(ctx, "password changed", "user_id", acc.ID)
	return ok()
}

// ChangeUsername renames the caller. Only the user name changes.
func (s *AccountService) ChangeUsername(ctx context.Context, p *auth.Principal, userName string) Result {
	acc, err := s.resolver.Resolve(ctx, p)
	if err != nil {
		return resolveFailure(ctx, s.logger, err)
	}

	if err := validation.Validate(userName, validation.Required, validation.Match(userNamePattern)); err != nil {
		return fail(KindValidationFailed,
			fmt.Sprintf("Username '%s' is invalid, can only contain letters or digits.", userName))
	}

	if err := s.repomanager.Accounts(s.db).UpdateUsername(ctx, acc.ID, userName); err != nil {
		return storeFailure(ctx, s.logger, err)
	}

	s.logger.Info(ctx, "username changed", "user_id", acc.ID)
	return ok()
}
