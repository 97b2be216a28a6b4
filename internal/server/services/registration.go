package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/dbx"
	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/config"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/dmitrijs2005/tokengate/internal/server/repositories/repomanager"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
)

const confirmationCodeSize = 32

// RegistrationParams is the sign-up form.
type RegistrationParams struct {
	UserName        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (p RegistrationParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.UserName, validation.Required, validation.Length(1, 256),
			validation.Match(userNamePattern).Error("can only contain letters or digits")),
		validation.Field(&p.Email, validation.Required, validation.Length(1, 256), is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

// RegistrationService creates accounts and confirms their email addresses.
type RegistrationService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	issuer           auth.Issuer
	hasher           auth.Hasher
	policy           auth.PasswordPolicy
	defaultTokens    int64
	requireConfirmed bool
	publicBaseURL    string
	logger           logging.Logger
}

func NewRegistrationService(db *sql.DB, m repomanager.RepositoryManager, issuer auth.Issuer, hasher auth.Hasher,
	policy auth.PasswordPolicy, cfg *config.Config, l logging.Logger) *RegistrationService {
	return &RegistrationService{
		db:               db,
		repomanager:      m,
		issuer:           issuer,
		hasher:           hasher,
		policy:           policy,
		defaultTokens:    cfg.DefaultTokenBalance,
		requireConfirmed: cfg.RequireConfirmedAccount,
		publicBaseURL:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:           l.With("module", "registration_service"),
	}
}

// Register creates an unconfirmed account with the default role. When
// confirmation is required the caller gets the confirmation link; otherwise
// the new account is signed in straight away.
func (s *RegistrationService) Register(ctx context.Context, params RegistrationParams) RegistrationResult {
	if err := params.Validate(); err != nil {
		return RegistrationResult{Result: fail(KindValidationFailed, validationMessages(err)...)}
	}
	if violations := s.policy.Violations(params.Password); len(violations) > 0 {
		return RegistrationResult{Result: fail(KindValidationFailed, violations...)}
	}
	if params.Password != params.ConfirmPassword {
		return RegistrationResult{Result: fail(KindValidationFailed, MsgPasswordsDoNotMatch)}
	}

	_, err := s.repomanager.Accounts(s.db).FindByEmail(ctx, params.Email)
	switch {
	case err == nil:
		return RegistrationResult{Result: fail(KindValidationFailed, MsgEmailTaken)}
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "find account", "error", err)
		return RegistrationResult{Result: fail(KindPersistenceFailed, MsgStoreUnavailable)}
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error(ctx, "hash password", "error", err)
		return RegistrationResult{Result: fail(KindPersistenceFailed, MsgPersistFailed)}
	}

	code, err := common.MakeRandHexString(confirmationCodeSize)
	if err != nil {
		s.logger.Error(ctx, "generate confirmation code", "error", err)
		return RegistrationResult{Result: fail(KindPersistenceFailed, MsgPersistFailed)}
	}

	acc := &models.Account{
		ID:               uuid.NewString(),
		Email:            params.Email,
		UserName:         params.UserName,
		PasswordHash:     hash,
		ConfirmationHash: hashCode(code),
		Tokens:           s.defaultTokens,
		EngineAccess:     models.NewVector(models.Slots),
		MaterialAccess:   models.NewVector(models.Slots),
		Roles:            []string{models.DefaultRole},
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		if _, err := repo.Create(ctx, acc); err != nil {
			return err
		}
		return repo.AddRole(ctx, acc.ID, models.DefaultRole)
	})
	if err != nil {
		return RegistrationResult{Result: storeFailure(ctx, s.logger, err)}
	}

	s.logger.Info(ctx, "account registered", "user_id", acc.ID)

	res := RegistrationResult{Result: ok(), UserID: acc.ID}
	if s.requireConfirmed {
		res.CallbackURL = s.callbackURL(acc.ID, base64.RawURLEncoding.EncodeToString([]byte(code)))
		return res
	}

	cred, err := s.issuer.Issue(ctx, acc)
	if err != nil {
		s.logger.Error(ctx, "issue credential", "user_id", acc.ID, "error", err)
		return RegistrationResult{Result: fail(KindPersistenceFailed, MsgCredentialFailed), UserID: acc.ID}
	}
	res.Token = cred.Token
	res.SessionID = cred.SessionID
	return res
}

// ConfirmEmail redeems the code from a confirmation link. Missing
// parameters are rejected before the store is consulted.
func (s *RegistrationService) ConfirmEmail(ctx context.Context, userID, code string) Result {
	if userID == "" || code == "" {
		return fail(KindValidationFailed, MsgMissingParameters)
	}

	repo := s.repomanager.Accounts(s.db)

	acc, err := repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fail(KindNotFound, MsgUserNotFound)
		}
		s.logger.Error(ctx, "find account", "error", err)
		return fail(KindPersistenceFailed, MsgStoreUnavailable)
	}

	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(code, "="))
	if err != nil || acc.ConfirmationHash == "" {
		return fail(KindValidationFailed, MsgConfirmationFailed)
	}
	if subtle.ConstantTimeCompare([]byte(hashCode(string(decoded))), []byte(acc.ConfirmationHash)) != 1 {
		return fail(KindValidationFailed, MsgConfirmationFailed)
	}

	if err := repo.ConfirmEmail(ctx, acc.ID); err != nil {
		return storeFailure(ctx, s.logger, err)
	}

	s.logger.Info(ctx, "email confirmed", "user_id", acc.ID)
	return ok()
}

func (s *RegistrationService) callbackURL(userID, code string) string {
	return fmt.Sprintf("%s/api/Auth/confirm-email?userId=%s&code=%s",
		s.publicBaseURL, url.QueryEscape(userID), url.QueryEscape(code))
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// validationMessages flattens ozzo-validation errors into "field: message"
// lines in field order.
func validationMessages(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, fmt.Sprintf("%s: %s", f, errs[f].Error()))
	}
	return out
}
