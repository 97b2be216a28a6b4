package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/logging"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
)

// Kind classifies a failed Result.
type Kind int

const (
	KindNone Kind = iota
	KindUnauthenticated
	KindNotFound
	KindValidationFailed
	KindInsufficientFunds
	KindPersistenceFailed
)

var kindNames = map[Kind]string{
	KindNone:              "none",
	KindUnauthenticated:   "unauthenticated",
	KindNotFound:          "not_found",
	KindValidationFailed:  "validation_failed",
	KindInsufficientFunds: "insufficient_funds",
	KindPersistenceFailed: "persistence_failed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// User-facing messages.
const (
	MsgNoAuthenticatedUser  = "No authenticated user."
	MsgUserNotFound         = "User not found."
	MsgIncorrectCredentials = "Incorrect email or password."
	MsgEmailNotConfirmed    = "Email not confirmed."
	MsgIncorrectPassword    = "Incorrect password."
	MsgPasswordsDoNotMatch  = "Passwords do not match."
	MsgEmailTaken           = "This email is already taken."
	MsgMissingParameters    = "Missing parameters."
	MsgConfirmationFailed   = "Email confirmation failed."
	MsgConcurrentUpdate     = "Concurrent capability update, please retry."
	MsgNoCapabilityAccess   = "No capability access configured."
	MsgPersistFailed        = "Failed to persist account."
	MsgStoreUnavailable     = "Account store unavailable."
	MsgCredentialFailed     = "Failed to issue credential."
)

// Result is the outcome every service operation returns. Valid results carry
// KindNone and no messages; invalid ones carry a Kind and at least one
// message.
type Result struct {
	Valid    bool
	Kind     Kind
	Messages []string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(kind Kind, messages ...string) Result {
	return Result{Kind: kind, Messages: messages}
}

// LoginResult carries the credential of a successful sign-in: a bearer token
// or a session id, depending on the auth mode.
type LoginResult struct {
	Result
	Token     string
	SessionID string
}

// AccessResult carries a capability vector. On failure Vector is the stored
// state, which the failed call left untouched.
type AccessResult struct {
	Result
	Vector models.Vector
}

type RegistrationResult struct {
	Result
	UserID      string
	CallbackURL string
	Token       string
	SessionID   string
}

// UserInfo is the caller's own profile.
type UserInfo struct {
	Result
	Name      string
	Roles     []string
	Tokens    int64
	Engines   models.Vector
	HasEngine bool
}

// resolveFailure maps a resolver error to a Result.
func resolveFailure(ctx context.Context, log logging.Logger, err error) Result {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return fail(KindUnauthenticated, MsgNoAuthenticatedUser)
	case errors.Is(err, common.ErrorNotFound):
		return fail(KindNotFound, MsgUserNotFound)
	default:
		log.Error(ctx, "resolve account", "error", err)
		return fail(KindPersistenceFailed, MsgStoreUnavailable)
	}
}

// storeFailure surfaces the store's own messages when it has any. A taken
// email or user name is the caller's mistake, not a store failure.
func storeFailure(ctx context.Context, log logging.Logger, err error) Result {
	if msgs, ok := common.StoreMessages(err); ok && errors.Is(err, common.ErrConflict) {
		log.Info(ctx, "store conflict", "error", err)
		return fail(KindValidationFailed, msgs...)
	}

	log.Error(ctx, "store write", "error", err)
	if msgs, ok := common.StoreMessages(err); ok {
		return fail(KindPersistenceFailed, msgs...)
	}
	return fail(KindPersistenceFailed, MsgPersistFailed)
}
