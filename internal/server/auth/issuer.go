package auth

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokengate/internal/server/models"
)

// Credential is what a caller gets back after signing in: either a bearer
// token or a server-side session id, never both.
type Credential struct {
	Token     string
	SessionID string
}

// Issuer turns a verified account into a fresh credential. Every call
// issues a new credential; nothing is renewed in place.
type Issuer interface {
	Mode() Mode
	Issue(ctx context.Context, acc *models.Account) (Credential, error)
}

// SessionCreator persists a new server-side session.
type SessionCreator interface {
	Create(ctx context.Context, userID string) (*models.Session, error)
}

// NewIssuer picks the strategy for mode.
func NewIssuer(mode Mode, signer *TokenSigner, sessions SessionCreator) (Issuer, error) {
	switch mode {
	case ModeBearer:
		if signer == nil {
			return nil, fmt.Errorf("bearer issuer: nil signer")
		}
		return &BearerIssuer{signer: signer}, nil
	case ModeSession:
		if sessions == nil {
			return nil, fmt.Errorf("session issuer: nil session store")
		}
		return &SessionIssuer{sessions: sessions}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

type BearerIssuer struct {
	signer *TokenSigner
}

func (i *BearerIssuer) Mode() Mode { return ModeBearer }

func (i *BearerIssuer) Issue(_ context.Context, acc *models.Account) (Credential, error) {
	token, err := i.signer.Sign(acc)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Token: token}, nil
}

type SessionIssuer struct {
	sessions SessionCreator
}

func (i *SessionIssuer) Mode() Mode { return ModeSession }

func (i *SessionIssuer) Issue(ctx context.Context, acc *models.Account) (Credential, error) {
	s, err := i.sessions.Create(ctx, acc.ID)
	if err != nil {
		return Credential{}, fmt.Errorf("create session: %w", err)
	}
	return Credential{SessionID: s.ID}, nil
}
