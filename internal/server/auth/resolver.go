package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/google/uuid"
)

// AccountFinder is the read side of the identity store the resolver needs.
type AccountFinder interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}

// SessionFinder looks up server-side sessions.
type SessionFinder interface {
	Find(ctx context.Context, id string) (*models.Session, error)
}

// Resolver maps a Principal to a stored account.
//
// It keeps two failures apart: common.ErrUnauthenticated when there is no
// usable proof at all, common.ErrorNotFound when the proof is fine but names
// no account.
type Resolver struct {
	accounts AccountFinder
	sessions SessionFinder
}

func NewResolver(accounts AccountFinder, sessions SessionFinder) *Resolver {
	return &Resolver{accounts: accounts, sessions: sessions}
}

type lookupKind int

const (
	byID lookupKind = iota
	byEmail
)

type lookup struct {
	kind  lookupKind
	value string
}

// lookupsFor lists the strategies for bearer claims in order: a claim that
// parses as a UUID is an account id, anything else is read as an email
// (older tokens put the email where the id belongs). The subject, which
// always holds the email, comes last.
func lookupsFor(c *Claims) []lookup {
	var out []lookup
	seen := map[string]bool{}
	add := func(k lookupKind, v string) {
		key := fmt.Sprint(k, v)
		if v == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, lookup{kind: k, value: v})
	}

	if _, err := uuid.Parse(c.NameIdentifier); err == nil {
		add(byID, c.NameIdentifier)
	} else {
		add(byEmail, c.NameIdentifier)
	}
	add(byEmail, c.Subject)
	return out
}

func (r *Resolver) Resolve(ctx context.Context, p *Principal) (*models.Account, error) {
	if !p.HasProof() {
		return nil, common.ErrUnauthenticated
	}

	switch p.Scheme {
	case SchemeSession:
		return r.resolveSession(ctx, p.SessionID)
	default:
		return r.resolveClaims(ctx, p.Claims)
	}
}

func (r *Resolver) resolveSession(ctx context.Context, sessionID string) (*models.Account, error) {
	s, err := r.sessions.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// A signed-out or forged session id proves nothing.
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return r.find(ctx, lookup{kind: byID, value: s.UserID})
}

func (r *Resolver) resolveClaims(ctx context.Context, c *Claims) (*models.Account, error) {
	lookups := lookupsFor(c)
	if len(lookups) == 0 {
		return nil, common.ErrUnauthenticated
	}

	for _, l := range lookups {
		acc, err := r.find(ctx, l)
		if err == nil {
			return acc, nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
	}
	return nil, common.ErrorNotFound
}

func (r *Resolver) find(ctx context.Context, l lookup) (*models.Account, error) {
	var (
		acc *models.Account
		err error
	)
	switch l.kind {
	case byID:
		acc, err = r.accounts.FindByID(ctx, l.value)
	default:
		acc, err = r.accounts.FindByEmail(ctx, l.value)
	}
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return acc, nil
}
