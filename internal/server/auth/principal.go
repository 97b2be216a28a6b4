package auth

import "context"

// Scheme tells which kind of proof a Principal carries.
type Scheme string

const (
	SchemeBearer  Scheme = "Bearer"
	SchemeSession Scheme = "Session"
)

// Principal is the identity proof attached to an inbound call. It is built
// by the transport and handed to services explicitly.
type Principal struct {
	Scheme    Scheme
	Claims    *Claims
	SessionID string
}

// BearerPrincipal wraps verified token claims.
func BearerPrincipal(c *Claims) *Principal {
	return &Principal{Scheme: SchemeBearer, Claims: c}
}

// SessionPrincipal wraps a presented session id.
func SessionPrincipal(id string) *Principal {
	return &Principal{Scheme: SchemeSession, SessionID: id}
}

// HasProof reports whether p carries proof for a recognized scheme.
func (p *Principal) HasProof() bool {
	if p == nil {
		return false
	}
	switch p.Scheme {
	case SchemeBearer:
		return p.Claims != nil
	case SchemeSession:
		return p.SessionID != ""
	default:
		return false
	}
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns nil when the call carried no proof.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
