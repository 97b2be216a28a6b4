package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokengate/internal/common"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmptySigningKey means the server was started without a usable secret.
var ErrEmptySigningKey = errors.New("empty signing key")

// Claims is the bearer token payload. Subject carries the email, ID a fresh
// nonce, NameIdentifier the stable account id.
type Claims struct {
	jwt.RegisteredClaims
	NameIdentifier string `json:"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier,omitempty"`
	UserName       string `json:"username,omitempty"`
}

// TokenSigner mints and verifies HS256 tokens for one issuer/audience pair.
type TokenSigner struct {
	key      []byte
	issuer   string
	audience string
	validity time.Duration
	now      func() time.Time
}

func NewTokenSigner(secretKey, issuer, audience string, validity time.Duration) *TokenSigner {
	return &TokenSigner{
		key:      []byte(secretKey),
		issuer:   issuer,
		audience: audience,
		validity: validity,
		now:      time.Now,
	}
}

// Sign builds a token for acc valid from now until now+validity.
func (s *TokenSigner) Sign(acc *models.Account) (string, error) {
	if len(s.key) == 0 {
		return "", ErrEmptySigningKey
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.Email,
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		NameIdentifier: acc.ID,
		UserName:       acc.UserName,
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, algorithm, expiry, issuer and audience.
// Expired tokens yield common.ErrTokenExpired, anything else
// common.ErrInvalidToken.
func (s *TokenSigner) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
