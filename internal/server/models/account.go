// Package models holds the server-side persistent entities.
package models

import (
	"fmt"
	"time"
)

// DefaultRole is assigned to every account at registration.
const DefaultRole = "Guest"

// Domain names a gated feature family. Each domain owns one capability
// vector of fixed length on the account.
type Domain string

const (
	DomainEngines          Domain = "engines"
	DomainMaterialStrength Domain = "material_strength"
)

// Slots is the number of named features per domain.
const Slots = 14

// Domains lists every known domain.
var Domains = []Domain{DomainEngines, DomainMaterialStrength}

// ParseDomain validates a domain name.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	for _, known := range Domains {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown capability domain %q", s)
}

// Account is the central identity record.
type Account struct {
	ID               string
	Email            string
	UserName         string
	PasswordHash     string
	EmailConfirmed   bool
	ConfirmationHash string
	Tokens           int64
	EngineAccess     Vector
	MaterialAccess   Vector
	Roles            []string
	Version          int64
	CreatedAt        time.Time
}

// Access returns the stored vector for d (nil when unset).
func (a Account) Access(d Domain) Vector {
	switch d {
	case DomainEngines:
		return a.EngineAccess
	case DomainMaterialStrength:
		return a.MaterialAccess
	default:
		return nil
	}
}

// WithAccess returns a copy of a with the vector for d replaced and the token
// balance set to tokens. a itself is left untouched.
func (a Account) WithAccess(d Domain, v Vector, tokens int64) Account {
	next := a
	next.Tokens = tokens
	switch d {
	case DomainEngines:
		next.EngineAccess = v.Clone()
	case DomainMaterialStrength:
		next.MaterialAccess = v.Clone()
	}
	return next
}
