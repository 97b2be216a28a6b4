package auth

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Check(plain, hash string) bool
}

var ErrEmptyPassword = errors.New("empty password")

// BcryptHasher uses golang.org/x/crypto/bcrypt. A zero Cost means
// bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Check(plain, hash string) bool {
	if plain == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// PasswordPolicy mirrors the usual identity defaults. Violations lists every
// failed rule, not just the first.
type PasswordPolicy struct {
	MinLength int
	// MaxBytes caps the encoded length; bcrypt refuses longer input. Zero
	// disables the check.
	MaxBytes int
}

// MaxBcryptBytes is the longest password bcrypt accepts.
const MaxBcryptBytes = 72

// DefaultPasswordPolicy requires six characters with a digit, a lower-case
// letter, an upper-case letter and a symbol, and at most 72 bytes.
var DefaultPasswordPolicy = PasswordPolicy{MinLength: 6, MaxBytes: MaxBcryptBytes}

type passwordRule struct {
	msg  string
	rule validation.Rule
}

func matchRule(expr, msg string) passwordRule {
	return passwordRule{msg: msg, rule: validation.Match(regexp.MustCompile(expr)).Error(msg)}
}

var passwordRules = []passwordRule{
	matchRule(`[0-9]`, "Passwords must have at least one digit ('0'-'9')."),
	matchRule(`[a-z]`, "Passwords must have at least one lowercase ('a'-'z')."),
	matchRule(`[A-Z]`, "Passwords must have at least one uppercase ('A'-'Z')."),
	matchRule(`[^a-zA-Z0-9]`, "Passwords must have at least one non alphanumeric character."),
}

func (p PasswordPolicy) Violations(password string) []string {
	var out []string
	if utf8.RuneCountInString(password) < p.MinLength {
		out = append(out, fmt.Sprintf("Passwords must be at least %d characters.", p.MinLength))
	}
	if p.MaxBytes > 0 && len(password) > p.MaxBytes {
		out = append(out, fmt.Sprintf("Passwords must be at most %d bytes.", p.MaxBytes))
	}
	for _, r := range passwordRules {
		// Match skips empty values, so an empty password is checked by hand.
		if password == "" || validation.Validate(password, r.rule) != nil {
			out = append(out, r.msg)
		}
	}
	return out
}
