package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Vector is an ordered sequence of feature-visibility flags; index i means
// "may view feature i". It is stored as a string of '0'/'1' so the column
// stays readable and portable across drivers. NULL scans to a nil Vector.
type Vector []bool

// NewVector returns an all-false vector with n slots.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// At reads slot i. Out-of-range reads are false.
func (v Vector) At(i int) bool {
	if i < 0 || i >= len(v) {
		return false
	}
	return v[i]
}

// Any reports whether at least one slot is granted.
func (v Vector) Any() bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}

// Clone returns an independent copy; nil stays nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(len(v))
	for _, b := range v {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseVector decodes the '0'/'1' representation.
func ParseVector(s string) (Vector, error) {
	v := make(Vector, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v[i] = true
		default:
			return nil, fmt.Errorf("invalid vector character %q at %d", s[i], i)
		}
	}
	return v, nil
}

func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return v.String(), nil
}

func (v *Vector) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		*v = nil
		return nil
	case string:
		parsed, err := ParseVector(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	case []byte:
		parsed, err := ParseVector(string(s))
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Vector", src)
	}
}

// Diff counts the slots where current and requested disagree after padding
// the shorter one with false up to the longer length.
func Diff(current, requested Vector) int {
	n := max(len(current), len(requested))
	changed := 0
	for i := 0; i < n; i++ {
		if current.At(i) != requested.At(i) {
			changed++
		}
	}
	return changed
}

// Padded returns a copy of v extended with false up to n slots. Longer
// vectors are copied unchanged.
func (v Vector) Padded(n int) Vector {
	out := make(Vector, max(len(v), n))
	copy(out, v)
	return out
}
