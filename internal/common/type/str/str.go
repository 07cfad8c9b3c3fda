// Released under an MIT license. See LICENSE.

// Package str provides cask's string type.
package str

import (
	"math/big"

	"github.com/michaelmacinnis/adapted"

	"github.com/cask-lang/cask/internal/common"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/interface/literal"
	"github.com/cask-lang/cask/internal/common/interface/rational"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str datum.
func New(v string) datum.I {
	s := str(v)

	return &s
}

// Equal returns true if the datum d wraps the same string and false otherwise.
func (s *str) Equal(d datum.I) bool {
	return Is(d) && s.String() == To(d).String()
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return adapted.CanonicalString(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Rat returns the numeric value of the str s, or nil if it has none.
// This is what lets arithmetic compound-update coerce numeric strings.
func (s *str) Rat() *big.Rat {
	v := &big.Rat{}

	if _, ok := v.SetString(string(*s)); !ok {
		return nil
	}

	return v
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if d is a str.
func Is(d datum.I) bool {
	_, ok := d.(*str)

	return ok
}

// To returns a str if d is a str; Otherwise it panics.
func To(d datum.I) *str {
	if t, ok := d.(*str); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a string context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a datum.
	_ = datum.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a rational.
	_ = rational.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
