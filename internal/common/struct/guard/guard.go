// Released under an MIT license. See LICENSE.

// Package guard provides cask's type guard.
//
// A guard is attached to a slot or a hook container and checked on every
// store: plain assignment, a write through a bind, or the write-back of a
// compound update. It never coerces; a value either satisfies the guard
// or the store fails with a type-check fault.
package guard

import (
	"github.com/cask-lang/cask/internal/common"
	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

// T (guard) is a structural predicate plus an optional definedness
// requirement.
type T struct {
	name     string
	pred     func(datum.I) bool
	required bool
}

type guard = T

// New creates a guard with the name n and predicate pred. A nil predicate
// accepts every value, leaving only the definedness axis.
func New(n string, pred func(datum.I) bool) *guard {
	return &guard{name: n, pred: pred}
}

// Any creates a guard that accepts every value.
func Any() *guard {
	return New("any", nil)
}

// Numeric creates a guard that accepts only numbers. Numeric strings do
// not satisfy it; their coercion is an arithmetic affair, not a guard one.
func Numeric() *guard {
	return New("number", num.Is)
}

// Textual creates a guard that accepts only strings.
func Textual() *guard {
	return New("string", str.Is)
}

// Require returns a copy of the guard g that also rejects undefined values.
func (g *guard) Require() *guard {
	r := *g
	r.required = true

	return &r
}

// Check returns nil if v satisfies the guard g, and a type-check fault
// otherwise. A nil guard accepts everything. The structural predicate is
// only consulted for defined values.
func (g *guard) Check(v datum.I) error {
	if g == nil {
		return nil
	}

	if undef.Is(v) {
		if g.required {
			return &fault.Mismatch{Value: v, Constraint: g.String()}
		}

		return nil
	}

	if g.pred != nil && !g.pred(v) {
		return &fault.Mismatch{Value: v, Constraint: g.String()}
	}

	return nil
}

// Required returns true if the guard g rejects undefined values.
func (g *guard) Required() bool {
	return g != nil && g.required
}

// String returns the constraint name for the guard g.
func (g *guard) String() string {
	if g == nil {
		return "any"
	}

	if g.required {
		return "defined " + g.name
	}

	return g.name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t guard

	// The guard type is a stringer.
	_ = common.Stringer(&t)
}
