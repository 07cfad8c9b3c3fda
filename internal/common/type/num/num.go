// Released under an MIT license. See LICENSE.

// Package num provides cask's rational number type.
package num

import (
	"math/big"

	"github.com/cask-lang/cask/internal/common"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/interface/literal"
	"github.com/cask-lang/cask/internal/common/interface/rational"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a new num datum from a string.
func New(s string) datum.I {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		panic("'" + s + "' is not a valid number")
	}

	return Rat(v)
}

// Int creates a num from the integer i.
func Int(i int) datum.I {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) datum.I {
	return (*num)(r)
}

// Equal returns true if d is the same number as the num n.
func (n *num) Equal(d datum.I) bool {
	return Is(d) && n.Rat().Cmp(To(d).Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return "(|" + name + " " + n.String() + "|)"
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// Is returns true if d is a num.
func Is(d datum.I) bool {
	_, ok := d.(*num)

	return ok
}

// To returns a num if d is a num; Otherwise it panics.
func To(d datum.I) *num {
	if t, ok := d.(*num); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a numeric context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a datum.
	_ = datum.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
