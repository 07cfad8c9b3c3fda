// Released under an MIT license. See LICENSE.

// Package rational defines the interface for cask types usable in a numeric context.
package rational

import (
	"math/big"

	"github.com/cask-lang/cask/internal/common/interface/datum"
)

// I (rational) is anything that can be treated as a rational number in cask.
type I interface {
	Rat() *big.Rat
}

type rational = I

// Number returns the *big.Rat value for a datum, or nil if it has none.
// Numeric strings satisfy this interface, which is how the arithmetic
// compound-update operators, and only those operators, coerce them.
func Number(d datum.I) *big.Rat {
	r, ok := d.(rational)
	if !ok {
		return nil
	}

	return r.Rat()
}
