// Released under an MIT license. See LICENSE.

// Package literal defines the interface for cask types that can be expressed as literals.
package literal

import (
	"github.com/cask-lang/cask/internal/common/interface/datum"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a datum, if possible.
func String(d datum.I) string {
	l, ok := d.(I)
	if !ok {
		// Not all cask types can be expressed as literals.
		panic(d.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
