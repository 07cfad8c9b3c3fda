// Released under an MIT license. See LICENSE.

// Package undef provides cask's undefined marker.
// A freshly created value container holds Undefined until first written.
package undef

import (
	"github.com/cask-lang/cask/internal/common/interface/datum"
)

const name = "undefined"

// T (undef) is the distinguished "no value here" marker.
type T struct{}

type undef = T

// Undefined is the one undef value.
//
//nolint:gochecknoglobals
var Undefined datum.I = &undef{}

// Equal returns true if d is the undefined marker.
func (u *undef) Equal(d datum.I) bool {
	return Is(d)
}

// Literal returns the literal representation of the undef u.
func (u *undef) Literal() string {
	return "(|" + name + "|)"
}

// Name returns the type name for the undef u.
func (u *undef) Name() string {
	return name
}

// Is returns true if d is the undefined marker.
func Is(d datum.I) bool {
	_, ok := d.(*undef)

	return ok
}
