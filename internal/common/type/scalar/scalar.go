// Released under an MIT license. See LICENSE.

// Package scalar provides cask's value container.
//
// A scalar holds a single mutable reference and starts out undefined.
// Wrapping a compound value in a scalar is also the "do not flatten"
// marker: iteration yields the wrapped compound as a single item.
package scalar

import (
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

const name = "scalar"

// T (scalar) is a single mutable cell.
type T struct {
	v datum.I
}

type scalar = T

// New creates a scalar holding the value v.
func New(v datum.I) *scalar {
	if v == nil {
		v = undef.Undefined
	}

	return &scalar{v: v}
}

// Empty creates an undefined scalar.
func Empty() *scalar {
	return New(nil)
}

// Equal returns true if d is the same scalar as c.
func (c *scalar) Equal(d datum.I) bool {
	return Is(d) && c == To(d)
}

// InPlace returns true; a scalar is always written in place.
func (c *scalar) InPlace() bool {
	return true
}

// Name returns the type name for the scalar c.
func (c *scalar) Name() string {
	return name
}

// Read returns the stored reference.
func (c *scalar) Read() datum.I {
	return c.v
}

// Sliceable returns false; a scalar binds a single slot.
func (c *scalar) Sliceable() bool {
	return false
}

// Write replaces the stored reference unconditionally.
func (c *scalar) Write(v datum.I) error {
	c.v = v

	return nil
}

// Is returns true if d is a scalar.
func Is(d datum.I) bool {
	_, ok := d.(*scalar)

	return ok
}

// To returns a scalar if d is a scalar; Otherwise it panics.
func To(d datum.I) *scalar {
	if t, ok := d.(*scalar); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a scalar context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t scalar

	// The scalar type is a container.
	_ = container.I(&t)
}
