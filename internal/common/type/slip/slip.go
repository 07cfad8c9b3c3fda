// Released under an MIT license. See LICENSE.

// Package slip provides cask's splice marker.
//
// A slip wraps a sequence. When a slip appears as an element of another
// sequence, shallow iteration splices the slip's own elements in place,
// one level deep, instead of yielding the slip as a single item.
package slip

import (
	"iter"

	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
)

const name = "slip"

// T (slip) marks a sequence for splicing.
type T struct {
	c container.I
}

type slip = T

// New marks the container c for splicing. c must have ordered elements.
func New(c container.I) datum.I {
	if _, ok := c.(container.Ranger); !ok {
		panic(c.Name() + " cannot be spliced")
	}

	return &slip{c: c}
}

// Equal returns true if d is the same slip as s.
func (s *slip) Equal(d datum.I) bool {
	return Is(d) && s == To(d)
}

// Inner returns the wrapped container.
func (s *slip) Inner() container.I {
	return s.c
}

// Name returns the type name for the slip s.
func (s *slip) Name() string {
	return name
}

// Range returns a restartable sequence of the wrapped container's elements.
func (s *slip) Range() iter.Seq[datum.I] {
	return s.c.(container.Ranger).Range()
}

// Is returns true if d is a slip.
func Is(d datum.I) bool {
	_, ok := d.(*slip)

	return ok
}

// To returns a slip if d is a slip; Otherwise it panics.
func To(d datum.I) *slip {
	if t, ok := d.(*slip); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a splice context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t slip

	// The slip type is a datum.
	_ = datum.I(&t)

	// The slip type has ordered elements.
	_ = container.Ranger(&t)
}
