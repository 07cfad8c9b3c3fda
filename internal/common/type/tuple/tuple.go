// Released under an MIT license. See LICENSE.

// Package tuple provides cask's fixed sequence container.
//
// A tuple is an ordered sequence of raw values whose length is fixed at
// construction. Writing at a position fails with an immutability fault
// unless the element there is itself a value container, in which case the
// write goes through the element. Replacing the element itself is never
// allowed.
package tuple

import (
	"iter"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

const name = "tuple"

// T (tuple) is a fixed-length ordered sequence of raw values.
type T struct {
	vs []datum.I
}

type tuple = T

// New creates a tuple of the values vs.
func New(vs ...datum.I) *tuple {
	return &tuple{vs: vs}
}

// Equal returns true if d is the same tuple as c.
func (c *tuple) Equal(d datum.I) bool {
	return Is(d) && c == To(d)
}

// Get returns the value of element i, or undefined if i is out of range.
func (c *tuple) Get(i int) datum.I {
	if i < 0 || i >= len(c.vs) {
		return undef.Undefined
	}

	return c.vs[i]
}

// InPlace returns false; a tuple cannot be assigned to as a whole.
func (c *tuple) InPlace() bool {
	return false
}

// Len returns the number of elements in the tuple c.
func (c *tuple) Len() int {
	return len(c.vs)
}

// Name returns the type name for the tuple c.
func (c *tuple) Name() string {
	return name
}

// Range returns a restartable sequence of the tuple's raw elements.
func (c *tuple) Range() iter.Seq[datum.I] {
	return func(yield func(datum.I) bool) {
		for _, v := range c.vs {
			if !yield(v) {
				return
			}
		}
	}
}

// Read returns the tuple itself.
func (c *tuple) Read() datum.I {
	return c
}

// Set writes v through the container at element i if there is one.
// A bare element, or a position out of range, is immutable.
func (c *tuple) Set(i int, v datum.I) error {
	if i < 0 || i >= len(c.vs) {
		return &fault.Immutable{Op: "extend", What: "a fixed sequence"}
	}

	if e, ok := c.vs[i].(container.I); ok && e.InPlace() {
		return e.Write(v)
	}

	return &fault.Immutable{Op: "assign to", What: "a fixed sequence element"}
}

// Sliceable returns true; a tuple can be the target of a multi-slot bind.
func (c *tuple) Sliceable() bool {
	return true
}

// Write fails; a tuple's contents are fixed at construction.
func (c *tuple) Write(datum.I) error {
	return &fault.Immutable{Op: "assign to", What: "a fixed sequence"}
}

// Is returns true if d is a tuple.
func Is(d datum.I) bool {
	_, ok := d.(*tuple)

	return ok
}

// To returns a tuple if d is a tuple; Otherwise it panics.
func To(d datum.I) *tuple {
	if t, ok := d.(*tuple); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a sequence context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t tuple

	// The tuple type is a container.
	_ = container.I(&t)

	// The tuple type has ordered elements.
	_ = container.Ranger(&t)
}
