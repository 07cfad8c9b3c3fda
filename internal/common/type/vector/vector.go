// Released under an MIT license. See LICENSE.

// Package vector provides cask's growable sequence container.
//
// A vector is an ordered list of slots, each holding its element in a
// fresh scalar. Writing past the end grows the vector with undefined
// elements; creating keyed entries on demand is the mapping container's
// business, not the vector's.
package vector

import (
	"iter"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/slot"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

const name = "vector"

// T (vector) is a growable ordered sequence of slots.
type T struct {
	slots []*slot.T
}

type vector = T

// New creates a vector with one element per value in vs.
func New(vs ...datum.I) *vector {
	c := &vector{}

	c.Append(vs...)

	return c
}

// Append adds each value in vs to the end of the vector c.
func (c *vector) Append(vs ...datum.I) {
	for _, v := range vs {
		c.slots = append(c.slots, element(v))
	}
}

// At returns the slot for element i, or nil if i is out of range.
func (c *vector) At(i int) *slot.T {
	if i < 0 || i >= len(c.slots) {
		return nil
	}

	return c.slots[i]
}

// Equal returns true if d is the same vector as c.
func (c *vector) Equal(d datum.I) bool {
	return Is(d) && c == To(d)
}

// Get returns the value of element i, or undefined if i is out of range.
// Reading never grows the vector.
func (c *vector) Get(i int) datum.I {
	s := c.At(i)
	if s == nil {
		return undef.Undefined
	}

	return s.Get()
}

// InPlace returns true; writes mutate the vector in place.
func (c *vector) InPlace() bool {
	return true
}

// Len returns the number of elements in the vector c.
func (c *vector) Len() int {
	return len(c.slots)
}

// Name returns the type name for the vector c.
func (c *vector) Name() string {
	return name
}

// Range returns a restartable sequence of the vector's element values.
func (c *vector) Range() iter.Seq[datum.I] {
	return func(yield func(datum.I) bool) {
		for _, s := range c.slots {
			if !yield(s.Get()) {
				return
			}
		}
	}
}

// Read returns the vector itself.
func (c *vector) Read() datum.I {
	return c
}

// Set writes v through the container of element i, growing the vector
// with undefined elements first if i is past the end.
func (c *vector) Set(i int, v datum.I) error {
	if i < 0 {
		return &fault.Bounds{Index: i}
	}

	for i >= len(c.slots) {
		c.slots = append(c.slots, element(undef.Undefined))
	}

	return c.slots[i].Container().Write(v)
}

// Sliceable returns true; a vector can be the target of a multi-slot bind.
func (c *vector) Sliceable() bool {
	return true
}

// Write replaces the vector's elements in place with the elements of v,
// or with v itself when v has no elements. Slots bound to the vector all
// observe the new contents.
func (c *vector) Write(v datum.I) error {
	var fresh []*slot.T

	if r, ok := v.(container.Ranger); ok {
		for e := range r.Range() {
			fresh = append(fresh, element(e))
		}
	} else {
		fresh = append(fresh, element(v))
	}

	c.slots = fresh

	return nil
}

func element(v datum.I) *slot.T {
	return slot.New("", scalar.New(v), nil)
}

// Is returns true if d is a vector.
func Is(d datum.I) bool {
	_, ok := d.(*vector)

	return ok
}

// To returns a vector if d is a vector; Otherwise it panics.
func To(d datum.I) *vector {
	if t, ok := d.(*vector); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a sequence context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a container.
	_ = container.I(&t)

	// The vector type has ordered elements.
	_ = container.Ranger(&t)
}
