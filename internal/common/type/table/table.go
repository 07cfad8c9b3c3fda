// Released under an MIT license. See LICENSE.

// Package table provides cask's mapping container.
//
// A table maps unique keys to slots. Insertion order is preserved for
// enumeration only. Reading a missing key returns undefined and never
// mutates the table; Vivify is the one primitive that creates an entry
// on demand, and the binder's compound update is its one caller.
package table

import (
	"iter"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/slot"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/tuple"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

const name = "table"

// T (table) is an insertion-ordered mapping from keys to slots.
type T struct {
	keys []string
	m    map[string]*slot.T
}

type table = T

// New creates an empty table.
func New() *table {
	return &table{m: map[string]*slot.T{}}
}

// Delete removes the entry for the key k, if there is one.
func (c *table) Delete(k string) bool {
	if _, ok := c.m[k]; !ok {
		return false
	}

	delete(c.m, k)

	for i, have := range c.keys {
		if have == k {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)

			break
		}
	}

	return true
}

// Equal returns true if d is the same table as c.
func (c *table) Equal(d datum.I) bool {
	return Is(d) && c == To(d)
}

// Get returns the value for the key k, or undefined if k is missing.
// A missing key is never created by a read.
func (c *table) Get(k string) datum.I {
	s, ok := c.m[k]
	if !ok {
		return undef.Undefined
	}

	return s.Get()
}

// InPlace returns true; writes mutate the table in place.
func (c *table) InPlace() bool {
	return true
}

// Keys returns the table's keys in insertion order.
func (c *table) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)

	return keys
}

// Len returns the number of entries in the table c.
func (c *table) Len() int {
	return len(c.keys)
}

// Lookup returns the slot for the key k, or nil if k is missing.
func (c *table) Lookup(k string) *slot.T {
	return c.m[k]
}

// Name returns the type name for the table c.
func (c *table) Name() string {
	return name
}

// Put writes v through the entry for the key k, creating the entry if it
// is missing.
func (c *table) Put(k string, v datum.I) error {
	s, ok := c.m[k]
	if !ok {
		c.entry(k, v)

		return nil
	}

	return s.Container().Write(v)
}

// Range returns a restartable sequence of the table's entries, each a
// two-element tuple of key and value, in insertion order.
func (c *table) Range() iter.Seq[datum.I] {
	return func(yield func(datum.I) bool) {
		for _, k := range c.keys {
			if !yield(tuple.New(str.New(k), c.m[k].Get())) {
				return
			}
		}
	}
}

// Read returns the table itself.
func (c *table) Read() datum.I {
	return c
}

// Sliceable returns false; a table binds a single slot.
func (c *table) Sliceable() bool {
	return false
}

// Vivify returns the slot for the key k, creating the entry with the
// baseline value first if k is missing.
func (c *table) Vivify(k string, baseline datum.I) *slot.T {
	s, ok := c.m[k]
	if !ok {
		s = c.entry(k, baseline)
	}

	return s
}

// Write replaces the table's contents in place with the entries of v,
// which must be a sequence of two-element key/value tuples.
func (c *table) Write(v datum.I) error {
	r, ok := v.(container.Ranger)
	if !ok {
		return &fault.Mismatch{Value: v, Constraint: "a sequence of key/value pairs"}
	}

	fresh := New()

	for e := range r.Range() {
		p, ok := e.(*tuple.T)
		if !ok || p.Len() != 2 || !str.Is(p.Get(0)) {
			return &fault.Mismatch{Value: e, Constraint: "a key/value pair"}
		}

		fresh.entry(str.To(p.Get(0)).String(), p.Get(1))
	}

	c.keys = fresh.keys
	c.m = fresh.m

	return nil
}

func (c *table) entry(k string, v datum.I) *slot.T {
	s := slot.New(k, scalar.New(v), nil)

	c.keys = append(c.keys, k)
	c.m[k] = s

	return s
}

// Is returns true if d is a table.
func Is(d datum.I) bool {
	_, ok := d.(*table)

	return ok
}

// To returns a table if d is a table; Otherwise it panics.
func To(d datum.I) *table {
	if t, ok := d.(*table); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a mapping context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t table

	// The table type is a container.
	_ = container.I(&t)

	// The table type has ordered entries.
	_ = container.Ranger(&t)
}
