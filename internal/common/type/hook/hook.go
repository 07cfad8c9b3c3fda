// Released under an MIT license. See LICENSE.

// Package hook provides cask's hook container.
//
// A hook container holds no value of its own. Reads delegate to a
// caller-supplied get-hook and writes, after the declared type is
// checked, to a set-hook. A set-hook may reject a value with an error of
// its own domain; cask propagates it verbatim and never retries. Hooks
// may block for as long as they like.
package hook

import (
	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/guard"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

const name = "hook"

// Getter produces the container's current value.
type Getter func() datum.I

// Setter stores a value, or rejects it with a domain error.
type Setter func(datum.I) error

// T (hook) delegates reads and writes to caller-supplied functions.
type T struct {
	get Getter
	set Setter
	g   *guard.T
}

type hook = T

// New creates a hook container with the get-hook get, the set-hook set,
// and the declared type g. Any of the three may be nil: a nil get-hook
// reads as undefined, a nil set-hook makes the container read-only, and
// a nil declared type accepts every value.
func New(get Getter, set Setter, g *guard.T) *hook {
	return &hook{get: get, set: set, g: g}
}

// Equal returns true if d is the same hook container as c.
func (c *hook) Equal(d datum.I) bool {
	return Is(d) && c == To(d)
}

// InPlace returns true; a hook container is its own storage location.
func (c *hook) InPlace() bool {
	return true
}

// Name returns the type name for the hook container c.
func (c *hook) Name() string {
	return name
}

// Read delegates to the get-hook.
func (c *hook) Read() datum.I {
	if c.get == nil {
		return undef.Undefined
	}

	return c.get()
}

// Sliceable returns false; a hook container binds a single slot.
func (c *hook) Sliceable() bool {
	return false
}

// Write asserts the declared type and then delegates to the set-hook.
// A set-hook failure is returned unchanged.
func (c *hook) Write(v datum.I) error {
	if err := c.g.Check(v); err != nil {
		return err
	}

	if c.set == nil {
		return &fault.Immutable{Op: "assign to", What: "a read-only hook"}
	}

	return c.set(v)
}

// Is returns true if d is a hook container.
func Is(d datum.I) bool {
	_, ok := d.(*hook)

	return ok
}

// To returns a hook container if d is one; Otherwise it panics.
func To(d datum.I) *hook {
	if t, ok := d.(*hook); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a hook context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t hook

	// The hook type is a container.
	_ = container.I(&t)
}
