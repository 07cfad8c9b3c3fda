// Released under an MIT license. See LICENSE.

// Package slot provides cask's variable type.
//
// A slot is a named storage location in a scope. It is bound either to a
// container, through which assignment mutates in place, or directly to a
// bare value, in which case assignment fails. Only an explicit bind ever
// rebinds a slot; assignment never does.
package slot

import (
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/guard"
)

// T (slot) is a named storage location.
type T struct {
	name string
	c    container.I // nil when bound to a bare value
	v    datum.I     // the bare value when c is nil
	g    *guard.T
}

type slot = T

// New creates a slot named name bound to the container c and guarded by g.
// A nil guard accepts every value.
func New(name string, c container.I, g *guard.T) *slot {
	return &slot{name: name, c: c, g: g}
}

// Value creates a slot named name bound directly to the bare value v.
// Assignment through such a slot fails until it is rebound.
func Value(name string, v datum.I, g *guard.T) *slot {
	return &slot{name: name, v: v, g: g}
}

// Bind rebinds the slot s to the container c. Slots previously sharing
// the old container are unaffected.
func (s *slot) Bind(c container.I) {
	s.c = c
	s.v = nil
}

// BindValue rebinds the slot s directly to the bare value v.
func (s *slot) BindValue(v datum.I) {
	s.c = nil
	s.v = v
}

// Container returns the container the slot s is bound to, or nil if the
// slot is bound to a bare value.
func (s *slot) Container() container.I {
	return s.c
}

// Get reads the slot's current value through its container.
func (s *slot) Get() datum.I {
	if s.c != nil {
		return s.c.Read()
	}

	return s.v
}

// Guard returns the slot's type guard, which may be nil.
func (s *slot) Guard() *guard.T {
	return s.g
}

// Name returns the name the slot s was declared with.
func (s *slot) Name() string {
	return s.name
}
