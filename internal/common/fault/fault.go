// Released under an MIT license. See LICENSE.

// Package fault provides cask's error taxonomy.
//
// Three kinds of failure originate here: immutability, type-check, and
// slice-binding. The fourth kind, domain errors raised by a hook
// container's set-hook, are opaque to cask and pass through unwrapped.
// All faults are local, synchronous, and never retried.
package fault

import (
	"strconv"

	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/interface/literal"
)

// Immutable is returned for a write against a slot bound to a bare value
// or against a fixed-sequence element that is not itself a value container.
type Immutable struct {
	Op   string // the operation that was refused
	What string // the target that refused it
}

func (e *Immutable) Error() string {
	return "cannot " + e.Op + " " + e.What + ": target is immutable"
}

// Mismatch is returned when a value fails a slot's or hook container's
// structural or definedness constraint. It carries the offending value
// and the constraint it violated. The write never happened.
type Mismatch struct {
	Value      datum.I
	Constraint string
}

func (e *Mismatch) Error() string {
	return "type check failed: " + e.Constraint + " does not accept " + repr(e.Value)
}

// Slice is returned for a multi-slot bind against a container variant
// that supports only scalar binding.
type Slice struct {
	Variant string
}

func (e *Slice) Error() string {
	return "cannot bind multiple slots to a " + e.Variant + " container"
}

// Bounds is returned for a write addressed before a sequence's first
// element. Writes past the last element grow the sequence instead.
type Bounds struct {
	Index int
}

func (e *Bounds) Error() string {
	return "cannot write before the first element: index " + strconv.Itoa(e.Index)
}

func repr(d datum.I) string {
	if d == nil {
		return "nothing"
	}

	if l, ok := d.(literal.I); ok {
		return l.Literal()
	}

	return "a " + d.Name()
}
