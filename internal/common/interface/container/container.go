// Released under an MIT license. See LICENSE.

// Package container defines the interface for cask's storage locations.
package container

import (
	"iter"

	"github.com/cask-lang/cask/internal/common/interface/datum"
)

// I (container) is anything a slot can be bound to. A container decides
// where a value lives and how it is read and written. Containers are
// themselves datums so that they can be stored inside other containers.
type I interface {
	datum.I

	Read() datum.I
	Write(v datum.I) error

	// InPlace reports whether Write mutates the container in place.
	// Assignment is only possible through in-place containers; this is
	// what makes a write through one bound slot visible through all of
	// them.
	InPlace() bool

	// Sliceable reports whether the container can be the target of a
	// multi-slot bind. Variants supporting only scalar binding return
	// false and the binder rejects the bind before touching any slot.
	Sliceable() bool
}

// Ranger is implemented by container variants with ordered elements.
// The sequence is restartable: ranging again starts over.
type Ranger interface {
	Range() iter.Seq[datum.I]
}

type container = I

// Is returns true if d is a container.
func Is(d datum.I) bool {
	_, ok := d.(container)

	return ok
}

// To returns a container if d is a container; Otherwise it panics.
func To(d datum.I) container {
	if t, ok := d.(container); ok {
		return t
	}

	panic(d.Name() + " cannot be used in a container context")
}
