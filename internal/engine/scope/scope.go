// Released under an MIT license. See LICENSE.

// Package scope provides cask's slot table.
//
// A scope maps names to slots and chains to an enclosing scope. Slots
// are created by declaration events from the scope resolver and live as
// long as their owning scope; a container shared through a bind lives as
// long as the last slot referencing it, which Go's collector tracks for
// us.
package scope

import (
	"errors"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/guard"
	"github.com/cask-lang/cask/internal/common/struct/slot"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

// T (scope) maps names to slots.
type T struct {
	previous *T
	names    map[string]*slot.T
	order    []string
}

type scope = T

// Decl is a declaration event.
type Decl struct {
	Name  string
	Guard *guard.T

	// Init, when present, is assigned into the slot's fresh container.
	Init datum.I

	// Bind, when present, is the binding target: a container to alias,
	// or anything else as a bare immutable value. Init is ignored when
	// Bind is set.
	Bind datum.I
}

// New creates a scope enclosed by previous, which may be nil.
func New(previous *T) *scope {
	return &scope{previous: previous, names: map[string]*slot.T{}}
}

// Declare creates a slot in the scope s from the declaration event d.
// A definedness-required declaration with neither an initializer nor a
// binding target fails here, at declaration time.
func (s *scope) Declare(d Decl) (*slot.T, error) {
	if d.Name == "" {
		return nil, errors.New("declaration without a name")
	}

	created, err := build(d)
	if err != nil {
		return nil, err
	}

	if _, ok := s.names[d.Name]; !ok {
		s.order = append(s.order, d.Name)
	}

	s.names[d.Name] = created

	return created, nil
}

// Enclosing returns the enclosing scope.
func (s *scope) Enclosing() *T {
	return s.previous
}

// Lookup retrieves the slot associated with the name k in the scope s or
// the nearest enclosing scope that declares it.
func (s *scope) Lookup(k string) *slot.T {
	if s == nil {
		return nil
	}

	if v, ok := s.names[k]; ok {
		return v
	}

	return s.previous.Lookup(k)
}

// Names returns the names declared in the scope s, in declaration order.
func (s *scope) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)

	return names
}

// Remove deletes the name k from the scope s or the nearest enclosing
// scope that declares it.
func (s *scope) Remove(k string) bool {
	if s == nil {
		return false
	}

	if _, ok := s.names[k]; ok {
		delete(s.names, k)

		for i, have := range s.order {
			if have == k {
				s.order = append(s.order[:i], s.order[i+1:]...)

				break
			}
		}

		return true
	}

	return s.previous.Remove(k)
}

func build(d Decl) (*slot.T, error) {
	if d.Bind != nil {
		if c, ok := d.Bind.(container.I); ok {
			return slot.New(d.Name, c, d.Guard), nil
		}

		if err := d.Guard.Check(d.Bind); err != nil {
			return nil, err
		}

		return slot.Value(d.Name, d.Bind, d.Guard), nil
	}

	v := d.Init
	if v == nil {
		if d.Guard.Required() {
			return nil, &fault.Mismatch{Value: undef.Undefined, Constraint: d.Guard.String()}
		}

		v = undef.Undefined
	} else if err := d.Guard.Check(v); err != nil {
		return nil, err
	}

	return slot.New(d.Name, scalar.New(v), d.Guard), nil
}
