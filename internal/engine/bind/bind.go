// Released under an MIT license. See LICENSE.

// Package bind implements assignment, binding, and compound update.
//
// Assignment writes through a slot's current container in place, which is
// why every slot sharing that container observes the change. Binding
// repoints a slot at a different container, or at a bare immutable value,
// without touching the slots that shared the old one. Compound update is
// one observable step, read-modify-write, and is the sole mechanism that
// creates missing mapping entries.
package bind

import (
	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/slot"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/tuple"
	"github.com/cask-lang/cask/internal/common/type/undef"
	"github.com/cask-lang/cask/internal/common/type/vector"
)

// Assign writes v through the slot's current container. The slot's guard
// is checked before anything is written, so a failed check leaves the
// container exactly as it was.
func Assign(s *slot.T, v datum.I) error {
	if err := s.Guard().Check(v); err != nil {
		return err
	}

	c := s.Container()
	if c == nil {
		return &fault.Immutable{Op: "assign to", What: what(s)}
	}

	if !c.InPlace() {
		return &fault.Immutable{Op: "assign to", What: "a " + c.Name() + " container"}
	}

	return c.Write(v)
}

// To binds the slot s to the container c. Slots that shared the slot's
// previous container are unaffected, and the slot's guard applies only
// to writes from here on, never retroactively.
func To(s *slot.T, c container.I) {
	s.Bind(c)
}

// Value binds the slot s directly to the bare value v. Until the slot is
// rebound, assignment through it fails with an immutability fault.
func Value(s *slot.T, v datum.I) {
	s.BindValue(v)
}

// Alias binds the slot dst to whatever the slot src is bound to: its
// container, so that both observe each other's writes, or its bare value.
func Alias(dst, src *slot.T) {
	if c := src.Container(); c != nil {
		dst.Bind(c)

		return
	}

	dst.BindValue(src.Get())
}

// Slice binds each slot in ss to successive elements of the container c.
// Only container variants that allow it take part; for the rest the bind
// fails before any slot is touched. Vector elements are bound through
// their containers, aliasing the element; tuple elements are bound as
// bare immutable values. Slots past the last element come up undefined.
func Slice(ss []*slot.T, c container.I) error {
	if !c.Sliceable() {
		return &fault.Slice{Variant: c.Name()}
	}

	switch t := c.(type) {
	case *vector.T:
		for i, s := range ss {
			e := t.At(i)
			if e == nil {
				if err := t.Set(i, undef.Undefined); err != nil {
					return err
				}

				e = t.At(i)
			}

			s.Bind(e.Container())
		}
	case *tuple.T:
		for i, s := range ss {
			v := t.Get(i)
			if e, ok := v.(container.I); ok && e.InPlace() {
				s.Bind(e)
			} else {
				s.BindValue(v)
			}
		}
	default:
		return &fault.Slice{Variant: c.Name()}
	}

	return nil
}

// Update applies a compound update to the slot s: read the current value,
// undefined reading as the operator's identity, apply the operator with
// the operand v, and write the result back. The pre- and post-update
// values are both returned; postfix operators report the former, prefix
// operators the latter.
func Update(s *slot.T, op Operator, v datum.I) (prev, next datum.I, err error) {
	// A slot bound to a bare value could never complete the write-back,
	// so the update fails before reading.
	if s.Container() == nil {
		return nil, nil, &fault.Immutable{Op: "update", What: what(s)}
	}

	prev = s.Get()

	base := prev
	if undef.Is(base) {
		base = op.identity
	}

	next, err = op.apply(base, v)
	if err != nil {
		return nil, nil, err
	}

	if err = Assign(s, next); err != nil {
		return nil, nil, err
	}

	return prev, next, nil
}

// UpdateKey applies a compound update to the entry for the key k in the
// table t. A missing key is created with the operator's identity before
// the operand is applied; this is cask's only autovivification.
func UpdateKey(t *table.T, k string, op Operator, v datum.I) (prev, next datum.I, err error) {
	return Update(t.Vivify(k, op.identity), op, v)
}

// Incr is prefix increment: the slot is updated and the post-update
// value returned.
func Incr(s *slot.T) (datum.I, error) {
	_, next, err := Update(s, Add, num.Int(1))

	return next, err
}

// PostIncr is postfix increment: the slot is updated but the pre-update
// value returned.
func PostIncr(s *slot.T) (datum.I, error) {
	prev, _, err := Update(s, Add, num.Int(1))

	return prev, err
}

// Decr is prefix decrement.
func Decr(s *slot.T) (datum.I, error) {
	_, next, err := Update(s, Sub, num.Int(1))

	return next, err
}

// PostDecr is postfix decrement.
func PostDecr(s *slot.T) (datum.I, error) {
	prev, _, err := Update(s, Sub, num.Int(1))

	return prev, err
}

func what(s *slot.T) string {
	if n := s.Name(); n != "" {
		return "'" + n + "'"
	}

	return "an anonymous slot"
}
