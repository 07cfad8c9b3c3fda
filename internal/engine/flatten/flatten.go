// Released under an MIT license. See LICENSE.

// Package flatten normalizes nested containers into one ordered sequence
// for iteration.
//
// Both producers are lazy and restartable: nothing is materialized, a
// consumer may stop after any prefix, and ranging again starts over. A
// value container is the "do not flatten" marker: iterating one yields
// the wrapped value as a single item, however compound it is. Cyclic
// container graphs are legal in cask and are not detected here; a
// consumer that must terminate on cycles carries its own visited set.
package flatten

import (
	"iter"

	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/slip"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/tuple"
	"github.com/cask-lang/cask/internal/common/type/vector"
)

// Shallow iterates d one level deep: one item per element, without
// recursing into nested containers, except that slip elements splice
// their own elements in place. A mapping yields one key/value pair per
// entry, in insertion order.
func Shallow(d datum.I) iter.Seq[datum.I] {
	return func(yield func(datum.I) bool) {
		switch t := d.(type) {
		case *scalar.T:
			yield(t.Read())
		case *slip.T:
			for v := range t.Range() {
				if !yield(v) {
					return
				}
			}
		case *vector.T:
			shallow(t.Range(), yield)
		case *tuple.T:
			shallow(t.Range(), yield)
		case *table.T:
			for v := range t.Range() {
				if !yield(v) {
					return
				}
			}
		default:
			yield(d)
		}
	}
}

// Deep recursively expands every nested sequence container in d that is
// not wrapped in a value container. Terminal values and mapping
// containers are never expanded further.
func Deep(d datum.I) iter.Seq[datum.I] {
	return func(yield func(datum.I) bool) {
		deep(d, yield)
	}
}

func shallow(elements iter.Seq[datum.I], yield func(datum.I) bool) {
	for v := range elements {
		if s, ok := v.(*slip.T); ok {
			for e := range s.Range() {
				if !yield(e) {
					return
				}
			}

			continue
		}

		if !yield(v) {
			return
		}
	}
}

func deep(d datum.I, yield func(datum.I) bool) bool {
	switch t := d.(type) {
	case *scalar.T:
		return yield(t.Read())
	case *slip.T:
		for v := range t.Range() {
			if !deep(v, yield) {
				return false
			}
		}
	case *vector.T:
		for v := range t.Range() {
			if !deep(v, yield) {
				return false
			}
		}
	case *tuple.T:
		for v := range t.Range() {
			if !deep(v, yield) {
				return false
			}
		}
	default:
		return yield(d)
	}

	return true
}
