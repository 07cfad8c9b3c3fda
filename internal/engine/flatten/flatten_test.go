// Released under an MIT license. See LICENSE.

package flatten_test

import (
	"iter"
	"testing"

	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/slip"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/tuple"
	"github.com/cask-lang/cask/internal/common/type/vector"
	"github.com/cask-lang/cask/internal/engine/flatten"
)

func collect(s iter.Seq[datum.I]) []datum.I {
	var vs []datum.I
	for v := range s {
		vs = append(vs, v)
	}

	return vs
}

func ints(vs ...int) []datum.I {
	ds := make([]datum.I, len(vs))
	for i, v := range vs {
		ds[i] = num.Int(v)
	}

	return ds
}

func equal(t *testing.T, got, want []datum.I) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("item %d is %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDeepExpandsEveryLevel(t *testing.T) {
	nested := vector.New(
		num.Int(1),
		vector.New(num.Int(2), num.Int(3)),
		vector.New(num.Int(4), vector.New(num.Int(5), num.Int(6))),
	)

	equal(t, collect(flatten.Deep(nested)), ints(1, 2, 3, 4, 5, 6))
}

func TestValueContainerStopsExpansion(t *testing.T) {
	inner := vector.New(num.Int(2), num.Int(3))
	nested := vector.New(
		num.Int(1),
		scalar.New(inner),
		vector.New(num.Int(4), num.Int(5)),
	)

	got := collect(flatten.Deep(nested))

	if len(got) != 4 {
		t.Fatalf("got %d items, want 4", len(got))
	}

	if !got[1].Equal(inner) {
		t.Errorf("item 1 is %v, want the wrapped sequence as one item", got[1])
	}

	equal(t, []datum.I{got[0], got[2], got[3]}, ints(1, 4, 5))
}

func TestShallowSplicesSlipsOnly(t *testing.T) {
	xs := vector.New(
		num.Int(1),
		slip.New(vector.New(num.Int(2), num.Int(3))),
		vector.New(num.Int(4), num.Int(5)),
	)

	got := collect(flatten.Shallow(xs))

	if len(got) != 4 {
		t.Fatalf("got %d items, want 4", len(got))
	}

	equal(t, got[:3], ints(1, 2, 3))

	if !vector.Is(got[3]) {
		t.Errorf("item 3 is %v, want the nested sequence unexpanded", got[3])
	}
}

func TestShallowOnValueContainerYieldsOneItem(t *testing.T) {
	inner := tuple.New(num.Int(1), num.Int(2))

	got := collect(flatten.Shallow(scalar.New(inner)))

	if len(got) != 1 || !got[0].Equal(inner) {
		t.Errorf("got %v, want the wrapped value as one item", got)
	}
}

func TestShallowOnMappingYieldsEntries(t *testing.T) {
	m := table.New()
	_ = m.Put("b", num.Int(2))
	_ = m.Put("a", num.Int(1))

	got := collect(flatten.Shallow(m))

	if len(got) != 2 {
		t.Fatalf("got %d items, want one per entry", len(got))
	}

	want := []datum.I{
		tuple.New(str.New("b"), num.Int(2)),
		tuple.New(str.New("a"), num.Int(1)),
	}

	for i, w := range want {
		p := tuple.To(got[i])
		q := tuple.To(w)

		if !p.Get(0).Equal(q.Get(0)) || !p.Get(1).Equal(q.Get(1)) {
			t.Errorf("entry %d is %v, want %v", i, got[i], w)
		}
	}
}

func TestShallowOnTerminalYieldsItself(t *testing.T) {
	got := collect(flatten.Shallow(num.Int(7)))

	equal(t, got, ints(7))
}

func TestSequencesRestart(t *testing.T) {
	s := flatten.Deep(vector.New(num.Int(1), vector.New(num.Int(2))))

	equal(t, collect(s), ints(1, 2))
	equal(t, collect(s), ints(1, 2))
}

func TestConsumerMayStopEarly(t *testing.T) {
	s := flatten.Deep(vector.New(num.Int(1), num.Int(2), num.Int(3)))

	var got []datum.I

	for v := range s {
		got = append(got, v)

		if len(got) == 2 {
			break
		}
	}

	equal(t, got, ints(1, 2))
}
