// Released under an MIT license. See LICENSE.

package table_test

import (
	"errors"
	"testing"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/tuple"
	"github.com/cask-lang/cask/internal/common/type/undef"
	"github.com/cask-lang/cask/internal/common/type/vector"
)

func TestMissingKeyReadDoesNotCreate(t *testing.T) {
	c := table.New()

	if !undef.Is(c.Get("missing")) {
		t.Errorf("missing key read %v, want undefined", c.Get("missing"))
	}

	if c.Len() != 0 {
		t.Errorf("read created an entry; table has %d", c.Len())
	}
}

func TestVivifyCreatesExactlyOneEntry(t *testing.T) {
	c := table.New()

	s := c.Vivify("n", num.Int(0))

	if c.Len() != 1 {
		t.Fatalf("table has %d entries, want 1", c.Len())
	}

	if !s.Get().Equal(num.Int(0)) {
		t.Errorf("baseline is %v, want 0", s.Get())
	}

	if c.Vivify("n", num.Int(7)) != s {
		t.Error("vivify of an existing key must return the same slot")
	}

	if !c.Get("n").Equal(num.Int(0)) {
		t.Errorf("second vivify changed the value to %v", c.Get("n"))
	}
}

func TestKeysKeepInsertionOrder(t *testing.T) {
	c := table.New()

	for _, k := range []string{"c", "a", "b"} {
		if err := c.Put(k, str.New(k)); err != nil {
			t.Fatalf("put %s: %v", k, err)
		}
	}

	got := c.Keys()
	want := []string{"c", "a", "b"}

	for i, k := range want {
		if got[i] != k {
			t.Fatalf("keys are %v, want %v", got, want)
		}
	}
}

func TestDeleteForgetsOrderToo(t *testing.T) {
	c := table.New()

	_ = c.Put("a", num.Int(1))
	_ = c.Put("b", num.Int(2))

	if !c.Delete("a") {
		t.Fatal("delete of a present key returned false")
	}

	if c.Delete("a") {
		t.Error("delete of an absent key returned true")
	}

	if len(c.Keys()) != 1 || c.Keys()[0] != "b" {
		t.Errorf("keys are %v, want [b]", c.Keys())
	}
}

func TestWriteReplacesContents(t *testing.T) {
	c := table.New()
	_ = c.Put("old", num.Int(1))

	pairs := vector.New(
		tuple.New(str.New("x"), num.Int(10)),
		tuple.New(str.New("y"), num.Int(20)),
	)

	if err := c.Write(pairs); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if !undef.Is(c.Get("old")) || !c.Get("y").Equal(num.Int(20)) {
		t.Errorf("table contents are wrong after write: %v", c.Keys())
	}
}

func TestFailedWriteLeavesContents(t *testing.T) {
	c := table.New()
	_ = c.Put("old", num.Int(1))

	err := c.Write(vector.New(num.Int(3)))

	var mm *fault.Mismatch
	if !errors.As(err, &mm) {
		t.Fatalf("write returned %v, want a type-check fault", err)
	}

	if !c.Get("old").Equal(num.Int(1)) {
		t.Errorf("failed write disturbed the table; old is %v", c.Get("old"))
	}
}
