// Released under an MIT license. See LICENSE.

package guard_test

import (
	"errors"
	"testing"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/struct/guard"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/undef"
)

func TestNumericRejectsNumericStrings(t *testing.T) {
	g := guard.Numeric()

	if err := g.Check(num.Int(5)); err != nil {
		t.Errorf("a number failed the numeric guard: %v", err)
	}

	err := g.Check(str.New("5"))

	var mm *fault.Mismatch
	if !errors.As(err, &mm) {
		t.Fatalf("check returned %v, want a type-check fault", err)
	}

	if !mm.Value.Equal(str.New("5")) {
		t.Errorf("fault carries %v, want the offending value", mm.Value)
	}
}

func TestUndefinedPassesUnlessRequired(t *testing.T) {
	g := guard.Numeric()

	if err := g.Check(undef.Undefined); err != nil {
		t.Errorf("undefined failed an unrequired guard: %v", err)
	}

	if err := g.Require().Check(undef.Undefined); err == nil {
		t.Error("undefined passed a definedness-required guard")
	}
}

func TestNilGuardAcceptsEverything(t *testing.T) {
	var g *guard.T

	if err := g.Check(str.New("anything")); err != nil {
		t.Errorf("nil guard rejected a value: %v", err)
	}

	if g.Required() {
		t.Error("nil guard claims to require definedness")
	}
}

func TestConstraintNames(t *testing.T) {
	if s := guard.Textual().String(); s != "string" {
		t.Errorf("guard names itself %q", s)
	}

	if s := guard.Textual().Require().String(); s != "defined string" {
		t.Errorf("required guard names itself %q", s)
	}
}
