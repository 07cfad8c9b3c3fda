// Released under an MIT license. See LICENSE.

package scope_test

import (
	"errors"
	"testing"

	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/struct/guard"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/undef"
	"github.com/cask-lang/cask/internal/engine/scope"
)

func TestDeclareAndLookup(t *testing.T) {
	sc := scope.New(nil)

	if _, err := sc.Declare(scope.Decl{Name: "x", Init: num.Int(1)}); err != nil {
		t.Fatalf("declare: %v", err)
	}

	s := sc.Lookup("x")
	if s == nil {
		t.Fatal("lookup of a declared name came up empty")
	}

	if !s.Get().Equal(num.Int(1)) {
		t.Errorf("x reads %v, want 1", s.Get())
	}

	if sc.Lookup("y") != nil {
		t.Error("lookup of an undeclared name found a slot")
	}
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	outer := scope.New(nil)
	_, _ = outer.Declare(scope.Decl{Name: "x", Init: num.Int(1)})

	inner := scope.New(outer)
	_, _ = inner.Declare(scope.Decl{Name: "x", Init: num.Int(2)})

	if !inner.Lookup("x").Get().Equal(num.Int(2)) {
		t.Errorf("inner x reads %v, want 2", inner.Lookup("x").Get())
	}

	if !outer.Lookup("x").Get().Equal(num.Int(1)) {
		t.Errorf("outer x reads %v, want 1", outer.Lookup("x").Get())
	}

	if inner.Lookup("x") == outer.Lookup("x") {
		t.Error("shadowing must create a distinct slot")
	}
}

func TestLookupWalksTheChain(t *testing.T) {
	outer := scope.New(nil)
	_, _ = outer.Declare(scope.Decl{Name: "y", Init: str.New("out")})

	inner := scope.New(outer)

	if inner.Lookup("y") != outer.Lookup("y") {
		t.Error("inner scope must see the enclosing slot itself")
	}
}

func TestDeclareWithoutInitializerIsUndefined(t *testing.T) {
	sc := scope.New(nil)

	s, err := sc.Declare(scope.Decl{Name: "x", Guard: guard.Numeric()})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	if !undef.Is(s.Get()) {
		t.Errorf("x reads %v, want undefined", s.Get())
	}
}

func TestDefinednessCheckedAtDeclaration(t *testing.T) {
	sc := scope.New(nil)

	_, err := sc.Declare(scope.Decl{Name: "x", Guard: guard.Numeric().Require()})

	var mm *fault.Mismatch
	if !errors.As(err, &mm) {
		t.Fatalf("declare returned %v, want a type-check fault", err)
	}

	if sc.Lookup("x") != nil {
		t.Error("failed declaration still created a slot")
	}
}

func TestDeclareChecksInitializer(t *testing.T) {
	sc := scope.New(nil)

	if _, err := sc.Declare(scope.Decl{Name: "x", Guard: guard.Numeric(), Init: str.New("one")}); err == nil {
		t.Error("initializer failing the guard must fail the declaration")
	}
}

func TestDeclareWithBindTarget(t *testing.T) {
	sc := scope.New(nil)

	c := scalar.New(num.Int(3))

	s, err := sc.Declare(scope.Decl{Name: "x", Bind: c})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	if s.Container() != c {
		t.Error("declaration did not bind to the given container")
	}

	s, err = sc.Declare(scope.Decl{Name: "k", Bind: num.Int(4)})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	if s.Container() != nil || !s.Get().Equal(num.Int(4)) {
		t.Error("declaration did not bind the bare value")
	}
}

func TestRemove(t *testing.T) {
	outer := scope.New(nil)
	_, _ = outer.Declare(scope.Decl{Name: "x", Init: num.Int(1)})

	inner := scope.New(outer)

	if !inner.Remove("x") {
		t.Fatal("remove of a name declared in the enclosing scope failed")
	}

	if inner.Lookup("x") != nil {
		t.Error("removed name still resolves")
	}

	if inner.Remove("x") {
		t.Error("second remove of the same name succeeded")
	}
}

func TestNamesKeepDeclarationOrder(t *testing.T) {
	sc := scope.New(nil)

	for _, n := range []string{"c", "a", "b"} {
		_, _ = sc.Declare(scope.Decl{Name: n})
	}

	got := sc.Names()
	want := []string{"c", "a", "b"}

	for i, n := range want {
		if got[i] != n {
			t.Fatalf("names are %v, want %v", got, want)
		}
	}
}
