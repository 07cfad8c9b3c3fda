// Released under an MIT license. See LICENSE.

package engine_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/cask-lang/cask/internal/engine"
)

func fresh(t *testing.T) *engine.T {
	t.Helper()

	e, err := engine.New(log.New(io.Discard))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	return e
}

// run evaluates every statement, failing the test on any error, and
// returns the last statement's output.
func run(t *testing.T, e *engine.T, lines ...string) string {
	t.Helper()

	var out string

	for _, line := range lines {
		s, err := e.Evaluate(line)
		if err != nil {
			t.Fatalf("%s: %v", line, err)
		}

		out = s
	}

	return out
}

func TestDeclareAndSay(t *testing.T) {
	e := fresh(t)

	if got := run(t, e, "my x = 5", "say x"); got != "5" {
		t.Errorf("say x printed %q, want 5", got)
	}

	if got := run(t, e, "say 'hello' x"); got != "hello 5" {
		t.Errorf("say printed %q, want hello 5", got)
	}
}

func TestAssignmentAndUpdate(t *testing.T) {
	e := fresh(t)

	run(t, e, "my n = 5")

	if got := run(t, e, "n += 3"); got != "8" {
		t.Errorf("update printed %q, want 8", got)
	}

	if got := run(t, e, "n *= 2"); got != "16" {
		t.Errorf("update printed %q, want 16", got)
	}

	run(t, e, "my s = ab")

	if got := run(t, e, "s ~= cd", "say s"); got != "abcd" {
		t.Errorf("s is %q, want abcd", got)
	}
}

func TestStepStatements(t *testing.T) {
	e := fresh(t)

	run(t, e, "my n = 5")

	if got := run(t, e, "n++"); got != "5" {
		t.Errorf("postfix printed %q, want the old value 5", got)
	}

	if got := run(t, e, "say n"); got != "6" {
		t.Errorf("n is %q after postfix, want 6", got)
	}

	if got := run(t, e, "++n"); got != "7" {
		t.Errorf("prefix printed %q, want the new value 7", got)
	}
}

func TestBindAliases(t *testing.T) {
	e := fresh(t)

	run(t, e, "my a = 1", "my b", "b := a", "a = 2")

	if got := run(t, e, "say b"); got != "2" {
		t.Errorf("b prints %q after a write through a, want 2", got)
	}

	run(t, e, "b = 3")

	if got := run(t, e, "say a"); got != "3" {
		t.Errorf("a prints %q after a write through b, want 3", got)
	}
}

func TestBindToBareValueFreezes(t *testing.T) {
	e := fresh(t)

	run(t, e, "my k", "k := 5")

	if _, err := e.Evaluate("k = 6"); err == nil {
		t.Error("assignment through a bare-value binding must fail")
	}

	if got := run(t, e, "say k"); got != "5" {
		t.Errorf("k prints %q after the failed write, want 5", got)
	}
}

func TestMappingAutovivification(t *testing.T) {
	e := fresh(t)

	run(t, e, "my mapping m")

	if got := run(t, e, "say m{k}"); got != "(undefined)" {
		t.Errorf("missing key prints %q, want (undefined)", got)
	}

	if got := run(t, e, "keys m"); got != "" {
		t.Errorf("reading a missing key created entries: %q", got)
	}

	if got := run(t, e, "m{k} += 2"); got != "2" {
		t.Errorf("update printed %q, want 2", got)
	}

	if got := run(t, e, "keys m"); got != "k" {
		t.Errorf("keys are %q, want k", got)
	}
}

func TestItemsOnAMapping(t *testing.T) {
	e := fresh(t)

	run(t, e, "my mapping m", "m{x} += 1", "m{y} += 2")

	if got := run(t, e, "items m"); got != "(x 1)\n(y 2)" {
		t.Errorf("items printed %q, want one key/value pair per entry", got)
	}
}

func TestSequenceStatements(t *testing.T) {
	e := fresh(t)

	run(t, e, "my sequence xs = [ 1 2 3 ]", "push xs 4", "xs[1] = 9")

	if got := run(t, e, "say xs"); got != "[1 9 3 4]" {
		t.Errorf("xs prints %q", got)
	}

	if got := run(t, e, "say xs[3]"); got != "4" {
		t.Errorf("xs[3] prints %q, want 4", got)
	}

	if got := run(t, e, "xs[6] = 7", "say xs[5]"); got != "(undefined)" {
		t.Errorf("gap element prints %q, want (undefined)", got)
	}
}

func TestItemsAndFlat(t *testing.T) {
	e := fresh(t)

	run(t, e, "my sequence ys = [ 1 [ 2 3 ] ]")

	if got := run(t, e, "items ys"); got != "1\n[2 3]" {
		t.Errorf("items printed %q", got)
	}

	if got := run(t, e, "flat ys"); got != "1\n2\n3" {
		t.Errorf("flat printed %q", got)
	}
}

func TestSlipSplicesShallow(t *testing.T) {
	e := fresh(t)

	got := run(t, e, "items [ 1 *[ 2 3 ] 4 ]")

	if got != strings.Join([]string{"1", "2", "3", "4"}, "\n") {
		t.Errorf("items printed %q", got)
	}
}

func TestValueContainerIsOneItem(t *testing.T) {
	e := fresh(t)

	got := run(t, e, "flat [ 1 $[ 2 3 ] 4 ]")

	if got != "1\n[2 3]\n4" {
		t.Errorf("flat printed %q", got)
	}
}

func TestScopes(t *testing.T) {
	e := fresh(t)

	run(t, e, "my s = 1", "begin", "my s = 2")

	if got := run(t, e, "say s"); got != "2" {
		t.Errorf("inner s prints %q, want 2", got)
	}

	if got := run(t, e, "end", "say s"); got != "1" {
		t.Errorf("outer s prints %q, want 1", got)
	}
}

func TestEndAtRootFails(t *testing.T) {
	e := fresh(t)

	if _, err := e.Evaluate("end"); err == nil {
		t.Error("end at the root scope must fail")
	}
}

func TestClockHook(t *testing.T) {
	e := fresh(t)

	if got := run(t, e, "say now"); got == "" {
		t.Error("the clock read nothing")
	}

	_, err := e.Evaluate("now = 5")
	if err == nil || err.Error() != "the clock sets itself" {
		t.Errorf("writing the clock returned %v, want its own refusal", err)
	}

	if _, err := e.Evaluate("now = 'soon'"); err == nil {
		t.Error("a mistyped write must fail the declared type check")
	}
}

func TestDefinedDeclarationNeedsAValue(t *testing.T) {
	e := fresh(t)

	if _, err := e.Evaluate("my defined number n"); err == nil {
		t.Error("definedness must be checked at declaration")
	}

	run(t, e, "my defined number m = 1")
}

func TestDrop(t *testing.T) {
	e := fresh(t)

	run(t, e, "my d = 1", "drop d")

	if _, err := e.Evaluate("d = 2"); err == nil {
		t.Error("assignment to a dropped name must fail")
	}
}

func TestSliceBindStatement(t *testing.T) {
	e := fresh(t)

	run(t, e, "my a", "my b", "a b := [ 1 2 ]", "a = 10")

	if got := run(t, e, "say a b"); got != "10 2" {
		t.Errorf("slots print %q, want 10 2", got)
	}
}

func TestPreludeIsLoaded(t *testing.T) {
	e := fresh(t)

	if got := run(t, e, "say cask-version"); got == "" {
		t.Error("cask-version is not declared")
	}
}
