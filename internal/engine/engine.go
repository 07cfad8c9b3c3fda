// Released under an MIT license. See LICENSE.

// Package engine provides a small evaluator over cask's container
// subsystem. It stands in for a surrounding language evaluator, turning
// one-line statements into declaration, assignment, binding,
// compound-update, and iteration operations.
//
// Statements:
//
//	my [defined] [number|string|sequence|mapping] NAME [= VALUE...]
//	NAME = VALUE...
//	NAME := NAME|VALUE          (bind; NAME NAME... := for a slice bind)
//	NAME += V  -= V  *= V  ~= V (also NAME{KEY} and NAME[INDEX] forms)
//	NAME++  NAME--  ++NAME  --NAME
//	say VALUE...
//	items NAME | flat NAME | keys NAME | push NAME VALUE...
//	begin | end | drop NAME | load PATH
//
// Values: numbers, 'strings', bare words, [ ... ] sequences, ( ... )
// fixed sequences, $V value-container wrapping, and *[ ... ] slips.
package engine

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/guard"
	"github.com/cask-lang/cask/internal/common/struct/slot"
	"github.com/cask-lang/cask/internal/common/type/hook"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/undef"
	"github.com/cask-lang/cask/internal/common/type/vector"
	"github.com/cask-lang/cask/internal/engine/bind"
	"github.com/cask-lang/cask/internal/engine/boot"
	"github.com/cask-lang/cask/internal/engine/flatten"
	"github.com/cask-lang/cask/internal/engine/scope"
)

// T (engine) evaluates statements against a scope chain.
type T struct {
	scope *scope.T
	log   *log.Logger
}

type engine = T

// New creates an engine with a root scope holding the boot prelude and
// the built-in hook slots.
func New(logger *log.Logger) (*engine, error) {
	root := scope.New(nil)

	if err := boot.Prelude(root); err != nil {
		return nil, err
	}

	e := &engine{scope: root, log: logger}

	e.clock(root)

	return e, nil
}

// Evaluate runs one statement and returns its printable result, if any.
func (e *engine) Evaluate(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	toks := strings.Fields(line)

	switch toks[0] {
	case "my":
		return e.declare(toks[1:])
	case "say":
		return e.say(toks[1:])
	case "items":
		return e.iterate(toks[1:], flatten.Shallow)
	case "flat":
		return e.iterate(toks[1:], flatten.Deep)
	case "keys":
		return e.keys(toks[1:])
	case "push":
		return e.push(toks[1:])
	case "drop":
		return e.drop(toks[1:])
	case "load":
		return e.load(toks[1:])
	case "begin":
		e.scope = scope.New(e.scope)

		return "", nil
	case "end":
		if enc := e.scope.Enclosing(); enc != nil {
			e.scope = enc

			return "", nil
		}

		return "", errors.New("already at the root scope")
	}

	if i := indexOf(toks, ":="); i > 0 {
		return e.bindStmt(toks[:i], toks[i+1:])
	}

	if len(toks) == 1 {
		t := toks[0]

		switch {
		case strings.HasPrefix(t, "++"):
			return e.step(t[2:], bind.Add, false)
		case strings.HasPrefix(t, "--"):
			return e.step(t[2:], bind.Sub, false)
		case strings.HasSuffix(t, "++"):
			return e.step(t[:len(t)-2], bind.Add, true)
		case strings.HasSuffix(t, "--"):
			return e.step(t[:len(t)-2], bind.Sub, true)
		}
	}

	if len(toks) >= 3 {
		switch toks[1] {
		case "=":
			return e.assign(toks[0], toks[2:])
		case "+=", "-=", "*=", "~=":
			return e.update(toks[0], toks[1], toks[2:])
		}
	}

	return "", fmt.Errorf("unrecognized statement: %s", line)
}

func (e *engine) declare(toks []string) (string, error) {
	defined := false
	typ := ""

loop:
	for len(toks) > 0 {
		switch toks[0] {
		case "defined":
			defined = true
		case "number", "string", "sequence", "mapping":
			typ = toks[0]
		default:
			break loop
		}

		toks = toks[1:]
	}

	if len(toks) == 0 {
		return "", errors.New("declaration without a name")
	}

	name := toks[0]
	toks = toks[1:]

	var init datum.I

	if len(toks) > 0 {
		if toks[0] != "=" {
			return "", fmt.Errorf("expected '=', found '%s'", toks[0])
		}

		v, err := e.values(toks[1:])
		if err != nil {
			return "", err
		}

		init = v
	}

	d := scope.Decl{Name: name}

	switch typ {
	case "number":
		d.Guard = guard.Numeric()
	case "string":
		d.Guard = guard.Textual()
	case "sequence":
		if v, ok := init.(*vector.T); ok {
			d.Bind = v
		} else if init != nil {
			d.Bind = vector.New(init)
		} else {
			d.Bind = vector.New()
		}
	case "mapping":
		if init != nil {
			return "", errors.New("mapping declarations take no initializer")
		}

		d.Bind = table.New()
	}

	if d.Bind == nil {
		d.Init = init
	}

	if defined {
		if d.Guard == nil {
			d.Guard = guard.Any()
		}

		d.Guard = d.Guard.Require()
	}

	s, err := e.scope.Declare(d)
	if err != nil {
		return "", err
	}

	e.log.Debug("declare", "name", name, "guard", s.Guard().String())

	return "", nil
}

func (e *engine) assign(lv string, rhs []string) (string, error) {
	v, err := e.values(rhs)
	if err != nil {
		return "", err
	}

	p, ok := parseLvalue(lv)
	if !ok {
		return "", fmt.Errorf("cannot assign to '%s'", lv)
	}

	switch p.kind {
	case keyed:
		t, err := e.tableFor(p.name)
		if err != nil {
			return "", err
		}

		if err := t.Put(p.key, v); err != nil {
			return "", err
		}
	case indexed:
		vec, err := e.vectorFor(p.name)
		if err != nil {
			return "", err
		}

		if err := vec.Set(p.index, v); err != nil {
			return "", err
		}
	default:
		s := e.scope.Lookup(p.name)
		if s == nil {
			return "", undeclared(p.name)
		}

		if err := bind.Assign(s, v); err != nil {
			return "", err
		}
	}

	e.log.Debug("assign", "to", lv, "value", render(v))

	return "", nil
}

func (e *engine) update(lv, opTok string, rhs []string) (string, error) {
	op, ok := operators[opTok]
	if !ok {
		return "", fmt.Errorf("unrecognized operator: %s", opTok)
	}

	operand, err := e.values(rhs)
	if err != nil {
		return "", err
	}

	_, next, err := e.apply(lv, op, operand)
	if err != nil {
		return "", err
	}

	e.log.Debug("update", "to", lv, "op", op.Name(), "value", render(next))

	return render(next), nil
}

// step is increment or decrement by one. Postfix reports the pre-update
// value, prefix the post-update value; the slot holds the new value
// either way.
func (e *engine) step(lv string, op bind.Operator, post bool) (string, error) {
	prev, next, err := e.apply(lv, op, num.Int(1))
	if err != nil {
		return "", err
	}

	if post {
		return render(prev), nil
	}

	return render(next), nil
}

func (e *engine) apply(lv string, op bind.Operator, operand datum.I) (prev, next datum.I, err error) {
	p, ok := parseLvalue(lv)
	if !ok {
		return nil, nil, fmt.Errorf("cannot update '%s'", lv)
	}

	switch p.kind {
	case keyed:
		t, err := e.tableFor(p.name)
		if err != nil {
			return nil, nil, err
		}

		return bind.UpdateKey(t, p.key, op, operand)
	case indexed:
		vec, err := e.vectorFor(p.name)
		if err != nil {
			return nil, nil, err
		}

		if vec.At(p.index) == nil {
			if err := vec.Set(p.index, undef.Undefined); err != nil {
				return nil, nil, err
			}
		}

		return bind.Update(vec.At(p.index), op, operand)
	default:
		s := e.scope.Lookup(p.name)
		if s == nil {
			return nil, nil, undeclared(p.name)
		}

		return bind.Update(s, op, operand)
	}
}

func (e *engine) bindStmt(left, right []string) (string, error) {
	slots := make([]*slot.T, len(left))

	for i, n := range left {
		s := e.scope.Lookup(n)
		if s == nil {
			return "", undeclared(n)
		}

		slots[i] = s
	}

	if len(right) == 0 {
		return "", errors.New("bind without a target")
	}

	if src := e.scope.Lookup(right[0]); src != nil && len(right) == 1 {
		if len(slots) == 1 {
			bind.Alias(slots[0], src)
			e.log.Debug("bind", "slot", left[0], "to", right[0])

			return "", nil
		}

		c := src.Container()
		if c == nil {
			return "", fmt.Errorf("cannot slice-bind to '%s': bound to a bare value", right[0])
		}

		return "", bind.Slice(slots, c)
	}

	v, rest, err := parseLiteral(right)
	if err != nil {
		return "", err
	}

	if len(rest) != 0 {
		return "", errors.New("trailing tokens after binding target")
	}

	if c, ok := v.(container.I); ok {
		if len(slots) == 1 {
			bind.To(slots[0], c)

			return "", nil
		}

		return "", bind.Slice(slots, c)
	}

	if len(slots) != 1 {
		return "", errors.New("cannot bind multiple slots to a bare value")
	}

	bind.Value(slots[0], v)
	e.log.Debug("bind", "slot", left[0], "value", render(v))

	return "", nil
}

func (e *engine) say(toks []string) (string, error) {
	if len(toks) == 0 {
		return "", errors.New("say needs a value")
	}

	var parts []string

	for len(toks) > 0 {
		v, rest, err := e.operand(toks)
		if err != nil {
			return "", err
		}

		parts = append(parts, render(v))
		toks = rest
	}

	return strings.Join(parts, " "), nil
}

func (e *engine) iterate(toks []string, f func(datum.I) iter.Seq[datum.I]) (string, error) {
	if len(toks) == 0 {
		return "", errors.New("nothing to iterate")
	}

	v, rest, err := e.operand(toks)
	if err != nil {
		return "", err
	}

	if len(rest) != 0 {
		return "", errors.New("iterate one value at a time")
	}

	var parts []string

	for item := range f(v) {
		parts = append(parts, render(item))
	}

	return strings.Join(parts, "\n"), nil
}

func (e *engine) keys(toks []string) (string, error) {
	if len(toks) != 1 {
		return "", errors.New("keys needs a mapping name")
	}

	t, err := e.tableFor(toks[0])
	if err != nil {
		return "", err
	}

	return strings.Join(t.Keys(), "\n"), nil
}

func (e *engine) push(toks []string) (string, error) {
	if len(toks) < 2 {
		return "", errors.New("push needs a sequence name and values")
	}

	vec, err := e.vectorFor(toks[0])
	if err != nil {
		return "", err
	}

	vs, err := e.literals(toks[1:])
	if err != nil {
		return "", err
	}

	vec.Append(vs...)

	return "", nil
}

func (e *engine) drop(toks []string) (string, error) {
	if len(toks) != 1 {
		return "", errors.New("drop needs a name")
	}

	if !e.scope.Remove(toks[0]) {
		return "", undeclared(toks[0])
	}

	return "", nil
}

func (e *engine) load(toks []string) (string, error) {
	if len(toks) != 1 {
		return "", errors.New("load needs a path")
	}

	f, err := os.Open(toks[0])
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := boot.Load(f, e.scope); err != nil {
		return "", err
	}

	e.log.Debug("load", "path", toks[0])

	return "", nil
}

// operand resolves a declared name, keyed entry, or indexed element, and
// falls back to a literal.
func (e *engine) operand(toks []string) (datum.I, []string, error) {
	if p, ok := parseLvalue(toks[0]); ok {
		switch p.kind {
		case keyed:
			t, err := e.tableFor(p.name)
			if err != nil {
				return nil, nil, err
			}

			return t.Get(p.key), toks[1:], nil
		case indexed:
			vec, err := e.vectorFor(p.name)
			if err != nil {
				return nil, nil, err
			}

			return vec.Get(p.index), toks[1:], nil
		default:
			if s := e.scope.Lookup(p.name); s != nil {
				return s.Get(), toks[1:], nil
			}
		}
	}

	return parseLiteral(toks)
}

// values parses the tokens as one value: a single literal, or a fresh
// sequence when there is more than one.
func (e *engine) values(toks []string) (datum.I, error) {
	vs, err := e.literals(toks)
	if err != nil {
		return nil, err
	}

	if len(vs) == 1 {
		return vs[0], nil
	}

	return vector.New(vs...), nil
}

func (e *engine) literals(toks []string) ([]datum.I, error) {
	var vs []datum.I

	for len(toks) > 0 {
		v, rest, err := e.operand(toks)
		if err != nil {
			return nil, err
		}

		vs = append(vs, v)
		toks = rest
	}

	if len(vs) == 0 {
		return nil, errors.New("expected a value")
	}

	return vs, nil
}

func (e *engine) tableFor(name string) (*table.T, error) {
	s := e.scope.Lookup(name)
	if s == nil {
		return nil, undeclared(name)
	}

	t, ok := s.Get().(*table.T)
	if !ok {
		return nil, fmt.Errorf("'%s' is not bound to a mapping", name)
	}

	return t, nil
}

func (e *engine) vectorFor(name string) (*vector.T, error) {
	s := e.scope.Lookup(name)
	if s == nil {
		return nil, undeclared(name)
	}

	v, ok := s.Get().(*vector.T)
	if !ok {
		return nil, fmt.Errorf("'%s' is not bound to a sequence", name)
	}

	return v, nil
}

// clock declares the read-only 'now' hook slot. Its set-hook rejection
// is the stock demonstration of a domain error passing through cask
// untouched.
func (e *engine) clock(root *scope.T) {
	get := func() datum.I {
		return num.Int(int(time.Now().Unix()))
	}

	set := func(datum.I) error {
		return errors.New("the clock sets itself")
	}

	// The declaration cannot fail: the name is set and there is no
	// initializer to check.
	_, _ = root.Declare(scope.Decl{Name: "now", Bind: hook.New(get, set, guard.Numeric())})
}

//nolint:gochecknoglobals
var operators = map[string]bind.Operator{
	"+=": bind.Add,
	"-=": bind.Sub,
	"*=": bind.Mul,
	"~=": bind.Cat,
}

func indexOf(toks []string, s string) int {
	for i, t := range toks {
		if t == s {
			return i
		}
	}

	return -1
}

func undeclared(name string) error {
	return fmt.Errorf("'%s' has not been declared", name)
}
