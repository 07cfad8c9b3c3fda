// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"
	"strings"

	"github.com/cask-lang/cask/internal/common"
	"github.com/cask-lang/cask/internal/common/interface/container"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/type/hook"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/scalar"
	"github.com/cask-lang/cask/internal/common/type/slip"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/tuple"
	"github.com/cask-lang/cask/internal/common/type/undef"
	"github.com/cask-lang/cask/internal/common/type/vector"
)

const (
	plain = iota
	keyed
	indexed
)

// lvalue is an assignable location: a name, a keyed entry, or an
// indexed element.
type lvalue struct {
	name  string
	key   string
	index int
	kind  int
}

func parseLvalue(tok string) (lvalue, bool) {
	if i := strings.IndexByte(tok, '{'); i > 0 && strings.HasSuffix(tok, "}") {
		return lvalue{name: tok[:i], key: tok[i+1 : len(tok)-1], kind: keyed}, true
	}

	if i := strings.IndexByte(tok, '['); i > 0 && strings.HasSuffix(tok, "]") {
		n, err := strconv.Atoi(tok[i+1 : len(tok)-1])
		if err != nil || n < 0 {
			return lvalue{}, false
		}

		return lvalue{name: tok[:i], index: n, kind: indexed}, true
	}

	if name(tok) {
		return lvalue{name: tok, kind: plain}, true
	}

	return lvalue{}, false
}

func name(tok string) bool {
	for i, r := range tok {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}

	return tok != ""
}

// parseLiteral parses one value from toks and returns what remains.
func parseLiteral(toks []string) (datum.I, []string, error) {
	if len(toks) == 0 {
		return nil, nil, fmt.Errorf("expected a value")
	}

	tok := toks[0]

	switch tok {
	case "[", "$[", "*[":
		vs, rest, err := parseSeq(toks[1:], "]")
		if err != nil {
			return nil, nil, err
		}

		v := vector.New(vs...)

		switch tok {
		case "$[":
			return scalar.New(v), rest, nil
		case "*[":
			return slip.New(v), rest, nil
		}

		return v, rest, nil
	case "(":
		vs, rest, err := parseSeq(toks[1:], ")")
		if err != nil {
			return nil, nil, err
		}

		return tuple.New(vs...), rest, nil
	}

	if strings.HasPrefix(tok, "$") && len(tok) > 1 {
		return scalar.New(atom(tok[1:])), toks[1:], nil
	}

	return atom(tok), toks[1:], nil
}

func parseSeq(toks []string, until string) ([]datum.I, []string, error) {
	var vs []datum.I

	for {
		if len(toks) == 0 {
			return nil, nil, fmt.Errorf("missing '%s'", until)
		}

		if toks[0] == until {
			return vs, toks[1:], nil
		}

		v, rest, err := parseLiteral(toks)
		if err != nil {
			return nil, nil, err
		}

		vs = append(vs, v)
		toks = rest
	}
}

func atom(tok string) datum.I {
	if len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'") {
		return str.New(tok[1 : len(tok)-1])
	}

	if _, ok := new(big.Rat).SetString(tok); ok {
		return num.New(tok)
	}

	return str.New(tok)
}

// render formats a value for display. Containers may form cycles, so a
// visited set cuts the recursion off where a graph rejoins itself.
func render(d datum.I) string {
	return renderInto(d, map[container.I]bool{})
}

func renderInto(d datum.I, seen map[container.I]bool) string {
	switch t := d.(type) {
	case nil:
		return "nothing"
	case *undef.T:
		return "(undefined)"
	case *scalar.T:
		if seen[t] {
			return "$..."
		}

		seen[t] = true
		defer delete(seen, t)

		return "$" + renderInto(t.Read(), seen)
	case *vector.T:
		if seen[t] {
			return "[...]"
		}

		seen[t] = true
		defer delete(seen, t)

		return "[" + renderElements(t.Range(), seen) + "]"
	case *tuple.T:
		if seen[t] {
			return "(...)"
		}

		seen[t] = true
		defer delete(seen, t)

		return "(" + renderElements(t.Range(), seen) + ")"
	case *table.T:
		if seen[t] {
			return "{...}"
		}

		seen[t] = true
		defer delete(seen, t)

		var parts []string

		for _, k := range t.Keys() {
			parts = append(parts, k+" => "+renderInto(t.Get(k), seen))
		}

		return "{" + strings.Join(parts, ", ") + "}"
	case *slip.T:
		return "*" + renderInto(t.Inner(), seen)
	case *hook.T:
		return renderInto(t.Read(), seen)
	}

	if s, ok := d.(common.Stringer); ok {
		return s.String()
	}

	return "(" + d.Name() + ")"
}

func renderElements(elements iter.Seq[datum.I], seen map[container.I]bool) string {
	var parts []string

	for v := range elements {
		parts = append(parts, renderInto(v, seen))
	}

	return strings.Join(parts, " ")
}
