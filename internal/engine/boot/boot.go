// Released under an MIT license. See LICENSE.

// Package boot loads declaration events into a scope.
//
// Declarations are described in YAML, either the embedded prelude or any
// file the user points cask at. Each document entry becomes one
// declaration event, applied in order, so later entries may bind to
// earlier ones.
package boot

import (
	_ "embed" // Blank import required by embed.
	"fmt"
	"io"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/struct/guard"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/str"
	"github.com/cask-lang/cask/internal/common/type/table"
	"github.com/cask-lang/cask/internal/common/type/vector"
	"github.com/cask-lang/cask/internal/engine/scope"
)

//go:embed prelude.yaml
var prelude []byte //nolint:gochecknoglobals

type entry struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Defined bool     `yaml:"defined"`
	Value   string   `yaml:"value"`
	Items   []string `yaml:"items"`
	Pairs   []pair   `yaml:"pairs"`
	Bind    string   `yaml:"bind"`
}

type pair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Load declares every entry read from r in the scope sc.
func Load(r io.Reader, sc *scope.T) error {
	var entries []entry

	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return err
	}

	for _, e := range entries {
		if err := declare(e, sc); err != nil {
			return fmt.Errorf("declaring '%s': %w", e.Name, err)
		}
	}

	return nil
}

// Prelude declares the embedded startup entries in the scope sc.
func Prelude(sc *scope.T) error {
	return Load(strings.NewReader(string(prelude)), sc)
}

func declare(e entry, sc *scope.T) error {
	d := scope.Decl{Name: e.Name, Guard: guardFor(e)}

	switch {
	case e.Bind != "":
		target := sc.Lookup(e.Bind)
		if target == nil {
			return fmt.Errorf("'%s' has not been declared", e.Bind)
		}

		if c := target.Container(); c != nil {
			d.Bind = c
		} else {
			d.Bind = target.Get()
		}
	case len(e.Items) > 0:
		d.Bind = vector.New(values(e.Items)...)
	case len(e.Pairs) > 0:
		t := table.New()
		for _, p := range e.Pairs {
			if err := t.Put(p.Key, value(p.Value)); err != nil {
				return err
			}
		}

		d.Bind = t
	case e.Value != "":
		d.Init = value(e.Value)
	}

	_, err := sc.Declare(d)

	return err
}

func guardFor(e entry) *guard.T {
	var g *guard.T

	switch e.Type {
	case "number":
		g = guard.Numeric()
	case "string":
		g = guard.Textual()
	default:
		if !e.Defined {
			return nil
		}

		g = guard.Any()
	}

	if e.Defined {
		g = g.Require()
	}

	return g
}

// value turns a YAML scalar into a cask value: a number if it spells
// one, a string otherwise.
func value(s string) datum.I {
	if _, ok := new(big.Rat).SetString(s); ok {
		return num.New(s)
	}

	return str.New(s)
}

func values(ss []string) []datum.I {
	vs := make([]datum.I, len(ss))
	for i, s := range ss {
		vs[i] = value(s)
	}

	return vs
}
