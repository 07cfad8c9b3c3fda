// Released under an MIT license. See LICENSE.

// Package options parses cask's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	trace       bool
	usage       = `cask

Usage:
  cask [-t] [SCRIPT]
  cask [-t] -c STATEMENT
  cask -h
  cask -v

Arguments:
  SCRIPT  Path to a cask script, evaluated one statement per line.

Options:
  -c, --command=STATEMENT  Evaluate the specified statement.
  -t, --trace              Trace declarations, assignments, binds, and updates.
  -h, --help               Display this help.
  -v, --version            Print cask version.

If cask's stdin is a TTY and no script or statement is given, an
interactive session is started.
`
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse(version string) {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	trace, _ = opts.Bool("--trace")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

func Script() string {
	return script
}

func Trace() bool {
	return trace
}
