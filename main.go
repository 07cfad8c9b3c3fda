// Released under an MIT license. See LICENSE.

/*
Cask is an interactive workbench for its container runtime: the layer of
a dynamic language deciding how names bind to storage, how assignment
differs from binding, how missing mapping entries spring into being on
first compound update, and how nested values flatten for iteration.

	$ cask
	cask> my xs = [ 1 [ 2 3 ] [ 4 [ 5 6 ] ] ]
	cask> flat xs

For more detail, see the statement summary in internal/engine.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cask-lang/cask/internal/engine"
	"github.com/cask-lang/cask/internal/system/options"
	"github.com/cask-lang/cask/internal/ui"
)

const version = "0.1.0"

func main() {
	options.Parse(version)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cask"})
	if options.Trace() {
		logger.SetLevel(log.DebugLevel)
	}

	e, err := engine.New(logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if statement := options.Command(); statement != "" {
		evaluate(e, statement)

		return
	}

	if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		defer f.Close()

		lines(e, f)

		return
	}

	if options.Interactive() {
		ui.Run(e)

		return
	}

	lines(e, os.Stdin)
}

func evaluate(e *engine.T, statement string) {
	out, err := e.Evaluate(statement)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if out != "" {
		fmt.Println(out)
	}
}

func lines(e *engine.T, f *os.File) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		evaluate(e, scanner.Text())
	}
}
