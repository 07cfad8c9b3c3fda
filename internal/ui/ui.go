// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for cask.
package ui

import (
	"fmt"
	"os"

	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process statements.
type Evaluator interface {
	Evaluate(statement string) (string, error)
}

// Run launches the UI, which sends each line to the Evaluator and prints
// what comes back.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("cask> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Println()

			return
		}

		if line == "" {
			continue
		}

		cli.AppendHistory(line)

		if line == "exit" || line == "quit" {
			return
		}

		out, err := e.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)

			continue
		}

		if out != "" {
			fmt.Println(out)
		}
	}
}
