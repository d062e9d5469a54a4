// Released under an MIT license. See LICENSE.

// Package options parses everest's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "everest 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	usage       = `everest

Usage:
  everest [-d] [-i] [-s]
  everest [-d] -c EXPRESSION
  everest -h
  everest -v

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression and exit.
  -d, --debug               Print each parsed expression tree to stderr.
  -i, --interactive         Invert interactive mode.
  -s, --stdin               Read expressions from stdin.
  -h, --help                Display this help.
  -v, --version             Print everest version.

Expressions are evaluated one line at a time. Digits are 0 through 9 and X,
a vector is written a|b, and the operators are + - * / ^ with parentheses
for grouping. All arithmetic is modulo 11.

If everest's stdin is a TTY and everest was not given an expression to
evaluate, lines are read with history and line editing. Otherwise, lines
are read from stdin as they arrive.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if parse trees should be dumped.
func Debug() bool {
	return debug
}

// Interactive returns true if input should be read with line editing.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	set(opts, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

func set(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")

	stdin, _ := opts.Bool("--stdin")

	interactive = command == "" && !stdin && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
