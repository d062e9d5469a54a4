// Released under an MIT license. See LICENSE.

// Package ui provides command-line interfaces for everest.
//
// Run reads lines from a terminal with history and line editing. Stream
// reads lines from any reader. Both hand each line to Line, which parses
// and evaluates it and writes the result.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/everest/internal/engine"
	"github.com/michaelmacinnis/everest/internal/reader/parser"
	"github.com/peterh/liner"
)

const prompt = "> "

//nolint:gochecknoglobals
var (
	digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "X"}
	dumper = spew.ConfigState{
		DisableCapacities:       true,
		DisableMethods:          true,
		DisablePointerAddresses: true,
		Indent:                  "  ",
	}
)

// T (ui) writes the results of evaluating lines of input.
type T struct {
	dump io.Writer // Parse trees are written here, if not nil.
	out  io.Writer
}

type ui = T

// New creates a new T that writes results to out. If dump is not nil, the
// tree for each parsed line is written to dump.
func New(out, dump io.Writer) *T {
	return &T{dump: dump, out: out}
}

// Line parses and evaluates line and writes the result. Any error is
// reported and also returned. Blank lines are ignored.
func (u *ui) Line(line string) error {
	if blank(line) {
		return nil
	}

	e, rest, err := parser.Parse(line)
	if err != nil {
		u.report(err)

		return err
	}

	if u.dump != nil {
		dumper.Fdump(u.dump, e)
	}

	if rest != "" {
		fmt.Fprintln(u.out, "  WARNING: input remaining", adapted.CanonicalString(rest))
	}

	v, err := engine.Evaluate(e)
	if err != nil {
		u.report(err)

		return err
	}

	fmt.Fprintln(u.out, v)

	return nil
}

// Run reads lines from the terminal until end of input.
// Interrupting a line discards it.
func (u *ui) Run() error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}

		if blank(line) {
			continue
		}

		cli.AppendHistory(line)

		_ = u.Line(line)
	}
}

// Stream reads lines, of any length, from r until end of input. An error on
// one line does not stop the lines that follow it.
func (u *ui) Stream(r io.Reader) error {
	b := bufio.NewReader(r)

	for {
		line, err := b.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			_ = u.Line(line)
		}

		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

func (u *ui) report(err error) {
	fmt.Fprintln(u.out, "  ERROR:", err)
}

// The cursor position n is in runes.
func complete(s string, n int) (h string, cs []string, t string) {
	r := []rune(s)
	h = string(r[:n])
	t = string(r[n:])

	p := parser.New(h)

	_, _, _ = p.Parse()

	for _, e := range p.Expected() {
		if e == "digit" {
			cs = append(cs, digits...)
		} else {
			cs = append(cs, strings.Trim(e, "'"))
		}
	}

	return
}

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
