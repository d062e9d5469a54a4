// Released under an MIT license. See LICENSE.

/*
Everest is a calculator for the integers modulo 11 and for pairs of them.

Digits are 0 through 9 and X (ten). A pair a|b is a vector and multiplies
like the complex number a + bi:

	> 9+4
	2
	> (1+2)*3
	9
	> 1|2*3|4
	6|X
	> 5/0
	  ERROR: cannot divide 5 by 0

Each line is evaluated on its own. An error on one line has no effect on
the next.
*/
package main

import (
	"io"
	"os"

	"github.com/michaelmacinnis/everest/internal/system/options"
	"github.com/michaelmacinnis/everest/internal/ui"
)

func main() {
	options.Parse()

	var dump io.Writer
	if options.Debug() {
		dump = os.Stderr
	}

	u := ui.New(os.Stdout, dump)

	if c := options.Command(); c != "" {
		if u.Line(c) != nil {
			os.Exit(1)
		}

		return
	}

	var err error
	if options.Interactive() {
		err = u.Run()
	} else {
		err = u.Stream(os.Stdin)
	}

	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}
