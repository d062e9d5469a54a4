// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for everest expressions.
//
// Each production either matches and advances the parser or fails and leaves
// the parser where it was. Repetitions stop at the first operator whose
// operand does not match, so the unmatched operator is left in the remainder.
package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/everest/internal/type/expr"
	"github.com/michaelmacinnis/everest/internal/type/op"
	"github.com/michaelmacinnis/everest/internal/type/scalar"
	"github.com/michaelmacinnis/everest/internal/type/value"
	"github.com/michaelmacinnis/everest/internal/type/vector"
)

// T holds the state of the parser.
type T struct {
	index int    // Index of the current byte.
	text  string // Text being parsed.

	// Error reporting state.
	expected []string // What would have matched at far.
	far      int      // Furthest index at which a match failed.
}

type parser = T

// New creates a new parser for text.
func New(text string) *T {
	return &T{text: text}
}

// Parse parses text. See (*T).Parse.
func Parse(text string) (expr.T, string, error) {
	return New(text).Parse()
}

// Parse parses the longest expression at the start of the parser's text and
// returns it along with the text that follows it.
func (p *parser) Parse() (expr.T, string, error) {
	e := p.sum()
	if e == nil {
		return nil, p.text, &Error{
			Expected: p.expected,
			Input:    p.text,
			Offset:   p.far,
		}
	}

	return e, p.text[p.index:], nil
}

// Expected returns what would have been accepted after the end of the text.
// It is only meaningful after Parse and is empty if parsing stopped short of
// the end of the text. (Command completion).
func (p *parser) Expected() []string {
	if p.far < len(p.text) {
		return nil
	}

	return p.expected
}

func (p *parser) accept(c byte) bool {
	if p.index < len(p.text) && p.text[p.index] == c {
		p.index++

		return true
	}

	p.expect("'" + string(c) + "'")

	return false
}

// binary matches first followed by any number of operators from ops, each
// followed by rest. The result is folded left to right.
func (p *parser) binary(first, rest func() expr.T, ops ...op.T) expr.T {
	e := first()
	if e == nil {
		return nil
	}

	for {
		mark := p.index

		o, ok := p.operator(ops...)
		if !ok {
			return e
		}

		r := rest()
		if r == nil {
			p.index = mark

			return e
		}

		e = expr.Apply(o, e, r)
	}
}

func (p *parser) expect(s string) {
	if p.index > p.far {
		p.far = p.index
		p.expected = nil
	}

	if p.index < p.far {
		return
	}

	for _, e := range p.expected {
		if e == s {
			return
		}
	}

	p.expected = append(p.expected, s)
}

func (p *parser) operator(ops ...op.T) (op.T, bool) {
	if p.index < len(p.text) {
		if o, ok := op.Of(rune(p.text[p.index])); ok {
			for _, c := range ops {
				if o == c {
					p.index++

					return o, true
				}
			}
		}
	}

	for _, c := range ops {
		p.expect("'" + c.String() + "'")
	}

	return 0, false
}

func (p *parser) skipSpaces() {
	for p.index < len(p.text) && p.text[p.index] == ' ' {
		p.index++
	}
}

// Productions.

// <sum> ::= <term> (('+' | '-') <term>)* .
func (p *parser) sum() expr.T {
	return p.binary(p.term, p.term, op.Add, op.Subtract)
}

// <term> ::= <factor> (('*' | '/') <factor>)* .
func (p *parser) term() expr.T {
	return p.binary(p.factor, p.factor, op.Multiply, op.Divide)
}

// <factor> ::= <atom> ('^' <factor>)* .
func (p *parser) factor() expr.T {
	return p.binary(p.atom, p.factor, op.Power)
}

// <atom> ::= ' '* '(' <sum> ')' ' '* | <value> .
func (p *parser) atom() expr.T {
	start := p.index

	p.skipSpaces()

	if p.accept('(') {
		if e := p.sum(); e != nil && p.accept(')') {
			p.skipSpaces()

			return e
		}
	}

	p.index = start

	return p.value()
}

// <value> ::= ' '* (<scalar> '|' <scalar> | <scalar>) ' '* .
func (p *parser) value() expr.T {
	start := p.index

	p.skipSpaces()

	first, ok := p.scalar()
	if !ok {
		p.index = start

		return nil
	}

	v := value.NewScalar(first)

	mark := p.index
	if p.accept('|') {
		if second, ok := p.scalar(); ok {
			v = value.NewVector(vector.New(first, second))
		} else {
			p.index = mark
		}
	}

	p.skipSpaces()

	return expr.New(v)
}

// <scalar> ::= '0' | '1' | ... | '9' | 'X' .
func (p *parser) scalar() (scalar.T, bool) {
	if p.index < len(p.text) {
		s, err := scalar.FromRune(rune(p.text[p.index]))
		if err == nil {
			p.index++

			return s, true
		}
	}

	p.expect("digit")

	return 0, false
}

// Error is returned when no prefix of the input is an expression.
type Error struct {
	Expected []string // What would have been accepted at Offset.
	Input    string   // The text being parsed.
	Offset   int      // Byte offset of the first character that failed.
}

func (e *Error) Error() string {
	found := "end of input"
	if e.Offset < len(e.Input) {
		_, w := utf8.DecodeRuneInString(e.Input[e.Offset:])
		found = adapted.CanonicalString(e.Input[e.Offset : e.Offset+w])
	}

	msg := "column " + strconv.Itoa(e.Offset+1) + ": unexpected " + found

	n := len(e.Expected)
	if n == 0 {
		return msg
	}

	l := e.Expected[n-1]
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	return msg + ", expected " + strings.Join(e.Expected[:n-1], ", ") + l
}
