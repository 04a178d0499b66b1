package parser

import (
	"github.com/xiam/sexp-reader/lexer"
)

// State is the kind of atom being accumulated by the reader.
type State uint8

// Reader states
const (
	StateStart           State = iota // No atom in progress
	StateSymbol                       // Committed to a symbol
	StateInteger                      // Digits only
	StateIncompleteFloat              // Digits and a "." with no digit after it yet
	StateFloat                        // Digits, "." and at least one more digit

	stateReject
)

var stateNames = map[State]string{
	StateStart:           "start",
	StateSymbol:          "symbol",
	StateInteger:         "integer",
	StateIncompleteFloat: "incomplete_float",
	StateFloat:           "float",
	stateReject:          "reject",
}

func (s State) String() string {
	if v, ok := stateNames[s]; ok {
		return v
	}
	return stateNames[stateReject]
}

type atomInput uint8

const (
	inputDigit atomInput = iota
	inputDot
	inputOther

	numAtomInputs
)

// Terminators (whitespace and parens) never reach this table, they end the
// atom instead.
var transitions = [...][numAtomInputs]State{
	// digit, dot, other
	StateStart:           {StateInteger, StateSymbol, StateSymbol},
	StateSymbol:          {StateSymbol, StateSymbol, StateSymbol},
	StateInteger:         {StateInteger, StateIncompleteFloat, stateReject},
	StateIncompleteFloat: {StateFloat, stateReject, stateReject},
	StateFloat:           {StateFloat, stateReject, stateReject},
}

func atomInputOf(class lexer.Class, r rune) atomInput {
	switch {
	case class == lexer.ClassDigit:
		return inputDigit
	case r == '.':
		return inputDot
	}
	return inputOther
}

func (s State) step(class lexer.Class, r rune) (State, bool) {
	next := transitions[s][atomInputOf(class, r)]
	return next, next != stateReject
}

// Next returns the state reached after appending r to an atom in state s. The
// second value is false if r can't be part of the atom. r must not be a
// terminator.
func (s State) Next(r rune) (State, bool) {
	return s.step(lexer.Classify(r), r)
}
