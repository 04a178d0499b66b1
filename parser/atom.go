package parser

import (
	"errors"
	"strconv"

	"github.com/xiam/sexp-reader/ast"
	"github.com/xiam/sexp-reader/lexer"
)

// finalizeAtom converts the text accumulated while in the given state into a
// node. pos is the position of the first character of the atom.
func finalizeAtom(state State, text string, pos lexer.Pos) (*ast.Node, error) {
	switch state {
	case StateSymbol:
		return ast.NewSymbol(pos, text), nil

	case StateInteger, StateFloat:
		f64, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &Error{Kind: ErrNumberParseFailure, Pos: pos, Text: text, Err: err}
		}
		// Out of range values read as +Inf.
		return ast.NewNumber(pos, f64), nil
	}

	return nil, &Error{Kind: ErrInvalidAtom, Pos: pos, Text: text}
}
