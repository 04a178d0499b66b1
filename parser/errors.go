package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexp-reader/lexer"
)

// Kinds of errors returned by the reader, use errors.Is to match them.
var (
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidAtom        = errors.New("invalid atom")
	ErrNumberParseFailure = errors.New("cannot parse number")
	ErrMissingOpenParen   = errors.New("missing '('")
	ErrUnmatchedOpenParen = errors.New("unmatched '('")
)

// Error describes the first problem found in the input. No partial result is
// ever returned along with it.
type Error struct {
	Kind error     // One of the Err* kinds above
	Pos  lexer.Pos // Where the problem was detected
	Text string    // Atom text involved, if any
	Err  error     // Underlying cause, if any
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: %v", e.Pos, e.Kind)
	if e.Text != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Text)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
