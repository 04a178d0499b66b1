// Package sexpr reads symbolic expressions made of numbers, symbols and
// parenthesized lists.
//
// The reader is a single forward pass over the input that never recurses, so
// the nesting depth of the input is only limited by available memory. See
// package parser for the details and package ast for the resulting tree.
package sexpr

import (
	"io"

	"github.com/xiam/sexp-reader/ast"
	"github.com/xiam/sexp-reader/parser"
)

// Reader parses all the expressions from an io.Reader.
type Reader struct {
	r io.Reader
}

// Read returns the top-level expressions in the given text, or the first
// error found in it.
func Read(in string) ([]*ast.Node, error) {
	return parser.ParseString(in)
}

// NewReader creates a Reader that consumes r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read consumes the underlying reader until EOF and parses its contents.
func (r *Reader) Read() ([]*ast.Node, error) {
	return parser.New(r.r).Parse()
}
