package parser

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"

	"github.com/xiam/sexp-reader/ast"
	"github.com/xiam/sexp-reader/lexer"
)

// DefaultAtomBufferSize is the initial capacity of the atom accumulator.
const DefaultAtomBufferSize = 32

// Options configures a Parser.
type Options struct {
	// AtomBufferSize is the initial capacity in bytes of the buffer atoms are
	// accumulated in. Values lower than 1 mean DefaultAtomBufferSize.
	AtomBufferSize int
}

var defaultOptions = Options{
	AtomBufferSize: DefaultAtomBufferSize,
}

// Parser reads symbolic expressions from a reader. The whole input is loaded
// into memory before parsing starts.
type Parser struct {
	r       io.Reader
	options Options
}

// New creates a parser that reads its input from r.
func New(r io.Reader) *Parser {
	return &Parser{
		r:       r,
		options: defaultOptions,
	}
}

// SetOptions replaces the options of the parser.
func (p *Parser) SetOptions(options Options) {
	if options.AtomBufferSize < 1 {
		options.AtomBufferSize = DefaultAtomBufferSize
	}
	p.options = options
}

// Parse reads the input until EOF and returns the top-level expressions found
// in it, or the first error.
func (p *Parser) Parse() ([]*ast.Node, error) {
	in, err := io.ReadAll(p.r)
	if err != nil {
		return nil, err
	}
	return newReader(p.options).read(string(in))
}

// Parse returns the top-level expressions in the given input.
func Parse(in []byte) ([]*ast.Node, error) {
	return New(bytes.NewReader(in)).Parse()
}

// ParseString returns the top-level expressions in the given string.
func ParseString(in string) ([]*ast.Node, error) {
	return New(strings.NewReader(in)).Parse()
}

// frame is a list that has been opened but not closed yet.
type frame struct {
	pos   lexer.Pos
	nodes []*ast.Node
}

type reader struct {
	state   State
	accum   []byte
	atomPos lexer.Pos

	// current receives finished nodes, it belongs to the innermost open list
	// or to the top level when stack is empty.
	current    []*ast.Node
	currentPos lexer.Pos

	stack []frame
}

func newReader(options Options) *reader {
	return &reader{
		state:   StateStart,
		accum:   make([]byte, 0, options.AtomBufferSize),
		current: []*ast.Node{},
	}
}

func (rd *reader) read(src string) ([]*ast.Node, error) {
	pos := lexer.StartPos

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		class := lexer.Classify(r)

		switch class {
		case lexer.ClassWhitespace:
			if err := rd.endAtom(); err != nil {
				return nil, err
			}

		case lexer.ClassOpenParen:
			if err := rd.endAtom(); err != nil {
				return nil, err
			}
			rd.openList(pos)

		case lexer.ClassCloseParen:
			if err := rd.endAtom(); err != nil {
				return nil, err
			}
			if err := rd.closeList(pos); err != nil {
				return nil, err
			}

		default:
			if err := rd.accept(class, r, src[i:i+size], pos); err != nil {
				return nil, err
			}
		}

		pos.Advance(r, size)
		i += size
	}

	if err := rd.endAtom(); err != nil {
		return nil, err
	}

	if len(rd.stack) > 0 {
		return nil, rd.fail(&Error{Kind: ErrUnmatchedOpenParen, Pos: rd.currentPos})
	}

	return rd.current, nil
}

// accept appends a non-terminator character to the current atom.
func (rd *reader) accept(class lexer.Class, r rune, raw string, pos lexer.Pos) error {
	next, ok := rd.state.step(class, r)
	if !ok {
		return rd.fail(&Error{Kind: ErrInvalidNumber, Pos: pos, Text: string(rd.accum) + raw})
	}
	if rd.state == StateStart {
		rd.atomPos = pos
	}
	rd.state = next
	rd.accum = append(rd.accum, raw...)
	return nil
}

// endAtom finalizes the atom in progress, if any, into the current list.
func (rd *reader) endAtom() error {
	if rd.state == StateStart {
		return nil
	}

	node, err := finalizeAtom(rd.state, string(rd.accum), rd.atomPos)
	if err != nil {
		return rd.fail(err)
	}

	if glog.V(2) {
		glog.Infof("sexpr: %v atom %v at %v", rd.state, node, node.Pos())
	}

	rd.current = append(rd.current, node)
	rd.accum = rd.accum[:0]
	rd.state = StateStart
	return nil
}

func (rd *reader) openList(pos lexer.Pos) {
	rd.stack = append(rd.stack, frame{pos: rd.currentPos, nodes: rd.current})
	rd.current = []*ast.Node{}
	rd.currentPos = pos
}

func (rd *reader) closeList(pos lexer.Pos) error {
	if len(rd.stack) == 0 {
		return rd.fail(&Error{Kind: ErrMissingOpenParen, Pos: pos})
	}

	list := ast.NewList(rd.currentPos, rd.current)

	if glog.V(2) {
		glog.Infof("sexpr: list with %d children at %v, depth %d", len(list.List()), list.Pos(), len(rd.stack))
	}

	top := len(rd.stack) - 1
	parent := rd.stack[top]
	rd.stack[top] = frame{}
	rd.stack = rd.stack[:top]

	rd.current = append(parent.nodes, list)
	rd.currentPos = parent.pos
	return nil
}

func (rd *reader) fail(err error) error {
	glog.V(1).Infof("sexpr: parse failed: %v", err)
	return err
}
