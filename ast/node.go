package ast

import (
	"fmt"

	"github.com/xiam/sexp-reader/lexer"
)

// Node is a symbolic expression: a number, a symbol or a list of nodes. The
// set of node types is closed, see NodeType.
type Node struct {
	nt  NodeType
	pos lexer.Pos
	v   interface{}
}

func newNode(nt NodeType, pos lexer.Pos, v interface{}) *Node {
	return &Node{
		nt:  nt,
		pos: pos,
		v:   v,
	}
}

// NewNumber creates a node of type "Number"
func NewNumber(pos lexer.Pos, v float64) *Node {
	return newNode(NodeTypeNumber, pos, v)
}

// NewSymbol creates a node of type "Symbol", the name is kept verbatim
func NewSymbol(pos lexer.Pos, name string) *Node {
	return newNode(NodeTypeSymbol, pos, name)
}

// NewList creates a node of type "List" that takes ownership of children.
// The caller must not modify the slice afterwards.
func NewList(pos lexer.Pos, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return newNode(NodeTypeList, pos, children)
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Pos returns the position of the first character of the node within the
// source text.
func (n *Node) Pos() lexer.Pos {
	return n.pos
}

// Number returns the value of a "Number" node
func (n *Node) Number() float64 {
	return n.v.(float64)
}

// Symbol returns the name of a "Symbol" node
func (n *Node) Symbol() string {
	return n.v.(string)
}

// List returns all the children elements of a "List" node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// IsAtom returns true if the node is a number or a symbol
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return Describe(n)
}

// GoString is used by %#v
func (n *Node) GoString() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("ast.List[%d]@%v", len(n.List()), n.pos)
	}
	return fmt.Sprintf("ast.%v(%q)@%v", n.nt, encodeValue(n), n.pos)
}

// Equal reports whether a and b hold the same tree. Positions are ignored.
func Equal(a, b *Node) bool {
	type pair struct{ a, b *Node }

	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.nt != p.b.nt {
			return false
		}

		switch p.a.nt {
		case NodeTypeNumber:
			if p.a.Number() != p.b.Number() {
				return false
			}
		case NodeTypeSymbol:
			if p.a.Symbol() != p.b.Symbol() {
				return false
			}
		case NodeTypeList:
			la, lb := p.a.List(), p.b.List()
			if len(la) != len(lb) {
				return false
			}
			for i := range la {
				stack = append(stack, pair{la[i], lb[i]})
			}
		}
	}
	return true
}

// EqualForest is Equal applied pairwise to two sequences of nodes.
func EqualForest(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
