package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable, indented representation of the given nodes
// to w, one node per line.
func Fprint(w io.Writer, nodes []*Node) error {
	for i := range nodes {
		if err := printLevel(w, nodes[i], 0); err != nil {
			return err
		}
	}
	return nil
}

func printLevel(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	switch n.Type() {
	case NodeTypeList:
		list := n.List()
		if _, err := fmt.Fprintf(w, "%s(%s)[%d] %v\n", indent, n.Type(), len(list), n.Pos()); err != nil {
			return err
		}
		for i := range list {
			if err := printLevel(w, list[i], level+1); err != nil {
				return err
			}
		}
		return nil

	case NodeTypeNumber, NodeTypeSymbol:
		_, err := fmt.Fprintf(w, "%s(%s): %s %v\n", indent, n.Type(), encodeValue(n), n.Pos())
		return err
	}

	panic("unknown node type")
}

// Describe returns the tagged form of a node, e.g.
// "(List (Symbol +) (Number 1) (Number 2))".
func Describe(n *Node) string {
	var b strings.Builder
	describeNode(&b, n)
	return b.String()
}

func describeNode(b *strings.Builder, n *Node) {
	switch n.Type() {
	case NodeTypeList:
		b.WriteString("(List")
		for _, child := range n.List() {
			b.WriteByte(' ')
			describeNode(b, child)
		}
		b.WriteByte(')')

	case NodeTypeNumber, NodeTypeSymbol:
		fmt.Fprintf(b, "(%s %s)", n.Type(), encodeValue(n))

	default:
		panic("unknown node type")
	}
}

// Encode transforms a sequence of top-level nodes back into source text.
func Encode(nodes []*Node) []byte {
	encoded := make([]string, 0, len(nodes))
	for i := range nodes {
		encoded = append(encoded, string(encodeNode(nodes[i])))
	}
	return []byte(strings.Join(encoded, " "))
}

func encodeNode(n *Node) []byte {
	if n == nil {
		return []byte{}
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, child := range n.List() {
			nodes = append(nodes, string(encodeNode(child)))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeNumber, NodeTypeSymbol:
		return []byte(encodeSource(n))
	}

	panic("unknown node type")
}
