package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sexp-reader/ast"
	"github.com/xiam/sexp-reader/parser"
)

func printTree(nodes []*ast.Node) {
	fmt.Println("<forest>")
	for i := range nodes {
		printIndentedTree(nodes[i], 1)
	}
	fmt.Println("</forest>")
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsList() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), ast.Encode([]*ast.Node{node}), node.Type())
}

func main() {
	input := `(fn_a (fn_b (89 a b (67 3.27))) (fn_c 66 3 53 hello-world! 😊))`

	nodes, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	printTree(nodes)
}
