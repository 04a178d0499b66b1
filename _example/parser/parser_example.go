package main

import (
	"fmt"

	"github.com/xiam/sexp-reader/parser"
)

func main() {
	inputs := []string{
		`12.3`,
		`+`,
		`()`,
		`(+ 1 2)`,
		`(* (+ 1 2) (+ 3 4))`,
	}

	for _, input := range inputs {
		nodes, err := parser.ParseString(input)
		if err != nil {
			fmt.Println(err)
			continue
		}
		for _, node := range nodes {
			fmt.Println(node)
		}
	}
}
