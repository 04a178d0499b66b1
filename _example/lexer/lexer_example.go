package main

import (
	"fmt"

	"github.com/xiam/sexp-reader/lexer"
)

func main() {
	input := "(fn_a\n\t(fn_b 89 -3 3.27)\n\t(fn_c 😊))"

	pos := lexer.StartPos
	for _, r := range input {
		class := lexer.Classify(r)
		fmt.Printf("%v\t%q\t%v\tterminator: %v\n", pos, r, class, lexer.IsTerminator(class))
		pos.Advance(r, len(string(r)))
	}
}
