package lexer

import (
	"fmt"
)

// Pos is a position within the source text. Line and Col are 1-based, Offset
// is a byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// StartPos is the position of the first character of any input.
var StartPos = Pos{Offset: 0, Line: 1, Col: 1}

// Advance moves the position past r, which occupies size bytes of input.
func (p *Pos) Advance(r rune, size int) {
	p.Offset += size
	if r == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
