package ast

import (
	"math"
	"strconv"
	"strings"
)

// overflowLiteral is a digit string beyond the float64 range, it reads back
// as +Inf.
var overflowLiteral = "1" + strings.Repeat("0", 309)

// FormatNumber returns the shortest decimal text that reads back as v.
// Infinities are written as "inf" and "-inf", NaN as "NaN".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func encodeValue(n *Node) string {
	switch n.nt {
	case NodeTypeNumber:
		return FormatNumber(n.Number())
	case NodeTypeSymbol:
		return n.Symbol()
	}

	panic("unreachable")
}

// encodeSource is like encodeValue but writes +Inf as a number literal
// that overflows again when read.
func encodeSource(n *Node) string {
	if n.nt == NodeTypeNumber && math.IsInf(n.Number(), 1) {
		return overflowLiteral
	}
	return encodeValue(n)
}
