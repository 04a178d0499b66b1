package ast

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sexp-reader/lexer"
)

func sampleTree() *Node {
	return NewList(lexer.StartPos, []*Node{
		NewSymbol(lexer.Pos{Offset: 1, Line: 1, Col: 2}, "*"),
		NewList(lexer.Pos{Offset: 3, Line: 1, Col: 4}, []*Node{
			NewSymbol(lexer.Pos{Offset: 4, Line: 1, Col: 5}, "+"),
			NewNumber(lexer.Pos{Offset: 6, Line: 1, Col: 7}, 1),
			NewNumber(lexer.Pos{Offset: 8, Line: 1, Col: 9}, 2.5),
		}),
		NewList(lexer.Pos{Offset: 11, Line: 1, Col: 12}, nil),
	})
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{
			In:  NewNumber(noPos, 12.3),
			Out: `(Number 12.3)`,
		},
		{
			In:  NewNumber(noPos, 1.0),
			Out: `(Number 1)`,
		},
		{
			In:  NewSymbol(noPos, "+"),
			Out: `(Symbol +)`,
		},
		{
			In:  NewNumber(noPos, math.Inf(1)),
			Out: `(Number inf)`,
		},
		{
			In:  NewList(noPos, nil),
			Out: `(List)`,
		},
		{
			In:  sampleTree(),
			Out: `(List (Symbol *) (List (Symbol +) (Number 1) (Number 2.5)) (List))`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Describe(testCases[i].In))
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  []*Node
		Out string
	}{
		{
			In:  []*Node{},
			Out: ``,
		},
		{
			In:  []*Node{NewNumber(noPos, 12.3)},
			Out: `12.3`,
		},
		{
			In:  []*Node{NewNumber(noPos, 1e21)},
			Out: `1000000000000000000000`,
		},
		{
			In:  []*Node{NewList(noPos, []*Node{NewNumber(noPos, math.Inf(1))})},
			Out: "(1" + strings.Repeat("0", 309) + ")",
		},
		{
			In:  []*Node{NewList(noPos, nil), NewSymbol(noPos, "a"), NewList(noPos, nil)},
			Out: `() a ()`,
		},
		{
			In:  []*Node{sampleTree()},
			Out: `(* (+ 1 2.5) ())`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer

	err := Fprint(&buf, []*Node{sampleTree(), NewSymbol(lexer.Pos{Offset: 14, Line: 1, Col: 15}, "x")})
	require.NoError(t, err)

	expected := "(List)[3] 1:1\n" +
		"    (Symbol): * 1:2\n" +
		"    (List)[3] 1:4\n" +
		"        (Symbol): + 1:5\n" +
		"        (Number): 1 1:7\n" +
		"        (Number): 2.5 1:9\n" +
		"    (List)[0] 1:12\n" +
		"(Symbol): x 1:15\n"
	assert.Equal(t, expected, buf.String())
}

func TestGoString(t *testing.T) {
	assert.Equal(t, `ast.Symbol("+")@1:2`, NewSymbol(lexer.Pos{Offset: 1, Line: 1, Col: 2}, "+").GoString())
	assert.Equal(t, `ast.List[3]@1:1`, sampleTree().GoString())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.3", FormatNumber(12.3))
	assert.Equal(t, "inf", FormatNumber(math.Inf(1)))
	assert.Equal(t, "-inf", FormatNumber(math.Inf(-1)))
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))

	f64, err := strconv.ParseFloat(overflowLiteral, 64)
	assert.Error(t, err)
	assert.True(t, math.IsInf(f64, 1))
}
