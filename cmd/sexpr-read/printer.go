package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/xiam/sexp-reader/ast"
	"github.com/xiam/sexp-reader/internal/config"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) print(nodes []*ast.Node) error {
	switch p.format {
	case config.FormatSource:
		if len(nodes) == 0 {
			return nil
		}
		_, err := fmt.Fprintf(p.w, "%s\n", ast.Encode(nodes))
		return err

	case config.FormatTree:
		return ast.Fprint(p.w, nodes)

	case config.FormatDump:
		dumpConfig.Fdump(p.w, nodes)
		return nil
	}

	for i := range nodes {
		if _, err := fmt.Fprintln(p.w, ast.Describe(nodes[i])); err != nil {
			return err
		}
	}
	return nil
}
