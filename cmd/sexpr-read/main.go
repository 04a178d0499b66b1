// Command sexpr-read parses symbolic expressions and prints the resulting
// trees.
//
// Usage:
//
//	sexpr-read [glog flags] [file ...]
//
// Files named on the command line are parsed one by one. Without arguments
// the standard input is parsed, or an interactive session is started when it
// is a terminal. See the SEXPR_* environment variables printed by -help.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/xiam/sexp-reader/internal/config"
	"github.com/xiam/sexp-reader/parser"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
		_ = config.Usage()
	}
	flag.Parse()

	os.Exit(run(flag.Args(), os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	cfg    config.Config
	out    *printer
	stderr io.Writer
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	defer glog.Flush()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "sexpr-read: %v\n", err)
		return exitUsage
	}
	glog.V(1).Infof("sexpr-read: config %+v", cfg)

	a := &app{
		cfg:    cfg,
		out:    newPrinter(stdout, cfg.Format),
		stderr: stderr,
	}

	if len(args) > 0 {
		return a.readFiles(args)
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return a.repl()
	}
	return a.readFrom("<stdin>", stdin)
}

func (a *app) newParser(r io.Reader) *parser.Parser {
	p := parser.New(r)
	p.SetOptions(parser.Options{
		AtomBufferSize: a.cfg.AtomBufferSize,
	})
	return p
}

func (a *app) readFiles(names []string) int {
	code := exitOK
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			glog.Errorf("sexpr-read: %v", err)
			fmt.Fprintf(a.stderr, "sexpr-read: %v\n", err)
			code = exitError
			continue
		}
		if c := a.readFrom(name, f); c != exitOK {
			code = c
		}
		f.Close()
	}
	return code
}

func (a *app) readFrom(name string, r io.Reader) int {
	nodes, err := a.newParser(r).Parse()
	if err != nil {
		a.reportError(name, err)
		return exitError
	}
	if err := a.out.print(nodes); err != nil {
		glog.Errorf("sexpr-read: %v", err)
		return exitError
	}
	return exitOK
}

func (a *app) reportError(name string, err error) {
	var perr *parser.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(a.stderr, "%s:%v\n", name, perr)
		return
	}
	glog.Errorf("sexpr-read: %s: %v", name, err)
	fmt.Fprintf(a.stderr, "%s: %v\n", name, err)
}
