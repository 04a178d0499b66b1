package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/peterh/liner"

	"github.com/xiam/sexp-reader/parser"
)

const (
	continuePrompt = "...... "
	replHelp       = `:help              show this message
:format <name>     switch output to describe, source, tree or dump
:quit              leave the session`
)

func (a *app) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(a.cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer a.saveHistory(ln)

	for {
		src, ok := readExpression(ln, a.cfg.Prompt)
		if !ok {
			fmt.Fprintln(a.out.w)
			return exitOK
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := a.command(trimmed); quit {
				return exitOK
			}
			continue
		}

		a.readFrom("<repl>", strings.NewReader(src))
	}
}

func (a *app) saveHistory(ln *liner.State) {
	if a.cfg.HistoryFile == "" {
		return
	}
	f, err := os.Create(a.cfg.HistoryFile)
	if err != nil {
		glog.Warningf("sexpr-read: can't save history: %v", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		glog.Warningf("sexpr-read: can't save history: %v", err)
	}
}

// command runs a REPL command and returns true if the session must end.
func (a *app) command(line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":help":
		fmt.Fprintln(a.out.w, replHelp)

	case ":format":
		if len(fields) != 2 {
			fmt.Fprintf(a.stderr, "current format: %s\n", a.out.format)
			return false
		}
		cfg := a.cfg
		cfg.Format = fields[1]
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(a.stderr, err)
			return false
		}
		a.cfg = cfg
		a.out.format = cfg.Format

	default:
		fmt.Fprintf(a.stderr, "unknown command %s, try :help\n", fields[0])
	}
	return false
}

type prompter interface {
	Prompt(string) (string, error)
}

// readExpression reads lines until they form a complete input, that is, until
// no list is left open. The second value is false at EOF.
func readExpression(p prompter, prompt string) (string, bool) {
	var b strings.Builder

	for {
		current := prompt
		if b.Len() > 0 {
			current = continuePrompt
		}

		line, err := p.Prompt(current)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), true
			}
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				glog.Errorf("sexpr-read: %v", err)
			}
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

func incomplete(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	_, err := parser.ParseString(src)
	return errors.Is(err, parser.ErrUnmatchedOpenParen)
}
