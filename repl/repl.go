// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"bdl/grammar"
	"bdl/internal/ast"
	"bdl/internal/codegen"
	"bdl/internal/compiler"
	"bdl/internal/errors"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
	historyFile  = ".bdl_history"
	sessionName  = "<repl>"
)

const helpText = `commands:
  :show    print the C++ for the whole session
  :ast     print the syntax tree of the session
  :reset   forget every accepted entry
  :help    show this list
  :quit    exit
`

// Session accumulates accepted entries; every new entry is compiled together
// with everything accepted before it.
type Session struct {
	opts    codegen.Options
	entries []string
	last    *compiler.Result
}

func NewSession(opts codegen.Options) *Session {
	return &Session{opts: opts}
}

// Source is the text of every accepted entry
func (s *Session) Source() string {
	return strings.Join(s.entries, "\n")
}

// Eval compiles the session plus entry. The entry is kept only when it
// compiles without error-level diagnostics.
func (s *Session) Eval(entry string) (*compiler.Result, error) {
	candidate := append(append([]string{}, s.entries...), entry)
	result, err := compiler.Compile(sessionName, strings.Join(candidate, "\n"), s.opts)
	if err != nil {
		return result, err
	}
	s.entries = candidate
	s.last = result
	return result, nil
}

func (s *Session) Reset() {
	s.entries = nil
	s.last = nil
}

// Command runs a ":" command and reports whether the loop should stop
func (s *Session) Command(line string, out io.Writer) (quit bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q":
		return true
	case ":reset":
		s.Reset()
		fmt.Fprintln(out, "session cleared")
	case ":show":
		if s.last == nil {
			fmt.Fprintln(out, "nothing compiled yet")
			return false
		}
		fmt.Fprint(out, s.last.Output)
	case ":ast":
		if s.last == nil || s.last.Program == nil {
			fmt.Fprintln(out, "nothing compiled yet")
			return false
		}
		fmt.Fprint(out, ast.Dump(s.last.Program))
	case ":help":
		fmt.Fprint(out, helpText)
	default:
		fmt.Fprintln(out, "unknown command, type :help")
	}
	return false
}

// Report writes the outcome of one Eval: diagnostics first, then the body of the
// entry function when compilation succeeded
func (s *Session) Report(entry string, result *compiler.Result, err error, out io.Writer) {
	source := s.Source()
	if err != nil {
		// a rejected entry is reported against the text it was compiled with
		source = strings.Join(append(append([]string{}, s.entries...), entry), "\n")
	}
	if len(result.Diagnostics) > 0 {
		reporter := errors.NewErrorReporter(sessionName, source)
		fmt.Fprintln(out, reporter.FormatAll(result.Diagnostics))
	}
	if err != nil {
		if !stderrors.Is(err, compiler.ErrCompilation) && len(result.Diagnostics) == 0 {
			fmt.Fprintln(out, color.RedString(err.Error()))
		}
		return
	}
	fmt.Fprint(out, color.CyanString(result.Output))
}

// Start runs the interactive loop on the terminal until :quit or Ctrl+D
func Start(opts codegen.Options) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	session := NewSession(opts)
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(entry) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(entry), ":") {
			if session.Command(entry, os.Stdout) {
				return nil
			}
			continue
		}

		result, err := session.Eval(entry)
		session.Report(entry, result, err, os.Stdout)
	}
}

// readEntry keeps prompting while brackets are left open
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := PROMPT
		if b.Len() > 0 {
			prompt = CONTINUATION
		}
		line, err := ln.Prompt(prompt)
		if stderrors.Is(err, io.EOF) {
			return "", false
		}
		if stderrors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if grammar.OpenDepth(b.String()) <= 0 {
			return b.String(), true
		}
	}
}
