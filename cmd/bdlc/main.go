// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"bdl/grammar"
	"bdl/internal/ast"
	"bdl/internal/codegen"
	"bdl/internal/compiler"
	"bdl/internal/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bdlc", flag.ContinueOnError)
	output := fs.String("o", "", "write the generated C++ to `file` instead of stdout")
	entry := fs.String("entry", "main", "name of the entry function")
	indent := fs.Int("indent", 4, "spaces per indentation level")
	include := fs.String("include", "bits/stdc++.h", "comma-separated headers to include")
	verbose := fs.Int("v", 0, "log verbosity (0 = errors only)")
	noColor := fs.Bool("no-color", false, "disable colored diagnostics")
	dumpAST := fs.Bool("dump-ast", false, "print the syntax tree instead of C++")
	showGrammar := fs.Bool("grammar", false, "print the grammar in EBNF and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: bdlc [flags] <file.bdl>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	commonlog.Configure(*verbose, nil)
	if *noColor {
		color.NoColor = true
	}

	if *showGrammar {
		fmt.Println(grammar.EBNF())
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return 1
	}

	opts := codegen.Options{
		EntryName:   *entry,
		Includes:    splitIncludes(*include),
		IndentWidth: *indent,
	}

	startTime := time.Now()
	result, err := compiler.Compile(path, string(source), opts)
	duration := formatDuration(time.Since(startTime))

	if len(result.Diagnostics) > 0 {
		reporter := errors.NewErrorReporter(path, string(source))
		fmt.Fprintln(os.Stderr, reporter.FormatAll(result.Diagnostics))
	}

	if err != nil {
		if !stderrors.Is(err, compiler.ErrCompilation) && len(result.Diagnostics) == 0 {
			fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
		}
		fmt.Fprintln(os.Stderr, color.RedString("Compilation failed after %s", duration))
		return 1
	}

	text := result.Output
	if *dumpAST {
		text = ast.Dump(result.Program)
	}

	if *output == "" {
		fmt.Print(text)
	} else if err := os.WriteFile(*output, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *output, err)
		return 1
	}

	fmt.Fprintln(os.Stderr, color.GreenString("Successfully compiled %s in %s", path, duration))
	return 0
}

func splitIncludes(list string) []string {
	includes := []string{}
	for _, inc := range strings.Split(list, ",") {
		if inc = strings.TrimSpace(inc); inc != "" {
			includes = append(includes, inc)
		}
	}
	return includes
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
