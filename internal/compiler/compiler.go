// Package compiler runs the whole pipeline, source text in and C++ text out
package compiler

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"bdl/internal/ast"
	"bdl/internal/codegen"
	"bdl/internal/errors"
	"bdl/internal/parser"
)

var log = commonlog.GetLogger("bdl.compiler")

// ErrCompilation is returned when at least one error-level diagnostic was reported
var ErrCompilation = stderrors.New("compilation failed")

// Result carries everything a front end needs to show the user
type Result struct {
	Program     *ast.Program
	Output      string
	Diagnostics []errors.CompilerError
}

// HasErrors reports whether any error-level diagnostic was produced
func (r *Result) HasErrors() bool {
	return errors.HasErrors(r.Diagnostics)
}

// Compile parses and lowers source. The Result is always non-nil so callers
// can render diagnostics; the error is non-nil whenever the output must not
// be used.
func Compile(name, source string, opts codegen.Options) (*Result, error) {
	result := &Result{}

	program, err := parser.ParseSource(name, source)
	if err != nil {
		var perr *parser.ParseError
		if stderrors.As(err, &perr) {
			result.Diagnostics = append(result.Diagnostics, errors.SyntaxError(perr.Message, perr.Pos))
		}
		log.Debugf("parse of %s failed: %s", name, err)
		return result, pkgerrors.Wrap(err, "parse error")
	}
	result.Program = program

	generated, err := codegen.NewGenerator(opts).Generate(program)
	if err != nil {
		var inv *codegen.InvariantError
		if stderrors.As(err, &inv) {
			result.Diagnostics = append(result.Diagnostics, errors.Internal(inv.Error(), inv.Pos))
		}
		log.Errorf("code generation for %s aborted: %s", name, err)
		return result, pkgerrors.WithStack(err)
	}

	result.Output = generated.Output
	result.Diagnostics = append(result.Diagnostics, generated.Diagnostics...)
	log.Infof("compiled %s with %d diagnostic(s)", name, len(result.Diagnostics))

	if result.HasErrors() {
		return result, ErrCompilation
	}
	return result, nil
}
