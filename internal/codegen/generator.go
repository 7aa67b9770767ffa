package codegen

import (
	"fmt"
	"math"

	pkgerrors "github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"bdl/internal/ast"
	"bdl/internal/cpp"
	"bdl/internal/errors"
	"bdl/token"
)

var log = commonlog.GetLogger("bdl.codegen")

// InvariantError means the lowering engine reached a state its own contract
// rules out, such as a statement node in a position that needs a value
type InvariantError struct {
	Pos   ast.Position
	cause error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.cause)
}

func (e *InvariantError) Unwrap() error {
	return e.cause
}

func invariant(pos ast.Position, format string, args ...interface{}) error {
	return &InvariantError{Pos: pos, cause: pkgerrors.Errorf(format, args...)}
}

// Result is the outcome of one Generate call
type Result struct {
	Program     *cpp.Program
	Diagnostics []errors.CompilerError
	Output      string
}

// HasErrors reports whether any error-level diagnostic was produced
func (r *Result) HasErrors() bool {
	return errors.HasErrors(r.Diagnostics)
}

// entryOrder places the synthesized entry after every user function
const entryOrder = math.MaxInt

// function is a top-level definition whose signature is fixed before any body
// is lowered
type function struct {
	def   *ast.FunctionDef
	out   *cpp.Function
	scope *SymbolTable
	order int
}

// Generator lowers a BDL program to C++
type Generator struct {
	opts        Options
	program     *cpp.Program
	global      *SymbolTable
	functions   map[*ast.FunctionDef]*function
	byName      map[string]*function
	names       nameGenerator
	diagnostics []errors.CompilerError
}

func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts.withDefaults()}
}

// Generate lowers program with the default options
func Generate(program *ast.Program) (*Result, error) {
	return NewGenerator(DefaultOptions()).Generate(program)
}

// Generate lowers program to C++. The returned error is non-nil only for an
// InvariantError; problems in the source are reported as diagnostics.
func (g *Generator) Generate(program *ast.Program) (*Result, error) {
	g.program = cpp.NewProgram()
	g.global = NewSymbolTable(nil)
	g.functions = make(map[*ast.FunctionDef]*function)
	g.byName = make(map[string]*function)
	g.names.reset()
	g.diagnostics = nil

	for _, inc := range g.opts.Includes {
		g.program.AddInclude(inc)
	}

	var userEntry *ast.FunctionDef
	for _, e := range program.Expressions {
		if fn, ok := e.(*ast.FunctionDef); ok {
			g.declareFunction(fn, len(g.functions))
			if fn.Name.Value == g.opts.EntryName && userEntry == nil {
				userEntry = fn
			}
		}
	}

	var entry *cpp.Function
	var entryScope *SymbolTable
	if userEntry == nil {
		entry = cpp.NewFunction(g.opts.EntryName, cpp.Int)
		entryScope = NewSymbolTable(g.global)
		log.Debugf("synthesizing entry function %s", g.opts.EntryName)
	}

	for _, e := range program.Expressions {
		if fn, ok := e.(*ast.FunctionDef); ok {
			if err := g.lowerFunction(fn); err != nil {
				return nil, err
			}
			continue
		}

		if userEntry != nil {
			g.report(errors.EntryConflict(g.opts.EntryName, e.NodePos()))
			continue
		}

		l := &lowerer{g: g, block: entry.Body(), scope: entryScope, entry: true, order: entryOrder}
		if err := l.statement(e); err != nil {
			return nil, err
		}
	}

	if entry != nil {
		g.program.AddFunction(entry)
	}

	return &Result{
		Program:     g.program,
		Diagnostics: g.diagnostics,
		Output:      cpp.PrintIndented(g.program, g.opts.IndentWidth),
	}, nil
}

func (g *Generator) report(err errors.CompilerError) {
	log.Debugf("diagnostic %s", err.Error())
	g.diagnostics = append(g.diagnostics, err)
}

// checkName reports a source identifier that uses the synthetic prefix
func (g *Generator) checkName(name string, pos ast.Position) bool {
	if token.IsReserved(name) {
		g.report(errors.ReservedIdentifier(name, token.ReservedPrefix, pos))
		return false
	}
	return true
}

// mapType maps a declared type and warns when the mapping is a placeholder
func (g *Generator) mapType(t ast.Type, pos ast.Position) cpp.Type {
	if kind, ok := unsupportedType(t); ok {
		g.report(errors.Unsupported(kind, pos))
	}
	return MapType(t)
}

// declareFunction fixes the signature of a top-level function so calls
// resolve regardless of definition order
func (g *Generator) declareFunction(fn *ast.FunctionDef, order int) {
	name := fn.Name.Value
	if !g.checkName(name, fn.Name.Pos) {
		return
	}
	if prev := g.global.LookupLocal(name); prev != nil {
		g.report(errors.DuplicateDeclaration(name, fn.Name.Pos, prev.Position))
		return
	}

	sig := &ast.FunctionType{Params: make([]ast.Type, len(fn.Params)), Return: fn.Return}
	for i, p := range fn.Params {
		sig.Params[i] = p.Type
	}
	g.global.Define(name, SymbolFunction, sig, fn.Name.Pos, nil)

	var ret cpp.Type
	switch {
	case name == g.opts.EntryName:
		ret = cpp.Int
	case fn.Return != nil:
		ret = g.mapType(fn.Return, fn.Pos)
	case hasValueReturn(fn.Body):
		ret = cpp.Auto
	default:
		ret = cpp.Void
	}
	out := cpp.NewFunction(name, ret)

	scope := NewSymbolTable(g.global)
	for _, p := range fn.Params {
		pname := p.Name.Value
		if !g.checkName(pname, p.Name.Pos) {
			continue
		}
		if prev := scope.LookupLocal(pname); prev != nil {
			g.report(errors.DuplicateDeclaration(pname, p.Name.Pos, prev.Position))
			continue
		}
		v := out.AddParam(pname, g.mapType(p.Type, p.Pos))
		scope.Define(pname, SymbolParameter, p.Type, p.Name.Pos, v)
	}

	f := &function{def: fn, out: out, scope: scope, order: order}
	g.functions[fn] = f
	g.byName[name] = f
}

func (g *Generator) lowerFunction(fn *ast.FunctionDef) error {
	f := g.functions[fn]
	if f == nil {
		return nil
	}

	g.program.AddFunction(f.out)
	log.Debugf("registered function %s returning %s", f.out.Name, f.out.ReturnType)

	isEntry := f.out.Name == g.opts.EntryName
	l := &lowerer{g: g, block: f.out.Body(), scope: f.scope, entry: isEntry, order: f.order}
	return l.statements(fn.Body)
}

// callBeforeDefinition handles a call from a function at position caller to a
// function defined later in the output. Concrete signatures get a forward
// declaration; a deduced return type cannot be declared ahead and is reported.
func (g *Generator) callBeforeDefinition(name string, pos ast.Position, caller int) {
	callee := g.byName[name]
	if callee == nil || callee.order <= caller {
		return
	}
	if callee.out.ReturnType == cpp.Auto {
		g.report(errors.DeducedForwardCall(name, pos, callee.def.Name.Pos))
		return
	}
	log.Debugf("forward declaring %s", name)
	g.program.AddPrototype(callee.out)
}
