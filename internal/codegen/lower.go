package codegen

import (
	"bdl/internal/ast"
	"bdl/internal/cpp"
	"bdl/internal/errors"
)

// outcome is what lowering one node yields: a value for expression
// positions, nothing for statements
type outcome struct {
	value cpp.Expr
	err   error
}

func value(v cpp.Expr) outcome { return outcome{value: v} }

func failed(err error) outcome { return outcome{err: err} }

var noValue = outcome{}

// lowerer lowers expressions into one block
type lowerer struct {
	g     *Generator
	block *cpp.Block
	scope *SymbolTable
	entry bool
	// order is the output position of the enclosing function
	order int
}

func (l *lowerer) nested(block *cpp.Block) *lowerer {
	return &lowerer{g: l.g, block: block, scope: NewSymbolTable(l.scope), entry: l.entry, order: l.order}
}

func (l *lowerer) lower(e ast.Expr) (cpp.Expr, error) {
	o := ast.Accept[outcome](e, l)
	return o.value, o.err
}

// statement lowers e in statement position; a leftover value is evaluated for its effects
func (l *lowerer) statement(e ast.Expr) error {
	v, err := l.lower(e)
	if err != nil {
		return err
	}
	switch call := v.(type) {
	case nil:
	case *cpp.Call:
		l.block.FnCall(call.Name, call.Args...)
	default:
		l.block.ExprStmt(v)
	}
	return nil
}

func (l *lowerer) statements(body []ast.Expr) error {
	for _, e := range body {
		if err := l.statement(e); err != nil {
			return err
		}
	}
	return nil
}

// requireValue lowers e where a value is mandatory
func (l *lowerer) requireValue(e ast.Expr) (cpp.Expr, error) {
	if e == nil {
		return nil, invariant(ast.Position{}, "missing expression where a value is required")
	}
	v, err := l.lower(e)
	if err != nil {
		return nil, err
	}
	if v == nil {
		pos := e.NodePos()
		return nil, invariant(pos, "%s produced no value where one is required", describe(e))
	}
	return v, nil
}

// values lowers exprs left to right
func (l *lowerer) values(exprs []ast.Expr) ([]cpp.Expr, error) {
	out := make([]cpp.Expr, 0, len(exprs))
	for _, e := range exprs {
		v, err := l.requireValue(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (l *lowerer) VisitIntegerLiteral(n *ast.IntegerLiteral) outcome {
	if n.Value == nil {
		return value(cpp.NewNum(0))
	}
	return value(cpp.NewBigNum(n.Value))
}

func (l *lowerer) VisitFloatLiteral(n *ast.FloatLiteral) outcome {
	return value(cpp.NewFloat(n.Value))
}

func (l *lowerer) VisitStringLiteral(n *ast.StringLiteral) outcome {
	return value(cpp.NewStr(n.Value))
}

func (l *lowerer) VisitIdentifier(n *ast.Identifier) outcome {
	l.g.checkName(n.Value, n.Pos)
	return value(cpp.NewIdent(n.Value))
}

func (l *lowerer) VisitAssignment(n *ast.AssignmentExpr) outcome {
	name := n.Target.Name.Value
	pos := n.Target.Name.Pos
	if !l.g.checkName(name, pos) {
		return noValue
	}
	if prev := l.scope.LookupLocal(name); prev != nil {
		l.g.report(errors.DuplicateDeclaration(name, pos, prev.Position))
		return noValue
	}

	v := l.block.NewVariable(name, l.g.mapType(n.Target.Type, n.Target.Pos))
	val, err := l.requireValue(n.Value)
	if err != nil {
		return failed(err)
	}
	l.block.Assign(v, val)
	l.scope.Define(name, SymbolVariable, n.Target.Type, pos, v)
	return noValue
}

func (l *lowerer) VisitReassign(n *ast.ReassignExpr) outcome {
	name := n.Target.Value
	pos := n.Target.Pos
	if !l.g.checkName(name, pos) {
		return noValue
	}

	symbol := l.scope.Lookup(name)
	if symbol == nil || symbol.Kind == SymbolFunction {
		l.g.report(errors.UndeclaredVariable(name, pos, l.scope.VisibleVariables()))
		return noValue
	}

	actual := ast.StaticType(n.Value, l.scope.TypeOf)
	if !assignable(symbol.Type, actual) {
		l.g.report(errors.IncompatibleAssignment(name, symbol.Type.String(), actual.String(), pos))
		return noValue
	}

	val, err := l.requireValue(n.Value)
	if err != nil {
		return failed(err)
	}
	l.block.Assign(symbol.Var, val)
	return noValue
}

func (l *lowerer) VisitMethodCall(n *ast.MethodCallExpr) outcome {
	if l.g.checkName(n.Method.Value, n.Method.Pos) {
		l.g.callBeforeDefinition(n.Method.Value, n.Method.Pos, l.order)
	}
	args, err := l.values(n.Args)
	if err != nil {
		return failed(err)
	}
	return value(cpp.NewCall(n.Method.Value, args...))
}

func (l *lowerer) VisitPrint(n *ast.PrintExpr) outcome {
	if _, isList := ast.StaticType(n.Arg, l.scope.TypeOf).(*ast.ListType); isList {
		l.g.report(errors.Unsupported("print of list", n.Pos))
		l.block.Output(cpp.NewUnsupported("print of list"))
		return noValue
	}

	v, err := l.requireValue(n.Arg)
	if err != nil {
		return failed(err)
	}
	l.block.Output(v)
	return noValue
}

func (l *lowerer) VisitIf(n *ast.IfExpr) outcome {
	cond, err := l.requireValue(n.Condition)
	if err != nil {
		return failed(err)
	}

	ifElse := l.block.NewIfElse(cond)
	if err := l.nested(ifElse.ThenBranch()).statements(n.Then); err != nil {
		return failed(err)
	}
	if n.HasElse() {
		if err := l.nested(ifElse.OtherBranch()).statements(n.Else); err != nil {
			return failed(err)
		}
	}
	return noValue
}

func (l *lowerer) VisitRep(n *ast.RepExpr) outcome {
	id := l.g.names.nextID()

	// the bound is evaluated once, before the loop
	var bound cpp.Expr
	if lit, ok := n.Count.(*ast.IntegerLiteral); ok && lit.Value != nil {
		bound = cpp.NewBigNum(lit.Value)
	} else {
		v, err := l.requireValue(n.Count)
		if err != nil {
			return failed(err)
		}
		bound = l.block.NewConstant(synthetic("bound", id), cpp.Int, v).Ref()
	}

	counter := l.block.NewVariable(synthetic("rep", id), cpp.Int)
	l.block.Assign(counter, cpp.NewNum(0))
	log.Debugf("rep loop counter %s bound %s", counter.Name, bound)

	loop := l.block.NewWhileLoop(cpp.NewBinOp(counter.Ref(), "<", bound))
	if err := l.nested(loop.Body()).statements(n.Body); err != nil {
		return failed(err)
	}
	loop.Body().Assign(counter, cpp.NewBinOp(counter.Ref(), "+", cpp.NewNum(1)))
	return noValue
}

func (l *lowerer) VisitList(n *ast.ListExpr) outcome {
	elems, err := l.values(n.Elems)
	if err != nil {
		return failed(err)
	}
	return value(cpp.BraceList(elems))
}

func (l *lowerer) VisitBinOp(n *ast.BinOpExpr) outcome {
	left, err := l.requireValue(n.Left)
	if err != nil {
		return failed(err)
	}
	right, err := l.requireValue(n.Right)
	if err != nil {
		return failed(err)
	}
	if l.mixesStringAndNumber(n) {
		const kind = "arithmetic mixing string and number"
		l.g.report(errors.Unsupported(kind, n.Pos))
		return value(cpp.NewUnsupported(kind))
	}
	return value(cpp.NewBinOp(left, n.Op, right))
}

func (l *lowerer) mixesStringAndNumber(n *ast.BinOpExpr) bool {
	switch n.Op {
	case "+", "-", "*", "/", "%":
	default:
		return false
	}
	left := ast.StaticType(n.Left, l.scope.TypeOf)
	right := ast.StaticType(n.Right, l.scope.TypeOf)
	isString := func(t ast.Type) bool { return t.Equal(ast.StringType{}) }
	return (isString(left) && ast.IsNumeric(right)) || (ast.IsNumeric(left) && isString(right))
}

func (l *lowerer) VisitUnOp(n *ast.UnOpExpr) outcome {
	arg, err := l.requireValue(n.Arg)
	if err != nil {
		return failed(err)
	}
	return value(cpp.NewUnOp(n.Op, arg))
}

// VisitFunctionDef only sees definitions below the top level
func (l *lowerer) VisitFunctionDef(n *ast.FunctionDef) outcome {
	l.g.report(errors.NestedFunction(n.Name.Value, n.Pos))
	return noValue
}

func (l *lowerer) VisitReturn(n *ast.ReturnExpr) outcome {
	if n.Value == nil {
		l.emitBareReturn()
		return noValue
	}
	if _, none := n.Value.(*ast.NoneExpr); none {
		l.emitBareReturn()
		return noValue
	}

	v, err := l.requireValue(n.Value)
	if err != nil {
		return failed(err)
	}
	l.block.Return(v)
	return noValue
}

func (l *lowerer) emitBareReturn() {
	if l.entry {
		l.block.Return(cpp.NewNum(0))
		return
	}
	l.block.Return(nil)
}

func (l *lowerer) VisitNone(*ast.NoneExpr) outcome {
	return noValue
}

func describe(e ast.Expr) string {
	switch e.(type) {
	case *ast.AssignmentExpr:
		return "declaration"
	case *ast.ReassignExpr:
		return "assignment"
	case *ast.PrintExpr:
		return "print"
	case *ast.IfExpr:
		return "if"
	case *ast.RepExpr:
		return "rep"
	case *ast.FunctionDef:
		return "function definition"
	case *ast.ReturnExpr:
		return "return"
	case *ast.NoneExpr:
		return "none"
	}
	return "expression"
}
