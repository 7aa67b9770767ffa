package ast

// Visitor handles every Expr variant. Adding a variant adds a method here,
// so every implementation stops compiling until it handles the new node.
type Visitor[R any] interface {
	VisitIntegerLiteral(l *IntegerLiteral) R
	VisitFloatLiteral(l *FloatLiteral) R
	VisitStringLiteral(l *StringLiteral) R
	VisitIdentifier(i *Identifier) R
	VisitAssignment(a *AssignmentExpr) R
	VisitReassign(r *ReassignExpr) R
	VisitMethodCall(m *MethodCallExpr) R
	VisitPrint(p *PrintExpr) R
	VisitIf(i *IfExpr) R
	VisitRep(r *RepExpr) R
	VisitList(l *ListExpr) R
	VisitBinOp(b *BinOpExpr) R
	VisitUnOp(u *UnOpExpr) R
	VisitFunctionDef(f *FunctionDef) R
	VisitReturn(r *ReturnExpr) R
	VisitNone(n *NoneExpr) R
}

// Accept dispatches e to the matching method of v
func Accept[R any](e Expr, v Visitor[R]) R {
	r, _ := e.accept(dispatch[R]{v}).(R)
	return r
}

type dispatcher interface {
	integerLiteral(*IntegerLiteral) any
	floatLiteral(*FloatLiteral) any
	stringLiteral(*StringLiteral) any
	identifier(*Identifier) any
	assignment(*AssignmentExpr) any
	reassign(*ReassignExpr) any
	methodCall(*MethodCallExpr) any
	print(*PrintExpr) any
	ifExpr(*IfExpr) any
	rep(*RepExpr) any
	list(*ListExpr) any
	binOp(*BinOpExpr) any
	unOp(*UnOpExpr) any
	functionDef(*FunctionDef) any
	returnExpr(*ReturnExpr) any
	none(*NoneExpr) any
}

type dispatch[R any] struct {
	v Visitor[R]
}

func (d dispatch[R]) integerLiteral(n *IntegerLiteral) any { return d.v.VisitIntegerLiteral(n) }
func (d dispatch[R]) floatLiteral(n *FloatLiteral) any     { return d.v.VisitFloatLiteral(n) }
func (d dispatch[R]) stringLiteral(n *StringLiteral) any   { return d.v.VisitStringLiteral(n) }
func (d dispatch[R]) identifier(n *Identifier) any         { return d.v.VisitIdentifier(n) }
func (d dispatch[R]) assignment(n *AssignmentExpr) any     { return d.v.VisitAssignment(n) }
func (d dispatch[R]) reassign(n *ReassignExpr) any         { return d.v.VisitReassign(n) }
func (d dispatch[R]) methodCall(n *MethodCallExpr) any     { return d.v.VisitMethodCall(n) }
func (d dispatch[R]) print(n *PrintExpr) any               { return d.v.VisitPrint(n) }
func (d dispatch[R]) ifExpr(n *IfExpr) any                 { return d.v.VisitIf(n) }
func (d dispatch[R]) rep(n *RepExpr) any                   { return d.v.VisitRep(n) }
func (d dispatch[R]) list(n *ListExpr) any                 { return d.v.VisitList(n) }
func (d dispatch[R]) binOp(n *BinOpExpr) any               { return d.v.VisitBinOp(n) }
func (d dispatch[R]) unOp(n *UnOpExpr) any                 { return d.v.VisitUnOp(n) }
func (d dispatch[R]) functionDef(n *FunctionDef) any       { return d.v.VisitFunctionDef(n) }
func (d dispatch[R]) returnExpr(n *ReturnExpr) any         { return d.v.VisitReturn(n) }
func (d dispatch[R]) none(n *NoneExpr) any                 { return d.v.VisitNone(n) }
