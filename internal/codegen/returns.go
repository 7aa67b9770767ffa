package codegen

import "bdl/internal/ast"

// hasValueReturn reports whether body returns a value anywhere outside nested definitions
func hasValueReturn(body []ast.Expr) bool {
	finder := returnFinder{}
	for _, e := range body {
		if ast.Accept[bool](e, finder) {
			return true
		}
	}
	return false
}

type returnFinder struct{}

func (f returnFinder) within(body []ast.Expr) bool {
	return hasValueReturn(body)
}

func (returnFinder) VisitIntegerLiteral(*ast.IntegerLiteral) bool { return false }
func (returnFinder) VisitFloatLiteral(*ast.FloatLiteral) bool     { return false }
func (returnFinder) VisitStringLiteral(*ast.StringLiteral) bool   { return false }
func (returnFinder) VisitIdentifier(*ast.Identifier) bool         { return false }
func (returnFinder) VisitAssignment(*ast.AssignmentExpr) bool     { return false }
func (returnFinder) VisitReassign(*ast.ReassignExpr) bool         { return false }
func (returnFinder) VisitMethodCall(*ast.MethodCallExpr) bool     { return false }
func (returnFinder) VisitPrint(*ast.PrintExpr) bool               { return false }
func (returnFinder) VisitList(*ast.ListExpr) bool                 { return false }
func (returnFinder) VisitBinOp(*ast.BinOpExpr) bool               { return false }
func (returnFinder) VisitUnOp(*ast.UnOpExpr) bool                 { return false }
func (returnFinder) VisitFunctionDef(*ast.FunctionDef) bool       { return false }
func (returnFinder) VisitNone(*ast.NoneExpr) bool                 { return false }

func (f returnFinder) VisitIf(n *ast.IfExpr) bool {
	return f.within(n.Then) || f.within(n.Else)
}

func (f returnFinder) VisitRep(n *ast.RepExpr) bool {
	return f.within(n.Body)
}

func (returnFinder) VisitReturn(n *ast.ReturnExpr) bool {
	if n.Value == nil {
		return false
	}
	_, none := n.Value.(*ast.NoneExpr)
	return !none
}
