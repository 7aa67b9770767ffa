package ast

// Expr is any node that can appear in a block. The set of variants is closed:
// accept is unexported, so only this package can add one.
type Expr interface {
	Node
	accept(d dispatcher) any
}

func (l *IntegerLiteral) accept(d dispatcher) any { return d.integerLiteral(l) }

func (l *FloatLiteral) accept(d dispatcher) any { return d.floatLiteral(l) }

func (l *StringLiteral) accept(d dispatcher) any { return d.stringLiteral(l) }

func (i *Identifier) accept(d dispatcher) any { return d.identifier(i) }

func (a *AssignmentExpr) accept(d dispatcher) any { return d.assignment(a) }

func (r *ReassignExpr) accept(d dispatcher) any { return d.reassign(r) }

func (m *MethodCallExpr) accept(d dispatcher) any { return d.methodCall(m) }

func (p *PrintExpr) accept(d dispatcher) any { return d.print(p) }

func (i *IfExpr) accept(d dispatcher) any { return d.ifExpr(i) }

func (r *RepExpr) accept(d dispatcher) any { return d.rep(r) }

func (l *ListExpr) accept(d dispatcher) any { return d.list(l) }

func (b *BinOpExpr) accept(d dispatcher) any { return d.binOp(b) }

func (u *UnOpExpr) accept(d dispatcher) any { return d.unOp(u) }

func (f *FunctionDef) accept(d dispatcher) any { return d.functionDef(f) }

func (r *ReturnExpr) accept(d dispatcher) any { return d.returnExpr(r) }

func (n *NoneExpr) accept(d dispatcher) any { return d.none(n) }
