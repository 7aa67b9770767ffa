package parser

import (
	"bdl/grammar"
	"bdl/internal/ast"
)

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

// chain walks the flat operand/operator list produced by the grammar
type chain struct {
	c        *converter
	operands []*grammar.Unary
	ops      []*grammar.BinOp
	current  int
}

func (c *converter) expr(e *grammar.Expr) ast.Expr {
	ch := &chain{
		c:        c,
		operands: []*grammar.Unary{e.Left},
		ops:      e.Ops,
	}
	for _, op := range e.Ops {
		ch.operands = append(ch.operands, op.Right)
	}
	return ch.parsePrattExpr(1)
}

// parsePrattExpr folds operators left to right, binding tighter operators first
func (ch *chain) parsePrattExpr(minPrec int) ast.Expr {
	expr := ch.c.unary(ch.operands[ch.current])

	for ch.current < len(ch.ops) {
		op := ch.ops[ch.current]
		prec := binaryPrecedence[op.Operator]
		if prec < minPrec {
			break
		}

		ch.current++
		right := ch.parsePrattExpr(prec + 1)

		expr = &ast.BinOpExpr{
			Pos:   expr.NodePos(),
			Left:  expr,
			Op:    op.Operator,
			Right: right,
		}
	}

	return expr
}
