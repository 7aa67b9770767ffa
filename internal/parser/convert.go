package parser

import (
	"fmt"
	"math/big"

	"github.com/alecthomas/participle/v2/lexer"

	"bdl/grammar"
	"bdl/internal/ast"
)

// converter turns the participle parse tree into the AST
type converter struct {
	err *ParseError
}

func convertPos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func (c *converter) fail(pos lexer.Position, format string, args ...interface{}) {
	if c.err == nil {
		c.err = &ParseError{Message: fmt.Sprintf(format, args...), Pos: convertPos(pos)}
	}
}

func (c *converter) program(tree *grammar.Program) *ast.Program {
	return &ast.Program{
		Pos:         convertPos(tree.Pos),
		Expressions: c.statements(tree.Statements),
	}
}

// statements never returns nil so an empty block stays distinguishable from a missing one
func (c *converter) statements(stmts []*grammar.Statement) []ast.Expr {
	out := make([]ast.Expr, 0, len(stmts))
	for _, s := range stmts {
		if e := c.statement(s); e != nil {
			out = append(out, e)
		}
	}
	return out
}

func (c *converter) block(b *grammar.Block) []ast.Expr {
	if b == nil {
		return []ast.Expr{}
	}
	return c.statements(b.Statements)
}

func (c *converter) statement(s *grammar.Statement) ast.Expr {
	switch {
	case s.Function != nil:
		return c.functionDef(s.Function)
	case s.If != nil:
		return c.ifStmt(s.If)
	case s.Rep != nil:
		return &ast.RepExpr{
			Pos:   convertPos(s.Rep.Pos),
			Count: c.expr(s.Rep.Count),
			Body:  c.block(s.Rep.Body),
		}
	case s.Return != nil:
		ret := &ast.ReturnExpr{Pos: convertPos(s.Return.Pos)}
		if s.Return.Value != nil {
			ret.Value = c.expr(s.Return.Value)
		} else {
			ret.Value = &ast.NoneExpr{Pos: ret.Pos}
		}
		return ret
	case s.Assign != nil:
		return &ast.AssignmentExpr{
			Pos:    convertPos(s.Assign.Pos),
			Target: c.typedIdent(s.Assign.Target),
			Value:  c.expr(s.Assign.Value),
		}
	case s.Reassign != nil:
		return &ast.ReassignExpr{
			Pos:    convertPos(s.Reassign.Pos),
			Target: c.ident(s.Reassign.Target),
			Value:  c.expr(s.Reassign.Value),
		}
	case s.Expr != nil:
		return c.expr(s.Expr)
	}

	c.fail(s.Pos, "empty statement")
	return nil
}

func (c *converter) functionDef(f *grammar.FunctionDef) *ast.FunctionDef {
	params := make([]ast.TypedIdentifier, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, c.typedIdent(p))
	}

	fn := &ast.FunctionDef{
		Pos:    convertPos(f.Pos),
		Name:   c.ident(f.Name),
		Params: params,
		Body:   c.block(f.Body),
	}
	if f.Return != nil {
		fn.Return = c.typ(f.Return)
	}
	return fn
}

func (c *converter) ifStmt(i *grammar.IfStmt) *ast.IfExpr {
	out := &ast.IfExpr{
		Pos:       convertPos(i.Pos),
		Condition: c.expr(i.Cond),
		Then:      c.block(i.Then),
	}

	if i.Else != nil {
		switch {
		case i.Else.If != nil:
			out.Else = []ast.Expr{c.ifStmt(i.Else.If)}
		default:
			out.Else = c.block(i.Else.Block)
		}
	}
	return out
}

func (c *converter) ident(id grammar.PosIdent) ast.Identifier {
	return ast.Identifier{Pos: convertPos(id.Pos), Value: id.Value}
}

func (c *converter) typedIdent(t *grammar.TypedIdent) ast.TypedIdentifier {
	return ast.TypedIdentifier{
		Pos:  convertPos(t.Pos),
		Name: c.ident(t.Name),
		Type: c.typ(t.Type),
	}
}

func (c *converter) typ(t *grammar.Type) ast.Type {
	switch {
	case t.Scalar != nil:
		switch *t.Scalar {
		case "int":
			return ast.IntType{}
		case "float":
			return ast.FloatType{}
		case "string":
			return ast.StringType{}
		case "none":
			return ast.NoneType{}
		}
		c.fail(t.Pos, "unknown type %q", *t.Scalar)
	case t.List != nil:
		return &ast.ListType{Elem: c.typ(t.List)}
	case t.Tuple != nil:
		return &ast.TupleType{Elem: c.typ(t.Tuple)}
	case t.Fn != nil:
		fn := &ast.FunctionType{Params: make([]ast.Type, 0, len(t.Fn.Params))}
		for _, p := range t.Fn.Params {
			fn.Params = append(fn.Params, c.typ(p))
		}
		if t.Fn.Return != nil {
			fn.Return = c.typ(t.Fn.Return)
		}
		return fn
	default:
		c.fail(t.Pos, "missing type")
	}
	return ast.NoneType{}
}

func (c *converter) unary(u *grammar.Unary) ast.Expr {
	if u.Prefix == nil {
		return c.primary(u.Primary)
	}

	pos := convertPos(u.Prefix.Pos)
	operand := u.Prefix.Operand
	// a minus sign directly on a number literal is part of the literal
	if u.Prefix.Op == "-" && operand.Primary != nil {
		switch lit := c.primary(operand.Primary).(type) {
		case *ast.IntegerLiteral:
			return &ast.IntegerLiteral{Pos: pos, Value: new(big.Int).Neg(lit.Value)}
		case *ast.FloatLiteral:
			return &ast.FloatLiteral{Pos: pos, Value: -lit.Value}
		default:
			return &ast.UnOpExpr{Pos: pos, Op: u.Prefix.Op, Arg: lit}
		}
	}

	return &ast.UnOpExpr{Pos: pos, Op: u.Prefix.Op, Arg: c.unary(operand)}
}

func (c *converter) primary(p *grammar.Primary) ast.Expr {
	pos := convertPos(p.Pos)

	switch {
	case p.Float != nil:
		return &ast.FloatLiteral{Pos: pos, Value: *p.Float}
	case p.Int != nil:
		v, ok := new(big.Int).SetString(*p.Int, 10)
		if !ok {
			c.fail(p.Pos, "invalid integer literal %q", *p.Int)
			v = new(big.Int)
		}
		return &ast.IntegerLiteral{Pos: pos, Value: v}
	case p.String != nil:
		return &ast.StringLiteral{Pos: pos, Value: *p.String}
	case p.Bool != nil:
		v := int64(0)
		if *p.Bool == "true" {
			v = 1
		}
		return &ast.IntegerLiteral{Pos: pos, Value: big.NewInt(v)}
	case p.List != nil:
		elems := make([]ast.Expr, 0, len(p.List.Elems))
		for _, e := range p.List.Elems {
			elems = append(elems, c.expr(e))
		}
		return &ast.ListExpr{Pos: pos, Elems: elems}
	case p.Print != nil:
		return &ast.PrintExpr{Pos: pos, Arg: c.expr(p.Print.Arg)}
	case p.Call != nil:
		args := make([]ast.Expr, 0, len(p.Call.Args))
		for _, a := range p.Call.Args {
			args = append(args, c.expr(a))
		}
		return &ast.MethodCallExpr{Pos: pos, Method: c.ident(p.Call.Name), Args: args}
	case p.Ident != nil:
		return &ast.Identifier{Pos: pos, Value: *p.Ident}
	case p.Paren != nil:
		return c.expr(p.Paren)
	}

	c.fail(p.Pos, "empty expression")
	return &ast.NoneExpr{Pos: pos}
}
