package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// sourcePrinter renders expressions back to BDL source text
type sourcePrinter struct {
	indent int
}

func (p *sourcePrinter) block(body []Expr) string {
	if len(body) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	p.indent++
	for _, e := range body {
		b.WriteString(strings.Repeat("    ", p.indent))
		b.WriteString(Accept[string](e, p))
		b.WriteString("\n")
	}
	p.indent--
	b.WriteString(strings.Repeat("    ", p.indent))
	b.WriteString("}")
	return b.String()
}

func (p *sourcePrinter) list(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = Accept[string](e, p)
	}
	return strings.Join(parts, ", ")
}

func (p *sourcePrinter) VisitIntegerLiteral(l *IntegerLiteral) string {
	if l.Value == nil {
		return "0"
	}
	return l.Value.String()
}

func (p *sourcePrinter) VisitFloatLiteral(l *FloatLiteral) string {
	s := strconv.FormatFloat(l.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

func (p *sourcePrinter) VisitStringLiteral(l *StringLiteral) string {
	return strconv.Quote(l.Value)
}

func (p *sourcePrinter) VisitIdentifier(i *Identifier) string {
	return i.Value
}

func (p *sourcePrinter) VisitAssignment(a *AssignmentExpr) string {
	return fmt.Sprintf("%s = %s", a.Target.String(), Accept[string](a.Value, p))
}

func (p *sourcePrinter) VisitReassign(r *ReassignExpr) string {
	return fmt.Sprintf("%s = %s", r.Target.Value, Accept[string](r.Value, p))
}

func (p *sourcePrinter) VisitMethodCall(m *MethodCallExpr) string {
	return fmt.Sprintf("%s(%s)", m.Method.Value, p.list(m.Args))
}

func (p *sourcePrinter) VisitPrint(pr *PrintExpr) string {
	return fmt.Sprintf("print(%s)", Accept[string](pr.Arg, p))
}

func (p *sourcePrinter) VisitIf(i *IfExpr) string {
	s := fmt.Sprintf("if %s %s", Accept[string](i.Condition, p), p.block(i.Then))
	if !i.HasElse() {
		return s
	}
	if len(i.Else) == 1 {
		if nested, ok := i.Else[0].(*IfExpr); ok {
			return s + " else " + p.VisitIf(nested)
		}
	}
	return s + " else " + p.block(i.Else)
}

func (p *sourcePrinter) VisitRep(r *RepExpr) string {
	return fmt.Sprintf("rep %s %s", Accept[string](r.Count, p), p.block(r.Body))
}

func (p *sourcePrinter) VisitList(l *ListExpr) string {
	return "[" + p.list(l.Elems) + "]"
}

func (p *sourcePrinter) VisitBinOp(b *BinOpExpr) string {
	return fmt.Sprintf("(%s %s %s)", Accept[string](b.Left, p), b.Op, Accept[string](b.Right, p))
}

func (p *sourcePrinter) VisitUnOp(u *UnOpExpr) string {
	return u.Op + Accept[string](u.Arg, p)
}

func (p *sourcePrinter) VisitFunctionDef(f *FunctionDef) string {
	params := make([]string, len(f.Params))
	for i := range f.Params {
		params[i] = f.Params[i].String()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("def %s(%s)", f.Name.Value, strings.Join(params, ", ")))
	if f.Return != nil {
		b.WriteString(" -> " + f.Return.String())
	}
	b.WriteString(" ")
	b.WriteString(p.block(f.Body))
	return b.String()
}

func (p *sourcePrinter) VisitReturn(r *ReturnExpr) string {
	if r.Value == nil {
		return "return"
	}
	if _, ok := r.Value.(*NoneExpr); ok {
		return "return"
	}
	return "return " + Accept[string](r.Value, p)
}

func (p *sourcePrinter) VisitNone(*NoneExpr) string {
	return "none"
}

func (prog *Program) String() string {
	p := &sourcePrinter{}
	var b strings.Builder
	for i, e := range prog.Expressions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Accept[string](e, p))
	}
	return b.String()
}

func (ti *TypedIdentifier) String() string {
	if ti.Type == nil {
		return ti.Name.Value
	}
	return fmt.Sprintf("%s: %s", ti.Name.Value, ti.Type.String())
}

func (i *Identifier) String() string     { return i.Value }
func (l *IntegerLiteral) String() string { return Accept[string](l, &sourcePrinter{}) }
func (l *FloatLiteral) String() string   { return Accept[string](l, &sourcePrinter{}) }
func (l *StringLiteral) String() string  { return Accept[string](l, &sourcePrinter{}) }
func (a *AssignmentExpr) String() string { return Accept[string](a, &sourcePrinter{}) }
func (r *ReassignExpr) String() string   { return Accept[string](r, &sourcePrinter{}) }
func (m *MethodCallExpr) String() string { return Accept[string](m, &sourcePrinter{}) }
func (p *PrintExpr) String() string      { return Accept[string](p, &sourcePrinter{}) }
func (i *IfExpr) String() string         { return Accept[string](i, &sourcePrinter{}) }
func (r *RepExpr) String() string        { return Accept[string](r, &sourcePrinter{}) }
func (l *ListExpr) String() string       { return Accept[string](l, &sourcePrinter{}) }
func (b *BinOpExpr) String() string      { return Accept[string](b, &sourcePrinter{}) }
func (u *UnOpExpr) String() string       { return Accept[string](u, &sourcePrinter{}) }
func (f *FunctionDef) String() string    { return Accept[string](f, &sourcePrinter{}) }
func (r *ReturnExpr) String() string     { return Accept[string](r, &sourcePrinter{}) }
func (n *NoneExpr) String() string       { return "none" }
