package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree one node per line, children indented below their parent
func Dump(program *Program) string {
	d := &dumper{}
	d.line("Program")
	d.depth++
	for _, e := range program.Expressions {
		Accept[string](e, d)
	}
	return d.out.String()
}

type dumper struct {
	depth int
	out   strings.Builder
}

func (d *dumper) line(format string, args ...interface{}) {
	d.out.WriteString(strings.Repeat("  ", d.depth))
	d.out.WriteString(fmt.Sprintf(format, args...))
	d.out.WriteString("\n")
}

func (d *dumper) children(label string, exprs ...Expr) {
	if label != "" {
		d.line("%s:", label)
	}
	d.depth++
	for _, e := range exprs {
		if e != nil {
			Accept[string](e, d)
		}
	}
	d.depth--
}

func (d *dumper) VisitIntegerLiteral(l *IntegerLiteral) string {
	d.line("Integer %s", l.String())
	return ""
}

func (d *dumper) VisitFloatLiteral(l *FloatLiteral) string {
	d.line("Float %s", l.String())
	return ""
}

func (d *dumper) VisitStringLiteral(l *StringLiteral) string {
	d.line("String %s", l.String())
	return ""
}

func (d *dumper) VisitIdentifier(i *Identifier) string {
	d.line("Identifier %s", i.Value)
	return ""
}

func (d *dumper) VisitAssignment(a *AssignmentExpr) string {
	d.line("Assignment %s", a.Target.String())
	d.children("", a.Value)
	return ""
}

func (d *dumper) VisitReassign(r *ReassignExpr) string {
	d.line("Reassign %s", r.Target.Value)
	d.children("", r.Value)
	return ""
}

func (d *dumper) VisitMethodCall(m *MethodCallExpr) string {
	d.line("Call %s", m.Method.Value)
	d.children("", m.Args...)
	return ""
}

func (d *dumper) VisitPrint(p *PrintExpr) string {
	d.line("Print")
	d.children("", p.Arg)
	return ""
}

func (d *dumper) VisitIf(i *IfExpr) string {
	d.line("If")
	d.depth++
	d.children("condition", i.Condition)
	d.children("then", i.Then...)
	if i.HasElse() {
		d.children("else", i.Else...)
	}
	d.depth--
	return ""
}

func (d *dumper) VisitRep(r *RepExpr) string {
	d.line("Rep")
	d.depth++
	d.children("count", r.Count)
	d.children("body", r.Body...)
	d.depth--
	return ""
}

func (d *dumper) VisitList(l *ListExpr) string {
	d.line("List")
	d.children("", l.Elems...)
	return ""
}

func (d *dumper) VisitBinOp(b *BinOpExpr) string {
	d.line("BinOp %s", b.Op)
	d.children("", b.Left, b.Right)
	return ""
}

func (d *dumper) VisitUnOp(u *UnOpExpr) string {
	d.line("UnOp %s", u.Op)
	d.children("", u.Arg)
	return ""
}

func (d *dumper) VisitFunctionDef(f *FunctionDef) string {
	params := make([]string, len(f.Params))
	for i := range f.Params {
		params[i] = f.Params[i].String()
	}
	ret := "none"
	if f.Return != nil {
		ret = f.Return.String()
	}
	d.line("FunctionDef %s(%s) -> %s", f.Name.Value, strings.Join(params, ", "), ret)
	d.children("", f.Body...)
	return ""
}

func (d *dumper) VisitReturn(r *ReturnExpr) string {
	d.line("Return")
	d.children("", r.Value)
	return ""
}

func (d *dumper) VisitNone(*NoneExpr) string {
	d.line("None")
	return ""
}
