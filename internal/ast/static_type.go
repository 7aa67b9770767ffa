package ast

// LookupFunc resolves a name to its declared type
type LookupFunc func(name string) (Type, bool)

// StaticType returns a best-effort static type for e. It never fails: anything
// it cannot determine is NoneType. lookup may be nil.
func StaticType(e Expr, lookup LookupFunc) Type {
	if e == nil {
		return NoneType{}
	}
	t := Accept[Type](e, &typeQuery{lookup: lookup})
	if t == nil {
		return NoneType{}
	}
	return t
}

type typeQuery struct {
	lookup LookupFunc
}

func (q *typeQuery) of(e Expr) Type {
	t := Accept[Type](e, q)
	if t == nil {
		return NoneType{}
	}
	return t
}

func (q *typeQuery) resolve(name string) (Type, bool) {
	if q.lookup == nil {
		return nil, false
	}
	return q.lookup(name)
}

func (q *typeQuery) VisitIntegerLiteral(*IntegerLiteral) Type { return IntType{} }
func (q *typeQuery) VisitFloatLiteral(*FloatLiteral) Type     { return FloatType{} }
func (q *typeQuery) VisitStringLiteral(*StringLiteral) Type   { return StringType{} }

func (q *typeQuery) VisitIdentifier(i *Identifier) Type {
	if t, ok := q.resolve(i.Value); ok && t != nil {
		return t
	}
	return NoneType{}
}

func (q *typeQuery) VisitAssignment(*AssignmentExpr) Type { return NoneType{} }
func (q *typeQuery) VisitReassign(*ReassignExpr) Type     { return NoneType{} }

func (q *typeQuery) VisitMethodCall(m *MethodCallExpr) Type {
	if t, ok := q.resolve(m.Method.Value); ok {
		if fn, ok := t.(*FunctionType); ok && fn.Return != nil {
			return fn.Return
		}
	}
	return NoneType{}
}

func (q *typeQuery) VisitPrint(*PrintExpr) Type { return NoneType{} }
func (q *typeQuery) VisitIf(*IfExpr) Type       { return NoneType{} }
func (q *typeQuery) VisitRep(*RepExpr) Type     { return NoneType{} }

func (q *typeQuery) VisitList(l *ListExpr) Type {
	if len(l.Elems) == 0 {
		return &ListType{Elem: NoneType{}}
	}
	return &ListType{Elem: q.of(l.Elems[0])}
}

func (q *typeQuery) VisitBinOp(b *BinOpExpr) Type {
	switch b.Op {
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		return IntType{}
	}

	left, right := q.of(b.Left), q.of(b.Right)
	switch {
	case left.Equal(FloatType{}) && IsNumeric(right), right.Equal(FloatType{}) && IsNumeric(left):
		return FloatType{}
	case left.Equal(IntType{}) && right.Equal(IntType{}):
		return IntType{}
	case b.Op == "+" && left.Equal(StringType{}) && right.Equal(StringType{}):
		return StringType{}
	}
	return NoneType{}
}

func (q *typeQuery) VisitUnOp(u *UnOpExpr) Type {
	if u.Op == "!" {
		return IntType{}
	}
	return q.of(u.Arg)
}

func (q *typeQuery) VisitFunctionDef(*FunctionDef) Type { return NoneType{} }
func (q *typeQuery) VisitReturn(*ReturnExpr) Type       { return NoneType{} }
func (q *typeQuery) VisitNone(*NoneExpr) Type           { return NoneType{} }
