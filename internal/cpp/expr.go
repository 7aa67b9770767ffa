package cpp

import (
	"math/big"
	"strconv"
	"strings"
)

// Expr is a constructed value that is not emitted until a statement consumes it
type Expr interface {
	isExpr()
	String() string
}

type Num struct {
	Value *big.Int
}

type Float struct {
	Value float64
}

type Str struct {
	Value string
}

type Ident struct {
	Name string
}

type BinOp struct {
	Left  Expr
	Op    string
	Right Expr
}

type UnOp struct {
	Op      string
	Operand Expr
}

type Call struct {
	Name string
	Args []Expr
}

// Raw is emitted verbatim
type Raw struct {
	Text string
}

// Unsupported marks a construct that has no lowering yet. It renders as a
// visible comment so the resulting C++ fails to compile instead of misbehaving.
type Unsupported struct {
	Kind string
}

func (*Num) isExpr()         {}
func (*Float) isExpr()       {}
func (*Str) isExpr()         {}
func (*Ident) isExpr()       {}
func (*BinOp) isExpr()       {}
func (*UnOp) isExpr()        {}
func (*Call) isExpr()        {}
func (*Raw) isExpr()         {}
func (*Unsupported) isExpr() {}

func NewNum(v int64) *Num {
	return &Num{Value: big.NewInt(v)}
}

func NewBigNum(v *big.Int) *Num {
	return &Num{Value: new(big.Int).Set(v)}
}

func NewFloat(v float64) *Float { return &Float{Value: v} }

func NewStr(v string) *Str { return &Str{Value: v} }

func NewIdent(name string) *Ident { return &Ident{Name: name} }

func NewBinOp(left Expr, op string, right Expr) *BinOp {
	return &BinOp{Left: left, Op: op, Right: right}
}

func NewUnOp(op string, operand Expr) *UnOp {
	return &UnOp{Op: op, Operand: operand}
}

func NewCall(name string, args ...Expr) *Call {
	return &Call{Name: name, Args: args}
}

func NewRaw(text string) *Raw { return &Raw{Text: text} }

func NewUnsupported(kind string) *Unsupported { return &Unsupported{Kind: kind} }

func (n *Num) String() string {
	return n.Value.String()
}

func (f *Float) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (s *Str) String() string {
	return Quote(s.Value)
}

func (i *Ident) String() string {
	return i.Name
}

func (b *BinOp) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

func (u *UnOp) String() string {
	if needsParens(u.Operand) {
		return u.Op + "(" + u.Operand.String() + ")"
	}
	return u.Op + u.Operand.String()
}

// needsParens keeps "- -x" and "--1" from fusing into a decrement
func needsParens(e Expr) bool {
	switch v := e.(type) {
	case *UnOp:
		return true
	case *Num:
		return v.Value.Sign() < 0
	case *Float:
		return v.Value < 0
	}
	return false
}

func (c *Call) String() string {
	return c.Name + "(" + joinExprs(c.Args) + ")"
}

func (r *Raw) String() string {
	return r.Text
}

func (u *Unsupported) String() string {
	return "/* unsupported: " + u.Kind + " */"
}

// BraceList renders a brace initializer over elems
func BraceList(elems []Expr) *Raw {
	return NewRaw("{" + joinExprs(elems) + "}")
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Quote renders s as a C++ string literal
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
