package ast

import "math/big"

// Program is the unit of compilation: the ordered top-level expressions of one source file
type Program struct {
	Pos         Position
	Expressions []Expr
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Identifier is an unresolved name reference
// Example: "x", "total", "add"
type Identifier struct {
	Pos   Position
	Value string
}

// TypedIdentifier pairs a name with its declared type at a declaration site
// Example: "x: int", "nums: list<int>"
type TypedIdentifier struct {
	Pos  Position
	Name Identifier
	Type Type
}

// IntegerLiteral holds a signed integer of arbitrary size
// Example: "42", "-7"
type IntegerLiteral struct {
	Pos   Position
	Value *big.Int
}

// FloatLiteral holds a double precision value
// Example: "3.14", "-0.5"
type FloatLiteral struct {
	Pos   Position
	Value float64
}

// StringLiteral holds UTF-8 text without its surrounding quotes
// Example: "\"hello\""
type StringLiteral struct {
	Pos   Position
	Value string
}

// AssignmentExpr declares a new variable in the enclosing block
// Example: "x: int = 1 + 2"
type AssignmentExpr struct {
	Pos    Position
	Target TypedIdentifier
	Value  Expr
}

// ReassignExpr stores a new value into an already declared variable
// Example: "x = x + 1"
type ReassignExpr struct {
	Pos    Position
	Target Identifier
	Value  Expr
}

// MethodCallExpr calls a function by name
// Example: "add(5, 3)", "other()"
type MethodCallExpr struct {
	Pos    Position
	Method Identifier
	Args   []Expr
}

// PrintExpr writes a single value to standard output
// Example: "print(x)"
type PrintExpr struct {
	Pos Position
	Arg Expr
}

// IfExpr is a conditional with an optional else block.
// Else is nil when no else block was written; an empty non-nil slice is "else {}".
// Example: "if x > 0 { print(x) } else { print(0) }"
type IfExpr struct {
	Pos       Position
	Condition Expr
	Then      []Expr
	Else      []Expr
}

// HasElse reports whether the source carried an else block
func (i *IfExpr) HasElse() bool { return i.Else != nil }

// RepExpr repeats its body a fixed number of times
// Example: "rep 3 { print(1) }"
type RepExpr struct {
	Pos   Position
	Count Expr
	Body  []Expr
}

// ListExpr is a sequence literal of homogeneous elements
// Example: "[1, 2, 3]"
type ListExpr struct {
	Pos   Position
	Elems []Expr
}

// BinOpExpr applies an infix operator
// Example: "a + b", "x >= 0", "p && q"
type BinOpExpr struct {
	Pos   Position
	Left  Expr
	Op    string
	Right Expr
}

// UnOpExpr applies a prefix operator
// Example: "-x", "!done"
type UnOpExpr struct {
	Pos Position
	Op  string
	Arg Expr
}

// FunctionDef declares a top-level function. Return is nil when no return type was written.
// Example: "def add(x: int, y: int) -> int { return x + y }"
type FunctionDef struct {
	Pos    Position
	Name   Identifier
	Params []TypedIdentifier
	Return Type
	Body   []Expr
}

// ReturnExpr leaves the enclosing function. Value is a *NoneExpr for a bare return.
// Example: "return x", "return"
type ReturnExpr struct {
	Pos   Position
	Value Expr
}

// NoneExpr is the unit value
type NoneExpr struct {
	Pos Position
}
