package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	Statements []*Statement `@@*`
}

type PosIdent struct {
	Pos   lexer.Position
	Value string `@Ident`
}

type Statement struct {
	Pos      lexer.Position
	Function *FunctionDef  `  @@`
	If       *IfStmt       `| @@`
	Rep      *RepStmt      `| @@`
	Return   *ReturnStmt   `| @@`
	Assign   *AssignStmt   `| @@`
	Reassign *ReassignStmt `| @@`
	Expr     *Expr         `| @@`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type FunctionDef struct {
	Pos    lexer.Position
	Name   PosIdent      `"def" @@`
	Params []*TypedIdent `"(" [ @@ { "," @@ } ] ")"`
	Return *Type         `[ "->" @@ ]`
	Body   *Block        `@@`
}

type TypedIdent struct {
	Pos  lexer.Position
	Name PosIdent `@@ ":"`
	Type *Type    `@@`
}

type Type struct {
	Pos    lexer.Position
	Scalar *string  `  @("int" | "float" | "string" | "none")`
	List   *Type    `| "list" "<" @@ ">"`
	Tuple  *Type    `| "tuple" "<" @@ ">"`
	Fn     *FnType  `| @@`
}

type FnType struct {
	Params []*Type `"fn" "(" [ @@ { "," @@ } ] ")"`
	Return *Type   `[ "->" @@ ]`
}

type IfStmt struct {
	Pos  lexer.Position
	Cond *Expr       `"if" @@`
	Then *Block      `@@`
	Else *ElseClause `[ @@ ]`
}

type ElseClause struct {
	Pos   lexer.Position
	If    *IfStmt `  "else" @@`
	Block *Block  `| "else" @@`
}

type RepStmt struct {
	Pos   lexer.Position
	Count *Expr  `"rep" @@`
	Body  *Block `@@`
}

type ReturnStmt struct {
	Pos   lexer.Position
	Value *Expr `"return" [ @@ ]`
}

type AssignStmt struct {
	Pos    lexer.Position
	Target *TypedIdent `@@ "="`
	Value  *Expr       `@@`
}

type ReassignStmt struct {
	Pos    lexer.Position
	Target PosIdent `@@ "="`
	Value  *Expr    `@@`
}

// Expr is a flat operator chain; precedence is applied when building the AST
type Expr struct {
	Pos  lexer.Position
	Left *Unary   `@@`
	Ops  []*BinOp `{ @@ }`
}

type BinOp struct {
	Pos      lexer.Position
	Operator string `@("||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%")`
	Right    *Unary `@@`
}

type Unary struct {
	Pos     lexer.Position
	Prefix  *Prefix  `  @@`
	Primary *Primary `| @@`
}

type Prefix struct {
	Pos     lexer.Position
	Op      string `@("!" | "-")`
	Operand *Unary `@@`
}

type Primary struct {
	Pos    lexer.Position
	Float  *float64   `  @Float`
	Int    *string    `| @Integer`
	String *string    `| @String`
	Bool   *string    `| @("true" | "false")`
	List   *ListLit   `| @@`
	Print  *PrintCall `| @@`
	Call   *Call      `| @@`
	Ident  *string    `| @Ident`
	Paren  *Expr      `| "(" @@ ")"`
}

type ListLit struct {
	Pos   lexer.Position
	Elems []*Expr `"[" [ @@ { "," @@ } ] "]"`
}

type PrintCall struct {
	Pos lexer.Position
	Arg *Expr `"print" "(" @@ ")"`
}

type Call struct {
	Pos  lexer.Position
	Name PosIdent `@@`
	Args []*Expr  `"(" [ @@ { "," @@ } ] ")"`
}
