package cpp

// Stmt is an emitted statement
type Stmt interface {
	isStmt()
}

// Variable is a declared name. The builder does not check that a variable is
// visible where it is used.
type Variable struct {
	Name  string
	Type  Type
	Const bool
}

// Ref returns a value expression reading the variable
func (v *Variable) Ref() Expr {
	return NewIdent(v.Name)
}

type VarDecl struct {
	Var  *Variable
	Init Expr
}

type Assign struct {
	Target *Variable
	Value  Expr
}

type ExprStmt struct {
	Value Expr
}

// Output writes a value followed by a newline to standard output
type Output struct {
	Value Expr
}

// Return leaves the function. Value is nil for a bare return.
type Return struct {
	Value Expr
}

// IfElse is a conditional. The other branch exists only once requested.
type IfElse struct {
	Cond  Expr
	then  *Block
	other *Block
}

// While is a pre-tested loop
type While struct {
	Cond Expr
	body *Block
}

func (*VarDecl) isStmt()  {}
func (*Assign) isStmt()   {}
func (*ExprStmt) isStmt() {}
func (*Output) isStmt()   {}
func (*Return) isStmt()   {}
func (*IfElse) isStmt()   {}
func (*While) isStmt()    {}

func (i *IfElse) ThenBranch() *Block {
	return i.then
}

// OtherBranch returns the else block, creating it on first use
func (i *IfElse) OtherBranch() *Block {
	if i.other == nil {
		i.other = newBlock()
	}
	return i.other
}

func (w *While) Body() *Block {
	return w.body
}

// Block is an ordered statement list. Statements serialize in the order the
// builder methods were called.
type Block struct {
	stmts []Stmt
}

func newBlock() *Block {
	return &Block{stmts: []Stmt{}}
}

func (b *Block) Len() int {
	return len(b.stmts)
}

func (b *Block) add(s Stmt) {
	b.stmts = append(b.stmts, s)
}

// NewVariable declares an uninitialized variable
func (b *Block) NewVariable(name string, typ Type) *Variable {
	v := &Variable{Name: name, Type: typ}
	b.add(&VarDecl{Var: v})
	return v
}

// NewConstant declares a const variable initialized to value
func (b *Block) NewConstant(name string, typ Type, value Expr) *Variable {
	v := &Variable{Name: name, Type: typ, Const: true}
	b.add(&VarDecl{Var: v, Init: value})
	return v
}

func (b *Block) Assign(target *Variable, value Expr) {
	b.add(&Assign{Target: target, Value: value})
}

// FnCall emits a call and discards its result
func (b *Block) FnCall(name string, args ...Expr) {
	b.add(&ExprStmt{Value: NewCall(name, args...)})
}

// ExprStmt evaluates value for its side effects
func (b *Block) ExprStmt(value Expr) {
	b.add(&ExprStmt{Value: value})
}

func (b *Block) Output(value Expr) {
	b.add(&Output{Value: value})
}

func (b *Block) Return(value Expr) {
	b.add(&Return{Value: value})
}

func (b *Block) NewIfElse(cond Expr) *IfElse {
	s := &IfElse{Cond: cond, then: newBlock()}
	b.add(s)
	return s
}

func (b *Block) NewWhileLoop(cond Expr) *While {
	s := &While{Cond: cond, body: newBlock()}
	b.add(s)
	return s
}
