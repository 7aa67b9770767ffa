package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position { return p.Pos }
func (*Program) NodeType() NodeType  { return PROGRAM }

func (ti *TypedIdentifier) NodePos() Position { return ti.Pos }
func (*TypedIdentifier) NodeType() NodeType   { return TYPED_IDENT }

func (i *Identifier) NodePos() Position { return i.Pos }
func (*Identifier) NodeType() NodeType  { return IDENT }

func (l *IntegerLiteral) NodePos() Position { return l.Pos }
func (*IntegerLiteral) NodeType() NodeType  { return INTEGER_LITERAL }

func (l *FloatLiteral) NodePos() Position { return l.Pos }
func (*FloatLiteral) NodeType() NodeType  { return FLOAT_LITERAL }

func (l *StringLiteral) NodePos() Position { return l.Pos }
func (*StringLiteral) NodeType() NodeType  { return STRING_LITERAL }

func (a *AssignmentExpr) NodePos() Position { return a.Pos }
func (*AssignmentExpr) NodeType() NodeType  { return ASSIGNMENT_EXPR }

func (r *ReassignExpr) NodePos() Position { return r.Pos }
func (*ReassignExpr) NodeType() NodeType  { return REASSIGN_EXPR }

func (m *MethodCallExpr) NodePos() Position { return m.Pos }
func (*MethodCallExpr) NodeType() NodeType  { return METHOD_CALL_EXPR }

func (p *PrintExpr) NodePos() Position { return p.Pos }
func (*PrintExpr) NodeType() NodeType  { return PRINT_EXPR }

func (i *IfExpr) NodePos() Position { return i.Pos }
func (*IfExpr) NodeType() NodeType  { return IF_EXPR }

func (r *RepExpr) NodePos() Position { return r.Pos }
func (*RepExpr) NodeType() NodeType  { return REP_EXPR }

func (l *ListExpr) NodePos() Position { return l.Pos }
func (*ListExpr) NodeType() NodeType  { return LIST_EXPR }

func (b *BinOpExpr) NodePos() Position { return b.Pos }
func (*BinOpExpr) NodeType() NodeType  { return BIN_OP_EXPR }

func (u *UnOpExpr) NodePos() Position { return u.Pos }
func (*UnOpExpr) NodeType() NodeType  { return UN_OP_EXPR }

func (f *FunctionDef) NodePos() Position { return f.Pos }
func (*FunctionDef) NodeType() NodeType  { return FUNCTION_DEF }

func (r *ReturnExpr) NodePos() Position { return r.Pos }
func (*ReturnExpr) NodeType() NodeType  { return RETURN_EXPR }

func (n *NoneExpr) NodePos() Position { return n.Pos }
func (*NoneExpr) NodeType() NodeType  { return NONE_EXPR }
