package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM
	FUNCTION_DEF
	TYPED_IDENT

	// Literals
	INTEGER_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	LIST_EXPR
	IDENT
	NONE_EXPR

	// Statements
	ASSIGNMENT_EXPR
	REASSIGN_EXPR
	PRINT_EXPR
	IF_EXPR
	REP_EXPR
	RETURN_EXPR

	// Expressions
	METHOD_CALL_EXPR
	BIN_OP_EXPR
	UN_OP_EXPR
)
