// Package token SPDX-License-Identifier: Apache-2.0
package token

import "strings"

type TokenType string

const (
	IDENT = "IDENT" // add, foobar, x, y ...

	// Keywords
	DEF    = "DEF"
	IF     = "IF"
	ELSE   = "ELSE"
	REP    = "REP"
	RETURN = "RETURN"
	PRINT  = "PRINT"
	TRUE   = "TRUE"
	FALSE  = "FALSE"

	// Type keywords
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"
	LIST   = "LIST"
	TUPLE  = "TUPLE"
	FN     = "FN"
	NONE   = "NONE"
)

// ReservedPrefix marks compiler-introduced names. Source identifiers may not
// start with it.
const ReservedPrefix = "__"

var keywords = map[string]TokenType{
	"def":    DEF,
	"if":     IF,
	"else":   ELSE,
	"rep":    REP,
	"return": RETURN,
	"print":  PRINT,
	"true":   TRUE,
	"false":  FALSE,
}

var typeKeywords = map[string]TokenType{
	"int":    INT,
	"float":  FLOAT,
	"string": STRING,
	"list":   LIST,
	"tuple":  TUPLE,
	"fn":     FN,
	"none":   NONE,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if tok, ok := typeKeywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether ident is a statement or literal keyword.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// IsTypeKeyword reports whether ident names a builtin type.
func IsTypeKeyword(ident string) bool {
	_, ok := typeKeywords[ident]
	return ok
}

// IsReserved reports whether ident uses the synthetic-name prefix.
func IsReserved(ident string) bool {
	return strings.HasPrefix(ident, ReservedPrefix)
}

// Keywords returns all statement keywords in a stable order.
func Keywords() []string {
	return []string{"def", "if", "else", "rep", "return", "print", "true", "false"}
}

// TypeKeywords returns all type keywords in a stable order.
func TypeKeywords() []string {
	return []string{"int", "float", "string", "list", "tuple", "fn", "none"}
}
