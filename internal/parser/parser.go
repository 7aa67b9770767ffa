package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"bdl/grammar"
	"bdl/internal/ast"
)

// ParseError is a syntax error with the location where parsing stopped
type ParseError struct {
	Message string
	Pos     ast.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

// ParseSource parses BDL source into an AST. On failure no partial program is
// returned and the error is a *ParseError.
func ParseSource(sourceName string, source string) (*ast.Program, error) {
	tree, err := grammar.Parse(sourceName, source)
	if err != nil {
		return nil, toParseError(sourceName, err)
	}

	c := &converter{}
	program := c.program(tree)
	if c.err != nil {
		return nil, c.err
	}
	return program, nil
}

func toParseError(sourceName string, err error) *ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Message: perr.Message(), Pos: convertPos(perr.Position())}
	}
	return &ParseError{Message: err.Error(), Pos: ast.Position{Filename: sourceName, Line: 1, Column: 1}}
}
