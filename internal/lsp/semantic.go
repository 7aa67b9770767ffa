package lsp

import (
	"sort"
	"strconv"

	"bdl/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	if program == nil {
		return nil
	}

	c := &tokenCollector{functions: make(map[string]bool)}
	for _, e := range program.Expressions {
		if fn, ok := e.(*ast.FunctionDef); ok {
			c.functions[fn.Name.Value] = true
		}
	}
	c.walk(program.Expressions)

	sort.SliceStable(c.tokens, func(i, j int) bool {
		a, b := c.tokens[i], c.tokens[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.StartChar < b.StartChar
	})
	return c.tokens
}

// encodeSemanticTokens packs tokens into the relative wire format
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))
		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

type tokenCollector struct {
	functions map[string]bool
	params    map[string]bool
	tokens    []SemanticToken
}

func (c *tokenCollector) walk(exprs []ast.Expr) {
	for _, e := range exprs {
		if e != nil {
			ast.Accept[bool](e, c)
		}
	}
}

func (c *tokenCollector) add(pos ast.Position, length int, tokenType string, declaration bool) {
	if pos.Line < 1 || pos.Column < 1 || length <= 0 {
		return
	}
	typeIndex := indexOf(tokenType, SemanticTokenTypes)
	if typeIndex < 0 {
		return
	}
	modifiers := 0
	if declaration {
		modifiers = 1 << indexOf("declaration", SemanticTokenModifiers)
	}
	c.tokens = append(c.tokens, SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      typeIndex,
		TokenModifiers: modifiers,
	})
}

func (c *tokenCollector) keyword(pos ast.Position, kw string) {
	c.add(pos, len(kw), "keyword", false)
}

func (c *tokenCollector) VisitIntegerLiteral(n *ast.IntegerLiteral) bool {
	c.add(n.Pos, len(n.String()), "number", false)
	return true
}

func (c *tokenCollector) VisitFloatLiteral(n *ast.FloatLiteral) bool {
	c.add(n.Pos, len(n.String()), "number", false)
	return true
}

func (c *tokenCollector) VisitStringLiteral(n *ast.StringLiteral) bool {
	c.add(n.Pos, len(strconv.Quote(n.Value)), "string", false)
	return true
}

func (c *tokenCollector) VisitIdentifier(n *ast.Identifier) bool {
	switch {
	case c.params[n.Value]:
		c.add(n.Pos, len(n.Value), "parameter", false)
	case c.functions[n.Value]:
		c.add(n.Pos, len(n.Value), "function", false)
	default:
		c.add(n.Pos, len(n.Value), "variable", false)
	}
	return true
}

func (c *tokenCollector) VisitAssignment(n *ast.AssignmentExpr) bool {
	c.add(n.Target.Name.Pos, len(n.Target.Name.Value), "variable", true)
	c.walk([]ast.Expr{n.Value})
	return true
}

func (c *tokenCollector) VisitReassign(n *ast.ReassignExpr) bool {
	c.VisitIdentifier(&n.Target)
	c.walk([]ast.Expr{n.Value})
	return true
}

func (c *tokenCollector) VisitMethodCall(n *ast.MethodCallExpr) bool {
	c.add(n.Method.Pos, len(n.Method.Value), "function", false)
	c.walk(n.Args)
	return true
}

func (c *tokenCollector) VisitPrint(n *ast.PrintExpr) bool {
	c.keyword(n.Pos, "print")
	c.walk([]ast.Expr{n.Arg})
	return true
}

func (c *tokenCollector) VisitIf(n *ast.IfExpr) bool {
	c.keyword(n.Pos, "if")
	c.walk([]ast.Expr{n.Condition})
	c.walk(n.Then)
	c.walk(n.Else)
	return true
}

func (c *tokenCollector) VisitRep(n *ast.RepExpr) bool {
	c.keyword(n.Pos, "rep")
	c.walk([]ast.Expr{n.Count})
	c.walk(n.Body)
	return true
}

func (c *tokenCollector) VisitList(n *ast.ListExpr) bool {
	c.walk(n.Elems)
	return true
}

func (c *tokenCollector) VisitBinOp(n *ast.BinOpExpr) bool {
	c.walk([]ast.Expr{n.Left, n.Right})
	return true
}

func (c *tokenCollector) VisitUnOp(n *ast.UnOpExpr) bool {
	c.add(n.Pos, len(n.Op), "operator", false)
	c.walk([]ast.Expr{n.Arg})
	return true
}

func (c *tokenCollector) VisitFunctionDef(n *ast.FunctionDef) bool {
	c.keyword(n.Pos, "def")
	c.add(n.Name.Pos, len(n.Name.Value), "function", true)

	outer := c.params
	c.params = make(map[string]bool, len(n.Params))
	for _, p := range n.Params {
		c.params[p.Name.Value] = true
		c.add(p.Name.Pos, len(p.Name.Value), "parameter", true)
	}
	c.walk(n.Body)
	c.params = outer
	return true
}

func (c *tokenCollector) VisitReturn(n *ast.ReturnExpr) bool {
	c.keyword(n.Pos, "return")
	if _, none := n.Value.(*ast.NoneExpr); !none {
		c.walk([]ast.Expr{n.Value})
	}
	return true
}

func (c *tokenCollector) VisitNone(*ast.NoneExpr) bool {
	return true
}

func indexOf(target string, list []string) int {
	for i, item := range list {
		if item == target {
			return i
		}
	}
	return -1
}
