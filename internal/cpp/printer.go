package cpp

import (
	"fmt"
	"strings"
)

// DefaultIndentWidth is the number of spaces per nesting level
const DefaultIndentWidth = 4

// Printer serializes a Program to C++ source text
type Printer struct {
	indent int
	width  int
	output strings.Builder
}

// NewPrinter creates a printer using width spaces per nesting level
func NewPrinter(width int) *Printer {
	if width <= 0 {
		width = DefaultIndentWidth
	}
	return &Printer{indent: 0, width: width}
}

// Print returns the C++ source of program using the default indentation
func Print(program *Program) string {
	return PrintIndented(program, DefaultIndentWidth)
}

// PrintIndented returns the C++ source of program using width spaces per level
func PrintIndented(program *Program, width int) string {
	p := NewPrinter(width)
	p.printProgram(program)
	return p.output.String()
}

func (p *Printer) writeIndent() {
	p.output.WriteString(strings.Repeat(" ", p.indent*p.width))
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printProgram(program *Program) {
	for _, inc := range program.includes {
		p.writeLine("#include <%s>", inc)
	}
	if len(program.includes) > 0 && (len(program.prototypes) > 0 || len(program.functions) > 0) {
		p.writeLine("")
	}

	for _, fn := range program.prototypes {
		p.writeLine("%s;", signature(fn))
	}
	if len(program.prototypes) > 0 && len(program.functions) > 0 {
		p.writeLine("")
	}

	for i, fn := range program.functions {
		if i > 0 {
			p.writeLine("")
		}
		p.printFunction(fn)
	}
}

func (p *Printer) printFunction(fn *Function) {
	p.writeLine("%s {", signature(fn))
	p.printBlock(fn.body)
	p.writeLine("}")
}

func signature(fn *Function) string {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", param.Type, param.Name)
	}
	return fmt.Sprintf("%s %s(%s)", fn.ReturnType, fn.Name, strings.Join(params, ", "))
}

func (p *Printer) printBlock(block *Block) {
	p.indent++
	defer func() { p.indent-- }()

	stmts := block.stmts
	for i := 0; i < len(stmts); i++ {
		// declaration directly followed by its first assignment prints as one line
		if decl, ok := stmts[i].(*VarDecl); ok && decl.Init == nil && i+1 < len(stmts) {
			if assign, ok := stmts[i+1].(*Assign); ok && assign.Target == decl.Var {
				p.writeLine("%s %s = %s;", decl.Var.Type, decl.Var.Name, assign.Value)
				i++
				continue
			}
		}
		p.printStmt(stmts[i])
	}
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *VarDecl:
		prefix := ""
		if s.Var.Const {
			prefix = "const "
		}
		if s.Init == nil {
			p.writeLine("%s%s %s;", prefix, s.Var.Type, s.Var.Name)
		} else {
			p.writeLine("%s%s %s = %s;", prefix, s.Var.Type, s.Var.Name, s.Init)
		}
	case *Assign:
		p.writeLine("%s = %s;", s.Target.Name, s.Value)
	case *ExprStmt:
		p.writeLine("%s;", s.Value)
	case *Output:
		p.writeLine("std::cout << %s << std::endl;", s.Value)
	case *Return:
		if s.Value == nil {
			p.writeLine("return;")
		} else {
			p.writeLine("return %s;", s.Value)
		}
	case *IfElse:
		p.printIfElse(s, false)
	case *While:
		p.writeLine("while %s {", condition(s.Cond))
		p.printBlock(s.body)
		p.writeLine("}")
	default:
		p.writeLine("// unknown statement %T", stmt)
	}
}

func (p *Printer) printIfElse(s *IfElse, chained bool) {
	head := fmt.Sprintf("if %s {", condition(s.Cond))
	if chained {
		p.output.WriteString(head + "\n")
	} else {
		p.writeLine("%s", head)
	}
	p.printBlock(s.then)

	if s.other == nil {
		p.writeLine("}")
		return
	}

	if len(s.other.stmts) == 1 {
		if nested, ok := s.other.stmts[0].(*IfElse); ok {
			p.writeIndent()
			p.output.WriteString("} else ")
			p.printIfElse(nested, true)
			return
		}
	}

	p.writeLine("} else {")
	p.printBlock(s.other)
	p.writeLine("}")
}

// condition wraps e in the parentheses required by if and while
func condition(e Expr) string {
	if _, ok := e.(*BinOp); ok {
		return e.String()
	}
	return "(" + e.String() + ")"
}
