package grammar_test

import (
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bdl/grammar"
)

func parse(t *testing.T, src string) *grammar.Program {
	t.Helper()
	program, err := grammar.Parse("test.bdl", src)
	require.NoError(t, err, src)
	return program
}

func TestBasicValues(t *testing.T) {
	for _, src := range []string{"42", "-42", "3.14", "-3.14", "x", "variable_name", "camelCase", `"hello"`, "true", "[1, 2, 3]", "[]"} {
		program := parse(t, src)
		assert.Len(t, program.Statements, 1, src)
	}
}

func TestInvalidIdentifier(t *testing.T) {
	_, err := grammar.Parse("test.bdl", "1variable")
	require.Error(t, err)

	var perr participle.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Position().Line)
}

func TestTypedAssignments(t *testing.T) {
	tests := []struct {
		src string
		ok  func(*grammar.Type) bool
	}{
		{"x: int = 42", func(ty *grammar.Type) bool { return ty.Scalar != nil && *ty.Scalar == "int" }},
		{"y: float = 3.14", func(ty *grammar.Type) bool { return ty.Scalar != nil && *ty.Scalar == "float" }},
		{"nums: list<int> = method()", func(ty *grammar.Type) bool { return ty.List != nil && *ty.List.Scalar == "int" }},
		{"point: tuple<float> = make()", func(ty *grammar.Type) bool { return ty.Tuple != nil }},
		{"grid: list<list<int>> = []", func(ty *grammar.Type) bool { return ty.List != nil && ty.List.List != nil }},
		{"f: fn(int, int) -> int = g", func(ty *grammar.Type) bool { return ty.Fn != nil && len(ty.Fn.Params) == 2 && ty.Fn.Return != nil }},
	}

	for _, tt := range tests {
		program := parse(t, tt.src)
		require.Len(t, program.Statements, 1, tt.src)
		assign := program.Statements[0].Assign
		require.NotNil(t, assign, tt.src)
		assert.True(t, tt.ok(assign.Target.Type), tt.src)
	}
}

func TestReassignment(t *testing.T) {
	program := parse(t, "x = x + 1")
	require.Len(t, program.Statements, 1)
	reassign := program.Statements[0].Reassign
	require.NotNil(t, reassign)
	assert.Equal(t, "x", reassign.Target.Value)
	require.Len(t, reassign.Value.Ops, 1)
	assert.Equal(t, "+", reassign.Value.Ops[0].Operator)
}

func TestEqualityIsNotReassignment(t *testing.T) {
	program := parse(t, "x == y")
	require.Len(t, program.Statements, 1)
	assert.Nil(t, program.Statements[0].Reassign)
	require.NotNil(t, program.Statements[0].Expr)
	assert.Equal(t, "==", program.Statements[0].Expr.Ops[0].Operator)
}

func TestFunctionDefinitions(t *testing.T) {
	program := parse(t, `def add(x: int, y: int) {
        x + y
    }`)
	fn := program.Statements[0].Function
	require.NotNil(t, fn)
	assert.Equal(t, "add", fn.Name.Value)
	assert.Len(t, fn.Params, 2)
	assert.Nil(t, fn.Return)
	assert.Len(t, fn.Body.Statements, 1)

	program = parse(t, "def empty() -> none { return }")
	fn = program.Statements[0].Function
	require.NotNil(t, fn)
	assert.Empty(t, fn.Params)
	require.NotNil(t, fn.Return)
	assert.Equal(t, "none", *fn.Return.Scalar)
	require.NotNil(t, fn.Body.Statements[0].Return)
	assert.Nil(t, fn.Body.Statements[0].Return.Value)
}

func TestMethodCalls(t *testing.T) {
	for _, src := range []string{"print(42)", "add(x, y)", "complex(3.14, other())", "noargs()"} {
		program := parse(t, src)
		assert.Len(t, program.Statements, 1, src)
	}

	program := parse(t, "print(42)")
	assert.NotNil(t, program.Statements[0].Expr.Left.Primary.Print)
}

func TestIfExpressions(t *testing.T) {
	program := parse(t, "if x { print(42) print(42) }")
	ifStmt := program.Statements[0].If
	require.NotNil(t, ifStmt)
	assert.Len(t, ifStmt.Then.Statements, 2)
	assert.Nil(t, ifStmt.Else)

	program = parse(t, "if x { print(42) } else { print(0) }")
	require.NotNil(t, program.Statements[0].If.Else)
	assert.NotNil(t, program.Statements[0].If.Else.Block)

	program = parse(t, "if a { print(1) } else if b { print(2) } else { print(3) }")
	elseIf := program.Statements[0].If.Else.If
	require.NotNil(t, elseIf)
	require.NotNil(t, elseIf.Else)
	assert.NotNil(t, elseIf.Else.Block)
}

func TestRepExpressions(t *testing.T) {
	program := parse(t, "rep 5 { print(42) }")
	rep := program.Statements[0].Rep
	require.NotNil(t, rep)
	assert.Equal(t, "5", *rep.Count.Left.Primary.Int)
	assert.Len(t, rep.Body.Statements, 1)
}

func TestBinaryOperations(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", "%", "==", "!=", "<", ">", "<=", ">=", "&&", "||"} {
		program := parse(t, "x "+op+" y")
		require.Len(t, program.Statements, 1, op)
		expr := program.Statements[0].Expr
		require.NotNil(t, expr, op)
		require.Len(t, expr.Ops, 1, op)
		assert.Equal(t, op, expr.Ops[0].Operator)
	}
}

func TestUnaryOperations(t *testing.T) {
	program := parse(t, "!true")
	prefix := program.Statements[0].Expr.Left.Prefix
	require.NotNil(t, prefix)
	assert.Equal(t, "!", prefix.Op)

	program = parse(t, "--x")
	prefix = program.Statements[0].Expr.Left.Prefix
	require.NotNil(t, prefix)
	assert.NotNil(t, prefix.Operand.Prefix)
}

func TestStringsAndComments(t *testing.T) {
	program := parse(t, `# leading comment
s: string = "a \"quoted\" word" // trailing
print(s)`)
	require.Len(t, program.Statements, 2)
	assert.Equal(t, `a "quoted" word`, *program.Statements[0].Assign.Value.Left.Primary.String)
}

func TestCompletePrograms(t *testing.T) {
	program := parse(t, `
        x: int = 42
        if x > 0 {
            print(x)
        } else {
            print(-x)
        }

        rep 3 {
            print(x)
        }`)
	assert.Len(t, program.Statements, 3)

	program = parse(t, `
        def add(x: int, y: int) -> int {
            return x + y
        }

        result: int = add(5, 3)
        print(result)
    `)
	assert.Len(t, program.Statements, 3)
}

func TestPositions(t *testing.T) {
	program := parse(t, "x: int = 1\n  y = 2")
	assert.Equal(t, 1, program.Statements[0].Pos.Line)
	assert.Equal(t, 2, program.Statements[1].Pos.Line)
	assert.Equal(t, 3, program.Statements[1].Pos.Column)
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	_, err := grammar.Parse("test.bdl", "rep: int = 1")
	assert.Error(t, err)
}

func TestEBNF(t *testing.T) {
	assert.Contains(t, grammar.EBNF(), "Statement")
}

func TestOpenDepth(t *testing.T) {
	tests := []struct {
		source string
		depth  int
	}{
		{"print(1)", 0},
		{"def f() {", 1},
		{"if x {\n    print([1, 2", 3},
		{"s: string = \"{(\"", 0},
		{"# {\nx: int = 1", 0},
		{"}", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.depth, grammar.OpenDepth(tt.source), tt.source)
	}
}
