package cpp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyProgram(t *testing.T) {
	program := NewProgram()
	assert.Equal(t, "", Print(program))

	program.AddInclude("iostream")
	assert.Equal(t, "#include <iostream>\n", Print(program))
}

func TestFunctionWithParams(t *testing.T) {
	program := NewProgram()
	program.AddInclude("bits/stdc++.h")

	fn := program.NewFunction("add", Int)
	x := fn.AddParam("x", Int)
	y := fn.AddParam("y", Int)
	fn.Body().Return(NewBinOp(x.Ref(), "+", y.Ref()))

	expected := `#include <bits/stdc++.h>

int add(int x, int y) {
    return (x + y);
}
`
	assert.Equal(t, expected, Print(program))
}

func TestDeclarationMergesWithFirstAssignment(t *testing.T) {
	program := NewProgram()
	body := program.NewFunction("main", Int).Body()

	x := body.NewVariable("x", Int)
	body.Assign(x, NewBinOp(NewNum(1), "+", NewNum(2)))
	body.Assign(x, NewNum(5))
	y := body.NewVariable("y", Double)
	body.Output(y.Ref())

	expected := `int main() {
    int x = (1 + 2);
    x = 5;
    double y;
    std::cout << y << std::endl;
}
`
	assert.Equal(t, expected, Print(program))
}

func TestIfElse(t *testing.T) {
	program := NewProgram()
	body := program.NewFunction("main", Int).Body()

	ifElse := body.NewIfElse(NewBinOp(NewIdent("x"), ">", NewNum(0)))
	ifElse.ThenBranch().Output(NewIdent("x"))
	ifElse.OtherBranch().Output(NewNum(0))

	noElse := body.NewIfElse(NewIdent("flag"))
	noElse.ThenBranch().FnCall("f")

	expected := `int main() {
    if (x > 0) {
        std::cout << x << std::endl;
    } else {
        std::cout << 0 << std::endl;
    }
    if (flag) {
        f();
    }
}
`
	assert.Equal(t, expected, Print(program))
}

func TestElseIfChain(t *testing.T) {
	program := NewProgram()
	body := program.NewFunction("main", Int).Body()

	outer := body.NewIfElse(NewIdent("a"))
	outer.ThenBranch().Output(NewNum(1))
	inner := outer.OtherBranch().NewIfElse(NewIdent("b"))
	inner.ThenBranch().Output(NewNum(2))
	inner.OtherBranch().Output(NewNum(3))

	expected := `int main() {
    if (a) {
        std::cout << 1 << std::endl;
    } else if (b) {
        std::cout << 2 << std::endl;
    } else {
        std::cout << 3 << std::endl;
    }
}
`
	assert.Equal(t, expected, Print(program))
}

func TestWhileLoop(t *testing.T) {
	program := NewProgram()
	body := program.NewFunction("main", Int).Body()

	counter := body.NewVariable("__rep0", Int)
	body.Assign(counter, NewNum(0))
	loop := body.NewWhileLoop(NewBinOp(counter.Ref(), "<", NewNum(3)))
	loop.Body().Output(NewNum(1))
	loop.Body().Assign(counter, NewBinOp(counter.Ref(), "+", NewNum(1)))
	body.Return(NewNum(0))

	expected := `int main() {
    int __rep0 = 0;
    while (__rep0 < 3) {
        std::cout << 1 << std::endl;
        __rep0 = (__rep0 + 1);
    }
    return 0;
}
`
	assert.Equal(t, expected, Print(program))
}

func TestConstant(t *testing.T) {
	program := NewProgram()
	fn := program.NewFunction("f", Void)
	fn.Body().NewConstant("__bound0", Int, NewCall("n"))
	fn.Body().Return(nil)

	expected := `void f() {
    const int __bound0 = n();
    return;
}
`
	assert.Equal(t, expected, Print(program))
}

func TestCustomIndentWidth(t *testing.T) {
	program := NewProgram()
	program.NewFunction("main", Int).Body().Return(NewNum(0))

	assert.Equal(t, "int main() {\n  return 0;\n}\n", PrintIndented(program, 2))
}

func TestFunctionsKeepRegistrationOrder(t *testing.T) {
	program := NewProgram()
	late := NewFunction("main", Int)
	program.NewFunction("helper", Void)
	program.AddFunction(late)

	require.Len(t, program.Functions(), 2)
	assert.Equal(t, "helper", program.Functions()[0].Name)
	assert.Same(t, late, program.Functions()[1])
}

func TestPrototypesPrecedeBodies(t *testing.T) {
	program := NewProgram()
	program.AddInclude("iostream")
	entry := program.NewFunction("main", Int)
	helper := NewFunction("scale", Double)
	helper.AddParam("x", Int)
	helper.AddParam("s", String)

	program.AddPrototype(helper)
	program.AddPrototype(helper)
	entry.Body().FnCall("scale", NewNum(2), NewStr("k"))
	helper.Body().Return(NewFloat(1))
	program.AddFunction(helper)

	expected := `#include <iostream>

double scale(int x, std::string s);

int main() {
    scale(2, "k");
}

double scale(int x, std::string s) {
    return 1.0;
}
`
	assert.Equal(t, expected, Print(program))
	assert.Len(t, program.Prototypes(), 1)
}

func TestExprRendering(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	tests := []struct {
		expr     Expr
		expected string
	}{
		{NewNum(-7), "-7"},
		{NewBigNum(huge), "123456789012345678901234567890"},
		{NewFloat(2), "2.0"},
		{NewFloat(0.25), "0.25"},
		{NewStr("a\"b\\c\n"), `"a\"b\\c\n"`},
		{NewUnOp("-", NewNum(-1)), "-(-1)"},
		{NewUnOp("-", NewUnOp("-", NewIdent("x"))), "-(-x)"},
		{NewUnOp("!", NewIdent("done")), "!done"},
		{NewCall("f", NewNum(1), NewIdent("y")), "f(1, y)"},
		{BraceList([]Expr{NewNum(1), NewNum(2)}), "{1, 2}"},
		{NewUnsupported("print of list"), "/* unsupported: print of list */"},
		{NewBinOp(NewBinOp(NewNum(1), "+", NewNum(2)), "*", NewNum(3)), "((1 + 2) * 3)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.expr.String())
	}
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "std::vector<std::vector<int>>", Vector(Vector(Int)).String())
	assert.Equal(t, "std::string", String.String())
}
