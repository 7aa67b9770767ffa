package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bdl/internal/codegen"
	"bdl/internal/errors"
)

func TestCompile(t *testing.T) {
	result, err := Compile("hello.bdl", "x: int = 5\nprint(x)", codegen.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, result.Program)

	expected := `#include <bits/stdc++.h>

int main() {
    int x = 5;
    std::cout << x << std::endl;
}
`
	assert.Equal(t, expected, result.Output)
	assert.Empty(t, result.Diagnostics)
}

func TestCompileSyntaxError(t *testing.T) {
	result, err := Compile("bad.bdl", "print(1", codegen.DefaultOptions())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Program)
	assert.Empty(t, result.Output)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, errors.ErrorSyntax, result.Diagnostics[0].Code)
	assert.Equal(t, 1, result.Diagnostics[0].Position.Line)
}

func TestCompileReportsScopeErrors(t *testing.T) {
	result, err := Compile("scope.bdl", "y = 3", codegen.DefaultOptions())
	require.ErrorIs(t, err, ErrCompilation)
	assert.True(t, result.HasErrors())
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, errors.ErrorUndeclaredVariable, result.Diagnostics[0].Code)
	assert.NotEmpty(t, result.Output)
}

func TestCompileWarningsDoNotFail(t *testing.T) {
	result, err := Compile("warn.bdl", "xs: list<int> = [1, 2]\nprint(xs)", codegen.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, errors.WarningUnsupported, result.Diagnostics[0].Code)
	assert.Contains(t, result.Output, "/* unsupported: print of list */")
}

func TestCompileInternalError(t *testing.T) {
	result, err := Compile("inv.bdl", "x: int = print(1)", codegen.DefaultOptions())
	require.Error(t, err)

	var inv *codegen.InvariantError
	assert.ErrorAs(t, err, &inv)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, errors.ErrorInternal, result.Diagnostics[0].Code)
	assert.Empty(t, result.Output)
}

func TestCompileHonoursOptions(t *testing.T) {
	opts := codegen.Options{EntryName: "run", Includes: []string{"iostream"}, IndentWidth: 2}
	result, err := Compile("opts.bdl", "print(1)", opts)
	require.NoError(t, err)

	expected := `#include <iostream>

int run() {
  std::cout << 1 << std::endl;
}
`
	assert.Equal(t, expected, result.Output)
}
