package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.bdl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunWritesOutputFile(t *testing.T) {
	path := writeSource(t, "rep 2 { print(\"hi\") }\n")
	out := filepath.Join(t.TempDir(), "prog.cpp")

	require.Equal(t, 0, run([]string{"-o", out, "-include", "iostream, string", path}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#include <iostream>\n#include <string>\n")
	assert.Contains(t, string(data), "while (__rep0 < 2) {")
}

func TestRunFailsOnErrors(t *testing.T) {
	path := writeSource(t, "x = 1\n")
	out := filepath.Join(t.TempDir(), "prog.cpp")

	assert.Equal(t, 1, run([]string{"-o", out, path}))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunUsage(t *testing.T) {
	assert.Equal(t, 2, run([]string{}))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.bdl")}))
}

func TestSplitIncludes(t *testing.T) {
	assert.Equal(t, []string{"a.h", "b.h"}, splitIncludes(" a.h,,b.h "))
	assert.Empty(t, splitIncludes(""))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.50s", formatDuration(1500e6))
	assert.Equal(t, "2.0ms", formatDuration(2e6))
	assert.Equal(t, "12ns", formatDuration(12))
}
