package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageWithoutArguments(t *testing.T) {
	code, stdout, stderr := runCLI()
	assert.Equal(t, 0, code)
	assert.Equal(t, "Usage: calc expression\n", stdout)
	assert.Empty(t, stderr)
}

func TestEvaluatesExpression(t *testing.T) {
	tests := []struct {
		expression string
		expected   string
	}{
		{"1 + 2", "3\n"},
		{"2+3*4", "14\n"},
		{"2^3^2", "64\n"},
		{"1.5+1.25", "2.75\n"},
		{"1/0", "+Inf\n"},
		{"-(2+3)", "-5\n"},
		{"-2*3", "-6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			code, stdout, stderr := runCLI(tt.expression)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.expected, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestSyntaxErrorExitsWithStatusOne(t *testing.T) {
	code, stdout, stderr := runCLI("2(3)")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: Syntax: Unexpected open parenthesis.\n", stderr)

	code, _, stderr = runCLI("+1")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Syntax.\n", stderr)
}

func TestLenientFlag(t *testing.T) {
	code, _, stderr := runCLI("(1+2))")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Syntax: Unexpected trailing input.\n", stderr)

	code, stdout, _ := runCLI("--lenient", "(1+2))")
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout)
}

func TestASTFlag(t *testing.T) {
	code, stdout, _ := runCLI("--ast", "2+3*4")
	assert.Equal(t, 0, code)
	assert.Equal(t, "(2 + (3 * 4))\n", stdout)
}

func TestExplainFlag(t *testing.T) {
	code, _, stderr := runCLI("--explain", "(1+2")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: Syntax: Expected closed parenthesis.\n")
	assert.Contains(t, stderr, "error[E0103]")
	assert.Contains(t, stderr, "<expression>:1:5")
	assert.Contains(t, stderr, "(1+2)")
}

func TestTooManyArguments(t *testing.T) {
	code, stdout, stderr := runCLI("1", "2")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: ")
}

func TestWorksheetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.calc")
	require.NoError(t, os.WriteFile(path, []byte("# totals\n1+2\n2*(3+4)\n"), 0o644))

	code, stdout, stderr := runCLI("--file", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "2: 3\n3: 14\n", stdout)
	assert.Empty(t, stderr)
}

func TestWorksheetFileWithErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.calc")
	require.NoError(t, os.WriteFile(path, []byte("1+2\n1..2\n"), 0o644))

	code, stdout, stderr := runCLI("-f", path)
	assert.Equal(t, 1, code)
	assert.Equal(t, "1: 3\n", stdout)
	assert.Contains(t, stderr, "error[E0100]")
	assert.Contains(t, stderr, "sheet.calc:2:3")
}

func TestWorksheetMissingFile(t *testing.T) {
	code, _, stderr := runCLI("-f", filepath.Join(t.TempDir(), "missing.calc"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: failed to read worksheet")
}

func TestWatchRequiresFile(t *testing.T) {
	code, _, stderr := runCLI("--watch")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: --watch requires --file.\n", stderr)
}

func TestNormalizeArgs(t *testing.T) {
	assert.Equal(t, []string{"--", "-2*3"}, normalizeArgs([]string{"-2*3"}))
	assert.Equal(t, []string{"--lenient", "--", "-(1))"}, normalizeArgs([]string{"--lenient", "-(1))"}))
	assert.Equal(t, []string{"--ast", "1+2"}, normalizeArgs([]string{"--ast", "1+2"}))
	assert.Equal(t, []string{"--", "-1"}, normalizeArgs([]string{"--", "-1"}))
	assert.Equal(t, []string{"-v", "1"}, normalizeArgs([]string{"-v", "1"}))
}
