package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestREPLTokens(t *testing.T) {
	code, stdout, stderr := runWith(t, "1 +2\n", "--mode", "tokens")
	require.Equal(t, 0, code)
	require.Empty(t, stderr)
	require.Equal(t, "NumberToken 1\nWhiteSpaceToken  \nPlusToken +\nNumberToken 2\n", stdout)
}

func TestREPLStopsAtEmptyLine(t *testing.T) {
	code, stdout, _ := runWith(t, "1\n\n2\n")
	require.Equal(t, 0, code)
	require.Equal(t, "NumberToken 1\n", stdout)
}

func TestREPLTreeContinuesAfterError(t *testing.T) {
	code, stdout, stderr := runWith(t, "(1+2\n1+2*3\n", "-m", "tree")
	require.Equal(t, 0, code)
	require.Equal(t, "(+ 1 (* 2 3))\n", stdout)
	require.Contains(t, stderr, "expected closing parenthesis")
}

func TestREPLEval(t *testing.T) {
	code, stdout, stderr := runWith(t, "(1+2)*3\n1/0\n7-2-1\n", "-m", "eval")
	require.Equal(t, 0, code)
	require.Equal(t, "9\n4\n", stdout)
	require.Contains(t, stderr, "ZeroDivisionError")
}

func TestREPLLongLine(t *testing.T) {
	long := strings.Repeat("1+", 40000) + "1"
	code, stdout, stderr := runWith(t, long+"\n2*3\n(1+\r\n4", "-m", "eval")
	require.Equal(t, 0, code)
	require.Equal(t, "40001\n6\n4\n", stdout)
	require.Contains(t, stderr, "error: ")
}

func TestREPLEvalJSON(t *testing.T) {
	code, stdout, _ := runWith(t, "2*21\n", "-m", "eval", "--json")
	require.Equal(t, 0, code)
	require.JSONEq(t, `{"source": "2*21", "value": 42}`, stdout)
}

func TestBatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"expressions": ["1+1", {"source": "2*3", "expect": 6}]}`), 0o644))

	code, stdout, _ := runWith(t, "", "-f", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"sexpr": "(+ 1 1)"`)
	require.Contains(t, stdout, `"value": 6`)

	require.NoError(t, os.WriteFile(path, []byte(`{"expressions": ["1+"]}`), 0o644))
	code, _, _ = runWith(t, "", "-f", path)
	require.Equal(t, 1, code)
}

func TestUnsupportedBatchFile(t *testing.T) {
	code, _, _ := runWith(t, "", "-f", "batch.txt")
	require.Equal(t, 1, code)
}
