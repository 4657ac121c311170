package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type run struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) run {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, strings.NewReader(stdin), &stdout, &stderr)
	return run{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func decodeJSON(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &out), s)
	return out
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "utilkit", cmd.Use)

	for _, name := range []string{"calc", "format", "tools"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := map[string]string{
		"format":    "text",
		"precision": "2",
		"suffix":    "...",
		"verbose":   "false",
	}
	for name, def := range tests {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, def, flag.DefValue, name)
	}

	format, _, err := cmd.Find([]string{"format"})
	require.NoError(t, err)
	assert.NotNil(t, format.Flags().Lookup("max-length"))
}

func TestInvalidOutputFormat(t *testing.T) {
	r := execute(t, "", "--format", "xml", "calc", "add", "1", "2")
	assert.Equal(t, ExitCommandError, r.code)
	assert.Contains(t, r.stderr, `invalid format "xml"`)
	assert.Empty(t, r.stdout)
}

func TestInvalidConfiguration(t *testing.T) {
	t.Setenv("FORMAT_MAX_LENGTH", "0")

	r := execute(t, "", "format", "reverse", "abc")
	assert.Equal(t, ExitCommandError, r.code)
	assert.Contains(t, r.stderr, "invalid configuration")
}

func TestUnknownCommand(t *testing.T) {
	r := execute(t, "", "evaluate")
	assert.Equal(t, ExitCommandError, r.code)
	assert.Contains(t, r.stderr, "unknown command")
}

func TestTools(t *testing.T) {
	r := execute(t, "", "tools")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Calculator Service")
	assert.Contains(t, r.stdout, "calculator.add")
	assert.Contains(t, r.stdout, "formatter.truncate")
	assert.Contains(t, r.stdout, "text, maxLength?")

	r = execute(t, "", "--format", "json", "tools")
	require.Equal(t, ExitSuccess, r.code, r.stderr)
	out := decodeJSON(t, r.stdout)
	assert.Equal(t, "ok", out["status"])
	assert.Len(t, out["data"], 2)
}
