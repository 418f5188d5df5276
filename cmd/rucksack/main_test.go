package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/supplyrun/internal/cli"
)

const sampleInput = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	code := cli.Execute(context.Background(), cmd, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRucksack_Sample(t *testing.T) {
	code, out, _ := execute(t, "", "--log-format", "json", writeInput(t, sampleInput))
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "157\n", out)
}

func TestRucksack_Stdin(t *testing.T) {
	code, out, _ := execute(t, sampleInput, "--log-format", "json", "-")
	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "157\n", out)
}

func TestRucksack_DebugLogsEachLine(t *testing.T) {
	code, _, logs := execute(t, "", "--log-format", "json", "--log-level", "debug", writeInput(t, sampleInput))
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, 6, strings.Count(logs, `"message":"rucksack scored"`))
	assert.Contains(t, logs, `"item":"p","priority":16`)
}

func TestRucksack_MalformedLine(t *testing.T) {
	textfile := filepath.Join(t.TempDir(), "rucksack.prom")
	code, out, errOut := execute(t, "",
		"--log-format", "json",
		"--metrics-textfile", textfile,
		writeInput(t, "vJrwpWtwJgWrhcsFMMfFFhFp\nabcDEF\n"))

	assert.Equal(t, cli.ExitError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `error: malformed rucksack at line 2 "abcDEF": no_common_item`)

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `supplyrun_malformed_lines_total{program="rucksack",reason="no_common_item"} 1`)
	assert.Contains(t, string(data), `supplyrun_lines_total{program="rucksack"} 1`)
}

func TestRucksack_MissingFile(t *testing.T) {
	code, _, errOut := execute(t, "", "--log-format", "json", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, cli.ExitError, code)
	assert.Contains(t, errOut, "could not obtain input")
}

func TestRucksack_Usage(t *testing.T) {
	code, _, errOut := execute(t, "")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, errOut, "expected 1 input argument(s), got 0")

	code, _, _ = execute(t, "", "--bogus", "x")
	assert.Equal(t, cli.ExitUsage, code)

	code, out, errOut := execute(t, "", "--log-level", "bogus", writeInput(t, sampleInput))
	assert.Equal(t, cli.ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `invalid log level "bogus"`)
}

func TestRucksack_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	textfile := filepath.Join(dir, "from-config.prom")
	cfgPath := filepath.Join(dir, "supplyrun.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  format: json\nmetrics:\n  textfile: "+textfile+"\n"), 0o644))

	code, out, _ := execute(t, "", "--config", cfgPath, writeInput(t, sampleInput))
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "157\n", out)

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `supplyrun_result{program="rucksack"} 157`)
}
