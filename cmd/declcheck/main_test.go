// Package main provides tests for the declcheck CLI.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/declcheck/internal/cli"
	"github.com/leapstack-labs/declcheck/internal/cli/commands"
	"github.com/leapstack-labs/declcheck/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "declcheck v"+cli.Version)
}

func TestHelpCommand(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"run", "check", "print", "symbols", "version", "completion"} {
		assert.Contains(t, out, expected)
	}
}

func TestRunThroughRoot(t *testing.T) {
	dir := testutil.SetupTrees(t)
	declared := filepath.Join(dir, "declared.yaml")

	out, _, err := execute(t, "run", "-o", "text", declared)
	require.NoError(t, err)
	assert.Contains(t, out, "Parsing "+declared+"...")
	assert.Contains(t, out, "Parsing Successful! AST Structure:")
	assert.Contains(t, out, "  ASSIGN: x\n    NUM: 6\n")
}

func TestRunFailureExitsWithError(t *testing.T) {
	dir := testutil.SetupTrees(t)

	_, _, err := execute(t, "run", "-o", "text", filepath.Join(dir, "undeclared.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrFilesFailed))
}

func TestRunWithJobs(t *testing.T) {
	dir := testutil.SetupTrees(t)
	paths := []string{
		filepath.Join(dir, "declared.yaml"),
		filepath.Join(dir, "undeclared.yaml"),
		filepath.Join(dir, "malformed.yaml"),
	}

	args := append([]string{"run", "-o", "json", "--jobs", "1"}, paths...)
	out, _, err := execute(t, args...)
	require.Error(t, err)

	var results []commands.ResultJSON
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, len(paths))
	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
	}
}

func TestConfigFileIndent(t *testing.T) {
	dir := testutil.SetupTrees(t)
	cfgPath := testutil.WriteTree(t, dir, "declcheck.yaml", "indent: \"....\"\noutput: text\n")

	out, _, err := execute(t, "print", "--config", cfgPath, filepath.Join(dir, "declared.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "BLOCK\n....DECL: x\n........NUM: 5\n....ASSIGN: x\n........NUM: 6\n", out)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	dir := testutil.SetupTrees(t)
	cfgPath := testutil.WriteTree(t, dir, "declcheck.yaml", "output: text\n")
	t.Setenv("DECLCHECK_OUTPUT", "json")

	out, _, err := execute(t, "symbols", "--config", cfgPath, filepath.Join(dir, "declared.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "expected JSON output, got: %s", out)
}

func TestFlagOverridesEnv(t *testing.T) {
	dir := testutil.SetupTrees(t)
	t.Setenv("DECLCHECK_OUTPUT", "json")

	out, _, err := execute(t, "check", "-o", "text", filepath.Join(dir, "declared.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok "), "expected text output, got: %s", out)
}

func TestInvalidOutputFlag(t *testing.T) {
	dir := testutil.SetupTrees(t)

	_, _, err := execute(t, "check", "-o", "yaml", filepath.Join(dir, "declared.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestVerboseLogsToStderr(t *testing.T) {
	dir := testutil.SetupTrees(t)

	out, errOut, err := execute(t, "check", "-v", "-o", "text", filepath.Join(dir, "declared.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, out, "level=")
	assert.Contains(t, errOut, "msg=declare")
	assert.Contains(t, errOut, "run_id=")
	assert.Contains(t, errOut, `msg="run finished"`)
}

func TestDefaultLevelKeepsStderrQuiet(t *testing.T) {
	dir := testutil.SetupTrees(t)

	out, errOut, err := execute(t, "run", "-o", "text", filepath.Join(dir, "declared.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Parsing Successful!")
	assert.Empty(t, errOut)
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "declcheck")
}
