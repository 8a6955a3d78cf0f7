// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/declcheck/internal/cli/config"
	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// Tree fixtures shared by command tests.
const (
	// DeclaredTree declares x, then assigns it.
	DeclaredTree = `block:
  - decl: x
    init: {num: 5}
  - assign: x
    value: {num: 6}
`
	// UndeclaredTree uses y without declaring it.
	UndeclaredTree = `block:
  - decl: x
    init: {num: 1}
  - assign: y
    value: {var: x}
`
	// MalformedTree is not a valid tree description.
	MalformedTree = `block:
  - loop: forever
`
)

// WriteTree writes content to name inside dir and returns its path.
func WriteTree(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// SetupTrees creates a temporary directory holding one file per fixture:
// declared.yaml, undeclared.yaml and malformed.yaml.
func SetupTrees(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteTree(t, dir, "declared.yaml", DeclaredTree)
	WriteTree(t, dir, "undeclared.yaml", UndeclaredTree)
	WriteTree(t, dir, "malformed.yaml", MalformedTree)
	return dir
}

// CommandResult holds the captured output of an executed command.
type CommandResult struct {
	Out    string
	ErrOut string
	Err    error
}

// ExecuteCommand runs cmd with args and cfg stored in its context, capturing
// stdout and stderr. A nil cfg uses the defaults. Usage and error printing
// are silenced as under the root command.
func ExecuteCommand(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) CommandResult {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	cmd.SetContext(config.WithConfig(context.Background(), cfg))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	return CommandResult{Out: out.String(), ErrOut: errOut.String(), Err: err}
}

// ConfigWithOutput returns the default config with the given output mode.
func ConfigWithOutput(mode output.Mode) *config.Config {
	cfg := config.Default()
	cfg.OutputFormat = string(mode)
	return cfg
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and empty headers.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
