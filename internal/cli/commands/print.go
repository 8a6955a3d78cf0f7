package commands

import (
	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/leapstack-labs/declcheck/internal/engine"
	"github.com/spf13/cobra"
)

// NewPrintCommand creates the print command.
func NewPrintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Print the indented tree of a file without checking it",
		Long: `Parse a tree file and print its indented transcript. The declare-before-use
check is skipped, so trees with undeclared variables still print.
The indentation unit comes from the indent setting (two spaces by default).`,
		Example: `  # Print a tree
  declcheck print program.yaml

  # Print as a markdown code block
  declcheck print -o markdown program.yaml`,
		Aliases: []string{"render"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, args[0])
		},
	}

	return cmd
}

func runPrint(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)
	res := cc.Engine.RunFile(cmd.Context(), path, engine.Options{Render: true})
	r := cc.Renderer

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := writeJSON(r, []*engine.Result{res}); err != nil {
			return err
		}
	case output.ModeMarkdown:
		if !res.Failed() {
			r.Println(output.FormatCodeBlock("text", res.Transcript))
		}
	default:
		if !res.Failed() {
			r.Print(res.Transcript)
		}
	}

	if res.Failed() {
		return res.Err
	}
	return nil
}
