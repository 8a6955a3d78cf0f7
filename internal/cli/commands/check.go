package commands

import (
	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/leapstack-labs/declcheck/internal/engine"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that every variable is declared before use",
		Long: `Parse each file and run the declare-before-use check without printing the
tree. Only the first undeclared variable of a file is reported.`,
		Example: `  # Check a program
  declcheck check program.yaml

  # Check every tree in a directory
  declcheck check trees/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Files processed concurrently (0 = number of CPUs)")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string) error {
	cc := NewCommandContext(cmd)

	results, err := cc.Engine.RunFiles(cmd.Context(), paths, engine.Options{Check: true})
	if err != nil {
		return err
	}

	r := cc.Renderer
	s := r.Styles()
	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := writeJSON(r, results); err != nil {
			return err
		}
	case output.ModeMarkdown:
		for _, res := range results {
			if res.Failed() {
				r.Printf("- **FAIL** %s: %s\n", output.FormatInlineCode(res.Path), describeFailure(res.Err))
				continue
			}
			r.Printf("- **ok** %s\n", output.FormatInlineCode(res.Path))
		}
	default:
		for _, res := range results {
			if res.Failed() {
				r.Printf("%s %s: %s\n", s.Error.Render("FAIL"), res.Path, describeFailure(res.Err))
				continue
			}
			r.Printf("%s %s\n", s.Success.Render("ok"), res.Path)
		}
	}

	return failure(results)
}
