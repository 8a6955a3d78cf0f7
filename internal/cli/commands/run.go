package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/leapstack-labs/declcheck/internal/engine"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Parse, check and print one or more tree files",
		Long: `Run the full front end over each file: parse the tree description, check
that every variable is declared before it is used, then print the tree.

Files are processed concurrently (see --jobs) and reported in argument order.
The command fails if any file fails to parse or check.`,
		Example: `  # Check and print a single program
  declcheck run program.yaml

  # Process several files, four at a time
  declcheck run --jobs 4 a.yaml b.yaml c.yaml

  # Re-run whenever an input changes
  declcheck run --watch program.yaml

  # JSON output for CI/CD integration
  declcheck run -o json program.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when an input file changes")
	cmd.Flags().IntP("jobs", "j", 0, "Files processed concurrently (0 = number of CPUs)")
	cmd.Flags().Duration("debounce", engine.DefaultDebounce, "Quiet period after a change before re-running in watch mode")

	return cmd
}

func runRun(cmd *cobra.Command, paths []string, opts *RunOptions) error {
	cc := NewCommandContext(cmd)
	runOpts := engine.Options{Check: true, Render: true}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cc.Engine.Watch(ctx, paths, engine.WatchOptions{
			Options:  runOpts,
			Debounce: cc.Cfg.WatchDebounce,
		}, func(results []*engine.Result) {
			if err := emitRun(cc.Renderer, results); err != nil {
				cc.Logger.Error("failed to write results", "error", err)
			}
		})
	}

	results, err := cc.Engine.RunFiles(cmd.Context(), paths, runOpts)
	if err != nil {
		return err
	}
	if err := emitRun(cc.Renderer, results); err != nil {
		return err
	}
	return failure(results)
}

func emitRun(r *output.Renderer, results []*engine.Result) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return writeJSON(r, results)
	case output.ModeMarkdown:
		for _, res := range results {
			emitRunMarkdown(r, res)
		}
	default:
		for _, res := range results {
			emitRunText(r, res)
		}
	}
	return nil
}

func emitRunText(r *output.Renderer, res *engine.Result) {
	s := r.Styles()
	r.Printf("Parsing %s...\n", s.Path.Render(res.Path))

	switch {
	case isParseFailure(res):
		r.Println(s.Error.Render("Parsing Failed."))
		r.Errorln(describeFailure(res.Err))
	case res.Failed():
		r.Println(s.Error.Render("Check Failed."))
		r.Errorln(describeFailure(res.Err))
	default:
		r.Println(s.Success.Render("Parsing Successful! AST Structure:"))
		r.Println(ruleLine)
		r.Print(res.Transcript)
		r.Println(ruleLine)
	}
}

func emitRunMarkdown(r *output.Renderer, res *engine.Result) {
	r.Println(output.FormatHeader(2, res.Path))
	r.Println()

	switch {
	case isParseFailure(res):
		r.Printf("**Parsing Failed:** %s\n\n", describeFailure(res.Err))
	case res.Failed():
		r.Printf("**Check Failed:** %s\n\n", describeFailure(res.Err))
	default:
		r.Println(output.FormatCodeBlock("text", res.Transcript))
		r.Println()
	}
}
