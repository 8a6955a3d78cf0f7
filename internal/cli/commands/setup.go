package commands

import (
	"log/slog"

	"github.com/leapstack-labs/declcheck/internal/cli/config"
	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/leapstack-labs/declcheck/internal/engine"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the config and logger the
// root command stored in cmd's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	eng := engine.New(engine.Config{
		Indent: cfg.Indent,
		Jobs:   cfg.Jobs,
		Logger: logger,
	})

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}
}
