package commands

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/leapstack-labs/declcheck/internal/engine"
	"github.com/spf13/cobra"
)

// SymbolsJSON is the JSON shape of the symbols command.
type SymbolsJSON struct {
	Path    string   `json:"path"`
	Symbols []string `json:"symbols"`
}

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols <file>",
		Short: "List declared variables in declaration order",
		Long: `Check a tree file and list every declared variable in the order of its first
declaration. Redeclarations are listed once.`,
		Example: `  # List declarations
  declcheck symbols program.yaml

  # As JSON
  declcheck symbols -o json program.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(cmd, args[0])
		},
	}

	return cmd
}

func runSymbols(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)
	res := cc.Engine.RunFile(cmd.Context(), path, engine.Options{Check: true})
	if res.Failed() {
		return res.Err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		symbols := res.Symbols
		if symbols == nil {
			symbols = []string{}
		}
		return r.JSON(SymbolsJSON{Path: path, Symbols: symbols})
	}

	if len(res.Symbols) == 0 {
		r.Println(r.Styles().Muted.Render("No declarations."))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"#", "Name"})
	for i, name := range res.Symbols {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), name})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return nil
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
