package format

import (
	"io"

	"github.com/leapstack-labs/declcheck/pkg/ast"
)

// Options controls rendering.
type Options struct {
	// Indent is repeated once per depth level. Empty means DefaultIndent.
	Indent string
}

// Render returns the transcript of root. A nil root renders as "".
func Render(root *ast.Node) string {
	return RenderWithOptions(root, Options{})
}

// RenderWithOptions is Render with a custom indentation unit.
func RenderWithOptions(root *ast.Node, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	p := newPrinter(opts)
	p.printTree(root)
	return p.String()
}

// Fprint writes the transcript of root to w.
func Fprint(w io.Writer, root *ast.Node) error {
	_, err := io.WriteString(w, Render(root))
	return err
}
