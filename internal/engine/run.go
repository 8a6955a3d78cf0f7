package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/declcheck/pkg/ast"
	"github.com/leapstack-labs/declcheck/pkg/check"
	"github.com/leapstack-labs/declcheck/pkg/format"
	"golang.org/x/sync/errgroup"
)

// Stage names the pipeline step a run reached.
type Stage string

// Stage constants in pipeline order.
const (
	StageParse  Stage = "parse"
	StageCheck  Stage = "check"
	StageRender Stage = "render"
	StageDone   Stage = "done"
)

// Options selects which passes run after parsing.
type Options struct {
	Check  bool // run the declare-before-use checker
	Render bool // render the transcript
}

// Result is the outcome of one run.
type Result struct {
	RunID      string
	Path       string
	Stage      Stage // last stage attempted; StageDone on success
	Tree       *ast.Node
	Transcript string
	Symbols    []string // declared names in first-declaration order
	Err        error
	Duration   time.Duration
}

// Failed reports whether the run stopped on an error.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// RunFile opens path and runs the pipeline over it.
func (e *Engine) RunFile(ctx context.Context, path string, opts Options) *Result {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		res := &Result{RunID: uuid.New().String(), Path: path, Stage: StageParse}
		res.Err = fmt.Errorf("failed to open %s: %w", path, err)
		e.logResult(res)
		return res
	}
	defer func() { _ = f.Close() }()

	return e.Run(ctx, path, f, opts)
}

// Run executes the pipeline over one source stream. name labels the result.
// The checker and printer only run when parsing succeeded, and the printer
// only runs when checking (if requested) succeeded.
func (e *Engine) Run(ctx context.Context, name string, r io.Reader, opts Options) *Result {
	start := time.Now()
	res := &Result{RunID: uuid.New().String(), Path: name, Stage: StageParse}
	logger := e.logger.With("run_id", res.RunID, "path", name)

	defer func() {
		res.Duration = time.Since(start)
		e.logResult(res)
	}()

	root, err := e.parser.Parse(r)
	if err != nil {
		res.Err = err
		return res
	}
	res.Tree = root

	if opts.Check {
		res.Stage = StageCheck
		c := check.New(check.WithLogger(logger))
		if err := c.Check(ctx, root); err != nil {
			res.Err = err
			return res
		}
		res.Symbols = c.Table().Names()
	}

	if opts.Render {
		res.Stage = StageRender
		res.Transcript = format.RenderWithOptions(root, format.Options{Indent: e.indent})
	}

	res.Stage = StageDone
	return res
}

// RunFiles runs the pipeline over every path, at most Jobs at a time.
// Results are returned in input order. Per-file failures are reported in the
// results; the returned error is only set when ctx is cancelled.
func (e *Engine) RunFiles(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.RunFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) logResult(res *Result) {
	attrs := []any{
		"run_id", res.RunID,
		"path", res.Path,
		"stage", string(res.Stage),
		"duration", res.Duration,
	}
	if res.Err != nil {
		e.logger.Debug("run failed", append(attrs, "error", res.Err)...)
		return
	}
	e.logger.Debug("run finished", attrs...)
}
