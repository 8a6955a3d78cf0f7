package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/declcheck/internal/cli/output"
	"github.com/leapstack-labs/declcheck/internal/engine"
	"github.com/leapstack-labs/declcheck/pkg/check"
	"github.com/leapstack-labs/declcheck/pkg/treefile"
)

// ruleLine frames the transcript in run output.
var ruleLine = strings.Repeat("-", 34)

// ErrFilesFailed is wrapped by the error commands return when at least one
// input failed to parse or check.
var ErrFilesFailed = errors.New("files failed")

// ResultJSON is the JSON shape of one run.
type ResultJSON struct {
	RunID      string     `json:"run_id"`
	Path       string     `json:"path"`
	Stage      string     `json:"stage"`
	OK         bool       `json:"ok"`
	Error      *ErrorJSON `json:"error,omitempty"`
	Symbols    []string   `json:"symbols,omitempty"`
	Transcript string     `json:"transcript,omitempty"`
	DurationMS int64      `json:"duration_ms"`
}

// ErrorJSON describes a failed run.
type ErrorJSON struct {
	Kind       string `json:"kind"` // parse, undeclared or io
	Message    string `json:"message"`
	Identifier string `json:"identifier,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
}

func toResultJSON(res *engine.Result) ResultJSON {
	out := ResultJSON{
		RunID:      res.RunID,
		Path:       res.Path,
		Stage:      string(res.Stage),
		OK:         !res.Failed(),
		Symbols:    res.Symbols,
		Transcript: res.Transcript,
		DurationMS: res.Duration.Milliseconds(),
	}
	if res.Failed() {
		out.Error = toErrorJSON(res.Err)
	}
	return out
}

func toErrorJSON(err error) *ErrorJSON {
	var undeclared *check.UndeclaredVariableError
	if errors.As(err, &undeclared) {
		return &ErrorJSON{
			Kind:       "undeclared",
			Message:    err.Error(),
			Identifier: undeclared.Name,
			Line:       undeclared.Span.Start.Line,
			Column:     undeclared.Span.Start.Column,
		}
	}

	var perr *treefile.ParseError
	if errors.As(err, &perr) {
		return &ErrorJSON{
			Kind:    "parse",
			Message: perr.Message,
			Line:    perr.Pos.Line,
			Column:  perr.Pos.Column,
		}
	}

	return &ErrorJSON{Kind: "io", Message: err.Error()}
}

// writeJSON emits results as one JSON array.
func writeJSON(r *output.Renderer, results []*engine.Result) error {
	out := make([]ResultJSON, 0, len(results))
	for _, res := range results {
		out = append(out, toResultJSON(res))
	}
	return r.JSON(out)
}

// failure returns ErrFilesFailed wrapped with a count when any result failed.
func failure(results []*engine.Result) error {
	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d %w", failed, len(results), ErrFilesFailed)
}

// describeFailure renders the one-line reason a run failed.
func describeFailure(err error) string {
	var undeclared *check.UndeclaredVariableError
	if errors.As(err, &undeclared) {
		return "Semantic error: " + undeclared.Error()
	}
	return err.Error()
}

func isParseFailure(res *engine.Result) bool {
	return res.Failed() && res.Stage == engine.StageParse
}
