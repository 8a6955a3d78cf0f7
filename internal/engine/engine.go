// Package engine runs the front-end pipeline over tree documents.
// A run parses one document, checks declare-before-use and renders the
// transcript. Every run owns its tree and symbol table, so runs over
// different files are independent and may execute concurrently.
package engine

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/leapstack-labs/declcheck/pkg/ast"
	"github.com/leapstack-labs/declcheck/pkg/format"
	"github.com/leapstack-labs/declcheck/pkg/treefile"
)

// Parser is the external front end: it turns a source stream into a tree or
// fails.
type Parser interface {
	Parse(r io.Reader) (*ast.Node, error)
}

// Engine sequences parse, check and render.
type Engine struct {
	parser Parser
	indent string
	jobs   int
	logger *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Parser builds trees from input (default: treefile parser)
	Parser Parser
	// Indent is the transcript indentation unit (default: two spaces)
	Indent string
	// Jobs limits concurrent runs in RunFiles (0 = GOMAXPROCS)
	Jobs int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	parser := cfg.Parser
	if parser == nil {
		parser = treefile.NewParser()
	}

	indent := cfg.Indent
	if indent == "" {
		indent = format.DefaultIndent
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	logger.Debug("initializing engine", "jobs", jobs)

	return &Engine{
		parser: parser,
		indent: indent,
		jobs:   jobs,
		logger: logger,
	}
}
