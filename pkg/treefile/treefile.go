// Package treefile reads program trees from YAML (or JSON) documents.
//
// It stands in for the toy language's grammar: a front end, test or tool
// describes the tree it produced and this package assembles it through the
// ast constructors. A document holds one node. Every node is a mapping whose
// kind key carries the payload:
//
//	block:
//	  - decl: x
//	    init: {num: 5}
//	  - assign: x
//	    value: {binop: "+", left: {var: x}, right: {num: 1}}
//	  - if: {var: x}
//	    then: {block: [{var: x}]}
//	    else: {block: []}
//	  - while: {var: x}
//	    body: {block: []}
//
// Line and column of each mapping become the node's span.
package treefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leapstack-labs/declcheck/pkg/ast"
	"github.com/leapstack-labs/declcheck/pkg/token"
	"gopkg.in/yaml.v3"
)

// Kind keys.
const (
	keyNum    = "num"
	keyVar    = "var"
	keyDecl   = "decl"
	keyAssign = "assign"
	keyBinOp  = "binop"
	keyIf     = "if"
	keyWhile  = "while"
	keyBlock  = "block"
)

// kindFields lists the extra fields each kind accepts and whether they are
// required.
var kindFields = map[string]map[string]bool{
	keyNum:    {},
	keyVar:    {},
	keyDecl:   {"init": false},
	keyAssign: {"value": true},
	keyBinOp:  {"left": true, "right": true},
	keyIf:     {"then": true, "else": false},
	keyWhile:  {"body": true},
	keyBlock:  {},
}

var kindKeys = []string{keyNum, keyVar, keyDecl, keyAssign, keyBinOp, keyIf, keyWhile, keyBlock}

// Parser decodes tree documents.
type Parser struct{}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads one document from r and builds its tree. Failures are returned
// as *ParseError.
func (p *Parser) Parse(r io.Reader) (*ast.Node, error) {
	dec := yaml.NewDecoder(r)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Message: ErrEmptyDocument}
		}
		return nil, &ParseError{Message: err.Error()}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Pos: position(&extra), Message: ErrMultipleDocs}
	}

	if len(doc.Content) == 0 {
		return nil, &ParseError{Message: ErrEmptyDocument}
	}
	return buildNode(doc.Content[0])
}

// ParseString parses a document held in memory.
func (p *Parser) ParseString(src string) (*ast.Node, error) {
	return p.Parse(strings.NewReader(src))
}

// ParseFile opens and parses the document at path.
func (p *Parser) ParseFile(path string) (*ast.Node, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f)
}

func position(n *yaml.Node) token.Position {
	return token.Position{Line: n.Line, Column: n.Column}
}

func errorf(n *yaml.Node, format string, args ...any) *ParseError {
	return &ParseError{Pos: position(n), Message: fmt.Sprintf(format, args...)}
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar " + strconv.Quote(n.Value)
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// buildNode converts one node mapping.
func buildNode(n *yaml.Node) (*ast.Node, error) {
	if n.Kind == yaml.AliasNode {
		// Aliases would share subtrees, which the tree model forbids.
		return nil, errorf(n, ErrExpectedMapping, describe(n))
	}
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, ErrExpectedMapping, describe(n))
	}

	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	kind := ""
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if _, dup := fields[key]; dup {
			return nil, errorf(n.Content[i], ErrDuplicateField, key)
		}
		fields[key] = val
		if _, ok := kindFields[key]; ok {
			if kind != "" {
				return nil, errorf(n.Content[i], ErrManyKinds, kind, key)
			}
			kind = key
		}
	}
	if kind == "" {
		return nil, errorf(n, ErrNoKind, strings.Join(kindKeys, ", "))
	}

	allowed := kindFields[kind]
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if key == kind {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return nil, errorf(n.Content[i], ErrUnknownField, key, kind)
		}
	}
	for field, required := range allowed {
		if _, ok := fields[field]; required && !ok {
			return nil, errorf(n, ErrMissingField, kind, field)
		}
	}

	node, err := buildKind(kind, fields)
	if err != nil {
		return nil, err
	}
	return node.WithSpan(token.Span{Start: position(n), End: position(n)}), nil
}

func buildKind(kind string, fields map[string]*yaml.Node) (*ast.Node, error) {
	payload := fields[kind]

	switch kind {
	case keyNum:
		if payload.Kind != yaml.ScalarNode {
			return nil, errorf(payload, ErrBadScalar, keyNum)
		}
		v, err := strconv.Atoi(payload.Value)
		if err != nil {
			return nil, errorf(payload, ErrBadInteger, payload.Value)
		}
		return ast.NewNum(v), nil

	case keyVar:
		name, err := scalar(payload, keyVar)
		if err != nil {
			return nil, err
		}
		return ast.NewVar(name), nil

	case keyDecl:
		name, err := scalar(payload, keyDecl)
		if err != nil {
			return nil, err
		}
		init, err := optional(fields, "init")
		if err != nil {
			return nil, err
		}
		return ast.NewVarDecl(name, init), nil

	case keyAssign:
		name, err := scalar(payload, keyAssign)
		if err != nil {
			return nil, err
		}
		value, err := buildNode(fields["value"])
		if err != nil {
			return nil, err
		}
		return ast.NewAssign(name, value), nil

	case keyBinOp:
		op, err := scalar(payload, keyBinOp)
		if err != nil {
			return nil, err
		}
		left, err := buildNode(fields["left"])
		if err != nil {
			return nil, err
		}
		right, err := buildNode(fields["right"])
		if err != nil {
			return nil, err
		}
		return ast.NewBinOp(op, left, right), nil

	case keyIf:
		cond, err := buildNode(payload)
		if err != nil {
			return nil, err
		}
		then, err := buildNode(fields["then"])
		if err != nil {
			return nil, err
		}
		els, err := optional(fields, "else")
		if err != nil {
			return nil, err
		}
		return ast.NewIf(cond, then, els), nil

	case keyWhile:
		cond, err := buildNode(payload)
		if err != nil {
			return nil, err
		}
		body, err := buildNode(fields["body"])
		if err != nil {
			return nil, err
		}
		return ast.NewWhile(cond, body), nil

	case keyBlock:
		stmts, err := buildStatements(payload)
		if err != nil {
			return nil, err
		}
		return ast.NewBlock(ast.Chain(stmts...)), nil
	}

	return nil, fmt.Errorf("unhandled kind %q", kind)
}

func buildStatements(seq *yaml.Node) ([]*ast.Node, error) {
	// `block:` with no value decodes as a null scalar: an empty block.
	if seq.Kind == yaml.ScalarNode && seq.Tag == "!!null" {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, errorf(seq, ErrExpectedList, describe(seq))
	}
	stmts := make([]*ast.Node, 0, len(seq.Content))
	for _, item := range seq.Content {
		s, err := buildNode(item)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func optional(fields map[string]*yaml.Node, name string) (*ast.Node, error) {
	n, ok := fields[name]
	if !ok || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil, nil
	}
	return buildNode(n)
}

func scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" || n.Tag == "!!null" {
		return "", errorf(n, ErrBadScalar, what)
	}
	return n.Value, nil
}
