// Package scenario decodes a YAML-encoded expression/environment/limit
// triple into the term.Expr/env.Context/limit values evaluator.Evaluate
// needs. It exists for fixtures and for cmd/evalcli; package reduce and
// package evaluator never import it and have no notion of YAML.
//
// The decoder walks an untyped YAML document and switches on a "kind"
// tag, the same shape as the teacher's fixtures_decode_node.go, which
// decodes an untyped JSON node tree into ast.Node by switching on a
// "type" tag.
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chainscript/evalcore/pkg/env"
	"github.com/chainscript/evalcore/pkg/evaluator"
	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

// Scenario is a fully-decoded, ready-to-evaluate fixture: an expression,
// an initial environment, and the budget to run it under.
type Scenario struct {
	Version registry.StdLibVersion
	Limit   uint64
	Expr    term.Expr
	Ctx     *env.Context
}

type rawFunc struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params"`
	Body   any      `yaml:"body"`
}

type rawDoc struct {
	Version string         `yaml:"version"`
	Limit   uint64         `yaml:"limit"`
	Lets    map[string]any `yaml:"lets"`
	Funcs   []rawFunc      `yaml:"funcs"`
	Expr    any            `yaml:"expr"`
}

// Load reads and decodes a scenario file. natives is the catalog of
// native descriptors (e.g. nativefn.All()) the scenario's expression may
// call; the scenario file itself can only declare user functions, since
// a native's Go implementation can't be expressed in YAML.
func Load(path string, natives []registry.Descriptor) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	defer f.Close()
	return Decode(f, natives)
}

// Decode decodes a scenario document from r.
func Decode(r io.Reader, natives []registry.Descriptor) (*Scenario, error) {
	var doc rawDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}

	version := registry.StdLibVersion(doc.Version)

	values := make(map[string]term.Value, len(doc.Lets))
	for name, raw := range doc.Lets {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, fmt.Errorf("lets.%s: %w", name, err)
		}
		if !term.IsEvaluated(e) {
			return nil, fmt.Errorf("lets.%s: must be a literal value, not a redex", name)
		}
		values[name] = term.AsValue(e)
	}

	funcs := append([]registry.Descriptor{}, natives...)
	for _, rf := range doc.Funcs {
		body, err := decodeExpr(rf.Body)
		if err != nil {
			return nil, fmt.Errorf("funcs.%s: %w", rf.Name, err)
		}
		hdr := term.NewHeader(rf.Name, len(rf.Params))
		funcs = append(funcs, registry.NewUser(hdr, rf.Params, body))
	}

	ctx := evaluator.NewContext(version, values, funcs)

	expr, err := decodeExpr(doc.Expr)
	if err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}

	return &Scenario{Version: version, Limit: doc.Limit, Expr: expr, Ctx: ctx}, nil
}
