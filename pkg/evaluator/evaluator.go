// Package evaluator is the entry-point component of spec §4.8: a single
// public Evaluate that drives package reduce to a fixpoint or budget
// exhaustion, plus the environment-construction helpers of spec §6.
package evaluator

import (
	"github.com/chainscript/evalcore/pkg/env"
	"github.com/chainscript/evalcore/pkg/reduce"
	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

// Evaluate reduces expr under ctx as far as limit allows and returns the
// residual (or, if the budget wasn't exhausted, the value) together with
// the total cost consumed. A single call to reduce.Reduce already
// recurses to fixpoint or exhaustion, so Evaluate does not loop.
//
// On error the expression is nil and the returned cost is ctx's own cost
// at entry; a *reduce.HostError carries the cost charged before the
// failing native.
func Evaluate(expr term.Expr, ctx *env.Context, limit uint64) (term.Expr, uint64, error) {
	result, resultCtx, err := reduce.Reduce(expr, ctx, limit)
	if err != nil {
		return nil, ctx.Cost(), err
	}
	return result, resultCtx.Cost(), nil
}

// NewContext builds an initial environment from the predeclared
// name→value bindings and header→descriptor functions a caller supplies
// (spec §6's Environment construction API). Predeclared values are
// inserted as already-resolved bindings — they require no forcing.
func NewContext(version registry.StdLibVersion, values map[string]term.Value, funcs []registry.Descriptor) *env.Context {
	ctx := env.New(version)
	for name, v := range values {
		ctx = ctx.WithLet(name, term.NewEvaluated(v), true)
	}
	for _, desc := range funcs {
		ctx = ctx.WithFunction(desc)
	}
	return ctx
}
