package reduce

import (
	"github.com/chainscript/evalcore/pkg/env"
	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

// reduceCall implements spec §4.6: left-to-right argument reduction,
// native cost-checked-before-commit, and β-expansion of user calls into
// a right-nested Let chain.
func reduceCall(e *term.Call, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	desc, ok := ctx.LookupFunc(e.Header)
	if !ok {
		return nil, nil, structuralf(ErrUnknownHeader, "%s", e.Header)
	}
	if len(e.Args) != e.Header.Arity {
		return nil, nil, structuralf(ErrArityMismatch, "%s: got %d args", e.Header, len(e.Args))
	}

	argsR, ctx1, allDone, err := reduceArgs(e.Args, ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	if !allDone {
		return term.NewCall(e.Header, argsR), ctx1, nil
	}

	argVals := make([]term.Value, len(argsR))
	for i, a := range argsR {
		argVals[i] = term.AsValue(a)
	}

	switch d := desc.(type) {
	case *registry.Native:
		return reduceNativeCall(e.Header, d, argsR, argVals, ctx1, limit)
	case *registry.User:
		return reduceUserCall(d, argsR, ctx1, limit)
	default:
		return nil, nil, structuralf(ErrUnknownHeader, "unrecognized descriptor kind for %s", e.Header)
	}
}

// reduceArgs reduces args left to right under a threaded context. It
// stops at the first argument whose reduction did not reach a value
// (budget exhaustion), leaving every later argument untouched, per spec
// §4.6 point 2.
func reduceArgs(args []term.Expr, ctx *env.Context, limit uint64) ([]term.Expr, *env.Context, bool, error) {
	out := make([]term.Expr, len(args))
	copy(out, args)
	cur := ctx
	for i, a := range args {
		if cur.Exhausted(limit) {
			return out, cur, false, nil
		}
		r, next, err := Reduce(a, cur, limit)
		if err != nil {
			return nil, nil, false, err
		}
		out[i] = r
		cur = next
		if !term.IsEvaluated(r) {
			return out, cur, false, nil
		}
	}
	return out, cur, true, nil
}

// reduceNativeCall checks the native's cost against the remaining budget
// before committing: an atomic native never partially executes, so if it
// would overshoot, the call is left as a residual and no cost is
// charged (spec §9 Design Notes).
func reduceNativeCall(header term.Header, d *registry.Native, argsR []term.Expr, argVals []term.Value, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	cost, err := d.Cost(ctx.Version())
	if err != nil {
		return nil, nil, err
	}
	if ctx.Cost()+cost > limit {
		return term.NewCall(header, argsR), ctx, nil
	}
	result, implErr := d.Impl(argVals)
	if implErr != nil {
		return nil, nil, &HostError{Header: header, Cost: ctx.Cost(), Err: implErr}
	}
	return term.NewEvaluated(result), ctx.WithCost(cost), nil
}

// reduceUserCall β-expands a user call into a right-nested Let chain and
// reduces it under the caller's environment, then propagates only cost
// back to the caller — a user-function body never leaks bindings into
// the caller's scope (spec §4.6 point 3, "User").
func reduceUserCall(d *registry.User, argsR []term.Expr, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	expanded := betaExpand(d.Params, argsR, d.Body)
	result, innerCtx, err := Reduce(expanded, ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	return result, ctx.WithAbsoluteCost(innerCtx.Cost()), nil
}

func betaExpand(params []string, args []term.Expr, body term.Expr) term.Expr {
	if len(params) == 0 {
		return body
	}
	return term.NewLet(params[0], args[0], betaExpand(params[1:], args[1:], body))
}
