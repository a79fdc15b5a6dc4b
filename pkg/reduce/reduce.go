// Package reduce implements the reducer of spec §4.2: the recursive step
// function that dispatches on node kind, honors the cost budget, and
// produces (residual expression, new environment). Dispatch is by the
// outermost constructor of expr, mirroring the teacher's
// evaluateExpression type switch in pkg/interpreter/interpreter.go.
package reduce

import (
	"fmt"

	"github.com/chainscript/evalcore/pkg/env"
	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

// Reduce is reduce(expr, env) → (expr', env') from spec §4.2, with an
// error return for the structural/host failures of spec §7 — those abort
// the whole evaluation rather than producing a residual.
//
// When ctx is already exhausted on entry, Reduce returns (expr, ctx)
// unchanged, satisfying guarantee 1 (cost never decreases) trivially.
func Reduce(expr term.Expr, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	if ctx.Exhausted(limit) {
		return expr, ctx, nil
	}

	switch e := expr.(type) {
	case *term.Evaluated:
		return e, ctx, nil
	case *term.Let:
		return reduceLet(e.Name, e.Value, e.Body, ctx, limit)
	case *term.Block:
		switch d := e.Decl.(type) {
		case *term.Let:
			return reduceLet(d.Name, d.Value, e.Body, ctx, limit)
		case *term.Func:
			return reduceFuncBlock(d, e.Body, ctx, limit)
		default:
			return nil, nil, fmt.Errorf("reduce: block with unsupported decl %T", e.Decl)
		}
	case *term.Ref:
		return reduceRef(e.Name, ctx, limit)
	case *term.If:
		return reduceIf(e, ctx, limit)
	case *term.Call:
		return reduceCall(e, ctx, limit)
	case *term.Getter:
		return reduceGetter(e, ctx, limit)
	default:
		return nil, nil, fmt.Errorf("reduce: unsupported expr kind %T", expr)
	}
}

// reduceLet implements spec §4.3's Let/Block(Let) case.
func reduceLet(name string, value, body term.Expr, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	ctx1 := ctx.WithLet(name, value, false)

	bodyR, ctx2, err := Reduce(body, ctx1, limit)
	if err != nil {
		return nil, nil, err
	}

	if term.IsEvaluated(bodyR) {
		return bodyR, ctx2, nil
	}

	binding, ok := ctx2.Lookup(name)
	if !ok {
		// body's own reduction never touched name's binding slot; reuse
		// the original value expression unchanged.
		binding = env.Binding{ValueExpr: value}
	}
	return term.NewBlock(term.NewLetDecl(name, binding.ValueExpr), bodyR), ctx2, nil
}

// reduceFuncBlock implements spec §4.3's Block(Func) case.
func reduceFuncBlock(decl *term.Func, body term.Expr, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	header := term.NewHeader(decl.Name, len(decl.Params))
	desc := registry.NewUser(header, decl.Params, decl.Body)
	ctx1 := ctx.WithFunction(desc)

	bodyR, ctx2, err := Reduce(body, ctx1, limit)
	if err != nil {
		return nil, nil, err
	}
	if term.IsEvaluated(bodyR) {
		return bodyR, ctx2, nil
	}
	return term.NewBlock(decl, bodyR), ctx2, nil
}

// reduceRef implements spec §4.4. A Ref is lazy and at-most-once forced:
// resolved bindings cost one lookup unit, unresolved ones are forced
// under their captured closure combined with the current scope. Whether
// the lookup unit gets charged is decided by whether forcing left the
// environment exhausted, not by whether the forced expression happens to
// be a value — a native committing its own cost exactly at the remaining
// budget yields an Evaluated forced value under an already-exhausted
// environment, and that case must still be saved back unresolved and
// uncharged, the same as a genuine mid-force residual.
func reduceRef(name string, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	binding, ok := ctx.Lookup(name)
	if !ok {
		return nil, nil, structuralf(ErrUnknownBinding, "%s", name)
	}

	if binding.Resolved {
		return binding.ValueExpr, ctx.WithCost(1), nil
	}

	forceCtx := binding.Captured.Combine(ctx)
	forced, forceResult, err := Reduce(binding.ValueExpr, forceCtx, limit)
	if err != nil {
		return nil, nil, err
	}

	if forceResult.Exhausted(limit) {
		return term.NewRef(name), forceResult.WithLet(name, forced, false), nil
	}
	return forced, forceResult.WithLet(name, forced, true).WithCost(1), nil
}

// reduceIf implements spec §4.5.
func reduceIf(e *term.If, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	condR, ctx1, err := Reduce(e.Cond, ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	if !term.IsEvaluated(condR) {
		return term.NewIf(condR, e.Then, e.Else), ctx1, nil
	}
	if ctx1.Exhausted(limit) {
		return term.NewIf(condR, e.Then, e.Else), ctx1, nil
	}

	v := term.AsValue(condR)
	switch {
	case term.IsTrue(v):
		return Reduce(e.Then, ctx1.WithCost(1), limit)
	case term.IsFalse(v):
		return Reduce(e.Else, ctx1.WithCost(1), limit)
	default:
		return nil, nil, structuralf(ErrNotABool, "got %s", v.ValueKind())
	}
}

// reduceGetter implements spec §4.7.
func reduceGetter(e *term.Getter, ctx *env.Context, limit uint64) (term.Expr, *env.Context, error) {
	objR, ctx1, err := Reduce(e.Obj, ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	if !term.IsEvaluated(objR) {
		return term.NewGetter(objR, e.Field), ctx1, nil
	}

	v := term.AsValue(objR)
	co, ok := v.(*term.CaseObjValue)
	if !ok {
		return nil, nil, structuralf(ErrNotARecord, "got %s", v.ValueKind())
	}
	field, ok := co.Field(e.Field)
	if !ok {
		return nil, nil, structuralf(ErrNoSuchField, "%s.%s", co.TypeName, e.Field)
	}
	return term.NewEvaluated(field), ctx1.WithCost(1), nil
}
