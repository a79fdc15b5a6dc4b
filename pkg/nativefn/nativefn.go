// Package nativefn is a small stand-in for the external standard library
// spec §1 treats as an out-of-scope collaborator: this module only
// consumes a native's header, per-version cost, and pure implementation,
// so this package supplies just enough of those — integer arithmetic,
// equality, and boolean connectives — to exercise and test the reducer
// without claiming to be the real thing.
package nativefn

import (
	"fmt"

	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

func intArgs(args []term.Value, n int) ([]int64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d int args, got %d", n, len(args))
	}
	out := make([]int64, n)
	for i, a := range args {
		iv, ok := a.(term.IntValue)
		if !ok {
			return nil, fmt.Errorf("argument %d: expected Int, got %s", i, a.ValueKind())
		}
		out[i] = int64(iv)
	}
	return out, nil
}

func boolArgs(args []term.Value, n int) ([]bool, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d bool args, got %d", n, len(args))
	}
	out := make([]bool, n)
	for i, a := range args {
		bv, ok := a.(term.BoolValue)
		if !ok {
			return nil, fmt.Errorf("argument %d: expected Bool, got %s", i, a.ValueKind())
		}
		out[i] = bool(bv)
	}
	return out, nil
}

func flatCost(v uint64) map[registry.StdLibVersion]uint64 {
	return map[registry.StdLibVersion]uint64{registry.V1: v, registry.V2: v, registry.V3: v}
}

// Add is binary integer addition, cost 1 at every version — the
// function spec.md §8's worked examples are built around.
func Add() *registry.Native {
	hdr := term.NewHeader("+", 2)
	return registry.NewNative(hdr, flatCost(1), func(args []term.Value) (term.Value, error) {
		a, err := intArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return term.IntValue(a[0] + a[1]), nil
	})
}

// Sub is binary integer subtraction.
func Sub() *registry.Native {
	hdr := term.NewHeader("-", 2)
	return registry.NewNative(hdr, flatCost(1), func(args []term.Value) (term.Value, error) {
		a, err := intArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return term.IntValue(a[0] - a[1]), nil
	})
}

// Mul is binary integer multiplication; it costs more than add/sub from
// V2 onward, the way a real standard library's cost table would
// reprice an operation between versions.
func Mul() *registry.Native {
	hdr := term.NewHeader("*", 2)
	return registry.NewNative(hdr, map[registry.StdLibVersion]uint64{
		registry.V1: 1,
		registry.V2: 2,
		registry.V3: 2,
	}, func(args []term.Value) (term.Value, error) {
		a, err := intArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return term.IntValue(a[0] * a[1]), nil
	})
}

// Div is binary integer division. Division by zero is the canonical
// example of a host error from spec §7.2: the native reports it, and
// the evaluator aborts the whole evaluation carrying the cost already
// charged.
func Div() *registry.Native {
	hdr := term.NewHeader("div", 2)
	return registry.NewNative(hdr, flatCost(1), func(args []term.Value) (term.Value, error) {
		a, err := intArgs(args, 2)
		if err != nil {
			return nil, err
		}
		if a[1] == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return term.IntValue(a[0] / a[1]), nil
	})
}

// Eq is integer equality.
func Eq() *registry.Native {
	hdr := term.NewHeader("eq", 2)
	return registry.NewNative(hdr, flatCost(1), func(args []term.Value) (term.Value, error) {
		a, err := intArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return term.BoolValue(a[0] == a[1]), nil
	})
}

// And is strict (both-sides-already-reduced) boolean conjunction. The
// reducer's own If handles short-circuiting; this native is for callers
// that already have two boolean values in hand.
func And() *registry.Native {
	hdr := term.NewHeader("and", 2)
	return registry.NewNative(hdr, flatCost(1), func(args []term.Value) (term.Value, error) {
		b, err := boolArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return term.BoolValue(b[0] && b[1]), nil
	})
}

// Or is strict boolean disjunction.
func Or() *registry.Native {
	hdr := term.NewHeader("or", 2)
	return registry.NewNative(hdr, flatCost(1), func(args []term.Value) (term.Value, error) {
		b, err := boolArgs(args, 2)
		if err != nil {
			return nil, err
		}
		return term.BoolValue(b[0] || b[1]), nil
	})
}

// All returns every demo native, ready to hand to evaluator.NewContext.
func All() []registry.Descriptor {
	return []registry.Descriptor{Add(), Sub(), Mul(), Div(), Eq(), And(), Or()}
}
