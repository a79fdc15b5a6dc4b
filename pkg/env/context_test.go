package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

func TestWithLetDoesNotMutateReceiver(t *testing.T) {
	c0 := New(registry.V1)
	c1 := c0.WithLet("x", term.NewEvaluated(term.IntValue(1)), true)

	_, ok := c0.Lookup("x")
	assert.False(t, ok, "WithLet must not mutate the receiver")

	b, ok := c1.Lookup("x")
	require.True(t, ok)
	assert.True(t, b.Resolved)
}

func TestWithLetCapturesReceiverNotUpdatedContext(t *testing.T) {
	c0 := New(registry.V1)
	c1 := c0.WithLet("x", term.NewEvaluated(term.IntValue(1)), false)

	b, ok := c1.Lookup("x")
	require.True(t, ok)
	assert.Same(t, c0, b.Captured)
}

func TestWithCostIsAdditive(t *testing.T) {
	c := New(registry.V1).WithCost(3).WithCost(4)
	assert.EqualValues(t, 7, c.Cost())
}

func TestWithAbsoluteCostOverridesRatherThanAdds(t *testing.T) {
	c := New(registry.V1).WithCost(3).WithAbsoluteCost(10)
	assert.EqualValues(t, 10, c.Cost())
}

func TestExhausted(t *testing.T) {
	c := New(registry.V1).WithCost(5)
	assert.True(t, c.Exhausted(5))
	assert.True(t, c.Exhausted(4))
	assert.False(t, c.Exhausted(6))
}

func TestCombineOverridesLetsAndTakesMaxCost(t *testing.T) {
	base := New(registry.V1).WithLet("x", term.NewEvaluated(term.IntValue(1)), true).WithCost(2)
	override := New(registry.V1).WithLet("x", term.NewEvaluated(term.IntValue(2)), true).WithLet("y", term.NewEvaluated(term.IntValue(3)), true).WithCost(9)

	combined := base.Combine(override)

	x, _ := combined.Lookup("x")
	assert.Equal(t, term.NewEvaluated(term.IntValue(2)), x.ValueExpr)
	_, ok := combined.Lookup("y")
	assert.True(t, ok)
	assert.EqualValues(t, 9, combined.Cost())
}

func TestWithFunctionAndLookupFunc(t *testing.T) {
	c := New(registry.V1)
	hdr := term.NewHeader("+", 2)
	desc := registry.NewNative(hdr, map[registry.StdLibVersion]uint64{registry.V1: 1}, nil)

	c1 := c.WithFunction(desc)
	_, ok := c.LookupFunc(hdr)
	assert.False(t, ok, "WithFunction must not mutate the receiver")

	got, ok := c1.LookupFunc(hdr)
	require.True(t, ok)
	assert.Same(t, desc, got)
}

func TestLetNamesSorted(t *testing.T) {
	c := New(registry.V1).
		WithLet("b", term.NewEvaluated(term.IntValue(1)), true).
		WithLet("a", term.NewEvaluated(term.IntValue(2)), true)
	assert.Equal(t, []string{"a", "b"}, c.LetNames())
}
