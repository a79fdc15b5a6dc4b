package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEvaluatedAndAsValue(t *testing.T) {
	lit := NewEvaluated(IntValue(7))
	assert.True(t, IsEvaluated(lit))
	assert.Equal(t, IntValue(7), AsValue(lit))

	ref := NewRef("x")
	assert.False(t, IsEvaluated(ref))
}

func TestAsValuePanicsOnNonEvaluated(t *testing.T) {
	assert.Panics(t, func() {
		AsValue(NewRef("x"))
	})
}

func TestBoolPredicates(t *testing.T) {
	assert.True(t, IsTrue(True))
	assert.False(t, IsTrue(False))
	assert.True(t, IsFalse(False))
	assert.False(t, IsFalse(True))
	assert.False(t, IsTrue(IntValue(1)))
}

func TestCaseObjFieldLookupAndIsolation(t *testing.T) {
	fields := map[string]Value{"x": IntValue(7), "y": IntValue(9)}
	obj := NewCaseObj("Point", fields)

	v, ok := obj.Field("y")
	require.True(t, ok)
	assert.Equal(t, IntValue(9), v)

	_, ok = obj.Field("z")
	assert.False(t, ok)

	// Mutating the map passed to NewCaseObj must not affect the object:
	// NewCaseObj copies it.
	fields["x"] = IntValue(999)
	v, _ = obj.Field("x")
	assert.Equal(t, IntValue(7), v)
}

func TestHeaderString(t *testing.T) {
	h := NewHeader("+", 2)
	assert.Equal(t, "+/2", h.String())
}

func TestLetDeclHasNoBody(t *testing.T) {
	decl := NewLetDecl("x", NewEvaluated(IntValue(1)))
	assert.Nil(t, decl.Body)
	var _ Decl = decl
}
