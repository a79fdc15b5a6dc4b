package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainscript/evalcore/pkg/evaluator"
	"github.com/chainscript/evalcore/pkg/nativefn"
	"github.com/chainscript/evalcore/pkg/term"
)

const sampleScenario = `
version: v1
limit: 10
lets:
  seven:
    kind: int
    value: 7
funcs:
  - name: double
    params: ["a"]
    body:
      kind: call
      header: {name: "+", arity: 2}
      args:
        - {kind: ref, name: a}
        - {kind: ref, name: a}
expr:
  kind: call
  header: {name: double, arity: 1}
  args:
    - {kind: ref, name: seven}
`

func TestDecodeAndEvaluateScenario(t *testing.T) {
	sc, err := Decode(strings.NewReader(sampleScenario), nativefn.All())
	require.NoError(t, err)
	assert.EqualValues(t, 10, sc.Limit)

	result, _, err := evaluator.Evaluate(sc.Expr, sc.Ctx, sc.Limit)
	require.NoError(t, err)
	require.True(t, term.IsEvaluated(result))
	assert.Equal(t, term.IntValue(14), term.AsValue(result))
}

const caseObjScenario = `
version: v1
limit: 10
expr:
  kind: getter
  field: y
  obj:
    kind: caseobj
    type: Point
    fields:
      x: {kind: int, value: 7}
      y: {kind: int, value: 9}
`

func TestDecodeCaseObjAndGetter(t *testing.T) {
	sc, err := Decode(strings.NewReader(caseObjScenario), nativefn.All())
	require.NoError(t, err)

	result, cost, err := evaluator.Evaluate(sc.Expr, sc.Ctx, sc.Limit)
	require.NoError(t, err)
	require.True(t, term.IsEvaluated(result))
	assert.Equal(t, term.IntValue(9), term.AsValue(result))
	assert.EqualValues(t, 1, cost)
}

func TestDecodeRejectsNonLiteralLet(t *testing.T) {
	const bad = `
version: v1
limit: 10
lets:
  x:
    kind: call
    header: {name: "+", arity: 2}
    args:
      - {kind: int, value: 1}
      - {kind: int, value: 1}
expr:
  kind: ref
  name: x
`
	_, err := Decode(strings.NewReader(bad), nativefn.All())
	assert.Error(t, err)
}

func TestDecodeIfExpression(t *testing.T) {
	const doc = `
version: v1
limit: 10
expr:
  kind: if
  cond: {kind: bool, value: true}
  then: {kind: int, value: 1}
  else: {kind: int, value: 2}
`
	sc, err := Decode(strings.NewReader(doc), nativefn.All())
	require.NoError(t, err)

	result, _, err := evaluator.Evaluate(sc.Expr, sc.Ctx, sc.Limit)
	require.NoError(t, err)
	assert.Equal(t, term.IntValue(1), term.AsValue(result))
}
