package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

const sampleCostTables = `
versions:
  v1:
    "+/2": 1
    "*/2": 1
  v2:
    "+/2": 1
    "*/2": 2
`

func TestDecodeCostTables(t *testing.T) {
	tables, err := DecodeCostTables(strings.NewReader(sampleCostTables))
	require.NoError(t, err)

	v1 := tables[registry.V1]
	require.NotNil(t, v1)
	assert.EqualValues(t, 1, v1[term.NewHeader("+", 2)])
	assert.EqualValues(t, 1, v1[term.NewHeader("*", 2)])

	v2 := tables[registry.V2]
	require.NotNil(t, v2)
	assert.EqualValues(t, 2, v2[term.NewHeader("*", 2)])
}

func TestDecodeCostTablesRejectsMalformedKey(t *testing.T) {
	const bad = `
versions:
  v1:
    "noslash": 1
`
	_, err := DecodeCostTables(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestApplyCostTablesOverridesOnlyMentionedEntries(t *testing.T) {
	mulHdr := term.NewHeader("*", 2)
	addHdr := term.NewHeader("+", 2)
	mul := registry.NewNative(mulHdr, map[registry.StdLibVersion]uint64{registry.V1: 1, registry.V2: 2}, nil)
	add := registry.NewNative(addHdr, map[registry.StdLibVersion]uint64{registry.V1: 1, registry.V2: 1, registry.V3: 3}, nil)

	tables, err := DecodeCostTables(strings.NewReader(sampleCostTables))
	require.NoError(t, err)

	ApplyCostTables([]registry.Descriptor{mul, add}, tables)

	assert.EqualValues(t, 2, mul.CostByVersion[registry.V2])
	assert.EqualValues(t, 1, add.CostByVersion[registry.V2], "mentioned entries take the file's value")
	assert.EqualValues(t, 3, add.CostByVersion[registry.V3], "unmentioned entries keep their code default")
}

func TestParseHeaderKey(t *testing.T) {
	h, err := parseHeaderKey("div/2")
	require.NoError(t, err)
	assert.Equal(t, term.NewHeader("div", 2), h)

	_, err = parseHeaderKey("div")
	assert.Error(t, err)

	_, err = parseHeaderKey("div/x")
	assert.Error(t, err)
}
