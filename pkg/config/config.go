// Package config loads native-function cost tables from a YAML file, the
// one piece of configuration spec §6 calls out ("native-function cost
// tables are keyed by stdLibVersion"). It follows the same
// custom-UnmarshalYAML-on-a-named-map idiom the teacher's
// pkg/driver/manifest.go uses for its targetMap and stringList types.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chainscript/evalcore/pkg/registry"
	"github.com/chainscript/evalcore/pkg/term"
)

// headerCostMap decodes a YAML mapping of "name/arity" scalar keys to
// integer costs into a registry.CostTable.
type headerCostMap registry.CostTable

func (m *headerCostMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("cost table: expected a mapping, got %v", value.Kind)
	}
	out := make(registry.CostTable)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		header, err := parseHeaderKey(keyNode.Value)
		if err != nil {
			return err
		}
		cost, err := strconv.ParseUint(valNode.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("cost table: %s: %w", keyNode.Value, err)
		}
		out[header] = cost
	}
	*m = headerCostMap(out)
	return nil
}

func parseHeaderKey(key string) (term.Header, error) {
	name, aritySuffix, ok := strings.Cut(key, "/")
	if !ok {
		return term.Header{}, fmt.Errorf("cost table: key %q is not name/arity", key)
	}
	arity, err := strconv.Atoi(aritySuffix)
	if err != nil {
		return term.Header{}, fmt.Errorf("cost table: key %q: %w", key, err)
	}
	return term.NewHeader(name, arity), nil
}

// document is the top-level shape of a cost-table YAML file:
//
//	versions:
//	  v1:
//	    "+/2": 1
//	  v2:
//	    "+/2": 1
//	    "*/2": 2
type document struct {
	Versions map[registry.StdLibVersion]headerCostMap `yaml:"versions"`
}

// LoadCostTables reads and decodes a cost-table YAML file, producing one
// registry.CostTable per StdLibVersion it declares.
func LoadCostTables(path string) (map[registry.StdLibVersion]registry.CostTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load cost tables: %w", err)
	}
	defer f.Close()
	return DecodeCostTables(f)
}

// DecodeCostTables decodes a cost-table YAML document from r, separated
// from LoadCostTables so tests can feed it an in-memory reader.
func DecodeCostTables(r io.Reader) (map[registry.StdLibVersion]registry.CostTable, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode cost tables: %w", err)
	}
	out := make(map[registry.StdLibVersion]registry.CostTable, len(doc.Versions))
	for version, table := range doc.Versions {
		out[version] = registry.CostTable(table)
	}
	return out, nil
}

// ApplyCostTables overrides each native descriptor's CostByVersion entry
// for every version the loaded tables mention, leaving the descriptor's
// own defaults intact for anything the file doesn't override.
func ApplyCostTables(descs []registry.Descriptor, tables map[registry.StdLibVersion]registry.CostTable) {
	for _, desc := range descs {
		native, ok := desc.(*registry.Native)
		if !ok {
			continue
		}
		for version, table := range tables {
			if cost, ok := table[native.Hdr]; ok {
				native.CostByVersion[version] = cost
			}
		}
	}
}
