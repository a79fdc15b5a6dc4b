package scenario

import (
	"encoding/hex"
	"fmt"

	"github.com/chainscript/evalcore/pkg/term"
)

func decodeExpr(node any) (term.Expr, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expression node must be a mapping, got %T", node)
	}
	kind, _ := m["kind"].(string)

	switch kind {
	case "let":
		name, _ := m["name"].(string)
		value, err := decodeExprField(m, "value")
		if err != nil {
			return nil, fmt.Errorf("let %q: %w", name, err)
		}
		body, err := decodeExprField(m, "body")
		if err != nil {
			return nil, fmt.Errorf("let %q: %w", name, err)
		}
		return term.NewLet(name, value, body), nil

	case "ref":
		name, _ := m["name"].(string)
		return term.NewRef(name), nil

	case "if":
		cond, err := decodeExprField(m, "cond")
		if err != nil {
			return nil, err
		}
		then, err := decodeExprField(m, "then")
		if err != nil {
			return nil, err
		}
		els, err := decodeExprField(m, "else")
		if err != nil {
			return nil, err
		}
		return term.NewIf(cond, then, els), nil

	case "getter":
		obj, err := decodeExprField(m, "obj")
		if err != nil {
			return nil, err
		}
		field, _ := m["field"].(string)
		return term.NewGetter(obj, field), nil

	case "call":
		header, err := decodeHeader(m["header"])
		if err != nil {
			return nil, err
		}
		argsRaw, _ := m["args"].([]any)
		args := make([]term.Expr, len(argsRaw))
		for i, a := range argsRaw {
			arg, err := decodeExpr(a)
			if err != nil {
				return nil, fmt.Errorf("call %s: arg %d: %w", header, i, err)
			}
			args[i] = arg
		}
		return term.NewCall(header, args), nil

	case "bool":
		b, _ := m["value"].(bool)
		return term.NewEvaluated(term.BoolValue(b)), nil

	case "int":
		return term.NewEvaluated(term.IntValue(toInt64(m["value"]))), nil

	case "string":
		s, _ := m["value"].(string)
		return term.NewEvaluated(term.StringValue(s)), nil

	case "bytes":
		s, _ := m["value"].(string)
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("bytes: %w", err)
		}
		return term.NewEvaluated(term.BytesValue(b)), nil

	case "unit":
		return term.NewEvaluated(term.Unit), nil

	case "caseobj":
		typeName, _ := m["type"].(string)
		fieldsRaw, _ := m["fields"].(map[string]any)
		fields := make(map[string]term.Value, len(fieldsRaw))
		for name, raw := range fieldsRaw {
			fe, err := decodeExpr(raw)
			if err != nil {
				return nil, fmt.Errorf("caseobj %s.%s: %w", typeName, name, err)
			}
			if !term.IsEvaluated(fe) {
				return nil, fmt.Errorf("caseobj %s.%s: field must be a literal", typeName, name)
			}
			fields[name] = term.AsValue(fe)
		}
		return term.NewEvaluated(term.NewCaseObj(typeName, fields)), nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind)
	}
}

func decodeExprField(m map[string]any, field string) (term.Expr, error) {
	raw, ok := m[field]
	if !ok {
		return nil, fmt.Errorf("missing field %q", field)
	}
	return decodeExpr(raw)
}

func decodeHeader(raw any) (term.Header, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return term.Header{}, fmt.Errorf("header must be a mapping, got %T", raw)
	}
	name, _ := m["name"].(string)
	return term.NewHeader(name, int(toInt64(m["arity"]))), nil
}

// toInt64 normalizes the handful of numeric shapes yaml.v3 decodes a
// scalar into interface{} as.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
