package evaluator

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grovelang/grove/internal/diagnostics"
	"github.com/grovelang/grove/internal/typesystem"
)

func init() {
	register(yamlBuiltins)
}

var yamlBuiltins = map[string]*Builtin{
	"yaml-decode": {
		Params: []Param{{Name: "text", Type: typesystem.String}},
		Doc:    "Parses a YAML document into engine values: sequences become lists, mappings become association lists.",
		Fn: func(e *Evaluator, args ...Object) Object {
			var data interface{}
			if err := yaml.Unmarshal([]byte(args[0].(*String).Value), &data); err != nil {
				return newError(diagnostics.TypeMismatch, "YAML parse error: %v", err)
			}
			return valueFromYaml(data)
		},
	},
	"yaml-encode": {
		Params: []Param{{Name: "x", Type: typesystem.Any}},
		Result: typesystem.String,
		Doc:    "Renders a value as a YAML document.",
		Fn: func(e *Evaluator, args ...Object) Object {
			data, errObj := yamlFromValue(args[0])
			if errObj != nil {
				return errObj
			}
			out, err := yaml.Marshal(data)
			if err != nil {
				return newError(diagnostics.TypeMismatch, "YAML encode error: %v", err)
			}
			return &String{Value: strings.TrimRight(string(out), "\n")}
		},
	},
}

// valueFromYaml converts what yaml.Unmarshal produced into engine values.
// yaml.v3 yields int for integers, unlike encoding/json.
func valueFromYaml(data interface{}) Object {
	switch v := data.(type) {
	case nil:
		return emptyList()
	case bool:
		return nativeBool(v)
	case int:
		return &Number{Value: float64(v)}
	case int64:
		return &Number{Value: float64(v)}
	case float64:
		return &Number{Value: v}
	case string:
		return &String{Value: v}
	case []interface{}:
		heads := make([]Object, len(v))
		for i, item := range v {
			val := valueFromYaml(item)
			if isError(val) {
				return val
			}
			heads[i] = val
		}
		return &List{Heads: heads}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		heads := make([]Object, len(keys))
		for i, key := range keys {
			val := valueFromYaml(v[key])
			if isError(val) {
				return val
			}
			heads[i] = &List{Heads: []Object{&Symbol{Value: key}, val}}
		}
		return &List{Heads: heads}
	default:
		return newError(diagnostics.TypeMismatch, "unsupported YAML node %T", data)
	}
}

// yamlFromValue converts an engine value to something yaml.Marshal accepts.
// Functions and improper lists have no document form.
func yamlFromValue(obj Object) (interface{}, *Error) {
	switch v := obj.(type) {
	case *Number:
		if v.IsIntegral() {
			return int64(v.Value), nil
		}
		return v.Value, nil
	case *Boolean:
		return v.Value, nil
	case *String:
		return v.Value, nil
	case *Symbol:
		return v.Value, nil
	case *List:
		if v.IsEmpty() {
			return nil, nil
		}
		if !v.IsProper() {
			return nil, newError(diagnostics.TypeMismatch, "cannot encode an improper list as YAML")
		}
		out := make([]interface{}, len(v.Heads))
		for i, item := range v.Heads {
			enc, errObj := yamlFromValue(item)
			if errObj != nil {
				return nil, errObj
			}
			out[i] = enc
		}
		return out, nil
	default:
		return nil, newError(diagnostics.TypeMismatch, "cannot encode %s as YAML", obj.Inspect())
	}
}
