package value

import (
	"fmt"
	"sort"

	J "github.com/hiraeth-ot/otjson/json"
)

// ToJSON renders a Value into its wire form. Missing has no wire
// representation: encoding it is a programmer error, not a live document state.
func ToJSON(v Value) ([]byte, error) {
	native, err := toNative(v)
	if err != nil {
		return nil, err
	}
	return J.Marshal(native)
}

func toNative(v Value) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Null:
		return nil, nil
	case Bool:
		return bool(t), nil
	case Number:
		return float64(t), nil
	case Str:
		return t.String(), nil
	case Arr:
		out := make([]any, len(t))
		for i, e := range t {
			n, err := toNative(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case *Object:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			ev, _ := t.Get(k)
			n, err := toNative(ev)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case missing:
		return nil, fmt.Errorf("value: cannot serialize Missing as a document value")
	default:
		return nil, fmt.Errorf("value: unknown value type %T", v)
	}
}

// FromJSON parses a document from its wire form.
func FromJSON(data []byte) (Value, error) {
	raw, err := J.Unmarshal[any](data)
	if err != nil {
		return nil, err
	}
	return FromNative(raw)
}

// FromNative converts a tree produced by encoding/json (nil, bool, float64,
// string, []any, map[string]any) into a Value tree. Object key order is not
// preserved by encoding/json's map[string]any, so keys are sorted for
// determinism; this only affects Keys()/wire re-encoding, never Cmp, which
// already sorts keys on its own.
func FromNative(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case string:
		return NewStr(t), nil
	case []any:
		out := make(Arr, len(t))
		for i, e := range t {
			v, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := FromNative(t[k])
			if err != nil {
				return nil, err
			}
			obj = obj.Set(k, v)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("value: cannot convert native type %T", x)
	}
}
