package ot

import (
	A "github.com/hiraeth-ot/otjson/array"
	SG "github.com/hiraeth-ot/otjson/string"
	V "github.com/hiraeth-ot/otjson/value"
)

var strSemigroup = SG.Semigroup()

// sliceSeq returns the sub-sequence of v spanning [lo, hi). v must be a Str
// or Arr; any other value is returned unchanged (callers only slice
// sequence-shaped values, having already checked the document's shape).
func sliceSeq(v V.Value, lo, hi int) V.Value {
	switch t := v.(type) {
	case V.Str:
		return t[lo:hi].Clone()
	case V.Arr:
		return t[lo:hi].Clone()
	default:
		return v
	}
}

// concatSeq concatenates same-shaped sequence values (all Str or all Arr)
// in order.
func concatSeq(parts ...V.Value) (V.Value, error) {
	if len(parts) == 0 {
		return V.Str{}, nil
	}
	switch parts[0].(type) {
	case V.Str:
		strs := make([]string, 0, len(parts))
		for _, p := range parts {
			s, ok := p.(V.Str)
			if !ok {
				return nil, invalidOp("Patch", "cannot concatenate mismatched sequence shapes")
			}
			strs = append(strs, string(s))
		}
		joined := A.Reduce(func(acc string, s string) string {
			return strSemigroup.Concat(acc, s)
		}, "")(strs)
		return V.Str(joined), nil
	case V.Arr:
		arrs := make([][]V.Value, 0, len(parts))
		for _, p := range parts {
			a, ok := p.(V.Arr)
			if !ok {
				return nil, invalidOp("Patch", "cannot concatenate mismatched sequence shapes")
			}
			arrs = append(arrs, []V.Value(a))
		}
		return V.Arr(A.ArrayConcatAll(arrs...)), nil
	default:
		return nil, invalidOp("Patch", "cannot concatenate non-sequence value %T", parts[0])
	}
}

// isSequence reports whether v is a Str or Arr.
func isSequence(v V.Value) bool {
	switch v.(type) {
	case V.Str, V.Arr:
		return true
	default:
		return false
	}
}
