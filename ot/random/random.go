// Package random generates operations valid on a given document, for the
// property-based harness required by §8: each variant contributes a
// generator, and Op picks among the ones that apply to the document's
// concrete shape.
package random

import (
	"math/rand"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
)

// Op returns an operation valid on document, chosen from the variants
// whose domain matches the document's shape.
func Op(r *rand.Rand, document V.Value) ot.Operation {
	candidates := candidatesFor(document)
	pick := candidates[r.Intn(len(candidates))]
	return pick(r, document)
}

type generator func(r *rand.Rand, d V.Value) ot.Operation

func candidatesFor(d V.Value) []generator {
	always := []generator{noOp, set}
	switch d.(type) {
	case V.Number:
		return append(always, mathAdd, mathMult)
	case V.Bool:
		return append(always, mathNot, mathXorBool)
	case V.Str:
		return append(always, patchString, mapString)
	case V.Arr:
		return append(always, patchArray, moveArray)
	case *V.Object:
		return append(always, applyObject, renObject)
	default:
		return always
	}
}

func noOp(*rand.Rand, V.Value) ot.Operation { return ot.NoOp{} }

func set(r *rand.Rand, d V.Value) ot.Operation {
	return ot.Set{Old: d, New: randomValueLike(r, d)}
}

func mathAdd(r *rand.Rand, d V.Value) ot.Operation {
	return ot.Math{Op: ot.Add, Operand: V.Number(r.Intn(21) - 10)}
}

func mathMult(r *rand.Rand, d V.Value) ot.Operation {
	return ot.Math{Op: ot.Mult, Operand: V.Number(r.Intn(5) + 1)}
}

func mathNot(*rand.Rand, V.Value) ot.Operation {
	return ot.Math{Op: ot.Not}
}

func mathXorBool(r *rand.Rand, d V.Value) ot.Operation {
	return ot.Math{Op: ot.Xor, Operand: V.Bool(r.Intn(2) == 0)}
}

func patchString(r *rand.Rand, d V.Value) ot.Operation {
	s := d.(V.Str)
	if len(s) == 0 {
		return ot.Patch{Hunks: []ot.Hunk{{Offset: 0, Length: 0, Op: ot.Set{Old: V.Str{}, New: randomStr(r, 3)}}}}
	}
	offset := r.Intn(len(s))
	length := r.Intn(len(s) - offset + 1)
	segment := s[offset : offset+length].Clone()
	return ot.Patch{Hunks: []ot.Hunk{{Offset: offset, Length: length, Op: ot.Set{Old: segment, New: randomStr(r, length+1)}}}}
}

func mapString(r *rand.Rand, d V.Value) ot.Operation {
	return ot.Map{Op: ot.Math{Op: ot.Add, Operand: V.Number(0)}}
}

func patchArray(r *rand.Rand, d V.Value) ot.Operation {
	a := d.(V.Arr)
	if len(a) == 0 {
		return ot.Patch{Hunks: []ot.Hunk{{Offset: 0, Length: 0, Op: ot.Set{Old: V.Arr{}, New: V.Arr{V.Number(r.Intn(10))}}}}}
	}
	offset := r.Intn(len(a))
	length := r.Intn(len(a) - offset + 1)
	segment := a[offset : offset+length].Clone()
	return ot.Patch{Hunks: []ot.Hunk{{Offset: offset, Length: length, Op: ot.Set{Old: segment, New: V.Arr{V.Number(r.Intn(10))}}}}}
}

func moveArray(r *rand.Rand, d V.Value) ot.Operation {
	a := d.(V.Arr)
	if len(a) < 2 {
		return ot.NoOp{}
	}
	pos := r.Intn(len(a))
	count := r.Intn(len(a) - pos)
	if count == 0 {
		return ot.NoOp{}
	}
	newPos := r.Intn(len(a) - count + 1)
	return ot.Move{Pos: pos, Count: count, NewPos: newPos}
}

func applyObject(r *rand.Rand, d V.Value) ot.Operation {
	obj := d.(*V.Object)
	keys := obj.Keys()
	if len(keys) == 0 {
		return ot.NoOp{}
	}
	key := keys[r.Intn(len(keys))]
	cur, _ := obj.Get(key)
	return ot.Apply{Ops: map[string]ot.Operation{key: ot.Set{Old: cur, New: randomValueLike(r, cur)}}}
}

func renObject(r *rand.Rand, d V.Value) ot.Operation {
	obj := d.(*V.Object)
	keys := obj.Keys()
	if len(keys) == 0 {
		return ot.NoOp{}
	}
	oldKey := keys[r.Intn(len(keys))]
	newKey := oldKey + "_renamed"
	return ot.Ren{Map: map[string]string{newKey: oldKey, oldKey: oldKey}}
}

func randomValueLike(r *rand.Rand, d V.Value) V.Value {
	switch t := d.(type) {
	case V.Number:
		return V.Number(r.Intn(1000))
	case V.Bool:
		return V.Bool(r.Intn(2) == 0)
	case V.Str:
		return randomStr(r, len(t)+1)
	case V.Arr:
		return V.Arr{V.Number(r.Intn(100))}
	case V.Null:
		return V.Null{}
	default:
		return V.Number(r.Intn(1000))
	}
}

func randomStr(r *rand.Rand, n int) V.Str {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	out := make(V.Str, n)
	for i := range out {
		out[i] = rune(alphabet[r.Intn(len(alphabet))])
	}
	return out
}
