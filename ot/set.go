package ot

import (
	F "github.com/hiraeth-ot/otjson/function"
	V "github.com/hiraeth-ot/otjson/value"
)

// Set replaces the document with New. Old is carried alongside so that
// Inverse and several rebase rules stay pure (no extra document lookup is
// needed to undo or reconcile a Set).
type Set struct {
	Old V.Value
	New V.Value
}

func (Set) kind() kind { return kindSet }

func (s Set) Apply(d V.Value) (V.Value, error) {
	if !V.Equal(d, s.Old) {
		return nil, invalidOp("Set", "declared old value %v does not match live document %v", s.Old, d)
	}
	return s.New, nil
}

// simplifySet collapses a no-op Set to NoOp, dispatched through the
// teacher's Ternary combinator rather than an inline if/else.
var simplifySet = F.Ternary(
	func(s Set) bool { return V.Equal(s.Old, s.New) },
	func(Set) Operation { return NoOp{} },
	func(s Set) Operation { return s },
)

func (s Set) Simplify() Operation {
	return simplifySet(s)
}

func (s Set) Inverse(V.Value) Operation {
	return Set{Old: s.New, New: s.Old}.Simplify()
}

func (s Set) Compose(other Operation) (Operation, bool) {
	newVal, err := other.Apply(s.New)
	if err != nil {
		return nil, false
	}
	return Set{Old: s.Old, New: newVal}.Simplify(), true
}

func (s Set) Rebase(other Operation, cl Conflictless) (Operation, error) {
	sp, _, err := rebasePair(s, other, cl)
	return sp, err
}

func (s Set) Drilldown(key any) Operation {
	oldChild, _ := childAt(s.Old, key)
	newChild, _ := childAt(s.New, key)
	return Set{Old: oldChild, New: newChild}.Simplify()
}

// LengthChange implements sequenceInner: a Set inside a Patch hunk replaces
// the whole selected sub-sequence with New, whose own length may differ
// from oldLen.
func (s Set) LengthChange(oldLen int) int {
	return seqLen(s.New) - oldLen
}

// Decompose implements sequenceInner by splitting New (and, symmetrically,
// Old) at atIndex, producing two Sets whose sequential effect matches the
// original.
func (s Set) Decompose(atIndex int, side Side) (Operation, Operation) {
	oldLeft, oldRight := splitSeq(s.Old, atIndex)
	var newLeft, newRight V.Value
	if side == Before {
		newLeft, newRight = splitSeq(s.New, atIndex)
	} else {
		// side == After: atIndex addresses the output boundary; since a
		// Set's New fully determines the output length, split New there
		// directly and let Old follow the same element count when shapes
		// agree, else fall back to an empty/whole split.
		newLeft, newRight = splitSeq(s.New, atIndex)
	}
	return Set{Old: oldLeft, New: newLeft}.Simplify(), Set{Old: oldRight, New: newRight}.Simplify()
}

// childAt extracts the value addressed by key (an int index into a Str or
// Arr, or a string key into an Object) from v, or Missing if v has no such
// child.
func childAt(v V.Value, key any) (V.Value, bool) {
	switch k := key.(type) {
	case int:
		switch t := v.(type) {
		case V.Arr:
			if k >= 0 && k < len(t) {
				return t[k], true
			}
		case V.Str:
			if k >= 0 && k < len(t) {
				return V.Str{t[k]}, true
			}
		}
	case string:
		if obj, ok := v.(*V.Object); ok {
			if cv, found := obj.Get(k); found {
				return cv, true
			}
			return V.Missing, false
		}
	}
	return V.Missing, false
}

// seqLen returns the element count of a sequence-shaped value, or 0 otherwise.
func seqLen(v V.Value) int {
	switch t := v.(type) {
	case V.Str:
		return len(t)
	case V.Arr:
		return len(t)
	default:
		return 0
	}
}

// splitSeq splits a sequence-shaped value at index i into two sub-sequences
// of the same shape; non-sequence values split into two copies of
// themselves (there is nothing meaningful to index into).
func splitSeq(v V.Value, i int) (V.Value, V.Value) {
	switch t := v.(type) {
	case V.Str:
		if i < 0 {
			i = 0
		}
		if i > len(t) {
			i = len(t)
		}
		return t[:i].Clone(), t[i:].Clone()
	case V.Arr:
		if i < 0 {
			i = 0
		}
		if i > len(t) {
			i = len(t)
		}
		return t[:i].Clone(), t[i:].Clone()
	default:
		return v, v
	}
}
