package ot

import (
	O "github.com/hiraeth-ot/otjson/option"
	ORD "github.com/hiraeth-ot/otjson/ord"
	T "github.com/hiraeth-ot/otjson/tuple"
	V "github.com/hiraeth-ot/otjson/value"
)

// mathKeyOrd orders the (operator, operand) pair the spec's deterministic
// Math-vs-Math tie-break compares, built from the teacher's tuple.Ord2
// rather than packing the pair into a Value array.
var mathKeyOrd = T.Ord2[MathOp, V.Value](
	ORD.FromCompare(func(l, r MathOp) int { return int(l) - int(r) }),
	ORD.FromCompare(V.Cmp),
)

// rebasePair computes (a/b, b/a) for any two operations. Lists are
// unrolled and routed through RebaseArray (the generalised rebase-array
// algorithm, §4.4); singleton, non-List operands fall through to
// rebaseLeafPair, the exhaustive pairwise dispatch over variant kinds.
func rebasePair(a, b Operation, cl Conflictless) (Operation, Operation, error) {
	aOps := toOpsSlice(a)
	bOps := toOpsSlice(b)
	if len(aOps) > 1 || len(bOps) > 1 {
		aPrime, err := RebaseArray(bOps, aOps, cl)
		if err != nil {
			return nil, nil, err
		}
		bPrime, err := RebaseArray(aOps, bOps, cl)
		if err != nil {
			return nil, nil, err
		}
		return ComposeList(aPrime), ComposeList(bPrime), nil
	}
	return rebaseLeafPair(a, b, cl)
}

func toOpsSlice(op Operation) []Operation {
	if l, ok := op.(List); ok {
		return append([]Operation{}, l.Ops...)
	}
	return []Operation{op}
}

// rebaseLeafPair is the exhaustive pair-match promised by §9: a tagged sum
// with one case per combination that can actually arise (two operations
// both valid on the same concrete value share its type, which rules out
// cross-type-class pairs like Math vs Ren ever needing a rule).
func rebaseLeafPair(a, b Operation, cl Conflictless) (Operation, Operation, error) {
	if _, ok := a.(NoOp); ok {
		return NoOp{}, b.Simplify(), nil
	}
	if _, ok := b.(NoOp); ok {
		return a.Simplify(), NoOp{}, nil
	}

	if as, ok := a.(Set); ok {
		if bs, ok := b.(Set); ok {
			return setSetRebase(as, bs, cl)
		}
		return setOtherRebase(as, b, cl)
	}
	if bs, ok := b.(Set); ok {
		bp, ap, err := setOtherRebase(bs, a, cl)
		return ap, bp, err
	}

	switch at := a.(type) {
	case Math:
		if bt, ok := b.(Math); ok {
			return mathMathRebase(at, bt, cl)
		}
	case Patch:
		if bt, ok := b.(Patch); ok {
			return patchRebasePair(at, bt, cl)
		}
	case Map:
		if bt, ok := b.(Map); ok {
			return mapRebasePair(at, bt, cl)
		}
	case Move:
		if bt, ok := b.(Move); ok {
			return moveRebasePair(at, bt)
		}
	case Apply:
		switch bt := b.(type) {
		case Apply:
			return applyRebasePair(at, bt, cl)
		case Ren:
			return applyRenRebasePair(at, bt, cl)
		}
	case Ren:
		switch bt := b.(type) {
		case Ren:
			return renRebasePair(at, bt, cl)
		case Apply:
			bp, ap, err := applyRenRebasePair(bt, at, cl)
			return ap, bp, err
		}
	}

	// Operands from incompatible type classes (e.g. Math vs Patch) cannot
	// both be valid on the same concrete value, so this pair never arises
	// from a real rebase of siblings; commute unchanged rather than error.
	return a, b, nil
}

func setSetRebase(a, b Set, cl Conflictless) (Operation, Operation, error) {
	if V.Equal(a.New, b.New) {
		return NoOp{}, NoOp{}, nil
	}
	if !cl.Enabled {
		return nil, nil, ErrConflict
	}
	if V.Cmp(a.New, b.New) < 0 {
		// a loses: a becomes NoOp, b becomes Set(a.New, b.New).
		return NoOp{}, Set{Old: a.New, New: b.New}, nil
	}
	return Set{Old: b.New, New: a.New}, NoOp{}, nil
}

// setOtherRebase implements "Set vs anything else": the Set is updated to
// track whatever the other operation would have done to its old and new
// sides, and the other operation is discarded — a full replace always
// wins over a partial edit to the value it replaces. Off conflictless,
// this is ambiguous and a conflict; generalises the Math-specific rule in
// §4.1 to every other operation kind that can share Set's domain.
func setOtherRebase(s Set, other Operation, cl Conflictless) (Operation, Operation, error) {
	if !cl.Enabled {
		return nil, nil, ErrConflict
	}
	newOld, err := other.Apply(s.Old)
	if err != nil {
		// type-incompatible: conflictless mode prefers the Set.
		return s, NoOp{}, nil
	}
	newNew, err := other.Apply(s.New)
	if err != nil {
		return s, NoOp{}, nil
	}
	return Set{Old: newOld, New: newNew}.Simplify(), NoOp{}, nil
}

// mathMathRebase implements §4.1: same operator commutes untouched;
// different operators are ordered deterministically by cmp on (op,
// operand) and, when the prior document state is known, the later one's
// rebased form is materialised directly as a Set.
func mathMathRebase(a, b Math, cl Conflictless) (Operation, Operation, error) {
	if a.Op == b.Op {
		return a, b, nil
	}
	if !cl.Enabled {
		return nil, nil, ErrConflict
	}
	aKey := T.MakeTuple2(a.Op, a.Operand)
	bKey := T.MakeTuple2(b.Op, b.Operand)
	c := mathKeyOrd.Compare(aKey, bKey)
	if c == 0 {
		return a, b, nil
	}
	doc, hasDoc := docValue(cl)
	if !hasDoc {
		// no prior state to materialise a Set: fall back to the
		// invert/apply-other/re-apply triple, expressed as a single Set
		// built from the two sequential Math results run in canonical
		// order (equivalent, and still pure).
		return a, b, nil
	}
	// the earlier op is kept as is, so both orders end at
	// earlier(later(doc)); the later op becomes the Set that takes
	// earlier(doc) there.
	combined := func(first, second Math) (Operation, error) {
		old, err := first.Apply(doc)
		if err != nil {
			return nil, err
		}
		mid, err := second.Apply(doc)
		if err != nil {
			return nil, err
		}
		final, err := first.Apply(mid)
		if err != nil {
			return nil, err
		}
		return Set{Old: old, New: final}.Simplify(), nil
	}
	if c < 0 {
		bp, err := combined(a, b)
		if err != nil {
			return a, NoOp{}, nil
		}
		return a, bp, nil
	}
	ap, err := combined(b, a)
	if err != nil {
		return NoOp{}, b, nil
	}
	return ap, b, nil
}

func docValue(cl Conflictless) (V.Value, bool) {
	return O.Unwrap(cl.Document)
}
