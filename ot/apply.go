package ot

import (
	R "github.com/hiraeth-ot/otjson/record"
	V "github.com/hiraeth-ot/otjson/value"
)

// Apply runs a per-key inner operation against an Object: Ops[key] sees the
// current value at key, or Missing if key is absent. A result of Missing
// drops the key; any other result assigns it.
type Apply struct {
	Ops map[string]Operation
}

func (Apply) kind() kind { return kindApply }

func (a Apply) Apply(d V.Value) (V.Value, error) {
	obj, ok := d.(*V.Object)
	if !ok {
		return nil, invalidOp("Apply", "requires an object document, got %T", d)
	}
	out := obj.Clone()
	for key, op := range a.Ops {
		cur, found := out.Get(key)
		if !found {
			cur = V.Missing
		}
		res, err := op.Apply(cur)
		if err != nil {
			return nil, err
		}
		if V.IsMissing(res) {
			out = out.Delete(key)
		} else {
			out = out.Set(key, res)
		}
	}
	return out, nil
}

func (a Apply) Simplify() Operation {
	ops := map[string]Operation{}
	for key, op := range a.Ops {
		sop := op.Simplify()
		if _, ok := sop.(NoOp); ok {
			continue
		}
		ops[key] = sop
	}
	if len(ops) == 0 {
		return NoOp{}
	}
	return Apply{Ops: ops}
}

func (a Apply) Inverse(prior V.Value) Operation {
	obj, ok := prior.(*V.Object)
	ops := map[string]Operation{}
	for key, op := range a.Ops {
		var cur V.Value = V.Missing
		if ok {
			if v, found := obj.Get(key); found {
				cur = v
			}
		}
		ops[key] = op.Inverse(cur)
	}
	return Apply{Ops: ops}.Simplify()
}

func (a Apply) Compose(other Operation) (Operation, bool) {
	oa, ok := other.(Apply)
	if !ok {
		if _, isNoOp := other.(NoOp); isNoOp {
			return a.Simplify(), true
		}
		return nil, false
	}
	ops := map[string]Operation{}
	for key, op := range a.Ops {
		ops[key] = op
	}
	for key, op := range oa.Ops {
		if existing, found := ops[key]; found {
			combined, ok := existing.Compose(op)
			if !ok {
				return nil, false
			}
			ops[key] = combined
		} else {
			ops[key] = op
		}
	}
	return Apply{Ops: ops}.Simplify(), true
}

func (a Apply) Rebase(other Operation, cl Conflictless) (Operation, error) {
	ap, _, err := rebasePair(a, other, cl)
	return ap, err
}

func (a Apply) Drilldown(key any) Operation {
	k, ok := key.(string)
	if !ok {
		return NoOp{}
	}
	if op, found := a.Ops[k]; found {
		return op
	}
	return NoOp{}
}

// applyRebasePair rebases two object Applies key by key, threading the
// prior value at each key (or Missing) through cl so inner rebases that
// need context-aware conflictless resolution get it.
func applyRebasePair(a, b Apply, cl Conflictless) (Operation, Operation, error) {
	aOps := map[string]Operation{}
	bOps := map[string]Operation{}
	keys := map[string]struct{}{}
	for _, k := range R.Keys(a.Ops) {
		keys[k] = struct{}{}
	}
	for _, k := range R.Keys(b.Ops) {
		keys[k] = struct{}{}
	}
	for k := range keys {
		aOp, aHas := a.Ops[k]
		bOp, bHas := b.Ops[k]
		switch {
		case aHas && bHas:
			kcl := cl.AtKey(k)
			ap, bp, err := rebasePair(aOp, bOp, kcl)
			if err != nil {
				return nil, nil, err
			}
			aOps[k] = ap
			bOps[k] = bp
		case aHas:
			aOps[k] = aOp
		case bHas:
			bOps[k] = bOp
		}
	}
	return Apply{Ops: aOps}.Simplify(), Apply{Ops: bOps}.Simplify(), nil
}

// applyRenRebasePair translates an Apply's keys through a Ren, per §4.3:
// a key that is some Ren entry's old_key is duplicated under every new_key
// that maps to it; a key not preserved by the Ren is dropped; a key the
// Ren does not mention at all is carried over unchanged.
func applyRenRebasePair(a Apply, r Ren, cl Conflictless) (Operation, Operation, error) {
	newOps := map[string]Operation{}
	touched := map[string]bool{}
	for newKey, oldKey := range r.Map {
		touched[newKey] = true
		touched[oldKey] = true
		if op, found := a.Ops[oldKey]; found {
			newOps[newKey] = op
		}
	}
	for key, op := range a.Ops {
		if !touched[key] {
			newOps[key] = op
		}
	}
	aPrime := Apply{Ops: newOps}.Simplify()
	return aPrime, r, nil
}
