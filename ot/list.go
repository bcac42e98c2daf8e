package ot

import (
	A "github.com/hiraeth-ot/otjson/array"
	V "github.com/hiraeth-ot/otjson/value"
)

// List is a flat sequence of non-List operations applied left to right.
type List struct {
	Ops []Operation
}

func (List) kind() kind { return kindList }

func (l List) Apply(d V.Value) (V.Value, error) {
	cur := d
	for _, op := range l.Ops {
		var err error
		cur, err = op.Apply(cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// Simplify flattens nested Lists, drops NoOp children, tries to fold
// adjacent operations with atomic compose, and collapses singleton/empty
// results, per the List invariants in §3.3.
func (l List) Simplify() Operation {
	flat := flattenOps(l.Ops)
	simplified := A.MonadMap(flat, func(op Operation) Operation { return op.Simplify() })
	nonNoOp := A.Filter(func(op Operation) bool {
		_, ok := op.(NoOp)
		return !ok
	})(simplified)
	var out []Operation
	for _, sop := range nonNoOp {
		if len(out) > 0 {
			if combined, ok := out[len(out)-1].Compose(sop); ok {
				out[len(out)-1] = combined
				continue
			}
		}
		out = append(out, sop)
	}
	switch len(out) {
	case 0:
		return NoOp{}
	case 1:
		return out[0]
	default:
		return List{Ops: out}
	}
}

func flattenOps(ops []Operation) []Operation {
	var out []Operation
	for _, op := range ops {
		if l, ok := op.(List); ok {
			out = append(out, flattenOps(l.Ops)...)
		} else {
			out = append(out, op)
		}
	}
	return out
}

// Inverse undoes the list in reverse order, threading the prior document
// state forward through each op so every inner Inverse sees the state it
// actually ran on.
func (l List) Inverse(d V.Value) Operation {
	states := make([]V.Value, len(l.Ops)+1)
	states[0] = d
	cur := d
	for i, op := range l.Ops {
		next, err := op.Apply(cur)
		if err != nil {
			// an invalid list cannot be meaningfully inverted; NoOp is the
			// closest sane fallback short of a fallible signature.
			return NoOp{}
		}
		states[i+1] = next
		cur = next
	}
	inv := make([]Operation, len(l.Ops))
	for i := len(l.Ops) - 1; i >= 0; i-- {
		inv[len(l.Ops)-1-i] = l.Ops[i].Inverse(states[i])
	}
	return List{Ops: inv}.Simplify()
}

func (l List) Compose(other Operation) (Operation, bool) {
	var tail []Operation
	if ol, ok := other.(List); ok {
		tail = ol.Ops
	} else if _, isNoOp := other.(NoOp); isNoOp {
		tail = nil
	} else {
		tail = []Operation{other}
	}
	return List{Ops: append(append([]Operation{}, l.Ops...), tail...)}.Simplify(), true
}

func (l List) Rebase(other Operation, cl Conflictless) (Operation, error) {
	lp, _, err := rebasePair(l, other, cl)
	return lp, err
}

func (l List) Drilldown(key any) Operation {
	var ops []Operation
	for _, op := range l.Ops {
		ops = append(ops, op.Drilldown(key))
	}
	return List{Ops: ops}.Simplify()
}

// ComposeList composes a sequence of operations into one, associatively
// (per the compose-associativity law in §3.4).
func ComposeList(ops []Operation) Operation {
	return List{Ops: ops}.Simplify()
}
