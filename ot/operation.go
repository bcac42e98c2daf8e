// Package ot implements the operational-transformation algebra over JSON
// values defined in package value: the operation variants, apply, compose,
// rebase (with an opt-in conflictless mode), and the generic list-of-
// operations rebase that lifts the pairwise law to sequences.
//
// Source trees that model this kind of algebra in a dynamically typed
// language usually attach apply/compose/rebase to a prototype chain and
// dispatch rebase through a table of handlers keyed by the other operand's
// constructor. Here the operation universe is a closed sum of concrete
// struct types, and rebase is one exhaustive pair-match in rebase.go,
// rather than a per-type lookup table.
package ot

import V "github.com/hiraeth-ot/otjson/value"

// Operation is the contract every variant in the algebra satisfies.
type Operation interface {
	// Apply computes the document that results from performing this
	// operation on d.
	Apply(d V.Value) (V.Value, error)

	// Simplify returns a canonical, minimal-form equivalent of this
	// operation (dropping NoOp children, flattening nested Lists,
	// coalescing adjacent hunks, and so on).
	Simplify() Operation

	// Inverse returns the operation that undoes this one, given the
	// document state d immediately before this operation applied.
	Inverse(d V.Value) Operation

	// Compose combines this operation with other into a single operation
	// with the same effect as applying this, then other. ok is false when
	// the two cannot be merged into one operation (the caller should wrap
	// them in a List instead).
	Compose(other Operation) (combined Operation, ok bool)

	// Rebase computes this/other: this operation, transformed so it can be
	// applied after other instead of concurrently with it. It returns
	// ErrConflict (see IsConflict) when the two cannot be reconciled under
	// cl.
	Rebase(other Operation, cl Conflictless) (Operation, error)

	// Drilldown returns what this operation does to the child addressed by
	// key (an int for sequence positions, a string for object keys),
	// or NoOp{} if it does not touch that child.
	Drilldown(key any) Operation

	kind() kind
}

// kind is the closed-sum tag used to dispatch rebase and (de)serialize the
// wire format; it plays the role the spec's "_type" discriminator plays on
// the wire.
type kind int

const (
	kindNoOp kind = iota
	kindSet
	kindMath
	kindPatch
	kindMap
	kindMove
	kindApply
	kindRen
	kindList
)

// Side names which edge Decompose splits an operation relative to.
type Side int

const (
	// Before means the split point is counted from the operation's input boundary.
	Before Side = iota
	// After means the split point is counted from the operation's output boundary.
	After
)

// sequenceInner is the contract required of an operation embedded as a
// Patch hunk's inner op (see §6.3): it must know how applying itself
// changes the length of the sub-sequence it runs over, and it must be able
// to split itself at an index so Patch's compose/rebase can resolve
// partial hunk overlaps.
type sequenceInner interface {
	Operation
	// LengthChange returns the delta this operation induces when applied
	// to a sub-sequence of length oldLen.
	LengthChange(oldLen int) int
	// Decompose splits this operation at atIndex (an index into its input
	// when side is Before, into its output when side is After) into two
	// operations whose sequential composition (or, for rebase purposes,
	// juxtaposition) is equivalent to the original.
	Decompose(atIndex int, side Side) (left, right Operation)
}

func asSequenceInner(op Operation, owner string) (sequenceInner, error) {
	si, ok := op.(sequenceInner)
	if !ok {
		return nil, invalidOp(owner, "inner operation %T cannot appear inside a Patch hunk", op)
	}
	return si, nil
}
