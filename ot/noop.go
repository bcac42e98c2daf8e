package ot

import V "github.com/hiraeth-ot/otjson/value"

// NoOp is the operation that leaves the document unchanged. It is the
// neutral element of Compose and the universal absorber of Rebase.
type NoOp struct{}

func (NoOp) kind() kind { return kindNoOp }

func (NoOp) Apply(d V.Value) (V.Value, error) { return d, nil }

func (NoOp) Simplify() Operation { return NoOp{} }

func (NoOp) Inverse(V.Value) Operation { return NoOp{} }

func (NoOp) Compose(other Operation) (Operation, bool) {
	return other.Simplify(), true
}

func (n NoOp) Rebase(other Operation, cl Conflictless) (Operation, error) {
	ap, _, err := rebasePair(n, other, cl)
	return ap, err
}

func (NoOp) Drilldown(any) Operation { return NoOp{} }

// LengthChange implements sequenceInner: NoOp never changes length.
func (NoOp) LengthChange(int) int { return 0 }

// Decompose implements sequenceInner: NoOp splits into two NoOps.
func (NoOp) Decompose(int, Side) (Operation, Operation) {
	return NoOp{}, NoOp{}
}
