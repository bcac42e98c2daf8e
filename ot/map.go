package ot

import V "github.com/hiraeth-ot/otjson/value"

// Map applies Op to every element of a String or Array. Over strings, Op
// must yield exactly one code point per element (enforced at apply time).
type Map struct {
	Op Operation
}

func (Map) kind() kind { return kindMap }

func (m Map) Apply(d V.Value) (V.Value, error) {
	switch t := d.(type) {
	case V.Str:
		out := make(V.Str, 0, len(t))
		for _, r := range t {
			res, err := m.Op.Apply(V.Str{r})
			if err != nil {
				return nil, err
			}
			rs, ok := res.(V.Str)
			if !ok || len(rs) != 1 {
				return nil, invalidOp("Map", "inner op must yield a single code point over a string, got %v", res)
			}
			out = append(out, rs[0])
		}
		return out, nil
	case V.Arr:
		out := make(V.Arr, 0, len(t))
		for _, elem := range t {
			res, err := m.Op.Apply(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, res)
		}
		return out, nil
	default:
		return nil, invalidOp("Map", "requires a string or array document, got %T", d)
	}
}

func (m Map) Simplify() Operation {
	inner := m.Op.Simplify()
	if _, ok := inner.(NoOp); ok {
		return NoOp{}
	}
	return Map{Op: inner}
}

func (m Map) Inverse(prior V.Value) Operation {
	switch t := prior.(type) {
	case V.Str:
		if len(t) == 0 {
			return NoOp{}
		}
		return Map{Op: m.Op.Inverse(V.Str{t[0]})}
	case V.Arr:
		if len(t) == 0 {
			return NoOp{}
		}
		return Map{Op: m.Op.Inverse(t[0])}
	default:
		return Map{Op: m.Op.Inverse(V.Missing)}
	}
}

func (m Map) Compose(other Operation) (Operation, bool) {
	om, ok := other.(Map)
	if !ok {
		if _, isNoOp := other.(NoOp); isNoOp {
			return m.Simplify(), true
		}
		return nil, false
	}
	combined, ok := m.Op.Compose(om.Op)
	if !ok {
		return nil, false
	}
	return Map{Op: combined}.Simplify(), true
}

func (m Map) Rebase(other Operation, cl Conflictless) (Operation, error) {
	mp, _, err := rebasePair(m, other, cl)
	return mp, err
}

func (m Map) Drilldown(any) Operation {
	return m.Op
}

// LengthChange implements sequenceInner: Map never changes length.
func (m Map) LengthChange(int) int { return 0 }

// Decompose implements sequenceInner: a Map splits into two Maps with the
// same inner op.
func (m Map) Decompose(int, Side) (Operation, Operation) {
	return m, m
}

func mapRebasePair(a, b Map, cl Conflictless) (Operation, Operation, error) {
	aInner, bInner, err := rebasePair(a.Op, b.Op, cl)
	if err != nil {
		return nil, nil, err
	}
	return Map{Op: aInner}.Simplify(), Map{Op: bInner}.Simplify(), nil
}
