package ot

import V "github.com/hiraeth-ot/otjson/value"

// Ren is an atomic multi-way rename/duplicate/delete on an object: for
// every entry new_key -> old_key in Map, new_key is assigned the value
// currently at old_key; afterwards any old_key not itself a new_key is
// removed. A self-entry k -> k both preserves k and lets it be duplicated
// elsewhere in the same Ren.
type Ren struct {
	Map map[string]string // new_key -> old_key
}

func (Ren) kind() kind { return kindRen }

func (r Ren) Apply(d V.Value) (V.Value, error) {
	obj, ok := d.(*V.Object)
	if !ok {
		return nil, invalidOp("Ren", "requires an object document, got %T", d)
	}
	out := obj.Clone()
	assigned := map[string]V.Value{}
	for newKey, oldKey := range r.Map {
		v, found := obj.Get(oldKey)
		if !found {
			return nil, invalidOp("Ren", "source key %q does not exist", oldKey)
		}
		assigned[newKey] = v
	}
	for newKey, v := range assigned {
		out = out.Set(newKey, v)
	}
	isNewKey := map[string]bool{}
	for newKey := range r.Map {
		isNewKey[newKey] = true
	}
	for _, oldKey := range r.Map {
		if !isNewKey[oldKey] {
			out = out.Delete(oldKey)
		}
	}
	return out, nil
}

func (r Ren) Simplify() Operation {
	m := map[string]string{}
	for newKey, oldKey := range r.Map {
		if newKey == oldKey {
			continue
		}
		m[newKey] = oldKey
	}
	if len(m) == 0 {
		return NoOp{}
	}
	return Ren{Map: m}
}

func (r Ren) Inverse(V.Value) Operation {
	inv := map[string]string{}
	for newKey, oldKey := range r.Map {
		inv[oldKey] = newKey
	}
	return Ren{Map: inv}.Simplify()
}

func (r Ren) Compose(other Operation) (Operation, bool) {
	or, ok := other.(Ren)
	if !ok {
		if _, isNoOp := other.(NoOp); isNoOp {
			return r.Simplify(), true
		}
		return nil, false
	}
	m := map[string]string{}
	for newKey, oldKey := range r.Map {
		if via, found := or.Map[oldKey]; found {
			m[newKey] = via
		} else {
			m[newKey] = oldKey
		}
	}
	for newKey, oldKey := range or.Map {
		if _, found := r.Map[newKey]; !found {
			m[newKey] = oldKey
		}
	}
	return Ren{Map: m}.Simplify(), true
}

func (r Ren) Rebase(other Operation, cl Conflictless) (Operation, error) {
	rp, _, err := rebasePair(r, other, cl)
	return rp, err
}

func (r Ren) Drilldown(key any) Operation {
	return NoOp{}
}

// renRebasePair implements the rebase policy of §4.3: equal maps both
// become NoOp; conflicting target/source claims resolve under conflictless
// by cmp on the contested key; identical entries are dropped from the
// rebased form since they are already reflected on both sides.
func renRebasePair(a, b Ren, cl Conflictless) (Operation, Operation, error) {
	if renMapsEqual(a.Map, b.Map) {
		return NoOp{}, NoOp{}, nil
	}
	aOut := map[string]string{}
	bOut := map[string]string{}

	sourceOwner := map[string]string{} // old_key -> new_key, from a
	for newKey, oldKey := range a.Map {
		sourceOwner[oldKey] = newKey
	}
	targetOwner := map[string]bool{}
	for newKey := range a.Map {
		targetOwner[newKey] = true
	}

	for newKey, oldKey := range a.Map {
		aOut[newKey] = oldKey
	}
	for newKey, oldKey := range b.Map {
		if aOldKey, sameTarget := a.Map[newKey]; sameTarget {
			if aOldKey == oldKey {
				delete(aOut, newKey)
				continue // identical entry, already applied on both sides
			}
			// same new_key claimed from different old_keys: conflict.
			if !cl.Enabled {
				return nil, nil, ErrConflict
			}
			if V.Cmp(V.NewStr(oldKey), V.NewStr(aOldKey)) > 0 {
				aOut[newKey] = oldKey
			}
			continue
		}
		if existingNewKey, claimed := sourceOwner[oldKey]; claimed && existingNewKey != newKey {
			// same old_key renamed to two different new_keys: conflict.
			if !cl.Enabled {
				return nil, nil, ErrConflict
			}
			if V.Cmp(V.NewStr(newKey), V.NewStr(existingNewKey)) > 0 {
				bOut[newKey] = oldKey
			}
			continue
		}
		bOut[newKey] = oldKey
	}
	return Ren{Map: aOut}.Simplify(), Ren{Map: bOut}.Simplify(), nil
}

func renMapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
