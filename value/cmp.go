package value

import (
	EQ "github.com/hiraeth-ot/otjson/eq"
	O "github.com/hiraeth-ot/otjson/ord"
)

// kindRank fixes the cross-type ordering required by the spec:
// Missing < Null < Bool < Number < String < Array < Object.
func kindRank(v Value) int {
	switch v.(type) {
	case missing:
		return 0
	case Null:
		return 1
	case Bool:
		return 2
	case Number:
		return 3
	case Str:
		return 4
	case Arr:
		return 5
	case *Object:
		return 6
	default:
		return 7
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Cmp is the total, deterministic order over Values used to break ties in
// conflictless rebase. It depends only on content, never on identity, so
// that independent processes evaluating Cmp on structurally equal values
// always agree.
func Cmp(a, b Value) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return sign(ra - rb)
	}
	switch av := a.(type) {
	case missing, Null:
		return 0
	case Bool:
		bv := b.(Bool)
		switch {
		case av == bv:
			return 0
		case !bool(av) && bool(bv):
			return -1
		default:
			return 1
		}
	case Number:
		bv := b.(Number)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case Str:
		return cmpRunes(av, b.(Str))
	case Arr:
		return cmpArr(av, b.(Arr))
	case *Object:
		return cmpObject(av, b.(*Object))
	}
	return 0
}

func cmpRunes(a, b Str) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return sign(int(a[i]) - int(b[i]))
		}
	}
	return sign(len(a) - len(b))
}

func cmpArr(a, b Arr) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	return sign(len(a) - len(b))
}

func cmpObject(a, b *Object) int {
	ka, kb := a.SortedKeys(), b.SortedKeys()
	n := len(ka)
	if len(kb) < n {
		n = len(kb)
	}
	for i := 0; i < n; i++ {
		if ka[i] != kb[i] {
			if ka[i] < kb[i] {
				return -1
			}
			return 1
		}
	}
	if len(ka) != len(kb) {
		return sign(len(ka) - len(kb))
	}
	for _, k := range ka {
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		if c := Cmp(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

// Ord is the ord.Ord instance over Value built from Cmp, usable anywhere
// the rest of the module's functional toolkit expects an Ord.
var Ord O.Ord[Value] = O.FromCompare(Cmp)

// Eq is the Eq instance over Value derived from Ord.
var Eq EQ.Eq[Value] = O.ToEq(Ord)

// Equal reports whether a and b compare equal under Cmp.
func Equal(a, b Value) bool {
	return Cmp(a, b) == 0
}
