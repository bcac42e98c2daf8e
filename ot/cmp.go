package ot

import V "github.com/hiraeth-ot/otjson/value"

// Cmp is the total order over Values used to break ties in conflictless
// rebases, re-exported at package ot per the public API surface in §6.1.
func Cmp(a, b V.Value) int {
	return V.Cmp(a, b)
}
