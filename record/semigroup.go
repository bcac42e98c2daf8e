package record

import (
	G "github.com/hiraeth-ot/otjson/record/generic"
	S "github.com/hiraeth-ot/otjson/semigroup"
)

func UnionSemigroup[K comparable, V any](s S.Semigroup[V]) S.Semigroup[map[K]V] {
	return G.UnionSemigroup[map[K]V](s)
}
