package record

import (
	M "github.com/hiraeth-ot/otjson/monoid"
	G "github.com/hiraeth-ot/otjson/record/generic"
	S "github.com/hiraeth-ot/otjson/semigroup"
)

func UnionMonoid[K comparable, V any](s S.Semigroup[V]) M.Monoid[map[K]V] {
	return G.UnionMonoid[map[K]V](s)
}
