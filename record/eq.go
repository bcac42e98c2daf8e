package record

import (
	E "github.com/hiraeth-ot/otjson/eq"
	G "github.com/hiraeth-ot/otjson/record/generic"
)

func Eq[K comparable, V any](e E.Eq[V]) E.Eq[map[K]V] {
	return G.Eq[map[K]V, K, V](e)
}
