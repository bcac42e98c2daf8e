package option

import (
	M "github.com/hiraeth-ot/otjson/monoid"
	S "github.com/hiraeth-ot/otjson/semigroup"
)

func ApplySemigroup[A any](s S.Semigroup[A]) S.Semigroup[Option[A]] {
	return S.ApplySemigroup(MonadMap[A, func(A) A], MonadAp[A, A], s)
}

func ApplicativeMonoid[A any](m M.Monoid[A]) M.Monoid[Option[A]] {
	return M.ApplicativeMonoid(Of[A], MonadMap[A, func(A) A], MonadAp[A, A], m)
}
