package monoid

import (
	F "github.com/hiraeth-ot/otjson/function"
	S "github.com/hiraeth-ot/otjson/semigroup"
)

// FunctionMonoid forms a monoid as long as you can provide a monoid for the codomain.
func FunctionMonoid[A, B any](M Monoid[B]) Monoid[func(A) B] {
	return MakeMonoid(
		S.FunctionSemigroup[A, B](M).Concat,
		F.Constant1[A](M.Empty()),
	)
}
