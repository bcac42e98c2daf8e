package array

import (
	F "github.com/hiraeth-ot/otjson/function"
	M "github.com/hiraeth-ot/otjson/magma"
)

func ConcatAll[A any](m M.Magma[A]) func(A) func([]A) A {
	return F.Bind1st(Reduce[A, A], m.Concat)
}
