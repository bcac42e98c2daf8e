package array

import (
	"testing"

	M "github.com/hiraeth-ot/otjson/monoid/testing"
)

func TestMonoid(t *testing.T) {
	M.AssertLaws(t, Monoid[int]())([][]int{{}, {1}, {1, 2}})
}
