package string

import (
	"testing"

	M "github.com/hiraeth-ot/otjson/monoid/testing"
)

func TestMonoid(t *testing.T) {
	M.AssertLaws(t, Monoid)([]string{"", "a", "some value"})
}
