package string

import (
	M "github.com/hiraeth-ot/otjson/monoid"
)

// Monoid is the monoid implementing string concatenation
var Monoid = M.MakeMonoid(concat, "")
