package value_test

import (
	"testing"

	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
)

func TestCmpCrossType(t *testing.T) {
	ordered := []V.Value{
		V.Missing,
		V.Null{},
		V.Bool(false),
		V.Bool(true),
		V.Number(-1),
		V.Number(0),
		V.Number(1),
		V.NewStr("a"),
		V.NewStr("b"),
		V.Arr{V.Number(1)},
		V.NewObject().Set("a", V.Number(1)),
	}
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			assert.Negative(t, V.Cmp(ordered[i], ordered[j]), "index %d should be < index %d", i, j)
			assert.Positive(t, V.Cmp(ordered[j], ordered[i]))
		}
	}
}

func TestCmpReflexive(t *testing.T) {
	vals := []V.Value{
		V.Null{}, V.Bool(true), V.Number(3.14), V.NewStr("hi"),
		V.Arr{V.Number(1), V.Number(2)},
		V.NewObject().Set("a", V.Number(1)).Set("b", V.Number(2)),
	}
	for _, v := range vals {
		assert.Equal(t, 0, V.Cmp(v, v))
	}
}

func TestCmpObjectOrderIndependent(t *testing.T) {
	a := V.NewObject().Set("a", V.Number(1)).Set("b", V.Number(2))
	b := V.NewObject().Set("b", V.Number(2)).Set("a", V.Number(1))
	assert.Equal(t, 0, V.Cmp(a, b), "key construction order must not affect Cmp")
}

func TestCmpStringPrefix(t *testing.T) {
	assert.Negative(t, V.Cmp(V.NewStr("ab"), V.NewStr("abc")))
	assert.Positive(t, V.Cmp(V.NewStr("abc"), V.NewStr("ab")))
}
