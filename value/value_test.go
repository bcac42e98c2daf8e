package value_test

import (
	"testing"

	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
)

func TestObjectSetDelete(t *testing.T) {
	o := V.NewObject().Set("a", V.Number(1)).Set("b", V.Number(2))
	assert.Equal(t, 2, o.Len())

	v, ok := o.Get("a")
	assert.True(t, ok)
	assert.Equal(t, V.Number(1), v)

	o2 := o.Delete("a")
	assert.Equal(t, 2, o.Len(), "original object is untouched")
	assert.Equal(t, 1, o2.Len())
	assert.False(t, o2.Has("a"))
}

func TestObjectKeyOrderPreserved(t *testing.T) {
	o := V.NewObject().Set("z", V.Null{}).Set("a", V.Null{})
	assert.Equal(t, []string{"z", "a"}, o.Keys())
	assert.Equal(t, []string{"a", "z"}, o.SortedKeys())
}

func TestMissingIsNotLive(t *testing.T) {
	assert.True(t, V.IsMissing(V.Missing))
	assert.False(t, V.IsMissing(V.Null{}))
}

func TestJSONRoundTrip(t *testing.T) {
	doc := V.NewObject().
		Set("title", V.NewStr("Hello World!")).
		Set("count", V.Number(10)).
		Set("tags", V.Arr{V.NewStr("a"), V.Bool(true), V.Null{}})

	data, err := V.ToJSON(doc)
	assert.NoError(t, err)

	back, err := V.FromJSON(data)
	assert.NoError(t, err)
	assert.Equal(t, 0, V.Cmp(doc, back))
}
