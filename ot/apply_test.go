package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc() V.Value {
	return V.NewObject().
		Set("title", V.NewStr("Hello")).
		Set("count", V.Number(1))
}

func TestApplyPerKeyEdit(t *testing.T) {
	a := ot.Apply{Ops: map[string]ot.Operation{
		"count": ot.Math{Op: ot.Add, Operand: V.Number(4)},
	}}
	out, err := a.Apply(newDoc())
	require.NoError(t, err)
	obj := out.(*V.Object)
	v, ok := obj.Get("count")
	require.True(t, ok)
	assert.Equal(t, V.Number(5), v)
}

func TestApplyMissingDropsKey(t *testing.T) {
	a := ot.Apply{Ops: map[string]ot.Operation{
		"title": ot.Set{Old: V.NewStr("Hello"), New: V.Missing},
	}}
	out, err := a.Apply(newDoc())
	require.NoError(t, err)
	obj := out.(*V.Object)
	assert.False(t, obj.Has("title"))
}

// TestConcurrentEditsOnDifferentKeysCommute is scenario (a) from the
// invariant suite: title and count are edited concurrently and converge
// regardless of application order.
func TestConcurrentEditsOnDifferentKeysCommute(t *testing.T) {
	doc := newDoc()
	a := ot.Apply{Ops: map[string]ot.Operation{
		"title": ot.Set{Old: V.NewStr("Hello"), New: V.NewStr("Hi")},
	}}
	b := ot.Apply{Ops: map[string]ot.Operation{
		"count": ot.Math{Op: ot.Add, Operand: V.Number(1)},
	}}

	ap, err := a.Rebase(b, ot.Off)
	require.NoError(t, err)
	bp, err := b.Rebase(a, ot.Off)
	require.NoError(t, err)

	mid1, err := a.Apply(doc)
	require.NoError(t, err)
	out1, err := bp.Apply(mid1)
	require.NoError(t, err)

	mid2, err := b.Apply(doc)
	require.NoError(t, err)
	out2, err := ap.Apply(mid2)
	require.NoError(t, err)

	assert.Equal(t, 0, ot.Cmp(out1, out2))
}

func TestRenRenamesAndDeduplicates(t *testing.T) {
	r := ot.Ren{Map: map[string]string{"name": "title"}}
	out, err := r.Apply(newDoc())
	require.NoError(t, err)
	obj := out.(*V.Object)
	assert.False(t, obj.Has("title"))
	v, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, V.NewStr("Hello"), v)
}

func TestRenSelfEntryPreservesAndDuplicates(t *testing.T) {
	r := ot.Ren{Map: map[string]string{"title": "title", "alias": "title"}}
	out, err := r.Apply(newDoc())
	require.NoError(t, err)
	obj := out.(*V.Object)
	assert.True(t, obj.Has("title"))
	assert.True(t, obj.Has("alias"))
}

func TestRenRebaseEqualMapsBecomeNoOp(t *testing.T) {
	a := ot.Ren{Map: map[string]string{"name": "title"}}
	b := ot.Ren{Map: map[string]string{"name": "title"}}
	ap, err := a.Rebase(b, ot.Off)
	require.NoError(t, err)
	bp, err := b.Rebase(a, ot.Off)
	require.NoError(t, err)
	assert.Equal(t, ot.NoOp{}, ap)
	assert.Equal(t, ot.NoOp{}, bp)
}
