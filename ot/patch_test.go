package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchApplyReplacesHunk(t *testing.T) {
	doc := V.NewStr("Hello World!")
	p := ot.Patch{Hunks: []ot.Hunk{
		{Offset: 6, Length: 5, Op: ot.Set{Old: V.NewStr("World"), New: V.NewStr("There")}},
	}}
	out, err := p.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, V.NewStr("Hello There!"), out)
}

func TestPatchApplyRejectsOutOfRangeHunk(t *testing.T) {
	doc := V.NewStr("hi")
	p := ot.Patch{Hunks: []ot.Hunk{{Offset: 0, Length: 10, Op: ot.NoOp{}}}}
	_, err := p.Apply(doc)
	require.Error(t, err)
	assert.True(t, ot.IsInvalidOperation(err))
}

func TestPatchComposeDisjointHunks(t *testing.T) {
	a := ot.Patch{Hunks: []ot.Hunk{{Offset: 0, Length: 1, Op: ot.Set{Old: V.NewStr("H"), New: V.NewStr("J")}}}}
	b := ot.Patch{Hunks: []ot.Hunk{{Offset: 11, Length: 1, Op: ot.Set{Old: V.NewStr("!"), New: V.NewStr("?")}}}}
	combined, ok := a.Compose(b)
	require.True(t, ok)
	out, err := combined.Apply(V.NewStr("Hello World!"))
	require.NoError(t, err)
	assert.Equal(t, V.NewStr("Jello World?"), out)
}

func TestPatchRebaseNonOverlappingHunksShiftByLengthChange(t *testing.T) {
	doc := V.NewStr("Hello World!")
	a := ot.Patch{Hunks: []ot.Hunk{
		{Offset: 0, Length: 5, Op: ot.Set{Old: V.NewStr("Hello"), New: V.NewStr("Hi")}},
	}}
	b := ot.Patch{Hunks: []ot.Hunk{
		{Offset: 6, Length: 5, Op: ot.Set{Old: V.NewStr("World"), New: V.NewStr("There")}},
	}}

	ap, err := a.Rebase(b, ot.Off)
	require.NoError(t, err)
	bp, err := b.Rebase(a, ot.Off)
	require.NoError(t, err)

	mid, err := a.Apply(doc)
	require.NoError(t, err)
	out1, err := bp.Apply(mid)
	require.NoError(t, err)

	mid2, err := b.Apply(doc)
	require.NoError(t, err)
	out2, err := ap.Apply(mid2)
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
}

// TestPatchRebaseCoincidentZeroLengthInsertsRequireConflictless exercises
// the §4.2 "lower-cmp-first" zero-length-insert policy: two concurrent
// insertions at the same position conflict unless Conflictless is enabled.
func TestPatchRebaseCoincidentZeroLengthInsertsRequireConflictless(t *testing.T) {
	a := ot.Patch{Hunks: []ot.Hunk{
		{Offset: 5, Length: 0, Op: ot.Set{Old: V.NewStr(""), New: V.NewStr("-A-")}},
	}}
	b := ot.Patch{Hunks: []ot.Hunk{
		{Offset: 5, Length: 0, Op: ot.Set{Old: V.NewStr(""), New: V.NewStr("-B-")}},
	}}

	_, err := a.Rebase(b, ot.Off)
	require.Error(t, err)
	assert.True(t, ot.IsConflict(err))

	ap, err := a.Rebase(b, ot.On())
	require.NoError(t, err)
	bp, err := b.Rebase(a, ot.On())
	require.NoError(t, err)

	doc := V.NewStr("Hello World!")
	mid, err := a.Apply(doc)
	require.NoError(t, err)
	_, err = bp.Apply(mid)
	require.NoError(t, err)

	mid2, err := b.Apply(doc)
	require.NoError(t, err)
	_, err = ap.Apply(mid2)
	require.NoError(t, err)
}

func TestHunkInnerSetDecomposeSplitsAtIndex(t *testing.T) {
	s := ot.Set{Old: V.NewStr("World"), New: V.NewStr("There")}
	left, right := s.Decompose(2, ot.Before)
	ls, ok := left.(ot.Set)
	require.True(t, ok)
	rs, ok := right.(ot.Set)
	require.True(t, ok)
	assert.Equal(t, V.NewStr("Wo"), ls.Old)
	assert.Equal(t, V.NewStr("rld"), rs.Old)
}
