package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveApplyRelocatesRange(t *testing.T) {
	mv := ot.Move{Pos: 0, Count: 2, NewPos: 3}
	out, err := mv.Apply(V.Arr{V.Number(1), V.Number(2), V.Number(3), V.Number(4), V.Number(5)})
	require.NoError(t, err)
	assert.Equal(t, V.Arr{V.Number(3), V.Number(4), V.Number(5), V.Number(1), V.Number(2)}, out)
}

func TestMoveSimplifyNoOpWhenStationary(t *testing.T) {
	assert.Equal(t, ot.NoOp{}, ot.Move{Pos: 2, Count: 0, NewPos: 5}.Simplify())
	assert.Equal(t, ot.NoOp{}, ot.Move{Pos: 2, Count: 1, NewPos: 2}.Simplify())
}

func TestMoveInverseRoundTrips(t *testing.T) {
	doc := V.Arr{V.Number(1), V.Number(2), V.Number(3), V.Number(4), V.Number(5)}
	mv := ot.Move{Pos: 0, Count: 2, NewPos: 3}
	out, err := mv.Apply(doc)
	require.NoError(t, err)
	back, err := mv.Inverse(doc).Apply(out)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestMoveRebaseDisjointRanges(t *testing.T) {
	a := ot.Move{Pos: 0, Count: 1, NewPos: 4}
	b := ot.Move{Pos: 2, Count: 1, NewPos: 0}
	ap, err := a.Rebase(b, ot.Off)
	require.NoError(t, err)
	bp, err := b.Rebase(a, ot.Off)
	require.NoError(t, err)
	assert.NotNil(t, ap)
	assert.NotNil(t, bp)
}

func TestMoveRebaseOverlappingRangesConflict(t *testing.T) {
	a := ot.Move{Pos: 0, Count: 3, NewPos: 5}
	b := ot.Move{Pos: 1, Count: 1, NewPos: 0}
	_, err := a.Rebase(b, ot.Off)
	require.Error(t, err)
	assert.True(t, ot.IsConflict(err))
}
