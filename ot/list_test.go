package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListApplyRunsInOrder(t *testing.T) {
	l := ot.List{Ops: []ot.Operation{
		ot.Math{Op: ot.Add, Operand: V.Number(1)},
		ot.Math{Op: ot.Mult, Operand: V.Number(2)},
	}}
	out, err := l.Apply(V.Number(3))
	require.NoError(t, err)
	assert.Equal(t, V.Number(8), out)
}

func TestListSimplifyFlattensAndFoldsAdjacent(t *testing.T) {
	l := ot.List{Ops: []ot.Operation{
		ot.NoOp{},
		ot.List{Ops: []ot.Operation{
			ot.Math{Op: ot.Add, Operand: V.Number(1)},
			ot.Math{Op: ot.Add, Operand: V.Number(2)},
		}},
		ot.NoOp{},
	}}
	simplified := l.Simplify()
	m, ok := simplified.(ot.Math)
	require.True(t, ok)
	assert.Equal(t, ot.Add, m.Op)
	assert.Equal(t, V.Number(3), m.Operand)
}

func TestListSimplifyEmptyIsNoOp(t *testing.T) {
	l := ot.List{Ops: []ot.Operation{ot.NoOp{}, ot.NoOp{}}}
	assert.Equal(t, ot.NoOp{}, l.Simplify())
}

func TestListInverseUndoesInReverse(t *testing.T) {
	doc := V.Number(3)
	l := ot.List{Ops: []ot.Operation{
		ot.Math{Op: ot.Add, Operand: V.Number(1)},
		ot.Math{Op: ot.Mult, Operand: V.Number(2)},
	}}
	out, err := l.Apply(doc)
	require.NoError(t, err)
	back, err := l.Inverse(doc).Apply(out)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestComposeListAssociates(t *testing.T) {
	ops := []ot.Operation{
		ot.Math{Op: ot.Add, Operand: V.Number(1)},
		ot.Math{Op: ot.Add, Operand: V.Number(2)},
		ot.Math{Op: ot.Add, Operand: V.Number(3)},
	}
	left, ok := ops[0].Compose(ops[1])
	require.True(t, ok)
	leftCombined, ok := left.Compose(ops[2])
	require.True(t, ok)

	right, ok := ops[1].Compose(ops[2])
	require.True(t, ok)
	rightCombined, ok := ops[0].Compose(right)
	require.True(t, ok)

	assert.Equal(t, leftCombined, rightCombined)
	assert.Equal(t, ot.ComposeList(ops), leftCombined)
}
