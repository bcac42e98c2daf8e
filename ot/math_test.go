package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathAddApply(t *testing.T) {
	m := ot.Math{Op: ot.Add, Operand: V.Number(5)}
	out, err := m.Apply(V.Number(10))
	require.NoError(t, err)
	assert.Equal(t, V.Number(15), out)
}

func TestMathAddSimplifiesToNoOp(t *testing.T) {
	m := ot.Math{Op: ot.Add, Operand: V.Number(0)}
	assert.Equal(t, ot.NoOp{}, m.Simplify())
}

func TestMathMultSimplifiesToNoOp(t *testing.T) {
	m := ot.Math{Op: ot.Mult, Operand: V.Number(1)}
	assert.Equal(t, ot.NoOp{}, m.Simplify())
}

func TestMathAndOrIdentitySimplify(t *testing.T) {
	assert.Equal(t, ot.NoOp{}, ot.Math{Op: ot.And, Operand: V.Bool(true)}.Simplify())
	assert.Equal(t, ot.NoOp{}, ot.Math{Op: ot.Or, Operand: V.Bool(false)}.Simplify())
}

func TestMathComposeAdd(t *testing.T) {
	a := ot.Math{Op: ot.Add, Operand: V.Number(3)}
	b := ot.Math{Op: ot.Add, Operand: V.Number(4)}
	combined, ok := a.Compose(b)
	require.True(t, ok)
	m, ok := combined.(ot.Math)
	require.True(t, ok)
	assert.Equal(t, ot.Add, m.Op)
	assert.Equal(t, V.Number(7), m.Operand)
}

func TestMathComposeMult(t *testing.T) {
	a := ot.Math{Op: ot.Mult, Operand: V.Number(2)}
	b := ot.Math{Op: ot.Mult, Operand: V.Number(3)}
	combined, ok := a.Compose(b)
	require.True(t, ok)
	m, ok := combined.(ot.Math)
	require.True(t, ok)
	assert.Equal(t, V.Number(6), m.Operand)
}

func TestMathRotWrapsAndRejectsOutOfRange(t *testing.T) {
	rot := ot.Math{Op: ot.Rot, Operand: V.Arr{V.Number(2), V.Number(5)}}
	out, err := rot.Apply(V.Number(4))
	require.NoError(t, err)
	assert.Equal(t, V.Number(1), out)

	_, err = rot.Apply(V.Number(5))
	require.Error(t, err)
	assert.True(t, ot.IsInvalidOperation(err))
}

func TestMathNotInverseIsSelf(t *testing.T) {
	not := ot.Math{Op: ot.Not}
	assert.Equal(t, not, not.Inverse(V.Bool(true)))
	out, err := not.Apply(V.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, V.Bool(false), out)
}

func TestMathBitwiseOnInteger(t *testing.T) {
	and := ot.Math{Op: ot.And, Operand: V.Number(6)}
	out, err := and.Apply(V.Number(3))
	require.NoError(t, err)
	assert.Equal(t, V.Number(2), out)
}

func TestMathOpStringRoundTrip(t *testing.T) {
	for _, op := range []ot.MathOp{ot.Add, ot.Mult, ot.Rot, ot.And, ot.Or, ot.Xor, ot.Not} {
		data, err := ot.ToJSON(ot.Math{Op: op, Operand: V.Number(1)})
		require.NoError(t, err)
		back, err := ot.FromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, op, back.(ot.Math).Op)
	}
}
