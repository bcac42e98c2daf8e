package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetApplyRequiresMatchingOld(t *testing.T) {
	s := ot.Set{Old: V.Number(1), New: V.Number(2)}
	out, err := s.Apply(V.Number(1))
	require.NoError(t, err)
	assert.Equal(t, V.Number(2), out)

	_, err = s.Apply(V.Number(99))
	require.Error(t, err)
	assert.True(t, ot.IsInvalidOperation(err))
}

func TestSetSimplifyCollapsesIdentity(t *testing.T) {
	s := ot.Set{Old: V.Number(1), New: V.Number(1)}
	assert.Equal(t, ot.NoOp{}, s.Simplify())
}

func TestSetInverse(t *testing.T) {
	s := ot.Set{Old: V.Number(1), New: V.Number(2)}
	inv := s.Inverse(nil)
	assert.Equal(t, ot.Set{Old: V.Number(2), New: V.Number(1)}, inv)
}

func TestSetComposeAppliesOtherToNew(t *testing.T) {
	s := ot.Set{Old: V.Number(1), New: V.Number(2)}
	add := ot.Math{Op: ot.Add, Operand: V.Number(5)}
	combined, ok := s.Compose(add)
	require.True(t, ok)
	cs, ok := combined.(ot.Set)
	require.True(t, ok)
	assert.Equal(t, V.Number(1), cs.Old)
	assert.Equal(t, V.Number(7), cs.New)
}

func TestSetVsMathRebaseConflictlessTracksReplace(t *testing.T) {
	s := ot.Set{Old: V.Number(1), New: V.Number(10)}
	add := ot.Math{Op: ot.Add, Operand: V.Number(5)}

	sp, err := s.Rebase(add, ot.On())
	require.NoError(t, err)
	rs, ok := sp.(ot.Set)
	require.True(t, ok)
	assert.Equal(t, V.Number(6), rs.Old)
	assert.Equal(t, V.Number(15), rs.New)

	addP, err := add.Rebase(s, ot.On())
	require.NoError(t, err)
	assert.Equal(t, ot.NoOp{}, addP)
}

func TestSetVsMathRebaseConflictsWhenDisabled(t *testing.T) {
	s := ot.Set{Old: V.Number(1), New: V.Number(10)}
	add := ot.Math{Op: ot.Add, Operand: V.Number(5)}

	_, err := s.Rebase(add, ot.Off)
	require.Error(t, err)
	assert.True(t, ot.IsConflict(err))
}
