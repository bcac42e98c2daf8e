package ot_test

import (
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMathMathRebaseSameOperatorCommutes(t *testing.T) {
	a := ot.Math{Op: ot.Add, Operand: V.Number(3)}
	b := ot.Math{Op: ot.Add, Operand: V.Number(4)}
	ap, err := a.Rebase(b, ot.Off)
	require.NoError(t, err)
	bp, err := b.Rebase(a, ot.Off)
	require.NoError(t, err)
	assert.Equal(t, a, ap)
	assert.Equal(t, b, bp)
}

func TestMathMathRebaseDifferentOperatorsConflictWithoutConflictless(t *testing.T) {
	a := ot.Math{Op: ot.Add, Operand: V.Number(1)}
	b := ot.Math{Op: ot.Mult, Operand: V.Number(2)}
	_, err := a.Rebase(b, ot.Off)
	require.Error(t, err)
	assert.True(t, ot.IsConflict(err))
}

func TestMathMathRebaseDeterministicWithDocument(t *testing.T) {
	doc := V.Number(10)
	a := ot.Math{Op: ot.Add, Operand: V.Number(1)}
	b := ot.Math{Op: ot.Mult, Operand: V.Number(2)}

	ap, errA := a.Rebase(b, ot.WithDocument(doc))
	bp, errB := b.Rebase(a, ot.WithDocument(doc))
	require.NoError(t, errA)
	require.NoError(t, errB)

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

func TestRebaseArrayFoldsMultipleBaseOps(t *testing.T) {
	base := []ot.Operation{
		ot.Math{Op: ot.Add, Operand: V.Number(1)},
		ot.Math{Op: ot.Add, Operand: V.Number(2)},
	}
	ops := []ot.Operation{ot.Math{Op: ot.Mult, Operand: V.Number(3)}}
	out, err := ot.RebaseArray(base, ops, ot.On())
	require.NoError(t, err)
	require.Len(t, out, 1)
}

// TestRebaseArrayAdvancesConflictlessDocumentByHead pins §4.4 case 3: when
// rebasing a multi-op side (m=1, n>1) against a single base op, the tail's
// conflictless document must advance by applying the *head* of ops, not
// base's single op — they are concurrent on head(doc), not base(doc).
func TestRebaseArrayAdvancesConflictlessDocumentByHead(t *testing.T) {
	doc := V.Number(10)
	base := []ot.Operation{ot.Math{Op: ot.Add, Operand: V.Number(2)}}
	ops := []ot.Operation{
		ot.Math{Op: ot.Add, Operand: V.Number(5)},
		ot.Math{Op: ot.Mult, Operand: V.Number(3)},
	}

	out, err := ot.RebaseArray(base, ops, ot.WithDocument(doc))
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, ot.Math{Op: ot.Add, Operand: V.Number(5)}, out[0])
	// tail materialises against head.Apply(doc) = 15, not base[0].Apply(doc) = 12:
	// the Set runs from Add2(15) = 17 to Add2(Mult3(15)) = 47.
	assert.Equal(t, ot.Set{Old: V.Number(17), New: V.Number(47)}, out[1])
}

func TestMapRebasePair(t *testing.T) {
	a := ot.Map{Op: ot.Math{Op: ot.Add, Operand: V.Number(1)}}
	b := ot.Map{Op: ot.Math{Op: ot.Add, Operand: V.Number(2)}}
	ap, err := a.Rebase(b, ot.Off)
	require.NoError(t, err)
	assert.Equal(t, a, ap)
}
