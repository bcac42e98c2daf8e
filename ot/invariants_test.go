package ot_test

import (
	"math/rand"
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	"github.com/hiraeth-ot/otjson/ot/random"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRebaseConvergence is the property-based harness required by §8:
// for documents of several shapes, two independently generated operations
// rebased against each other converge to the same result regardless of
// application order, whenever both rebases succeed.
func TestRebaseConvergence(t *testing.T) {
	docs := []V.Value{
		V.Number(10),
		V.NewStr("Hello World!"),
		V.Arr{V.Number(1), V.Number(2), V.Number(3), V.Number(4)},
		V.NewObject().Set("title", V.NewStr("Hello")).Set("count", V.Number(1)),
	}

	r := rand.New(rand.NewSource(42))
	for _, doc := range docs {
		for i := 0; i < 20; i++ {
			a := random.Op(r, doc)
			b := random.Op(r, doc)

			ap, errA := a.Rebase(b, ot.WithDocument(doc))
			bp, errB := b.Rebase(a, ot.WithDocument(doc))
			if errA != nil || errB != nil {
				continue
			}

			mid1, err1 := a.Apply(doc)
			mid2, err2 := b.Apply(doc)
			if err1 != nil || err2 != nil {
				continue
			}
			out1, err1 := bp.Apply(mid1)
			out2, err2 := ap.Apply(mid2)
			if err1 != nil || err2 != nil {
				continue
			}
			assert.Equal(t, 0, ot.Cmp(out1, out2), "diverged for doc %v: a=%+v b=%+v", doc, a, b)
		}
	}
}

// TestSimplifyIdempotent: Simplify composed with itself is itself, for any
// randomly generated operation.
func TestSimplifyIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	doc := V.Number(3)
	for i := 0; i < 20; i++ {
		op := random.Op(r, doc)
		once := op.Simplify()
		twice := once.Simplify()
		assert.Equal(t, once, twice)
	}
}

// TestInverseRoundTrip: applying an op then its inverse recovers the prior
// document, for every op the generator can produce that applies cleanly.
func TestInverseRoundTrip(t *testing.T) {
	docs := []V.Value{
		V.Number(10),
		V.NewStr("Hello World!"),
		V.Arr{V.Number(1), V.Number(2), V.Number(3)},
	}
	r := rand.New(rand.NewSource(99))
	for _, doc := range docs {
		for i := 0; i < 15; i++ {
			op := random.Op(r, doc)
			out, err := op.Apply(doc)
			if err != nil {
				continue
			}
			back, err := op.Inverse(doc).Apply(out)
			if err != nil {
				continue
			}
			assert.Equal(t, 0, ot.Cmp(doc, back), "inverse did not round-trip for op %+v on doc %v", op, doc)
		}
	}
}

func TestComposeThenApplyMatchesSequentialApply(t *testing.T) {
	doc := V.Number(3)
	a := ot.Math{Op: ot.Add, Operand: V.Number(2)}
	b := ot.Math{Op: ot.Add, Operand: V.Number(5)}

	combined, ok := a.Compose(b)
	require.True(t, ok)
	viaCompose, err := combined.Apply(doc)
	require.NoError(t, err)

	mid, err := a.Apply(doc)
	require.NoError(t, err)
	viaSequential, err := b.Apply(mid)
	require.NoError(t, err)

	assert.Equal(t, viaSequential, viaCompose)
}
