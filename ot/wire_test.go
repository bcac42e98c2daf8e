package ot_test

import (
	"encoding/json"
	"testing"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireRoundTripEveryVariant(t *testing.T) {
	cases := []ot.Operation{
		ot.NoOp{},
		ot.Set{Old: V.Number(1), New: V.Number(2)},
		ot.Math{Op: ot.Rot, Operand: V.Arr{V.Number(1), V.Number(5)}},
		ot.Patch{Hunks: []ot.Hunk{{Offset: 1, Length: 2, Op: ot.Set{Old: V.NewStr("ab"), New: V.NewStr("cd")}}}},
		ot.Map{Op: ot.Math{Op: ot.Add, Operand: V.Number(1)}},
		ot.Move{Pos: 0, Count: 2, NewPos: 4},
		ot.Apply{Ops: map[string]ot.Operation{"count": ot.Math{Op: ot.Add, Operand: V.Number(1)}}},
		ot.Ren{Map: map[string]string{"name": "title"}},
		ot.List{Ops: []ot.Operation{
			ot.Math{Op: ot.Add, Operand: V.Number(1)},
			ot.Math{Op: ot.Mult, Operand: V.Number(2)},
		}},
	}

	for _, op := range cases {
		data, err := ot.ToJSON(op)
		require.NoError(t, err)
		back, err := ot.FromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, op, back)
	}
}

// TestWireListUsesOpsArrayField pins §6.2's LIST payload shape: the same
// `ops` field name APPLY uses, carrying a JSON array instead of an object.
func TestWireListUsesOpsArrayField(t *testing.T) {
	l := ot.List{Ops: []ot.Operation{ot.Math{Op: ot.Add, Operand: V.Number(1)}}}
	data, err := ot.ToJSON(l)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	opsField, ok := raw["ops"]
	require.True(t, ok, "expected top-level `ops` field, got %s", data)
	assert.True(t, len(opsField) > 0 && opsField[0] == '[', "expected `ops` to hold a JSON array, got %s", opsField)
}

func TestWireUnknownTypeIsTypedError(t *testing.T) {
	_, err := ot.FromJSON([]byte(`{"_type":"nonsense.TAG","version":1}`))
	require.Error(t, err)
	assert.True(t, ot.IsInvalidOperation(err))
}

func TestWireSetRoundTripsOldAndNewValue(t *testing.T) {
	s := ot.Set{Old: V.NewStr("Hello"), New: V.Missing}
	data, err := ot.ToJSON(s)
	require.NoError(t, err)
	back, err := ot.FromJSON(data)
	require.NoError(t, err)
	rs, ok := back.(ot.Set)
	require.True(t, ok)
	assert.Equal(t, V.NewStr("Hello"), rs.Old)
	assert.True(t, V.IsMissing(rs.New))
}
