package ot

import (
	"encoding/json"

	F "github.com/hiraeth-ot/otjson/function"
	J "github.com/hiraeth-ot/otjson/json"
	V "github.com/hiraeth-ot/otjson/value"
)

// protocolVersion is carried on every wire envelope so future revisions of
// the format can be distinguished from this one.
const protocolVersion = 1

// wireHunk is the JSON shape of a Patch hunk.
type wireHunk struct {
	Offset int             `json:"offset"`
	Length int             `json:"length"`
	Op     json.RawMessage `json:"op"`
}

// wireEnvelope is the JSON shape every operation serialises to: a `_type`
// discriminator of the form `module.VARIANT`, a protocol version, and
// whichever payload fields that variant uses (see §6.2).
type wireEnvelope struct {
	Type    string `json:"_type"`
	Version int    `json:"version"`

	Value        json.RawMessage `json:"value,omitempty"`
	ValueMissing bool            `json:"value_missing,omitempty"`
	// OldValue/OldValueMissing extend the documented SET payload (which
	// names only the new-side `value`) so a Set's old side, required for
	// Apply-time validation and clean round-tripping, survives the wire.
	OldValue        json.RawMessage `json:"old_value,omitempty"`
	OldValueMissing bool            `json:"old_value_missing,omitempty"`

	Operator string          `json:"operator,omitempty"`
	Operand  json.RawMessage `json:"operand,omitempty"`

	Hunks []wireHunk `json:"hunks,omitempty"`

	Op json.RawMessage `json:"op,omitempty"`

	Pos    *int `json:"pos,omitempty"`
	Count  *int `json:"count,omitempty"`
	NewPos *int `json:"new_pos,omitempty"`

	// Ops carries APPLY's per-key operations (a JSON object) or LIST's
	// sequence of operations (a JSON array); both use the `ops` field
	// name per §6.2, distinguished by shape rather than by field.
	Ops json.RawMessage `json:"ops,omitempty"`

	Map map[string]string `json:"map,omitempty"`
}

// ToJSON serialises op into the wire format described in §6.2.
func ToJSON(op Operation) ([]byte, error) {
	env, err := toWireEnvelope(op)
	if err != nil {
		return nil, err
	}
	return J.Marshal(env)
}

// FromJSON deserialises the wire format described in §6.2 back into an
// Operation. Unknown `_type` discriminators are a typed error, not a
// silent default.
func FromJSON(data []byte) (Operation, error) {
	env, err := J.Unmarshal[wireEnvelope](data)
	if err != nil {
		return nil, err
	}
	return fromWireEnvelope(&env)
}

func encodeValueField(v V.Value) (json.RawMessage, bool, error) {
	if V.IsMissing(v) {
		return nil, true, nil
	}
	data, err := V.ToJSON(v)
	if err != nil {
		return nil, false, err
	}
	return data, false, nil
}

func decodeValueField(data json.RawMessage, missing bool) (V.Value, error) {
	if missing {
		return V.Missing, nil
	}
	if len(data) == 0 {
		return V.Missing, nil
	}
	return V.FromJSON(data)
}

func toWireEnvelope(op Operation) (*wireEnvelope, error) {
	env := &wireEnvelope{Version: protocolVersion}
	switch t := op.(type) {
	case NoOp:
		env.Type = "values.NO_OP"

	case Set:
		env.Type = "values.SET"
		val, missing, err := encodeValueField(t.New)
		if err != nil {
			return nil, err
		}
		env.Value, env.ValueMissing = val, missing
		oldVal, oldMissing, err := encodeValueField(t.Old)
		if err != nil {
			return nil, err
		}
		env.OldValue, env.OldValueMissing = oldVal, oldMissing

	case Math:
		env.Type = "values.MATH"
		env.Operator = t.Op.String()
		operand, err := V.ToJSON(t.Operand)
		if err != nil {
			return nil, err
		}
		env.Operand = operand

	case Patch:
		env.Type = "sequences.PATCH"
		for _, h := range t.Hunks {
			inner, err := ToJSON(h.Op)
			if err != nil {
				return nil, err
			}
			env.Hunks = append(env.Hunks, wireHunk{Offset: h.Offset, Length: h.Length, Op: inner})
		}

	case Map:
		env.Type = "sequences.MAP"
		inner, err := ToJSON(t.Op)
		if err != nil {
			return nil, err
		}
		env.Op = inner

	case Move:
		env.Type = "sequences.MOVE"
		env.Pos, env.Count, env.NewPos = &t.Pos, &t.Count, &t.NewPos

	case Apply:
		env.Type = "objects.APPLY"
		byKey := map[string]json.RawMessage{}
		for key, inner := range t.Ops {
			data, err := ToJSON(inner)
			if err != nil {
				return nil, err
			}
			byKey[key] = data
		}
		data, err := J.Marshal(byKey)
		if err != nil {
			return nil, err
		}
		env.Ops = data

	case Ren:
		env.Type = "objects.REN"
		env.Map = t.Map

	case List:
		env.Type = "lists.LIST"
		items := make([]json.RawMessage, 0, len(t.Ops))
		for _, inner := range t.Ops {
			data, err := ToJSON(inner)
			if err != nil {
				return nil, err
			}
			items = append(items, data)
		}
		data, err := J.Marshal(items)
		if err != nil {
			return nil, err
		}
		env.Ops = data

	default:
		return nil, invalidOp("ToJSON", "unknown operation type %T", op)
	}
	return env, nil
}

func fromWireEnvelope(env *wireEnvelope) (Operation, error) {
	switch env.Type {
	case "values.NO_OP":
		return NoOp{}, nil

	case "values.SET":
		newVal, err := decodeValueField(env.Value, env.ValueMissing)
		if err != nil {
			return nil, err
		}
		oldVal, err := decodeValueField(env.OldValue, env.OldValueMissing)
		if err != nil {
			return nil, err
		}
		return Set{Old: oldVal, New: newVal}, nil

	case "values.MATH":
		op, err := mathOpFromString(env.Operator)
		if err != nil {
			return nil, err
		}
		operand, err := V.FromJSON(env.Operand)
		if err != nil {
			return nil, err
		}
		return Math{Op: op, Operand: operand}, nil

	case "sequences.PATCH":
		hunks := make([]Hunk, 0, len(env.Hunks))
		for _, h := range env.Hunks {
			inner, err := FromJSON(h.Op)
			if err != nil {
				return nil, err
			}
			hunks = append(hunks, Hunk{Offset: h.Offset, Length: h.Length, Op: inner})
		}
		return Patch{Hunks: hunks}, nil

	case "sequences.MAP":
		inner, err := FromJSON(env.Op)
		if err != nil {
			return nil, err
		}
		return Map{Op: inner}, nil

	case "sequences.MOVE":
		if env.Pos == nil || env.Count == nil || env.NewPos == nil {
			return nil, invalidOp("FromJSON", "move requires pos, count, new_pos")
		}
		return Move{Pos: *env.Pos, Count: *env.Count, NewPos: *env.NewPos}, nil

	case "objects.APPLY":
		byKey := map[string]json.RawMessage{}
		if len(env.Ops) > 0 {
			decoded, err := J.Unmarshal[map[string]json.RawMessage](env.Ops)
			if err != nil {
				return nil, err
			}
			byKey = decoded
		}
		ops := map[string]Operation{}
		for key, data := range byKey {
			inner, err := FromJSON(data)
			if err != nil {
				return nil, err
			}
			ops[key] = inner
		}
		return Apply{Ops: ops}, nil

	case "objects.REN":
		return Ren{Map: env.Map}, nil

	case "lists.LIST":
		var items []json.RawMessage
		if len(env.Ops) > 0 {
			decoded, err := J.Unmarshal[[]json.RawMessage](env.Ops)
			if err != nil {
				return nil, err
			}
			items = decoded
		}
		ops := make([]Operation, 0, len(items))
		for _, data := range items {
			inner, err := FromJSON(data)
			if err != nil {
				return nil, err
			}
			ops = append(ops, inner)
		}
		return List{Ops: ops}, nil

	default:
		return nil, invalidOp("FromJSON", "unknown operation tag %q", env.Type)
	}
}

const unknownMathOp MathOp = -1

// mathOpFromStringSwitch is the inverse of mathOpString, dispatched through
// the same Switch helper; each branch is F.Constant1, ignoring the string
// it's keyed on and returning the operator it names.
var mathOpFromStringSwitch = F.Switch(
	func(s string) string { return s },
	map[string]func(string) MathOp{
		"add":  F.Constant1[string](Add),
		"mult": F.Constant1[string](Mult),
		"rot":  F.Constant1[string](Rot),
		"and":  F.Constant1[string](And),
		"or":   F.Constant1[string](Or),
		"xor":  F.Constant1[string](Xor),
		"not":  F.Constant1[string](Not),
	},
	F.Constant1[string](unknownMathOp),
)

func mathOpFromString(s string) (MathOp, error) {
	op := mathOpFromStringSwitch(s)
	if op == unknownMathOp {
		return 0, invalidOp("FromJSON", "unknown math operator %q", s)
	}
	return op, nil
}
