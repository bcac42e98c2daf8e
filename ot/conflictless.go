package ot

import (
	O "github.com/hiraeth-ot/otjson/option"
	V "github.com/hiraeth-ot/otjson/value"
)

// Conflictless is the small configuration bundle threaded through Rebase.
// With Enabled false, any rebase ambiguity is reported as ErrConflict; with
// it true, Cmp breaks ties deterministically. Two cases still return
// ErrConflict when Enabled is true: Moves whose ranges overlap, and Patch
// hunks that overlap partially with different boundaries.
//
// Document, when present, is the prior document state the pair was derived
// from. Carrying it lets container operations thread per-key or per-element
// prior state down to their children (Apply passes document[key] or
// Missing to the inner rebase; the array rebase advances it by applying
// each base hunk before rebasing the next) and lets some scalar rebases
// materialise a combined result directly as a Set instead of an
// invert/apply/reapply triple.
type Conflictless struct {
	Enabled  bool
	Document O.Option[V.Value]
}

// Off is the default, non-conflictless configuration.
var Off = Conflictless{}

// On returns a conflictless configuration with no document context.
func On() Conflictless {
	return Conflictless{Enabled: true}
}

// WithDocument returns a conflictless configuration carrying the given
// prior document state.
func WithDocument(d V.Value) Conflictless {
	return Conflictless{Enabled: true, Document: O.Some(d)}
}

// AtKey returns the conflictless context to use when descending into an
// object's key: the document is narrowed to document[key], or Missing if
// the key (or the whole document context) is absent.
func (c Conflictless) AtKey(key string) Conflictless {
	doc, ok := O.Unwrap(c.Document)
	if !ok {
		return Conflictless{Enabled: c.Enabled}
	}
	obj, isObj := doc.(*V.Object)
	if !isObj {
		return Conflictless{Enabled: c.Enabled, Document: O.Some[V.Value](V.Missing)}
	}
	v, found := obj.Get(key)
	if !found {
		v = V.Missing
	}
	return Conflictless{Enabled: c.Enabled, Document: O.Some(v)}
}

// WithDoc returns a copy of c carrying a new document context (or no
// context if ok is false).
func (c Conflictless) withDoc(d V.Value, ok bool) Conflictless {
	if !ok {
		return Conflictless{Enabled: c.Enabled}
	}
	return Conflictless{Enabled: c.Enabled, Document: O.Some(d)}
}
