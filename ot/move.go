package ot

import V "github.com/hiraeth-ot/otjson/value"

// Move relocates a range of a String or Array: it removes [Pos, Pos+Count)
// then re-inserts it at NewPos, where NewPos is interpreted relative to the
// document that remains after the removal.
type Move struct {
	Pos    int
	Count  int
	NewPos int
}

func (Move) kind() kind { return kindMove }

func (mv Move) Apply(d V.Value) (V.Value, error) {
	if !isSequence(d) {
		return nil, invalidOp("Move", "requires a string or array document, got %T", d)
	}
	total := seqLen(d)
	if mv.Pos < 0 || mv.Count < 0 || mv.Pos+mv.Count > total {
		return nil, invalidOp("Move", "pos/count out of range for document length %d", total)
	}
	removed := sliceSeq(d, mv.Pos, mv.Pos+mv.Count)
	rest, err := concatSeq(sliceSeq(d, 0, mv.Pos), sliceSeq(d, mv.Pos+mv.Count, total))
	if err != nil {
		return nil, err
	}
	restLen := total - mv.Count
	if mv.NewPos < 0 || mv.NewPos > restLen {
		return nil, invalidOp("Move", "new_pos out of range for post-removal length %d", restLen)
	}
	return concatSeq(sliceSeq(rest, 0, mv.NewPos), removed, sliceSeq(rest, mv.NewPos, restLen))
}

func (mv Move) Simplify() Operation {
	if mv.Count == 0 || mv.Pos == mv.NewPos {
		return NoOp{}
	}
	return mv
}

// Inverse swaps Pos and NewPos: removing the Count elements now sitting at
// NewPos recovers the post-removal document, and re-inserting them at Pos
// recovers the original.
func (mv Move) Inverse(V.Value) Operation {
	return Move{Pos: mv.NewPos, Count: mv.Count, NewPos: mv.Pos}.Simplify()
}

func (mv Move) Compose(other Operation) (Operation, bool) {
	if _, isNoOp := other.(NoOp); isNoOp {
		return mv.Simplify(), true
	}
	return nil, false
}

func (mv Move) Rebase(other Operation, cl Conflictless) (Operation, error) {
	mp, _, err := rebasePair(mv, other, cl)
	return mp, err
}

// Drilldown: a Move relocates elements without transforming their content.
func (Move) Drilldown(any) Operation { return NoOp{} }

// mapIndex returns where idx (a position outside [mv.Pos, mv.Pos+mv.Count))
// lands after mv has been applied.
func (mv Move) mapIndex(idx int) int {
	var restIdx int
	if idx < mv.Pos {
		restIdx = idx
	} else {
		restIdx = idx - mv.Count
	}
	if mv.NewPos <= restIdx {
		return restIdx + mv.Count
	}
	return restIdx
}

func (mv Move) overlaps(other Move) bool {
	aEnd := mv.Pos + mv.Count
	bEnd := other.Pos + other.Count
	return mv.Pos < bEnd && other.Pos < aEnd
}

// moveRebasePair maps each Move's indices through the other, per §4.2;
// overlapping ranges have no reconciliation and always conflict.
func moveRebasePair(a, b Move) (Operation, Operation, error) {
	if a.overlaps(b) {
		return nil, nil, ErrConflict
	}
	ap := Move{Pos: b.mapIndex(a.Pos), Count: a.Count, NewPos: b.mapIndex(a.NewPos)}.Simplify()
	bp := Move{Pos: a.mapIndex(b.Pos), Count: b.Count, NewPos: a.mapIndex(b.NewPos)}.Simplify()
	return ap, bp, nil
}
