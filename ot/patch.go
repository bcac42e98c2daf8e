package ot

import V "github.com/hiraeth-ot/otjson/value"

// Hunk selects a sub-sequence by skipping Offset elements from the cursor,
// then running Op over the next Length elements.
type Hunk struct {
	Offset int
	Length int
	Op     Operation
}

// Patch is a non-overlapping, ordered set of hunks over a String or Array.
// It is the central sequence operation: a single Splice, a single-element
// replace, and a multi-hunk diff are all Patches.
type Patch struct {
	Hunks []Hunk
}

func (Patch) kind() kind { return kindPatch }

func (p Patch) Apply(d V.Value) (V.Value, error) {
	if !isSequence(d) {
		return nil, invalidOp("Patch", "requires a string or array document, got %T", d)
	}
	total := seqLen(d)
	cursor := 0
	var parts []V.Value
	for _, h := range p.Hunks {
		if h.Offset < 0 || h.Length < 0 {
			return nil, invalidOp("Patch", "hunk offset and length must be non-negative")
		}
		if cursor+h.Offset+h.Length > total {
			return nil, invalidOp("Patch", "hunk offset+length exceeds document length %d", total)
		}
		if h.Offset > 0 {
			parts = append(parts, sliceSeq(d, cursor, cursor+h.Offset))
		}
		segment := sliceSeq(d, cursor+h.Offset, cursor+h.Offset+h.Length)
		res, err := h.Op.Apply(segment)
		if err != nil {
			return nil, err
		}
		parts = append(parts, res)
		cursor += h.Offset + h.Length
	}
	if cursor < total {
		parts = append(parts, sliceSeq(d, cursor, total))
	}
	if len(parts) == 0 {
		return d, nil
	}
	return concatSeq(parts...)
}

func (p Patch) Simplify() Operation {
	var hunks []Hunk
	pending := 0
	for _, h := range p.Hunks {
		inner := h.Op.Simplify()
		if h.Length == 0 {
			if _, ok := inner.(NoOp); ok {
				pending += h.Offset
				continue
			}
		}
		hunks = append(hunks, Hunk{Offset: h.Offset + pending, Length: h.Length, Op: inner})
		pending = 0
	}
	if len(hunks) == 0 {
		return NoOp{}
	}
	return Patch{Hunks: hunks}
}

func (p Patch) Inverse(prior V.Value) Operation {
	cursor := 0
	hunks := make([]Hunk, 0, len(p.Hunks))
	for _, h := range p.Hunks {
		cursor += h.Offset
		segment := sliceSeq(prior, cursor, cursor+h.Length)
		newLen := h.Length + lengthChangeOf(h.Op, h.Length)
		hunks = append(hunks, Hunk{Offset: h.Offset, Length: newLen, Op: h.Op.Inverse(segment)})
		cursor += h.Length
	}
	return Patch{Hunks: hunks}.Simplify()
}

func (p Patch) Rebase(other Operation, cl Conflictless) (Operation, error) {
	pp, _, err := rebasePair(p, other, cl)
	return pp, err
}

func (p Patch) Drilldown(key any) Operation {
	idx, ok := key.(int)
	if !ok {
		return NoOp{}
	}
	cursor := 0
	for _, h := range p.Hunks {
		cursor += h.Offset
		if idx >= cursor && idx < cursor+h.Length {
			return h.Op.Drilldown(idx - cursor)
		}
		cursor += h.Length
	}
	return NoOp{}
}

// LengthChange implements sequenceInner for a Patch nested inside another
// Patch's hunk.
func (p Patch) LengthChange(oldLen int) int {
	delta := 0
	for _, h := range p.Hunks {
		delta += lengthChangeOf(h.Op, h.Length)
	}
	return delta
}

// Decompose implements sequenceInner for a Patch nested inside another
// Patch's hunk: split the hunk list at atIndex, an index into this Patch's
// own input sequence regardless of side (the common case is splitting a
// diff at a document position, which is symmetric enough for both call
// sites in this library).
func (p Patch) Decompose(atIndex int, side Side) (Operation, Operation) {
	var left, right []Hunk
	cursor := 0
	for i, h := range p.Hunks {
		start := cursor + h.Offset
		end := start + h.Length
		switch {
		case end <= atIndex:
			left = append(left, h)
		case start >= atIndex:
			if len(right) == 0 {
				// first hunk on the right: re-anchor its offset relative to atIndex.
				right = append(right, Hunk{Offset: start - atIndex, Length: h.Length, Op: h.Op})
			} else {
				right = append(right, h)
			}
		default:
			// atIndex falls strictly inside this hunk: split it.
			si, err := asSequenceInner(h.Op, "Patch")
			if err != nil {
				// cannot split further; keep whole hunk on the left.
				left = append(left, h)
				continue
			}
			localIdx := atIndex - start
			lOp, rOp := si.Decompose(localIdx, side)
			left = append(left, Hunk{Offset: h.Offset, Length: localIdx, Op: lOp})
			right = append(right, Hunk{Offset: 0, Length: h.Length - localIdx, Op: rOp})
		}
		cursor = end
		_ = i
	}
	return Patch{Hunks: left}.Simplify(), Patch{Hunks: right}.Simplify()
}

func lengthChangeOf(op Operation, oldLen int) int {
	si, ok := op.(sequenceInner)
	if !ok {
		return 0
	}
	return si.LengthChange(oldLen)
}

// ---- compose ----

type aAbsHunk struct {
	origStart, origLen int
	midStart, midLen   int
	op                 Operation
}

func absoluteAHunks(p Patch) []aAbsHunk {
	origCursor, midCursor := 0, 0
	out := make([]aAbsHunk, 0, len(p.Hunks))
	for _, h := range p.Hunks {
		origCursor += h.Offset
		midCursor += h.Offset
		outLen := h.Length + lengthChangeOf(h.Op, h.Length)
		out = append(out, aAbsHunk{origStart: origCursor, origLen: h.Length, midStart: midCursor, midLen: outLen, op: h.Op})
		origCursor += h.Length
		midCursor += outLen
	}
	return out
}

type bAbsHunk struct {
	midStart, midLen int
	op               Operation
}

func absoluteBHunks(p Patch) []bAbsHunk {
	cursor := 0
	out := make([]bAbsHunk, 0, len(p.Hunks))
	for _, h := range p.Hunks {
		cursor += h.Offset
		out = append(out, bAbsHunk{midStart: cursor, midLen: h.Length, op: h.Op})
		cursor += h.Length
	}
	return out
}

func splitAAbsAt(h aAbsHunk, atMid int) (aAbsHunk, aAbsHunk, bool) {
	if atMid <= h.midStart || atMid >= h.midStart+h.midLen || h.midLen == 0 {
		return h, h, false
	}
	si, err := asSequenceInner(h.op, "Patch")
	if err != nil {
		return h, h, false
	}
	localMid := atMid - h.midStart
	left, right := si.Decompose(localMid, After)
	leftOrigLen := h.origLen * localMid / h.midLen
	rightOrigLen := h.origLen - leftOrigLen
	return aAbsHunk{origStart: h.origStart, origLen: leftOrigLen, midStart: h.midStart, midLen: localMid, op: left},
		aAbsHunk{origStart: h.origStart + leftOrigLen, origLen: rightOrigLen, midStart: atMid, midLen: h.midLen - localMid, op: right},
		true
}

func splitBAbsAt(h bAbsHunk, atMid int) (bAbsHunk, bAbsHunk, bool) {
	if atMid <= h.midStart || atMid >= h.midStart+h.midLen {
		return h, h, false
	}
	si, err := asSequenceInner(h.op, "Patch")
	if err != nil {
		return h, h, false
	}
	localMid := atMid - h.midStart
	left, right := si.Decompose(localMid, Before)
	return bAbsHunk{midStart: h.midStart, midLen: localMid, op: left},
		bAbsHunk{midStart: atMid, midLen: h.midLen - localMid, op: right},
		true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// patchComposePair computes a · b, where a's output indices align with b's
// input indices, following the zipper described in §4.2: disjoint hunks
// pass through, one hunk containing the other wraps-and-composes, and
// partially overlapping hunks are split via Decompose until they align.
func patchComposePair(a, b Patch) (Operation, bool) {
	aAbs := absoluteAHunks(a)
	bAbs := absoluteBHunks(b)
	i, j := 0, 0
	pos := 0
	delta := 0 // midPos - origPos at pos, for positions outside any A hunk
	var result []Hunk
	lastOrigEnd := 0

	appendHunk := func(origStart, origLen int, op Operation) {
		offset := origStart - lastOrigEnd
		result = append(result, Hunk{Offset: offset, Length: origLen, Op: op})
		lastOrigEnd = origStart + origLen
	}

	for i < len(aAbs) || j < len(bAbs) {
		switch {
		case i >= len(aAbs):
			b := bAbs[j]
			appendHunk(b.midStart-delta, b.midLen, b.op)
			pos = b.midStart + b.midLen
			j++
		case j >= len(bAbs):
			a := aAbs[i]
			appendHunk(a.origStart, a.origLen, a.op)
			pos = a.midStart + a.midLen
			delta += a.midLen - a.origLen
			i++
		default:
			av, bv := aAbs[i], bAbs[j]
			aEnd := av.midStart + av.midLen
			bEnd := bv.midStart + bv.midLen
			switch {
			case aEnd <= bv.midStart:
				appendHunk(av.origStart, av.origLen, av.op)
				pos = aEnd
				delta += av.midLen - av.origLen
				i++
			case bEnd <= av.midStart:
				appendHunk(bv.midStart-delta, bv.midLen, bv.op)
				pos = bEnd
				j++
			case av.midStart == bv.midStart && av.midLen == bv.midLen:
				combined, ok := av.op.Compose(bv.op)
				if !ok {
					return Patch{}, false
				}
				appendHunk(av.origStart, av.origLen, combined)
				pos = aEnd
				delta += av.midLen - av.origLen
				i++
				j++
			case av.midStart <= bv.midStart && aEnd >= bEnd:
				sub := Patch{Hunks: []Hunk{{Offset: bv.midStart - av.midStart, Length: bv.midLen, Op: bv.op}}}
				combined, ok := av.op.Compose(sub)
				if !ok {
					return Patch{}, false
				}
				appendHunk(av.origStart, av.origLen, combined)
				pos = aEnd
				delta += av.midLen - av.origLen
				i++
				j++
			case bv.midStart <= av.midStart && bEnd >= aEnd:
				leftExtra := av.midStart - bv.midStart
				rightExtra := bEnd - aEnd
				totalOrigLen := leftExtra + av.origLen + rightExtra
				sub := Patch{Hunks: []Hunk{{Offset: leftExtra, Length: av.origLen, Op: av.op}}}
				combined, ok := sub.Compose(bv.op)
				if !ok {
					return Patch{}, false
				}
				origStart := av.origStart - leftExtra
				appendHunk(origStart, totalOrigLen, combined)
				pos = bEnd
				i++
				j++
			default:
				overlapStart := maxInt(av.midStart, bv.midStart)
				overlapEnd := minInt(aEnd, bEnd)
				splitAny := false
				if la, ra, ok := splitAAbsAt(av, overlapStart); ok {
					aAbs[i] = la
					aAbs = append(aAbs[:i+1], append([]aAbsHunk{ra}, aAbs[i+1:]...)...)
					splitAny = true
				} else if la, ra, ok := splitAAbsAt(av, overlapEnd); ok {
					aAbs[i] = la
					aAbs = append(aAbs[:i+1], append([]aAbsHunk{ra}, aAbs[i+1:]...)...)
					splitAny = true
				}
				if lb, rb, ok := splitBAbsAt(bv, overlapStart); ok {
					bAbs[j] = lb
					bAbs = append(bAbs[:j+1], append([]bAbsHunk{rb}, bAbs[j+1:]...)...)
					splitAny = true
				} else if lb, rb, ok := splitBAbsAt(bv, overlapEnd); ok {
					bAbs[j] = lb
					bAbs = append(bAbs[:j+1], append([]bAbsHunk{rb}, bAbs[j+1:]...)...)
					splitAny = true
				}
				if !splitAny {
					return Patch{}, false
				}
			}
		}
		_ = pos
	}
	return Patch{Hunks: result}.Simplify(), true
}

func (p Patch) Compose(other Operation) (Operation, bool) {
	op, ok := other.(Patch)
	if !ok {
		if _, isNoOp := other.(NoOp); isNoOp {
			return p.Simplify(), true
		}
		return nil, false
	}
	return patchComposePair(p, op)
}

// patchRebasePair computes (a/b, b/a) for two Patches aligned on the same
// prior document, per §4.2: hunks that don't overlap just shift past each
// other's length change; exact overlaps rebase their inner ops and adjust
// lengths by the other side's Δlen; partial overlaps with misaligned
// boundaries are a documented conflict (see DESIGN.md) rather than the
// fully general split this library's source only partially implements.
func patchRebasePair(a, b Patch, cl Conflictless) (Operation, Operation, error) {
	aAbs := absoluteBHunks(a)
	bAbs := absoluteBHunks(b)
	i, j := 0, 0
	deltaA, deltaB := 0, 0
	lastAEnd, lastBEnd := 0, 0
	var resultA, resultB []Hunk

	appendA := func(start, length int, op Operation) {
		resultA = append(resultA, Hunk{Offset: start - lastAEnd, Length: length, Op: op})
		lastAEnd = start + length
	}
	appendB := func(start, length int, op Operation) {
		resultB = append(resultB, Hunk{Offset: start - lastBEnd, Length: length, Op: op})
		lastBEnd = start + length
	}

	for i < len(aAbs) || j < len(bAbs) {
		switch {
		case i >= len(aAbs):
			bv := bAbs[j]
			appendB(bv.midStart+deltaA, bv.midLen, bv.op)
			j++
		case j >= len(bAbs):
			av := aAbs[i]
			appendA(av.midStart+deltaB, av.midLen, av.op)
			i++
		default:
			av, bv := aAbs[i], bAbs[j]
			aEnd := av.midStart + av.midLen
			bEnd := bv.midStart + bv.midLen
			coincident := av.midStart == bv.midStart && av.midLen == 0 && bv.midLen == 0
			switch {
			case aEnd <= bv.midStart && !coincident:
				appendA(av.midStart+deltaB, av.midLen, av.op)
				deltaA += lengthChangeOf(av.op, av.midLen)
				i++
			case bEnd <= av.midStart && !coincident:
				appendB(bv.midStart+deltaA, bv.midLen, bv.op)
				deltaB += lengthChangeOf(bv.op, bv.midLen)
				j++
			case av.midStart == bv.midStart && av.midLen == bv.midLen && av.midLen != 0:
				aInner, bInner, err := rebasePair(av.op, bv.op, cl)
				if err != nil {
					return nil, nil, err
				}
				aLen := av.midLen + lengthChangeOf(bv.op, bv.midLen)
				bLen := bv.midLen + lengthChangeOf(av.op, av.midLen)
				appendA(av.midStart+deltaB, aLen, aInner)
				appendB(bv.midStart+deltaA, bLen, bInner)
				deltaA += lengthChangeOf(av.op, av.midLen)
				deltaB += lengthChangeOf(bv.op, bv.midLen)
				i++
				j++
			case coincident:
				if !cl.Enabled {
					return nil, nil, ErrConflict
				}
				as, aIsSet := av.op.(Set)
				bs, bIsSet := bv.op.(Set)
				if aIsSet && bIsSet && V.Cmp(as.New, bs.New) > 0 {
					appendB(bv.midStart+deltaA, 0, bv.op)
					deltaB += lengthChangeOf(bv.op, 0)
					j++
					continue
				}
				appendA(av.midStart+deltaB, 0, av.op)
				deltaA += lengthChangeOf(av.op, 0)
				i++
			default:
				return nil, nil, ErrConflict
			}
		}
	}
	return Patch{Hunks: resultA}.Simplify(), Patch{Hunks: resultB}.Simplify(), nil
}
