package ot

// RebaseArray computes ops/base: each operation in ops, rebased so it can
// run after every operation in base instead of concurrently with it. This
// is the generic lift of pairwise rebase to sequences described in §4.4.
//
//  1. m = 0 or n = 0: ops is returned unchanged.
//  2. m = n = 1: the pairwise base case.
//  3. m = 1, n > 1: split ops into its head and tail; rebase the head
//     against base, then rebase the tail against base/head (the
//     conflictless document, if carried, advances by applying the head).
//  4. m > 1: fold ops across base one operation at a time (right
//     distributivity), advancing the document state after each step.
func RebaseArray(base, ops []Operation, cl Conflictless) ([]Operation, error) {
	if len(base) == 0 || len(ops) == 0 {
		return append([]Operation{}, ops...), nil
	}
	if len(base) == 1 && len(ops) == 1 {
		rp, _, err := rebasePair(ops[0], base[0], cl)
		if err != nil {
			return nil, err
		}
		return []Operation{rp}, nil
	}
	if len(base) == 1 {
		head := ops[0]
		tail := ops[1:]
		headPrime, _, err := rebasePair(head, base[0], cl)
		if err != nil {
			return nil, err
		}
		nextCl := cl
		if doc, ok := docValue(cl); ok {
			advanced, err := head.Apply(doc)
			if err != nil {
				return nil, err
			}
			nextCl = WithDocument(advanced)
		}
		basePrimeAfterHead, err := rebaseBaseAfterOp(base[0], head, cl)
		if err != nil {
			return nil, err
		}
		tailPrime, err := RebaseArray(basePrimeAfterHead, tail, nextCl)
		if err != nil {
			return nil, err
		}
		return append([]Operation{headPrime}, tailPrime...), nil
	}
	// len(base) > 1: fold ops across base one base-operation at a time.
	curOps := append([]Operation{}, ops...)
	curCl := cl
	for _, b := range base {
		var err error
		curOps, err = RebaseArray([]Operation{b}, curOps, curCl)
		if err != nil {
			return nil, err
		}
		if doc, ok := docValue(curCl); ok {
			advanced, err := b.Apply(doc)
			if err != nil {
				return nil, err
			}
			curCl = WithDocument(advanced)
		}
	}
	return curOps, nil
}

// rebaseBaseAfterOp computes base/head: what "head" does to base's single
// operation, so the remaining ops tail rebases against the right operand
// (case 3 needs base advanced past head, not head itself).
func rebaseBaseAfterOp(base, head Operation, cl Conflictless) ([]Operation, error) {
	_, basePrime, err := rebasePair(head, base, cl)
	if err != nil {
		return nil, err
	}
	return []Operation{basePrime}, nil
}
