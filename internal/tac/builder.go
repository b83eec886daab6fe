package tac

import "corec/internal/symbols"

// Create allocates a single instruction node; prev/next start nil.
// Grounded on tac_create.
func Create(op Opcode, res, op1, op2 *symbols.Symbol) *Instr {
	return &Instr{Op: op, Res: res, Op1: op1, Op2: op2}
}

// Join splices l1 onto the front of l2's list by walking l2's prev
// chain back to its head and hanging l1 off of it. The lowering
// builds code backwards-linked (newest instruction is the list head,
// its prev chain reaches toward the oldest); Join is how two such
// chains are concatenated without a forward pointer anywhere yet.
// Grounded on tac_join.
func Join(l1, l2 *Instr) *Instr {
	if l1 == nil {
		return l2
	}
	if l2 == nil {
		return l1
	}
	aux := l2
	for aux.Prev != nil {
		aux = aux.Prev
	}
	aux.Prev = l1
	return l2
}

// Reverse walks tail's prev chain, wiring each node's Next pointer so
// the list becomes forward-traversable from the returned head, and
// returns that head. Grounded on tac_reverse.
func Reverse(tail *Instr) *Instr {
	if tail == nil {
		return nil
	}
	aux := tail
	for aux.Prev != nil {
		aux.Prev.Next = aux
		aux = aux.Prev
	}
	return aux
}
