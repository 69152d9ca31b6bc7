package ir

// User is anything that holds Values as operands: an Instruction or a Phi.
// Operands are an ordered list, possibly with repeats (a binary op whose
// two operands are the same value holds it twice).
type User interface {
	Operands() []Value
	SetOperands(ops []Value)

	// ReplaceUsesOf rewrites every operand slot holding old to hold new
	// instead. Returns ErrInvalidUse if old does not appear among the
	// operands at all.
	ReplaceUsesOf(old, new Value) error

	// Detach clears every operand, removing this User from each
	// operand's use-list. Used when the User is being destroyed.
	Detach()
}

// baseUser is embedded by every concrete User. Because Go embedding gives
// no way for the embedded struct to learn the identity of its outer type,
// baseUser stores that identity explicitly (self), assigned once by the
// constructor immediately after allocation (a two-step allocate-then-bind
// idiom). self is what SetOperands records in each operand's use-list.
type baseUser struct {
	self     User
	operands []Value
}

// bind records self as the concrete User this baseUser is embedded in. Must
// be called exactly once, right after the concrete value is allocated.
func (u *baseUser) bind(self User) { u.self = self }

func (u *baseUser) Operands() []Value {
	out := make([]Value, len(u.operands))
	copy(out, u.operands)
	return out
}

func (u *baseUser) SetOperands(ops []Value) {
	diffOperandUses(u.self, u.operands, ops)
	u.operands = append([]Value(nil), ops...)
}

func (u *baseUser) ReplaceUsesOf(old, new Value) error {
	found := false
	next := make([]Value, len(u.operands))
	for i, v := range u.operands {
		if v == old {
			next[i] = new
			found = true
		} else {
			next[i] = v
		}
	}
	if !found {
		return invalidUsef("%v is not an operand", old)
	}
	u.SetOperands(next)
	return nil
}

func (u *baseUser) Detach() {
	u.SetOperands(nil)
}

// diffOperandUses updates every affected operand's use-list so it reflects
// newOps instead of oldOps, treating both as multisets: an operand that
// appears twice in oldOps and once in newOps loses exactly one use-list
// entry for self, not all of them.
func diffOperandUses(self User, oldOps, newOps []Value) {
	oldCount := make(map[Value]int, len(oldOps))
	for _, v := range oldOps {
		if v != nil {
			oldCount[v]++
		}
	}
	newCount := make(map[Value]int, len(newOps))
	for _, v := range newOps {
		if v != nil {
			newCount[v]++
		}
	}
	for v, oc := range oldCount {
		if nc := newCount[v]; nc < oc {
			for i := 0; i < oc-nc; i++ {
				v.removeUse(self)
			}
		}
	}
	for v, nc := range newCount {
		if oc := oldCount[v]; nc > oc {
			for i := 0; i < nc-oc; i++ {
				v.addUse(self)
			}
		}
	}
}
