package ir

import "github.com/hassan/ssair/irtype"

// Value is anything that can be used as an instruction operand: a Constant,
// an Argument, a BasicBlock (used as a label), or an Instruction's result.
//
// Every Value tracks its own use-list: the set of Users currently holding it
// as an operand. The use-list is a relation, not ownership — a Value does
// not own its Users, and removing a User from a block does not touch the
// Values it used until that User is explicitly detached.
type Value interface {
	Type() irtype.Type
	IsConstant() bool
	HasSideEffects() bool

	// Uses returns a snapshot of the current users, in the order they
	// were added. The same User can appear more than once if it holds
	// this Value in more than one operand position.
	Uses() []User
	UseCount() int
	Used() bool

	addUse(u User)
	removeUse(u User)
}

// baseValue is embedded by every concrete Value and implements the use-list
// bookkeeping common to all of them. It has no notion of "self": operations
// that need to pass this Value to someone else (ReplaceAllUsesWith) are
// package-level functions that take the Value explicitly, the same way
// go/ssa's Operands() takes the instruction rather than discovering it.
type baseValue struct {
	typ  irtype.Type
	uses []User
}

func (v *baseValue) Type() irtype.Type {
	if v.typ == nil {
		return irtype.Bottom
	}
	return v.typ
}

func (v *baseValue) IsConstant() bool     { return false }
func (v *baseValue) HasSideEffects() bool { return false }

func (v *baseValue) Uses() []User {
	out := make([]User, len(v.uses))
	copy(out, v.uses)
	return out
}

func (v *baseValue) UseCount() int { return len(v.uses) }
func (v *baseValue) Used() bool    { return len(v.uses) > 0 }

func (v *baseValue) addUse(u User) { v.uses = append(v.uses, u) }

func (v *baseValue) removeUse(u User) {
	for i, existing := range v.uses {
		if existing == u {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}

// ReplaceAllUsesWith rewrites every User currently holding v to hold other
// instead, leaving v with an empty use-list. It is the def-use engine's
// workhorse: Instruction.ReplaceWith and BasicBlock.Replace both reduce to
// a call to this.
func ReplaceAllUsesWith(v Value, other Value) {
	if v == other {
		return
	}
	for _, u := range v.Uses() {
		// A User holding v in several operand positions appears that many
		// times in the snapshot. Its first ReplaceUsesOf rewrites every
		// position, so the repeat calls find no v and return ErrInvalidUse,
		// which is ignored here.
		_ = u.ReplaceUsesOf(v, other)
	}
}
