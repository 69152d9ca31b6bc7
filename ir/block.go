package ir

import (
	"strings"

	"github.com/hassan/ssair/irtype"
)

// BasicBlock is a straight-line sequence of instructions with a single
// entry point and, once well-formed, exactly one terminator at its end.
// It is itself a NamedValue of label type: branches and phi edges hold a
// *BasicBlock as an ordinary operand, the same as any other Value.
//
// Successors and predecessors are not stored fields — they are derived by
// querying the terminator's block operands (successors) or scanning the
// owning function's blocks for anyone whose successors include this block
// (predecessors). That trades an O(blocks) predecessor query for never
// letting the denormalized and the real CFG drift apart.
type BasicBlock struct {
	baseNamed
	instructions []Instruction
}

func newBasicBlock(fn *Function, name string) *BasicBlock {
	b := &BasicBlock{}
	b.fn = fn
	b.baseValue.typ = irtype.Label
	b.name = fn.MakeName(&name)
	return b
}

// Instructions returns a snapshot of the block's instructions; mutating it
// does not affect the block.
func (b *BasicBlock) Instructions() []Instruction {
	out := make([]Instruction, len(b.instructions))
	copy(out, b.instructions)
	return out
}

// Append adds instr to the end of the block.
func (b *BasicBlock) Append(instr Instruction) {
	instr.setBlock(b)
	b.instructions = append(b.instructions, instr)
	if b.fn != nil {
		b.fn.recordPlacement(instr, b.name, len(b.instructions)-1)
	}
}

// InsertBefore inserts instr immediately before existing. Returns
// ErrNotFound if existing is not in this block.
func (b *BasicBlock) InsertBefore(existing, instr Instruction) error {
	idx := b.indexOf(existing)
	if idx < 0 {
		return notFoundf("block %q has no instruction %%%s", b.name, existing.Name())
	}
	instr.setBlock(b)
	b.instructions = append(b.instructions, nil)
	copy(b.instructions[idx+1:], b.instructions[idx:])
	b.instructions[idx] = instr
	if b.fn != nil {
		b.fn.recordPlacement(instr, b.name, idx)
	}
	return nil
}

// removeInstruction drops instr from the instruction list without
// detaching its operands — callers (Instruction.Remove) handle that.
func (b *BasicBlock) removeInstruction(instr Instruction) {
	idx := b.indexOf(instr)
	if idx < 0 {
		return
	}
	b.instructions = append(b.instructions[:idx], b.instructions[idx+1:]...)
	instr.setBlock(nil)
	if b.fn != nil {
		b.fn.events.RemoveInstruction(instr.Name())
	}
}

// insertBefore is the unexported counterpart InsertBefore wraps, used by
// Instruction.ReplaceWith where existing is guaranteed present.
func (b *BasicBlock) insertBefore(existing, instr Instruction) {
	_ = b.InsertBefore(existing, instr)
}

// Replace substitutes new for old in place: new takes old's position and
// every use of old, and old is detached and removed from the block.
func (b *BasicBlock) Replace(old, new Instruction) error {
	idx := b.indexOf(old)
	if idx < 0 {
		return notFoundf("block %q has no instruction %%%s", b.name, old.Name())
	}
	new.setBlock(b)
	b.instructions[idx] = new
	ReplaceAllUsesWith(old, new)
	old.setBlock(nil)
	old.Detach()
	return nil
}

// Include reports whether instr currently belongs to this block.
func (b *BasicBlock) Include(instr Instruction) bool { return b.indexOf(instr) >= 0 }

func (b *BasicBlock) indexOf(instr Instruction) int {
	for i, in := range b.instructions {
		if in == instr {
			return i
		}
	}
	return -1
}

// Terminator returns the block's last instruction if it is a Terminator,
// nil otherwise (including when the block is empty).
func (b *BasicBlock) Terminator() Instruction {
	if len(b.instructions) == 0 {
		return nil
	}
	last := b.instructions[len(b.instructions)-1]
	if _, ok := last.(Terminator); ok {
		return last
	}
	return nil
}

func (b *BasicBlock) IsTerminated() bool { return b.Terminator() != nil }

// Exits reports whether this block's terminator returns from the function
// (as opposed to branching to another block). A block with no terminator
// yet is not considered exiting.
func (b *BasicBlock) Exits() bool {
	term := b.Terminator()
	if term == nil {
		return false
	}
	return term.(Terminator).Exits()
}

// Successors lists the blocks this block's terminator can transfer control
// to, derived from the terminator's block-typed operands.
func (b *BasicBlock) Successors() []*BasicBlock {
	term := b.Terminator()
	if term == nil {
		return nil
	}
	var out []*BasicBlock
	for _, op := range term.Operands() {
		if bb, ok := op.(*BasicBlock); ok {
			out = append(out, bb)
		}
	}
	return out
}

// Predecessors lists the blocks in the owning function whose terminator
// names this block as a successor.
func (b *BasicBlock) Predecessors() []*BasicBlock {
	if b.fn == nil {
		return nil
	}
	var out []*BasicBlock
	for _, other := range b.fn.Blocks() {
		for _, s := range other.Successors() {
			if s == b {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

// PredecessorNames lists the names of Predecessors, ordered the same way
// the owning function lists its blocks (i.e. by insertion order), not by
// any order implied by control flow.
func (b *BasicBlock) PredecessorNames() []string {
	preds := b.Predecessors()
	if len(preds) == 0 {
		return nil
	}
	set := make(map[*BasicBlock]bool, len(preds))
	for _, p := range preds {
		set[p] = true
	}
	var out []string
	for _, other := range b.fn.Blocks() {
		if set[other] {
			out = append(out, other.Name())
		}
	}
	return out
}

func (b *BasicBlock) String() string {
	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteString(":\n")
	for _, instr := range b.instructions {
		sb.WriteString("  ")
		sb.WriteString(instr.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
