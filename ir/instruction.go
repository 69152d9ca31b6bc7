package ir

// Instruction is a Value that is also a User: it consumes operands and
// produces a result, and it lives in exactly one BasicBlock at a time.
type Instruction interface {
	Value
	User
	NamedValue

	Block() *BasicBlock
	setBlock(b *BasicBlock)

	// Opcode is the instruction's builder-facing name, derived from its
	// Go type ("BinOpInsn" -> "bin_op").
	Opcode() string

	// Remove detaches this instruction from its block and clears its
	// own operands. It does not touch the instruction's own use-list:
	// callers that need that empty first call ReplaceAllUsesWith.
	Remove()

	// ReplaceWith substitutes other for this instruction everywhere it
	// is used, then removes this instruction. If other is a detached
	// Instruction (not yet in a block), it is first inserted at this
	// instruction's position.
	ReplaceWith(other Value)

	String() string
}

// baseInstruction is embedded by every concrete instruction type. It wires
// together the Value use-list (baseValue, via baseNamed), the operand
// list (baseUser), and per-instruction identity (name, owning function and
// block).
type baseInstruction struct {
	baseNamed
	baseUser
	block *BasicBlock
}

func (i *baseInstruction) Block() *BasicBlock    { return i.block }
func (i *baseInstruction) setBlock(b *BasicBlock) { i.block = b }

func (i *baseInstruction) Opcode() string { return opcodeForInstruction(i.baseUser.self) }

// SetName shadows baseNamed.SetName so a rename of a placed instruction
// also emits rename_instruction, per the event ordering rule (always after
// this instruction's own add_instruction, which placement emitted). An
// unplaced instruction emits nothing here; the update_instruction recorded
// when it is placed carries the new name.
func (i *baseInstruction) SetName(name string) {
	old := i.name
	i.baseNamed.SetName(name)
	if i.fn != nil && i.block != nil {
		i.fn.events.RenameInstruction(old, i.name)
	}
}

func (i *baseInstruction) Remove() {
	self := i.baseUser.self.(Instruction)
	if i.block != nil {
		i.block.removeInstruction(self)
	}
	self.Detach()
}

func (i *baseInstruction) ReplaceWith(other Value) {
	self := i.baseUser.self.(Instruction)
	if inst, ok := other.(Instruction); ok && inst.Block() == nil && i.block != nil {
		i.block.insertBefore(self, inst)
	}
	ReplaceAllUsesWith(self, other)
	self.Remove()
}
