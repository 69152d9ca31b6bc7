package ir

import (
	"github.com/hassan/ssair/irevent"
	"github.com/hassan/ssair/irtype"
)

// Builder sequences instruction construction against a current block
// cursor. It owns the Function it builds and a Scope resolving opcodes to
// instruction syntax. Instrumentation is chosen once, by NewBuilder's
// instrument argument, which turns on the function's event stream.
type Builder struct {
	fn    *Function
	cur   *BasicBlock
	scope *Scope
}

// NewBuilder constructs a function named name with the given parameters
// and return type, an entry block, and activates that entry block as the
// cursor. instrument, if true, enables the function's event stream before
// any instruction is built, so even the entry block's construction is
// captured.
func NewBuilder(name string, params []Param, returnType irtype.Type, scope *Scope, instrument bool) *Builder {
	fn := NewFunction(name, params, returnType)
	if instrument {
		fn.Events().Enable()
		// NewFunction ran with the stream still off; record its
		// arguments, return type and entry block now that it is on.
		specs := make([]irevent.ArgumentSpec, len(fn.args))
		for i, a := range fn.args {
			specs[i] = irevent.ArgumentSpec{Name: a.Name(), Type: a.Type()}
		}
		fn.events.SetArguments(specs)
		fn.events.SetReturnType(returnType)
		fn.events.AddBasicBlock(fn.entry.Name())
	}
	return &Builder{fn: fn, cur: fn.Entry(), scope: scope}
}

func (b *Builder) Function() *Function     { return b.fn }
func (b *Builder) Current() *BasicBlock    { return b.cur }
func (b *Builder) SetCurrent(bb *BasicBlock) { b.cur = bb }

// Append resolves opcode through the builder's scope and appends the
// resulting instruction to the current block. Fails with ErrUnknownOpcode
// if opcode is not registered.
func (b *Builder) Append(opcode string, operands []Value, hint *string) (Instruction, error) {
	instr, err := b.scope.Build(b.fn, opcode, operands, hint)
	if err != nil {
		return nil, err
	}
	b.cur.Append(instr)
	return instr, nil
}

// AddBlock creates a new block, auto-branching to it from the current
// block first if the current block is not yet terminated, then activates
// it for the duration of thunk before restoring the previous cursor.
func (b *Builder) AddBlock(name string, thunk func()) *BasicBlock {
	nb := b.fn.AddBlock(name)
	if !b.cur.IsTerminated() {
		b.Branch(nb)
	}
	prev := b.cur
	b.cur = nb
	thunk()
	b.cur = prev
	return nb
}

// Return appends a void return terminator to the current block.
func (b *Builder) Return() *ReturnInsn {
	r := NewReturn(b.fn)
	b.cur.Append(r)
	return r
}

// ReturnValue appends a value-returning terminator to the current block.
func (b *Builder) ReturnValue(v Value) *ReturnValueInsn {
	r := NewReturnValue(b.fn, v)
	b.cur.Append(r)
	return r
}

// Branch appends an unconditional branch to target.
func (b *Builder) Branch(target *BasicBlock) *BranchInsn {
	br := NewBranch(b.fn, target)
	b.cur.Append(br)
	return br
}

// CondBranch appends a conditional branch.
func (b *Builder) CondBranch(cond Value, trueBlock, falseBlock *BasicBlock) *CondBranchInsn {
	cb := NewCondBranch(b.fn, cond, trueBlock, falseBlock)
	b.cur.Append(cb)
	return cb
}

// Phi appends a new, as-yet-empty phi node to the current block. Callers
// add its incoming edges with AddIncoming.
func (b *Builder) Phi(typ irtype.Type, hint *string) *PhiInsn {
	p := NewPhi(b.fn, typ, hint)
	b.cur.Append(p)
	return p
}
