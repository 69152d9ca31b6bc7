package ir

import "fmt"

// Terminator is the interface a block's final instruction must satisfy.
// Exits reports whether control leaves the function entirely (a return)
// as opposed to passing to another block (a branch).
type Terminator interface {
	Instruction
	Exits() bool
}

// baseTerminator is embedded by every concrete terminator. Its own Exits
// panics with ErrNotImplemented: it exists only as a safety net for a
// terminator type that forgets to override it, which none of the four
// concrete terminators below do.
type baseTerminator struct {
	baseInstruction
}

func (t *baseTerminator) Exits() bool {
	panic(notImplementedf("Exits called on a terminator that does not implement it"))
}

// HasSideEffects is true for every terminator: transferring control is
// always observable, so a terminator is never a candidate for dead-code
// removal.
func (t *baseTerminator) HasSideEffects() bool { return true }

// BranchInsn is an unconditional jump to Target.
type BranchInsn struct {
	baseTerminator
}

func NewBranch(fn *Function, target *BasicBlock) *BranchInsn {
	b := &BranchInsn{}
	b.fn = fn
	b.baseValue.typ = voidType
	b.baseUser.bind(b)
	b.name = fn.MakeName(nil)
	b.SetOperands([]Value{target})
	return b
}

func (b *BranchInsn) Exits() bool         { return false }
func (b *BranchInsn) Target() *BasicBlock { return b.Operands()[0].(*BasicBlock) }
func (b *BranchInsn) String() string      { return "branch " + b.Target().Name() }

// CondBranchInsn jumps to TrueBlock if Cond is truthy, FalseBlock otherwise.
type CondBranchInsn struct {
	baseTerminator
}

func NewCondBranch(fn *Function, cond Value, trueBlock, falseBlock *BasicBlock) *CondBranchInsn {
	c := &CondBranchInsn{}
	c.fn = fn
	c.baseValue.typ = voidType
	c.baseUser.bind(c)
	c.name = fn.MakeName(nil)
	c.SetOperands([]Value{cond, trueBlock, falseBlock})
	return c
}

func (c *CondBranchInsn) Exits() bool           { return false }
func (c *CondBranchInsn) Cond() Value           { return c.Operands()[0] }
func (c *CondBranchInsn) TrueBlock() *BasicBlock  { return c.Operands()[1].(*BasicBlock) }
func (c *CondBranchInsn) FalseBlock() *BasicBlock { return c.Operands()[2].(*BasicBlock) }
func (c *CondBranchInsn) String() string {
	return fmt.Sprintf("cond_branch %s, %s, %s", c.Cond().String(), c.TrueBlock().Name(), c.FalseBlock().Name())
}

// ReturnInsn returns from a void function.
type ReturnInsn struct {
	baseTerminator
}

func NewReturn(fn *Function) *ReturnInsn {
	r := &ReturnInsn{}
	r.fn = fn
	r.baseValue.typ = voidType
	r.baseUser.bind(r)
	r.name = fn.MakeName(nil)
	return r
}

func (r *ReturnInsn) Exits() bool    { return true }
func (r *ReturnInsn) String() string { return "return" }

// ReturnValueInsn returns Value from the function.
type ReturnValueInsn struct {
	baseTerminator
}

func NewReturnValue(fn *Function, v Value) *ReturnValueInsn {
	r := &ReturnValueInsn{}
	r.fn = fn
	r.baseValue.typ = voidType
	r.baseUser.bind(r)
	r.name = fn.MakeName(nil)
	r.SetOperands([]Value{v})
	return r
}

func (r *ReturnValueInsn) Exits() bool    { return true }
func (r *ReturnValueInsn) Value() Value   { return r.Operands()[0] }
func (r *ReturnValueInsn) String() string { return "return " + r.Value().String() }
