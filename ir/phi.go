package ir

import (
	"fmt"
	"strings"

	"github.com/hassan/ssair/irtype"
)

// PhiInsn merges values coming from distinct predecessors into one SSA
// value. Each incoming edge pairs a value with the predecessor block it
// arrives from; both halves are ordinary operands (a BasicBlock is a Value
// too), so the generic def-use machinery in baseUser already keeps their
// use-lists correct — Phi only needs to keep its own values/blocks
// bookkeeping in sync with the flat operand list baseUser stores.
type PhiInsn struct {
	baseInstruction
	values []Value
	blocks []*BasicBlock
}

func NewPhi(fn *Function, typ irtype.Type, hint *string) *PhiInsn {
	p := &PhiInsn{}
	p.fn = fn
	p.baseValue.typ = typ
	p.baseUser.bind(p)
	p.name = fn.MakeName(hint)
	return p
}

// AddIncoming appends one predecessor edge.
func (p *PhiInsn) AddIncoming(value Value, block *BasicBlock) {
	p.values = append(p.values, value)
	p.blocks = append(p.blocks, block)
	p.sync()
}

// RemoveIncoming drops the edge from block, e.g. when that predecessor is
// no longer reachable. Returns ErrNotFound if block isn't a predecessor.
func (p *PhiInsn) RemoveIncoming(block *BasicBlock) error {
	for i, b := range p.blocks {
		if b == block {
			p.values = append(p.values[:i], p.values[i+1:]...)
			p.blocks = append(p.blocks[:i], p.blocks[i+1:]...)
			p.sync()
			return nil
		}
	}
	return notFoundf("phi %%%s has no incoming edge from block %q", p.name, block.Name())
}

// Incoming returns the value bound to the edge from block, or nil.
func (p *PhiInsn) Incoming(block *BasicBlock) Value {
	for i, b := range p.blocks {
		if b == block {
			return p.values[i]
		}
	}
	return nil
}

func (p *PhiInsn) Values() []Value {
	return append([]Value(nil), p.values...)
}

func (p *PhiInsn) Blocks() []*BasicBlock {
	return append([]*BasicBlock(nil), p.blocks...)
}

// SetOperands overrides baseUser's promoted version so that any caller
// going through the generic User/Instruction interface (Function.Dup's
// operand-rewrite pass, most notably) still leaves values/blocks in sync
// with the new operand list instead of just patching baseUser.operands
// underneath them. The operand list is always values followed by blocks,
// both of length n — the same layout sync() builds.
func (p *PhiInsn) SetOperands(ops []Value) {
	p.baseUser.SetOperands(ops)
	n := len(ops) / 2
	p.values = append([]Value(nil), ops[:n]...)
	p.blocks = make([]*BasicBlock, n)
	for i := 0; i < n; i++ {
		if b, ok := ops[n+i].(*BasicBlock); ok {
			p.blocks[i] = b
		}
	}
}

func (p *PhiInsn) sync() {
	ops := make([]Value, 0, len(p.values)+len(p.blocks))
	ops = append(ops, p.values...)
	for _, b := range p.blocks {
		ops = append(ops, b)
	}
	p.SetOperands(ops)
}

// ReplaceUsesOf handles both halves of an edge through the same generic
// rewrite: if old is a value, the matching incoming value is updated; if
// old is a predecessor block, the edge's block is rewritten in place
// (rather than dropping the edge) — exactly what an "incoming-edge"
// operand is supposed to do when its block is split or renamed.
func (p *PhiInsn) ReplaceUsesOf(old, new Value) error {
	if err := p.baseUser.ReplaceUsesOf(old, new); err != nil {
		return err
	}
	ops := p.baseUser.Operands()
	n := len(p.blocks)
	for i := 0; i < n; i++ {
		p.values[i] = ops[i]
		if b, ok := ops[n+i].(*BasicBlock); ok {
			p.blocks[i] = b
		}
	}
	return nil
}

func (p *PhiInsn) String() string {
	edges := make([]string, len(p.values))
	for i := range p.values {
		edges[i] = fmt.Sprintf("[%s, %s]", p.values[i].String(), p.blocks[i].Name())
	}
	return fmt.Sprintf("%%%s = phi %s", p.name, strings.Join(edges, ", "))
}
