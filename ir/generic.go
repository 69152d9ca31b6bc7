package ir

import (
	"fmt"
	"strings"

	"github.com/hassan/ssair/irtype"
)

// GenericInstruction is the Instruction Builder.Append constructs for every
// opcode registered in a Scope. Unlike a hand-written Go type whose result
// type is a fixed expression over its fields, GenericInstruction's type is
// a mutable stored field: InstructionSyntax.ResultType derives an initial
// value at construction, but SetType can overwrite it afterward (for
// instance, once a later pass narrows a value's type).
type GenericInstruction struct {
	baseInstruction
	opcode string
	syntax *InstructionSyntax
}

func newGenericInstruction(fn *Function, syntax *InstructionSyntax, operands []Value, explicitType irtype.Type, hint *string) (*GenericInstruction, error) {
	if err := syntax.bindOperands(operands); err != nil {
		return nil, err
	}
	g := &GenericInstruction{opcode: syntax.Opcode, syntax: syntax}
	g.fn = fn
	g.baseUser.bind(g)
	if explicitType != nil {
		g.baseValue.typ = explicitType
	} else if syntax.ResultType != nil {
		g.baseValue.typ = syntax.ResultType(operands)
	}
	g.name = fn.MakeName(hint)
	g.SetOperands(operands)
	return g, nil
}

func (g *GenericInstruction) Opcode() string         { return g.opcode }
func (g *GenericInstruction) HasSideEffects() bool   { return g.syntax.SideEffects }
func (g *GenericInstruction) Syntax() *InstructionSyntax { return g.syntax }

// SetType overrides the stored result type. This is what makes the type
// "mutable stored" rather than purely derived: nothing re-runs ResultType
// after this call.
func (g *GenericInstruction) SetType(t irtype.Type) { g.baseValue.typ = t }

// Valid re-runs the syntax's ARITY/TYPE checks against the instruction's
// current operands without returning an error, per spec's Valid() contract.
func (g *GenericInstruction) Valid() bool { return g.syntax.Valid(g.Operands()) }

// Slot returns the operand bound to the named, non-splat slot, or nil if
// the slot doesn't exist or isn't populated. This is the generated-accessor
// stand-in: Go has no macros, so named slot access is a lookup rather than
// a per-opcode method.
func (g *GenericInstruction) Slot(name string) Value {
	idx := g.syntax.indexOf(name)
	if idx < 0 {
		return nil
	}
	ops := g.Operands()
	if idx >= len(ops) {
		return nil
	}
	return ops[idx]
}

// SplatSlot returns every operand collected by the named splat slot.
func (g *GenericInstruction) SplatSlot(name string) []Value {
	idx := g.syntax.indexOf(name)
	if idx < 0 || !g.syntax.Slots[idx].Splat {
		return nil
	}
	ops := g.Operands()
	if idx >= len(ops) {
		return nil
	}
	return ops[idx:]
}

// SetSlot rewrites the single operand bound to the named, non-splat slot.
// Returns ErrNotFound if the slot doesn't exist, ErrInvalidUse if it's a
// splat slot (use SetSplatSlot instead).
func (g *GenericInstruction) SetSlot(name string, v Value) error {
	idx := g.syntax.indexOf(name)
	if idx < 0 {
		return notFoundf("opcode %s has no slot %q", g.opcode, name)
	}
	if g.syntax.Slots[idx].Splat {
		return invalidUsef("opcode %s slot %q is a splat slot, use SetSplatSlot", g.opcode, name)
	}
	ops := g.Operands()
	if idx >= len(ops) {
		return notFoundf("opcode %s slot %q has no bound operand", g.opcode, name)
	}
	ops[idx] = v
	g.SetOperands(ops)
	return nil
}

// SetSplatSlot replaces the tail of the operand list collected by the
// named splat slot with vs, leaving every operand before it untouched.
func (g *GenericInstruction) SetSplatSlot(name string, vs []Value) error {
	idx := g.syntax.indexOf(name)
	if idx < 0 || !g.syntax.Slots[idx].Splat {
		return invalidUsef("opcode %s has no splat slot %q", g.opcode, name)
	}
	ops := g.Operands()
	if idx > len(ops) {
		idx = len(ops)
	}
	rewritten := append(append([]Value(nil), ops[:idx]...), vs...)
	g.SetOperands(rewritten)
	return nil
}

func (g *GenericInstruction) String() string {
	parts := make([]string, 0, len(g.operands))
	for _, op := range g.operands {
		parts = append(parts, op.String())
	}
	return fmt.Sprintf("%%%s = %s %s", g.name, g.opcode, strings.Join(parts, ", "))
}
