package ir

import (
	"testing"

	"github.com/hassan/ssair/irtype"
)

func TestGenericInstructionResultTypeDerivedFromOperands(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	seed := NewConstant(irtype.Int, 1)

	instr, err := scope.Build(fn, "dup", []Value{seed}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !instr.Type().Equal(irtype.Int) {
		t.Errorf("dup's result type = %v, want int (same as operand)", instr.Type())
	}
}

func TestGenericInstructionSetTypeOverridesDerivedType(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	seed := NewConstant(irtype.Int, 1)

	instr, _ := scope.Build(fn, "dup", []Value{seed}, nil)
	g := instr.(*GenericInstruction)
	g.SetType(irtype.Float)

	if !g.Type().Equal(irtype.Float) {
		t.Errorf("Type() after SetType = %v, want float", g.Type())
	}
}

func TestGenericInstructionSlotAndSplatSlotAccessors(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)
	b := NewConstant(irtype.Int, 2)
	c := NewConstant(irtype.Int, 3)

	instr, err := scope.Build(fn, "tuple_concat", []Value{a, b, c}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := instr.(*GenericInstruction)

	elements := g.SplatSlot("elements")
	if len(elements) != 3 {
		t.Fatalf("SplatSlot(elements) = %v, want 3 elements", elements)
	}
	if g.Slot("nonexistent") != nil {
		t.Errorf("Slot(nonexistent) = non-nil, want nil")
	}
}

func TestGenericInstructionSetSlotRewritesSinglePosition(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)
	b := NewConstant(irtype.Int, 2)
	c := NewConstant(irtype.Int, 3)

	instr, err := scope.Build(fn, "bin_op", []Value{a, b}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := instr.(*GenericInstruction)

	if err := g.SetSlot("rhs", c); err != nil {
		t.Fatalf("SetSlot(rhs): %v", err)
	}
	if got := g.Slot("rhs"); got != Value(c) {
		t.Errorf("Slot(rhs) after SetSlot = %v, want %v", got, c)
	}
	if got := g.Slot("lhs"); got != Value(a) {
		t.Errorf("Slot(lhs) = %v, want unchanged %v", got, a)
	}

	if err := g.SetSlot("nonexistent", c); err == nil {
		t.Errorf("SetSlot(nonexistent) = nil error, want ErrNotFound")
	}
}

func TestGenericInstructionSetSplatSlotReplacesTail(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)
	b := NewConstant(irtype.Int, 2)
	c := NewConstant(irtype.Int, 3)
	d := NewConstant(irtype.Int, 4)

	instr, err := scope.Build(fn, "tuple_concat", []Value{a, b}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := instr.(*GenericInstruction)

	if err := g.SetSplatSlot("elements", []Value{c, d, a}); err != nil {
		t.Fatalf("SetSplatSlot(elements): %v", err)
	}
	elements := g.SplatSlot("elements")
	if len(elements) != 3 || elements[0] != Value(c) || elements[1] != Value(d) || elements[2] != Value(a) {
		t.Errorf("SplatSlot(elements) after SetSplatSlot = %v, want [c, d, a]", elements)
	}

	if err := g.SetSplatSlot("nonexistent", []Value{c}); err == nil {
		t.Errorf("SetSplatSlot(nonexistent) = nil error, want error")
	}
}

func TestGenericInstructionValidReflectsCurrentOperands(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)
	b := NewConstant(irtype.Int, 2)

	instr, err := scope.Build(fn, "bin_op", []Value{a, b}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := instr.(*GenericInstruction)
	if !g.Valid() {
		t.Fatalf("Valid() = false for well-typed operands")
	}

	g.SetOperands([]Value{NewConstant(irtype.String, "x"), b})
	if g.Valid() {
		t.Errorf("Valid() = true after setting a wrongly typed operand")
	}
}
