package ir

import (
	"testing"

	"github.com/hassan/ssair/irtype"
)

func TestSetOperandsMultisetDiffSameValueTwice(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)

	instr, err := scope.Build(fn, "bin_op", []Value{a, a}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := a.UseCount(); got != 2 {
		t.Fatalf("a.UseCount() = %d, want 2 (used twice by same instruction)", got)
	}

	b := NewConstant(irtype.Int, 2)
	instr.(User).SetOperands([]Value{a, b})

	if got := a.UseCount(); got != 1 {
		t.Errorf("a.UseCount() after dropping one occurrence = %d, want 1", got)
	}
	if got := b.UseCount(); got != 1 {
		t.Errorf("b.UseCount() = %d, want 1", got)
	}
}

func TestReplaceUsesOfFailsWhenOperandAbsent(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)
	b := NewConstant(irtype.Int, 2)

	instr, err := scope.Build(fn, "dup", []Value{a}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err := instr.(User).ReplaceUsesOf(b, a); err == nil {
		t.Fatalf("ReplaceUsesOf(absent) = nil error, want ErrInvalidUse")
	}
}

func TestDetachClearsUseLists(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()
	a := NewConstant(irtype.Int, 1)

	instr, err := scope.Build(fn, "dup", []Value{a}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	instr.(User).Detach()

	if a.Used() {
		t.Errorf("a.Used() = true after Detach, want false")
	}
	if len(instr.Operands()) != 0 {
		t.Errorf("Operands() after Detach = %v, want empty", instr.Operands())
	}
}
