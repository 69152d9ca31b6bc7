package ir

import (
	"testing"

	"github.com/hassan/ssair/irtype"
)

func TestConstantUseTrackingAndReplaceAllUsesWith(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	scope := NewDemoScope()

	c1 := NewConstant(irtype.Int, 1)
	c2 := NewConstant(irtype.Int, 2)

	instr, err := scope.Build(fn, "dup", []Value{c1}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fn.Entry().Append(instr)

	if c1.UseCount() != 1 {
		t.Fatalf("c1.UseCount() = %d, want 1", c1.UseCount())
	}
	if c2.Used() {
		t.Fatalf("c2.Used() = true before any use")
	}

	ReplaceAllUsesWith(c1, c2)

	if c1.Used() {
		t.Errorf("c1.Used() = true after ReplaceAllUsesWith, want false")
	}
	if c2.UseCount() != 1 {
		t.Errorf("c2.UseCount() = %d, want 1", c2.UseCount())
	}
	if got := instr.Operands()[0]; got != Value(c2) {
		t.Errorf("operand = %v, want c2", got)
	}
}

func TestConstantEqualUsesReflectDeepEqual(t *testing.T) {
	a := NewConstant(irtype.Int, 5)
	b := NewConstant(irtype.Int, 5)
	c := NewConstant(irtype.Int, 6)

	if !a.Equal(b) {
		t.Errorf("a.Equal(b) = false, want true")
	}
	if a.Equal(c) {
		t.Errorf("a.Equal(c) = true, want false")
	}
}

func TestBottomTypeDefaultsWhenUnset(t *testing.T) {
	v := &baseValue{}
	if !v.Type().Equal(irtype.Bottom) {
		t.Errorf("zero-value baseValue.Type() = %v, want Bottom", v.Type())
	}
}
