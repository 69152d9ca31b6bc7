package ir

import (
	"testing"

	"github.com/hassan/ssair/irtype"
)

func TestTerminatorExitsPerKind(t *testing.T) {
	fn := NewFunction("f", nil, irtype.Void)
	a := fn.AddBlock("a")
	b := fn.AddBlock("b")
	cond := NewConstant(irtype.Bool, true)

	tests := []struct {
		name string
		term Terminator
		want bool
	}{
		{"branch", NewBranch(fn, a), false},
		{"cond_branch", NewCondBranch(fn, cond, a, b), false},
		{"return", NewReturn(fn), true},
		{"return_value", NewReturnValue(fn, cond), true},
	}
	for _, tt := range tests {
		if got := tt.term.Exits(); got != tt.want {
			t.Errorf("%s.Exits() = %v, want %v", tt.name, got, tt.want)
		}
		if !tt.term.HasSideEffects() {
			t.Errorf("%s.HasSideEffects() = false, want true", tt.name)
		}
	}
}

func TestBaseTerminatorExitsPanicsWithoutOverride(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic from an un-overridden Exits()")
		}
	}()
	bt := &baseTerminator{}
	bt.Exits()
}
