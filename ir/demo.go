package ir

import "github.com/hassan/ssair/irtype"

// NewDemoScope builds a small registered opcode set: dup (returns its sole
// operand's own type), bin_op (integer arithmetic, two int operands, int
// result), tuple_concat (splat of any arity, dynamic array result). This is
// a demonstration set exercised by the builder's own tests, not a
// production instruction set — concrete opcodes are intentionally out of
// this core's scope.
func NewDemoScope() *Scope {
	s := NewScope()

	dup, _ := NewInstructionSyntax("dup", []SlotDescriptor{
		{Name: "value"},
	}, false, func(ops []Value) irtype.Type { return ops[0].Type() })
	s.Define(dup)

	binOp, _ := NewInstructionSyntax("bin_op", []SlotDescriptor{
		{Name: "lhs", Required: irtype.Int},
		{Name: "rhs", Required: irtype.Int},
	}, false, func(ops []Value) irtype.Type { return irtype.Int })
	s.Define(binOp)

	tupleConcat, _ := NewInstructionSyntax("tuple_concat", []SlotDescriptor{
		{Name: "elements", Splat: true},
	}, false, func(ops []Value) irtype.Type { return irtype.NewArray(irtype.Bottom, -1) })
	s.Define(tupleConcat)

	return s
}
