package ir

import "github.com/hassan/ssair/irtype"

// SlotDescriptor names one operand position an instruction's syntax
// accepts. A Splat slot must be the last one declared and collects every
// remaining operand instead of exactly one.
type SlotDescriptor struct {
	Name     string
	Splat    bool
	Required irtype.Type // nil accepts any type
}

// InstructionSyntax is the declarative operand schema the Scope registers
// an opcode under. It drives both construction-time validation (ARITY,
// TYPE) and Valid(), which re-runs the same checks without erroring.
type InstructionSyntax struct {
	Opcode      string
	Slots       []SlotDescriptor
	SideEffects bool

	// ResultType derives the instruction's result type from its bound
	// operands. When nil, no type is derived: Scope.Build passes no
	// explicit type, so the instruction's type is Bottom until SetType
	// assigns one.
	ResultType func(operands []Value) irtype.Type
}

// NewInstructionSyntax validates slots and returns the syntax, or a SCHEMA
// error if more than one slot is a splat, or a splat slot isn't last.
func NewInstructionSyntax(opcode string, slots []SlotDescriptor, sideEffects bool, resultType func([]Value) irtype.Type) (*InstructionSyntax, error) {
	for i, slot := range slots {
		if slot.Splat && i != len(slots)-1 {
			return nil, schemaf("opcode %s: splat slot %q must be the last slot", opcode, slot.Name)
		}
	}
	return &InstructionSyntax{Opcode: opcode, Slots: slots, SideEffects: sideEffects, ResultType: resultType}, nil
}

func (s *InstructionSyntax) indexOf(name string) int {
	for i, slot := range s.Slots {
		if slot.Name == name {
			return i
		}
	}
	return -1
}

// bindOperands checks operands against the slot schema: ARITY (right
// count, or enough for the trailing splat) then TYPE (each required slot's
// type, if declared).
func (s *InstructionSyntax) bindOperands(operands []Value) error {
	n := len(s.Slots)
	if n == 0 {
		if len(operands) != 0 {
			return arityf("opcode %s takes no operands, got %d", s.Opcode, len(operands))
		}
		return nil
	}
	last := s.Slots[n-1]
	if last.Splat {
		if len(operands) < n-1 {
			return arityf("opcode %s expects at least %d operands, got %d", s.Opcode, n-1, len(operands))
		}
	} else if len(operands) != n {
		return arityf("opcode %s expects %d operands, got %d", s.Opcode, n, len(operands))
	}
	for i, slot := range s.Slots {
		if slot.Splat {
			for _, v := range operands[i:] {
				if slot.Required != nil && !v.Type().Equal(slot.Required) {
					return typef("opcode %s slot %q: expected %s, got %s", s.Opcode, slot.Name, slot.Required, v.Type())
				}
			}
			break
		}
		if slot.Required != nil && !operands[i].Type().Equal(slot.Required) {
			return typef("opcode %s slot %q: expected %s, got %s", s.Opcode, slot.Name, slot.Required, operands[i].Type())
		}
	}
	return nil
}

// Valid reports whether operands satisfy this syntax, without error detail.
func (s *InstructionSyntax) Valid(operands []Value) bool {
	return s.bindOperands(operands) == nil
}
