package ir

// Factory builds an Instruction from operands and a syntax supplied by the
// opcode it is registered under. It is the one piece of per-opcode logic a
// Builder needs: everything else (arity/type checking, naming, operand
// wiring) is handled uniformly by InstructionSyntax and GenericInstruction.
type Factory func(fn *Function, syntax *InstructionSyntax, operands []Value, hint *string) (Instruction, error)

// Scope is the Builder's opcode registry. Unlike a lexical symbol table
// (nested scopes, shadowing, parent lookup), a builder's opcode set is flat
// and global to the builder: "add" means the same thing no matter which
// block is currently being built, so one map is all this needs.
type Scope struct {
	syntaxes map[string]*InstructionSyntax
	factory  map[string]Factory
}

// NewScope returns an empty registry, pre-seeded with the generic factory
// default: an opcode registered via Define alone (no RegisterFactory call)
// is built as a GenericInstruction bound to its InstructionSyntax.
func NewScope() *Scope {
	return &Scope{
		syntaxes: map[string]*InstructionSyntax{},
		factory:  map[string]Factory{},
	}
}

// Define registers opcode with the given syntax, building it as a
// GenericInstruction unless a Factory is separately registered for it.
func (s *Scope) Define(syntax *InstructionSyntax) {
	s.syntaxes[syntax.Opcode] = syntax
}

// RegisterFactory overrides how opcode is built, for opcodes (like phi or
// the terminators) whose instruction type carries bookkeeping beyond a
// generic operand list.
func (s *Scope) RegisterFactory(opcode string, f Factory) {
	s.factory[opcode] = f
}

// Lookup resolves opcode to its syntax. Returns ErrUnknownOpcode if opcode
// was never defined.
func (s *Scope) Lookup(opcode string) (*InstructionSyntax, error) {
	syntax, ok := s.syntaxes[opcode]
	if !ok {
		return nil, unknownOpcodef("no instruction registered for opcode %q", opcode)
	}
	return syntax, nil
}

// Build constructs an instruction for opcode, dispatching to a registered
// Factory if one exists, otherwise falling back to GenericInstruction.
func (s *Scope) Build(fn *Function, opcode string, operands []Value, hint *string) (Instruction, error) {
	syntax, err := s.Lookup(opcode)
	if err != nil {
		return nil, err
	}
	if f, ok := s.factory[opcode]; ok {
		return f(fn, syntax, operands, hint)
	}
	return newGenericInstruction(fn, syntax, operands, nil, hint)
}

// Opcodes lists every opcode this scope can build, in no particular order.
func (s *Scope) Opcodes() []string {
	out := make([]string, 0, len(s.syntaxes))
	for op := range s.syntaxes {
		out = append(out, op)
	}
	return out
}
