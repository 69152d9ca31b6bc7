package ir

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/hassan/ssair/irevent"
	"github.com/hassan/ssair/irtype"
)

// Param describes one formal parameter when constructing a Function.
type Param struct {
	Name string
	Type irtype.Type
}

// Function owns an ordered set of blocks, an entry block, its arguments,
// and a return type. Every named value it carries — argument, block, or
// instruction — shares one flat namespace disambiguated by MakeName.
//
// Invariant of well-formed IR: every operand of every instruction in this
// function is either a Constant, one of this function's own Arguments, or a
// named value belonging to this function. Nothing checks it: Builder.Append
// and SetOperands take whatever operands the caller passes.
type Function struct {
	name         string
	originalName string
	args         []*Argument
	returnType   irtype.Type
	entry        *BasicBlock
	blocks       []*BasicBlock
	events       *irevent.Stream

	usedNames map[string]bool
	nextAnon  int
}

// NewFunction builds an empty function: its arguments, an entry block, and
// nothing else. Instrumentation starts disabled; call Events().Enable() to
// turn it on.
func NewFunction(name string, params []Param, returnType irtype.Type) *Function {
	fn := &Function{
		name:         name,
		originalName: name,
		returnType:   returnType,
		events:       irevent.NewStream(),
		usedNames:    map[string]bool{},
	}
	specs := make([]irevent.ArgumentSpec, len(params))
	for i, p := range params {
		arg := newArgument(fn, p.Name, p.Type)
		fn.args = append(fn.args, arg)
		specs[i] = irevent.ArgumentSpec{Name: arg.Name(), Type: p.Type}
	}
	fn.events.SetArguments(specs)
	fn.events.SetReturnType(returnType)
	fn.entry = fn.AddBlock("entry")
	return fn
}

func (f *Function) Name() string         { return f.name }
func (f *Function) OriginalName() string { return f.originalName }
func (f *Function) ReturnType() irtype.Type { return f.returnType }
func (f *Function) Entry() *BasicBlock   { return f.entry }
func (f *Function) Events() *irevent.Stream { return f.events }

func (f *Function) Arguments() []*Argument {
	out := make([]*Argument, len(f.args))
	copy(out, f.args)
	return out
}

func (f *Function) Blocks() []*BasicBlock {
	out := make([]*BasicBlock, len(f.blocks))
	copy(out, f.blocks)
	return out
}

func (f *Function) setName(name string)         { f.name = name }
func (f *Function) setOriginalName(name string) { f.originalName = name }

// AddBlock creates a fresh block owned by this function.
func (f *Function) AddBlock(name string) *BasicBlock {
	b := newBasicBlock(f, name)
	f.blocks = append(f.blocks, b)
	f.events.AddBasicBlock(b.Name())
	return b
}

// RemoveBlock drops b from this function's block list. It does not detach
// b's instructions or rewrite any terminator still naming b — callers are
// expected to have already rerouted control flow away from b.
func (f *Function) RemoveBlock(b *BasicBlock) {
	for i, existing := range f.blocks {
		if existing == b {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			f.events.RemoveBasicBlock(b.Name())
			return
		}
	}
}

// Find resolves name against arguments, blocks, and every block's
// instructions. Fails with ErrNotFound if nothing matches.
func (f *Function) Find(name string) (NamedValue, error) {
	for _, a := range f.args {
		if a.Name() == name {
			return a, nil
		}
	}
	for _, b := range f.blocks {
		if b.Name() == name {
			return b, nil
		}
		for _, instr := range b.instructions {
			if instr.Name() == name {
				return instr, nil
			}
		}
	}
	return nil, notFoundf("function %q has no named value %q", f.name, name)
}

// EachInstruction flattens every block's instructions in insertion order.
func (f *Function) EachInstruction() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, b := range f.blocks {
			for _, instr := range b.instructions {
				if !yield(instr) {
					return
				}
			}
		}
	}
}

// MakeName resolves a name request to one guaranteed unique within this
// function: a nil or empty hint returns a fresh decimal string; a hint
// already in use gets a ".N" suffix (smallest free N >= 1); otherwise the
// hint is returned as-is.
func (f *Function) MakeName(hint *string) string {
	var candidate string
	if hint == nil || *hint == "" {
		for {
			candidate = strconv.Itoa(f.nextAnon)
			f.nextAnon++
			if !f.usedNames[candidate] {
				break
			}
		}
	} else if !f.usedNames[*hint] {
		candidate = *hint
	} else {
		for n := 1; ; n++ {
			c := fmt.Sprintf("%s.%d", *hint, n)
			if !f.usedNames[c] {
				candidate = c
				break
			}
		}
	}
	f.usedNames[candidate] = true
	return candidate
}

// BeginTransform emits a transform_start marker naming the transform that
// is about to run. Transform pipelines themselves are out of scope; this
// is the hook they attach to.
func (f *Function) BeginTransform(name string) { f.events.TransformStart(name) }

// operandRef encodes v the way the event stream's operand tables require.
func (f *Function) operandRef(v Value) map[string]interface{} {
	switch t := v.(type) {
	case *Constant:
		return irevent.ConstantOperand(f.events.InternType(t.Type()), t.Payload())
	case *Argument:
		return irevent.ArgumentOperand(t.Name())
	case *BasicBlock:
		return irevent.BasicBlockOperand(t.Name())
	case Instruction:
		return irevent.InstructionOperand(t.Name())
	default:
		return map[string]interface{}{"kind": "unknown"}
	}
}

func (f *Function) operandRefs(vals []Value) []map[string]interface{} {
	out := make([]map[string]interface{}, len(vals))
	for i, v := range vals {
		out[i] = f.operandRef(v)
	}
	return out
}

// recordPlacement emits the update_instruction/add_instruction pair for an
// instruction that was just appended or inserted into block at index,
// honoring the "update precedes add" ordering rule.
func (f *Function) recordPlacement(instr Instruction, blockName string, index int) {
	if !f.events.Present() {
		return
	}
	f.events.UpdateInstruction(instr.Name(), instr.Opcode(), "", f.operandRefs(instr.Operands()), instr.Type())
	f.events.AddInstruction(instr.Name(), blockName, index)
}

func (f *Function) String() string {
	var sb strings.Builder
	sb.WriteString("func ")
	sb.WriteString(f.name)
	sb.WriteString("(")
	for i, a := range f.args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
		sb.WriteString(": ")
		sb.WriteString(a.Type().String())
	}
	sb.WriteString(") ")
	sb.WriteString(f.returnType.String())
	sb.WriteString(" {\n")
	for _, b := range f.blocks {
		sb.WriteString(b.String())
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Dup produces a deep, self-consistent clone of f: fresh argument, block,
// and instruction identities, but every external reference (constants,
// types) shared by identity with the original. The original_name is
// preserved across the clone, and the clone's own name is reset to it
// (undoing any module-level ";N" disambiguation the original picked up).
func (f *Function) Dup() *Function {
	clone := &Function{
		name:         f.originalName,
		originalName: f.originalName,
		returnType:   f.returnType,
		events:       irevent.NewStream(),
		usedNames:    map[string]bool{},
	}

	valueMap := make(map[Value]Value, len(f.args)+len(f.blocks))

	// Pass 0: clone arguments (fresh identity, same type/name basis).
	for _, a := range f.args {
		na := newArgument(clone, a.Name(), a.Type())
		clone.args = append(clone.args, na)
		valueMap[a] = na
	}

	// Pass 1: clone blocks and their instructions without operands —
	// establishes the identity mapping before any operand is rewritten.
	for i, b := range f.blocks {
		var nb *BasicBlock
		if i == 0 {
			// clone.entry already exists from no constructor call here —
			// Function.Dup builds its shell manually, so create it now.
			nb = newBasicBlock(clone, b.Name())
			clone.blocks = append(clone.blocks, nb)
			clone.entry = nb
		} else {
			nb = clone.AddBlock(b.Name())
		}
		valueMap[b] = nb

		for _, instr := range b.instructions {
			ni := cloneInstructionShell(clone, instr)
			valueMap[instr] = ni
			nb.Append(ni)
		}
	}

	// Pass 2: rewrite every clone's operands, substituting mapped
	// intra-function values; anything absent from the map (constants,
	// external references) is reused by identity.
	for _, b := range f.blocks {
		for _, instr := range b.instructions {
			cloned := valueMap[instr].(Instruction)
			original := instr.Operands()
			rewritten := make([]Value, len(original))
			for i, op := range original {
				if mapped, ok := valueMap[op]; ok {
					rewritten[i] = mapped
				} else {
					rewritten[i] = op
				}
			}
			cloned.SetOperands(rewritten)
		}
	}

	return clone
}

// cloneInstructionShell builds an operand-less copy of instr owned by
// clone, preserving its opcode/type/name basis. The operand rewrite pass
// fills in SetOperands afterward.
func cloneInstructionShell(clone *Function, instr Instruction) Instruction {
	name := instr.Name()
	switch src := instr.(type) {
	case *GenericInstruction:
		dst := &GenericInstruction{opcode: src.opcode, syntax: src.syntax}
		dst.fn = clone
		dst.baseValue.typ = src.Type()
		dst.baseUser.bind(dst)
		dst.name = clone.MakeName(&name)
		return dst
	case *PhiInsn:
		dst := NewPhi(clone, src.Type(), &name)
		return dst
	case *BranchInsn:
		dst := &BranchInsn{}
		dst.fn = clone
		dst.baseValue.typ = voidType
		dst.baseUser.bind(dst)
		dst.name = clone.MakeName(&name)
		return dst
	case *CondBranchInsn:
		dst := &CondBranchInsn{}
		dst.fn = clone
		dst.baseValue.typ = voidType
		dst.baseUser.bind(dst)
		dst.name = clone.MakeName(&name)
		return dst
	case *ReturnInsn:
		dst := &ReturnInsn{}
		dst.fn = clone
		dst.baseValue.typ = voidType
		dst.baseUser.bind(dst)
		dst.name = clone.MakeName(&name)
		return dst
	case *ReturnValueInsn:
		dst := &ReturnValueInsn{}
		dst.fn = clone
		dst.baseValue.typ = voidType
		dst.baseUser.bind(dst)
		dst.name = clone.MakeName(&name)
		return dst
	default:
		panic(fmt.Sprintf("ir: Dup does not know how to clone %T", instr))
	}
}
