package irprint

import (
	"fmt"

	"github.com/hassan/ssair/ir"
	"github.com/hassan/ssair/irtype"
)

// RenderConstant prints "<type> <value-literal>".
func RenderConstant(p *Printer, c *ir.Constant) {
	p.TypeChunk(c.Type())
	p.Text(fmt.Sprint(c.Payload()))
}

// RenderArgument prints "<type> %<name>".
func RenderArgument(p *Printer, a *ir.Argument) {
	p.TypeChunk(a.Type())
	p.Text("%", a.Name())
}

// RenderInstruction renders instr per the contract: an instruction with no
// operands and bottom result type prints as just its opcode; otherwise it
// prints "<type> %<name> = <opcode>[ !invalid] <operands...>". Phi operands
// render as "%<block> => <value>" pairs.
func RenderInstruction(p *Printer, instr ir.Instruction) {
	operands := instr.Operands()
	if len(operands) == 0 && instr.Type().Equal(irtype.Bottom) {
		p.Keyword(instr.Opcode())
		return
	}

	p.TypeChunk(instr.Type())
	p.Text("%" + instr.Name())
	p.Text("=")
	p.Keyword(instr.Opcode())

	if valid, ok := instr.(interface{ Valid() bool }); ok && !valid.Valid() {
		p.Text("!invalid")
	}

	if phi, ok := instr.(*ir.PhiInsn); ok {
		values, blocks := phi.Values(), phi.Blocks()
		for i := range values {
			if i > 0 {
				p.Text(",")
			}
			p.Text("%" + blocks[i].Name())
			p.Text("=>")
			p.Text(values[i].String())
		}
		return
	}

	for i, op := range operands {
		if i > 0 {
			p.Text(",")
		}
		if bb, ok := op.(*ir.BasicBlock); ok {
			InspectBasicBlockAsValue(p, bb)
			continue
		}
		p.Text(op.String())
	}
}

// RenderBasicBlock prints the block's header, its instructions indented
// three spaces each, then a trailing newline.
func RenderBasicBlock(p *Printer, b *ir.BasicBlock) {
	p.Text(b.Name() + ":")
	p.Newline()
	for _, instr := range b.Instructions() {
		p.Text("  ")
		RenderInstruction(p, instr)
		p.Newline()
	}
}

// InspectBasicBlockAsValue renders a block the way it appears as an operand
// (e.g. a branch target): "label %<name>".
func InspectBasicBlockAsValue(p *Printer, b *ir.BasicBlock) {
	p.Keyword("label")
	p.Text("%", b.Name())
}

// RenderFunction prints the full function signature and body.
func RenderFunction(p *Printer, fn *ir.Function) {
	p.Keyword("function")
	p.TypeChunk(fn.ReturnType())
	p.Text(fn.Name() + "(")
	for i, a := range fn.Arguments() {
		if i > 0 {
			p.Text(",")
		}
		RenderArgument(p, a)
	}
	p.Text(") {")
	p.Newline()
	for i, b := range fn.Blocks() {
		if i > 0 {
			p.Newline()
		}
		RenderBasicBlock(p, b)
	}
	p.Text("}")
	p.Newline()
}
