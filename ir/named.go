package ir

import "github.com/hassan/ssair/irtype"

// NamedValue is a Value with a function-unique name: the base every
// Argument, BasicBlock, and Instruction is built on.
type NamedValue interface {
	Value
	Name() string
	SetName(name string)
	Function() *Function
}

// baseNamed is embedded by Argument, BasicBlock, and baseInstruction. Name
// disambiguation is delegated to the owning Function (MakeName), which
// applies the "name.N" suffix scheme described in spec.
type baseNamed struct {
	baseValue
	name string
	fn   *Function
}

func (n *baseNamed) Name() string      { return n.name }
func (n *baseNamed) Function() *Function { return n.fn }

func (n *baseNamed) SetName(name string) {
	if n.fn != nil {
		name = n.fn.MakeName(&name)
	}
	n.name = name
}

func (n *baseNamed) String() string { return "%" + n.name }
