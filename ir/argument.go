package ir

import "github.com/hassan/ssair/irtype"

// Argument is a NamedValue standing for one of a Function's formal
// parameters. Arguments are never instructions: they have no block, no
// operands, and exist for the lifetime of the Function that owns them.
type Argument struct {
	baseNamed
}

func newArgument(fn *Function, name string, typ irtype.Type) *Argument {
	a := &Argument{baseNamed{baseValue: baseValue{typ: typ}, fn: fn}}
	a.name = fn.MakeName(&name)
	return a
}

// HasSideEffects is true for arguments: the spec treats reading a
// parameter's initial binding as observable, the same way a Load is.
func (a *Argument) HasSideEffects() bool { return true }

func (a *Argument) String() string { return "%" + a.name }
