package ir

import "github.com/hassan/ssair/irtype"

// voidType is the result type terminators carry: they produce no usable
// value, but every Instruction still needs Type() to return something.
var voidType = irtype.Void
