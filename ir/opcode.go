package ir

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

const classSuffix = "Insn"

// opcodeForInstruction derives the wire/builder opcode string for an
// instruction from its concrete Go type name: "BinOpInsn" -> "bin_op". The
// reverse direction is OpcodeToClassName; Scope looks opcodes up by this
// string directly and does not call it.
func opcodeForInstruction(v interface{}) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return ClassNameToOpcode(t.Name())
}

// ClassNameToOpcode converts a Go instruction type name to its opcode:
// strips the "Insn" suffix, then snake-cases what's left.
func ClassNameToOpcode(className string) string {
	return strcase.ToSnake(strings.TrimSuffix(className, classSuffix))
}

// OpcodeToClassName is the inverse of ClassNameToOpcode: "bin_op" ->
// "BinOpInsn".
func OpcodeToClassName(opcode string) string {
	return strcase.ToCamel(opcode) + classSuffix
}
