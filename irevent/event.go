// Package irevent implements the per-function instrumentation log: an
// append-only record of IR mutations suitable for replay in an external
// visualizer. It knows nothing about package ir's concrete value types —
// callers hand it already-shaped operand references and types, which keeps
// the dependency one-directional (ir imports irevent, not the reverse).
package irevent

import (
	"encoding/json"

	"github.com/hassan/ssair/irtype"
)

// Record is one entry in the event log. MarshalJSON flattens Fields
// alongside "kind" rather than nesting them, so a record serializes as
// {"kind":"add_instruction","name":...,"basic_block":...,"index":...}.
type Record struct {
	Kind   string
	Fields map[string]interface{}
}

func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(r.Fields)+1)
	m["kind"] = r.Kind
	for k, v := range r.Fields {
		m[k] = v
	}
	return json.Marshal(m)
}

// typeTable interns types by structural key (String()), assigning
// sequential integer ids the first time each distinct type is seen.
type typeTable struct {
	ids  map[string]int
	next int
}

func newTypeTable() *typeTable { return &typeTable{ids: map[string]int{}} }

func (t *typeTable) intern(ty irtype.Type) (id int, fresh bool) {
	key := ty.String()
	if id, ok := t.ids[key]; ok {
		return id, false
	}
	id = t.next
	t.next++
	t.ids[key] = id
	return id, true
}

func typeKindLabel(ty irtype.Type) string {
	switch ty.(type) {
	case *irtype.Pointer, *irtype.Array, *irtype.Struct, *irtype.Signature:
		return "composite"
	default:
		return "monotype"
	}
}

// Stream is a Function's instrumentation log. A Stream with Present()
// false records nothing — every emitter method below is a no-op until
// Enable is called, so instrumenting a function costs nothing when it's
// never turned on.
type Stream struct {
	present bool
	records []Record
	types   *typeTable
}

func NewStream() *Stream { return &Stream{types: newTypeTable()} }

func (s *Stream) Enable()       { s.present = true }
func (s *Stream) Present() bool { return s.present }

// Records returns a snapshot of the log; mutating it does not affect the
// stream.
func (s *Stream) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// MarshalJSON renders the full log as a JSON array, the canonical emission
// format per spec (§6: "emitted as JSON or an equivalent structured
// format").
func (s *Stream) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.records)
}

func (s *Stream) emit(kind string, fields map[string]interface{}) {
	if !s.present {
		return
	}
	s.records = append(s.records, Record{Kind: kind, Fields: fields})
}

// InternType interns ty and returns its id, emitting a `type` record the
// first time this Stream sees it. This is the only point at which package
// ir needs to hand a raw irtype.Type to this package.
func (s *Stream) InternType(ty irtype.Type) int {
	id, fresh := s.types.intern(ty)
	if fresh {
		s.emit("type", map[string]interface{}{
			"id":   id,
			"kind": typeKindLabel(ty),
			"name": ty.String(),
		})
	}
	return id
}

// ArgumentSpec describes one formal parameter for SetArguments.
type ArgumentSpec struct {
	Name string
	Type irtype.Type
}

func (s *Stream) SetArguments(args []ArgumentSpec) {
	if !s.present {
		return
	}
	list := make([]map[string]interface{}, len(args))
	for i, a := range args {
		list[i] = map[string]interface{}{"kind": "argument", "name": a.Name, "type": s.InternType(a.Type)}
	}
	s.emit("set_arguments", map[string]interface{}{"arguments": list})
}

func (s *Stream) SetReturnType(t irtype.Type) {
	if !s.present {
		return
	}
	s.emit("set_return_type", map[string]interface{}{"return_type": s.InternType(t)})
}

func (s *Stream) AddBasicBlock(name string)    { s.emit("add_basic_block", map[string]interface{}{"name": name}) }
func (s *Stream) RemoveBasicBlock(name string) { s.emit("remove_basic_block", map[string]interface{}{"name": name}) }

// UpdateInstruction records an instruction's current shape (operands and
// type). Per the ordering rule, callers must emit this before the matching
// AddInstruction for the same instruction.
func (s *Stream) UpdateInstruction(name, opcode, parameters string, operands []map[string]interface{}, typ irtype.Type) {
	if !s.present {
		return
	}
	s.emit("update_instruction", map[string]interface{}{
		"name":       name,
		"opcode":     opcode,
		"parameters": parameters,
		"operands":   operands,
		"type":       s.InternType(typ),
	})
}

func (s *Stream) AddInstruction(name, basicBlock string, index int) {
	s.emit("add_instruction", map[string]interface{}{"name": name, "basic_block": basicBlock, "index": index})
}

func (s *Stream) RemoveInstruction(name string) {
	s.emit("remove_instruction", map[string]interface{}{"name": name})
}

func (s *Stream) RenameInstruction(name, newName string) {
	s.emit("rename_instruction", map[string]interface{}{"name": name, "new_name": newName})
}

func (s *Stream) TransformStart(name string) {
	s.emit("transform_start", map[string]interface{}{"name": name})
}

// Operand reference constructors, used by callers building the "operands"
// list for UpdateInstruction.
func ConstantOperand(typeID int, value interface{}) map[string]interface{} {
	return map[string]interface{}{"kind": "constant", "type": typeID, "value": value}
}
func InstructionOperand(name string) map[string]interface{} {
	return map[string]interface{}{"kind": "instruction", "name": name}
}
func BasicBlockOperand(name string) map[string]interface{} {
	return map[string]interface{}{"kind": "basic_block", "name": name}
}
func ArgumentOperand(name string) map[string]interface{} {
	return map[string]interface{}{"kind": "argument", "name": name}
}
