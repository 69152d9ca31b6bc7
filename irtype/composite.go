package irtype

import (
	"fmt"
	"strings"
)

// labelType is the type of a BasicBlock used as a value (spec: a block is a
// NamedValue of "label" type). There is exactly one.
type labelType struct{}

var Label Type = &labelType{}

func (l *labelType) ToType() Type           { return l }
func (l *labelType) Equal(other Type) bool  { _, ok := other.ToType().(*labelType); return ok }
func (l *labelType) PrettyPrint(s ChunkSink) { s.Keyword("label") }
func (l *labelType) String() string         { return "label" }
func (l *labelType) ReplaceTypeWith(from, to Type) Type {
	if l.Equal(from) {
		return to
	}
	return l
}

// Pointer is a structural pointer-to type.
type Pointer struct {
	Elem Type
}

func NewPointer(elem Type) *Pointer { return &Pointer{Elem: elem} }

func (p *Pointer) ToType() Type { return p }

func (p *Pointer) Equal(other Type) bool {
	o, ok := other.ToType().(*Pointer)
	return ok && p.Elem.Equal(o.Elem)
}

func (p *Pointer) PrettyPrint(s ChunkSink) { s.Text(p.String()) }
func (p *Pointer) String() string          { return "*" + p.Elem.String() }

func (p *Pointer) ReplaceTypeWith(from, to Type) Type {
	if p.Equal(from) {
		return to
	}
	return &Pointer{Elem: p.Elem.ReplaceTypeWith(from, to)}
}

// Array is a structural array type; Size < 0 means dynamically sized.
type Array struct {
	Elem Type
	Size int
}

func NewArray(elem Type, size int) *Array { return &Array{Elem: elem, Size: size} }

func (a *Array) ToType() Type { return a }

func (a *Array) Equal(other Type) bool {
	o, ok := other.ToType().(*Array)
	return ok && a.Size == o.Size && a.Elem.Equal(o.Elem)
}

func (a *Array) PrettyPrint(s ChunkSink) { s.Text(a.String()) }

func (a *Array) String() string {
	if a.Size < 0 {
		return "[]" + a.Elem.String()
	}
	return fmt.Sprintf("[%d]%s", a.Size, a.Elem.String())
}

func (a *Array) ReplaceTypeWith(from, to Type) Type {
	if a.Equal(from) {
		return to
	}
	return &Array{Elem: a.Elem.ReplaceTypeWith(from, to), Size: a.Size}
}

// Field is one named member of a Struct.
type Field struct {
	Name string
	Type Type
}

// Struct is nominal when Name is non-empty, structural otherwise — the same
// split the teacher's types.StructType makes.
type Struct struct {
	Name   string
	Fields []Field
}

func NewStruct(name string, fields []Field) *Struct { return &Struct{Name: name, Fields: fields} }

func (st *Struct) ToType() Type { return st }

func (st *Struct) Equal(other Type) bool {
	o, ok := other.ToType().(*Struct)
	if !ok {
		return false
	}
	if st.Name != "" && o.Name != "" {
		return st.Name == o.Name
	}
	if len(st.Fields) != len(o.Fields) {
		return false
	}
	for i, f := range st.Fields {
		if f.Name != o.Fields[i].Name || !f.Type.Equal(o.Fields[i].Type) {
			return false
		}
	}
	return true
}

func (st *Struct) PrettyPrint(s ChunkSink) { s.Text(st.String()) }

func (st *Struct) String() string {
	if st.Name != "" {
		return "struct " + st.Name
	}
	parts := make([]string, len(st.Fields))
	for i, f := range st.Fields {
		parts[i] = f.Name + " " + f.Type.String()
	}
	return "struct {" + strings.Join(parts, "; ") + "}"
}

func (st *Struct) ReplaceTypeWith(from, to Type) Type {
	if st.Equal(from) {
		return to
	}
	return st
}

// LookupField returns the field named name, or nil if there is none.
func (st *Struct) LookupField(name string) *Field {
	for i := range st.Fields {
		if st.Fields[i].Name == name {
			return &st.Fields[i]
		}
	}
	return nil
}

// Signature is a function type; equality is structural (parameter and
// result types), never by name — functions are values, names don't matter.
type Signature struct {
	Params []Type
	Result Type
}

func NewSignature(params []Type, result Type) *Signature {
	return &Signature{Params: params, Result: result}
}

func (f *Signature) ToType() Type { return f }

func (f *Signature) Equal(other Type) bool {
	o, ok := other.ToType().(*Signature)
	if !ok || len(f.Params) != len(o.Params) || !f.Result.Equal(o.Result) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

func (f *Signature) PrettyPrint(s ChunkSink) { s.Text(f.String()) }

func (f *Signature) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("func(%s) %s", strings.Join(params, ", "), f.Result.String())
}

func (f *Signature) ReplaceTypeWith(from, to Type) Type {
	if f.Equal(from) {
		return to
	}
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.ReplaceTypeWith(from, to)
	}
	return &Signature{Params: params, Result: f.Result.ReplaceTypeWith(from, to)}
}
