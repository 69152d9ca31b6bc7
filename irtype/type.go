// Package irtype implements the opaque Type protocol consumed by package ir.
//
// The core IR never branches on a type's internal shape; it only calls the
// four protocol methods every Type must support: ToType, Equal, PrettyPrint,
// and ReplaceTypeWith. Concrete types live here because something has to
// satisfy the protocol for the module to build and be tested, but ir itself
// stays agnostic to which concrete Type it is holding.
package irtype

// ChunkSink is the narrow surface a Type needs from a printer to render
// itself. Defined here (not in irprint) so this package has no dependency
// on the printer; irprint.Printer satisfies it structurally.
type ChunkSink interface {
	Text(parts ...interface{})
	Keyword(s string)
}

// Type is the opaque protocol every IR type must implement.
type Type interface {
	// ToType returns the canonical type this object stands for. Most
	// concrete types return themselves; it exists so that a type alias
	// or a not-yet-resolved placeholder can defer to its target.
	ToType() Type

	// Equal reports whether two types denote the same type.
	Equal(other Type) bool

	// PrettyPrint renders this type's own textual form (without the
	// leading "^" the printer adds when rendering a type chunk).
	PrettyPrint(sink ChunkSink)

	// ReplaceTypeWith returns a type with every occurrence of from
	// rewritten to to. Types with no internal structure just compare
	// themselves against from; composite types recurse.
	ReplaceTypeWith(from, to Type) Type

	String() string
}

type bottomType struct{}

// Bottom is the sentinel type for values whose type could not be
// determined (for instance, an Instruction before its syntax assigns one).
var Bottom Type = &bottomType{}

func (b *bottomType) ToType() Type                 { return b }
func (b *bottomType) Equal(other Type) bool         { _, ok := other.ToType().(*bottomType); return ok }
func (b *bottomType) PrettyPrint(s ChunkSink)       { s.Keyword("bottom") }
func (b *bottomType) String() string                { return "bottom" }
func (b *bottomType) ReplaceTypeWith(from, to Type) Type {
	if b.Equal(from) {
		return to
	}
	return b
}
