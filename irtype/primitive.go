package irtype

// Kind distinguishes the primitive types. A Primitive keeps its kind in an
// unexported field: external code is expected to compare types with Equal,
// not switch on their kind.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindChar
	KindVoid
	KindNil
)

// Primitive is a scalar, kind-only type. Instances are singletons; two
// Primitives with the same kind are always Equal.
type Primitive struct {
	kind Kind
}

var (
	Int    Type = &Primitive{KindInt}
	Float  Type = &Primitive{KindFloat}
	Bool   Type = &Primitive{KindBool}
	String Type = &Primitive{KindString}
	Char   Type = &Primitive{KindChar}
	Void   Type = &Primitive{KindVoid}
	Nil    Type = &Primitive{KindNil}
)

func (p *Primitive) ToType() Type { return p }

func (p *Primitive) Equal(other Type) bool {
	o, ok := other.ToType().(*Primitive)
	return ok && o.kind == p.kind
}

func (p *Primitive) ReplaceTypeWith(from, to Type) Type {
	if p.Equal(from) {
		return to
	}
	return p
}

func (p *Primitive) PrettyPrint(s ChunkSink) { s.Keyword(p.String()) }

func (p *Primitive) String() string {
	switch p.kind {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindVoid:
		return "void"
	case KindNil:
		return "nil"
	default:
		return "<invalid>"
	}
}

// IsNumeric reports whether t is int or float.
func IsNumeric(t Type) bool {
	p, ok := t.ToType().(*Primitive)
	return ok && (p.kind == KindInt || p.kind == KindFloat)
}
