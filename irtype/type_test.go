package irtype

import "testing"

type fakeSink struct{ out string }

func (f *fakeSink) Text(parts ...interface{}) {
	for _, p := range parts {
		f.out += p.(string)
	}
}
func (f *fakeSink) Keyword(s string) { f.out += s }

func TestPrimitiveEqual(t *testing.T) {
	if !Int.Equal(Int) {
		t.Fatalf("Int should equal itself")
	}
	if Int.Equal(Float) {
		t.Fatalf("Int should not equal Float")
	}
}

func TestBottomSentinel(t *testing.T) {
	if !Bottom.Equal(Bottom) {
		t.Fatalf("Bottom should equal itself")
	}
	if Bottom.Equal(Int) {
		t.Fatalf("Bottom should not equal Int")
	}
	if Bottom.String() != "bottom" {
		t.Fatalf("unexpected Bottom.String(): %q", Bottom.String())
	}
}

func TestPointerStructuralEquality(t *testing.T) {
	a := NewPointer(Int)
	b := NewPointer(Int)
	c := NewPointer(Float)
	if !a.Equal(b) {
		t.Fatalf("pointers to equal elements should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("pointers to different elements should not be equal")
	}
	if a.String() != "*int" {
		t.Fatalf("unexpected String(): %q", a.String())
	}
}

func TestArrayDynamicVsFixed(t *testing.T) {
	dyn := NewArray(Int, -1)
	fixed := NewArray(Int, 4)
	if dyn.Equal(fixed) {
		t.Fatalf("dynamic and fixed arrays should not be equal")
	}
	if dyn.String() != "[]int" {
		t.Fatalf("unexpected dynamic array String(): %q", dyn.String())
	}
	if fixed.String() != "[4]int" {
		t.Fatalf("unexpected fixed array String(): %q", fixed.String())
	}
}

func TestStructNominalEquality(t *testing.T) {
	a := NewStruct("Point", []Field{{Name: "x", Type: Int}, {Name: "y", Type: Int}})
	b := NewStruct("Point", nil)
	c := NewStruct("Vector", nil)
	if !a.Equal(b) {
		t.Fatalf("named structs with the same name should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("named structs with different names should not be equal")
	}
	if a.LookupField("y") == nil {
		t.Fatalf("expected field y to be found")
	}
	if a.LookupField("z") != nil {
		t.Fatalf("did not expect field z")
	}
}

func TestStructAnonymousStructuralEquality(t *testing.T) {
	a := NewStruct("", []Field{{Name: "x", Type: Int}})
	b := NewStruct("", []Field{{Name: "x", Type: Int}})
	c := NewStruct("", []Field{{Name: "x", Type: Float}})
	if !a.Equal(b) {
		t.Fatalf("anonymous structs with equal fields should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("anonymous structs with different field types should not be equal")
	}
}

func TestSignatureStructuralEquality(t *testing.T) {
	a := NewSignature([]Type{Int, Int}, Bool)
	b := NewSignature([]Type{Int, Int}, Bool)
	c := NewSignature([]Type{Int}, Bool)
	if !a.Equal(b) {
		t.Fatalf("signatures with equal shape should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("signatures with different arity should not be equal")
	}
}

func TestReplaceTypeWithRecursesThroughPointer(t *testing.T) {
	p := NewPointer(Int)
	replaced := p.ReplaceTypeWith(Int, Bool)
	if !replaced.Equal(NewPointer(Bool)) {
		t.Fatalf("expected *bool, got %s", replaced.String())
	}
}

func TestPrettyPrintUsesSink(t *testing.T) {
	sink := &fakeSink{}
	NewPointer(Int).PrettyPrint(sink)
	if sink.out != "*int" {
		t.Fatalf("unexpected pretty-print output: %q", sink.out)
	}
}

func TestLabelSingleton(t *testing.T) {
	if !Label.Equal(Label) {
		t.Fatalf("Label should equal itself")
	}
	if Label.String() != "label" {
		t.Fatalf("unexpected Label.String(): %q", Label.String())
	}
}
