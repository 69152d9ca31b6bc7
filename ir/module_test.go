package ir

import (
	"testing"

	"github.com/hassan/ssair/irtype"
)

// TestModuleDisambiguation mirrors spec scenario S6: adding three functions
// named "foo", "foo", "foo;1" yields names "foo", "foo;1", "foo;2" with
// original_name "foo", "foo", "foo;1" respectively.
func TestModuleDisambiguation(t *testing.T) {
	m := NewModule("m")

	f1 := m.Add(NewFunction("foo", nil, irtype.Void))
	f2 := m.Add(NewFunction("foo", nil, irtype.Void))
	f3 := m.Add(NewFunction("foo;1", nil, irtype.Void))

	cases := []struct {
		fn           *Function
		name         string
		originalName string
	}{
		{f1, "foo", "foo"},
		{f2, "foo;1", "foo"},
		{f3, "foo;2", "foo;1"},
	}
	for i, c := range cases {
		if c.fn.Name() != c.name {
			t.Errorf("functions[%d].Name() = %q, want %q", i, c.fn.Name(), c.name)
		}
		if c.fn.OriginalName() != c.originalName {
			t.Errorf("functions[%d].OriginalName() = %q, want %q", i, c.fn.OriginalName(), c.originalName)
		}
	}
}

func TestModuleFindAndRemove(t *testing.T) {
	m := NewModule("m")
	fn := m.Add(NewFunction("foo", nil, irtype.Void))

	if _, err := m.Find("foo"); err != nil {
		t.Fatalf("Find(foo): %v", err)
	}

	m.Remove(fn)
	if _, err := m.Find("foo"); err == nil {
		t.Fatalf("Find(foo) after Remove = nil error, want ErrNotFound")
	}
}

func TestModuleInstrumentedFiltersByEventPresence(t *testing.T) {
	m := NewModule("m")
	quiet := m.Add(NewFunction("quiet", nil, irtype.Void))
	loud := m.Add(NewFunction("loud", nil, irtype.Void), "loud")
	loud.Events().Enable()

	instrumented := m.Instrumented()
	if len(instrumented) != 1 || instrumented[0] != loud {
		t.Fatalf("Instrumented() = %v, want [loud]", instrumented)
	}
	_ = quiet
}
