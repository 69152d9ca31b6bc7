package ir

import (
	"strconv"
	"strings"
)

// Module is an ordered collection of Functions keyed by name, with
// automatic disambiguation on insertion.
type Module struct {
	name      string
	functions []*Function
	byName    map[string]*Function
}

func NewModule(name string) *Module {
	return &Module{name: name, byName: map[string]*Function{}}
}

func (m *Module) Name() string { return m.name }

func (m *Module) Functions() []*Function {
	out := make([]*Function, len(m.functions))
	copy(out, m.functions)
	return out
}

// Add inserts fn, disambiguating its name against every function already
// present. The requested name is fn's own current name unless a prefix is
// given, in which case prefix is used (and becomes fn's original_name).
// Given a requested name n, the smallest k >= 0 such that n (k=0) or
// "n;k" is free becomes fn's disambiguated name; any trailing ";N" already
// present in the request is stripped before searching, so re-adding an
// already-disambiguated name still finds the next free slot rather than
// stacking suffixes.
func (m *Module) Add(fn *Function, prefix ...string) *Function {
	requested := fn.Name()
	if len(prefix) > 0 {
		requested = prefix[0]
	}
	fn.setOriginalName(requested)

	base := stripDisambiguationSuffix(requested)
	candidate := base
	if _, taken := m.byName[candidate]; taken {
		for k := 1; ; k++ {
			candidate = base + ";" + strconv.Itoa(k)
			if _, taken := m.byName[candidate]; !taken {
				break
			}
		}
	}
	fn.setName(candidate)
	m.byName[candidate] = fn
	m.functions = append(m.functions, fn)
	return fn
}

// Remove deletes a function by name or by reference.
func (m *Module) Remove(nameOrFn interface{}) {
	var name string
	switch v := nameOrFn.(type) {
	case string:
		name = v
	case *Function:
		name = v.Name()
	default:
		return
	}
	fn, ok := m.byName[name]
	if !ok {
		return
	}
	delete(m.byName, name)
	for i, f := range m.functions {
		if f == fn {
			m.functions = append(m.functions[:i], m.functions[i+1:]...)
			break
		}
	}
}

// Find resolves name against this module's functions. Fails with
// ErrNotFound otherwise.
func (m *Module) Find(name string) (*Function, error) {
	fn, ok := m.byName[name]
	if !ok {
		return nil, notFoundf("module %q has no function %q", m.name, name)
	}
	return fn, nil
}

// Instrumented returns every function whose event stream is present
// (instrumentation enabled), the aggregate the spec describes Module-level
// instrumentation as collecting.
func (m *Module) Instrumented() []*Function {
	var out []*Function
	for _, fn := range m.functions {
		if fn.Events().Present() {
			out = append(out, fn)
		}
	}
	return out
}

func (m *Module) String() string {
	var sb strings.Builder
	sb.WriteString("; module: ")
	sb.WriteString(m.name)
	sb.WriteString("\n\n")
	for _, fn := range m.functions {
		sb.WriteString(fn.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// stripDisambiguationSuffix removes a trailing ";<digits>" from n, if any.
func stripDisambiguationSuffix(n string) string {
	idx := strings.LastIndex(n, ";")
	if idx < 0 {
		return n
	}
	suffix := n[idx+1:]
	if suffix == "" {
		return n
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return n
		}
	}
	return n[:idx]
}
