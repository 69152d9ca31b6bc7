package irprint

import (
	"strings"
	"testing"

	"github.com/hassan/ssair/ir"
	"github.com/hassan/ssair/irtype"
)

func TestSpacingBetweenTextAndKeyword(t *testing.T) {
	p := NewPrinter().WithColor(false)
	p.Text("foo")
	p.Keyword("doh")
	p.Text("bar")
	if got := p.String(); got != "foo doh bar" {
		t.Fatalf("got %q", got)
	}
}

func TestNoSpaceAfterNewline(t *testing.T) {
	p := NewPrinter().WithColor(false)
	p.Text("foo")
	p.Newline()
	p.Text("bar")
	if got := p.String(); got != "foo\nbar" {
		t.Fatalf("got %q", got)
	}
}

func TestEmptyChunkContributesNoSpace(t *testing.T) {
	p := NewPrinter().WithColor(false)
	p.Text("foo")
	p.Text("")
	p.Text("bar")
	if got := p.String(); got != "foo bar" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeChunkAddsCaret(t *testing.T) {
	p := NewPrinter().WithColor(false)
	p.TypeChunk(irtype.Int)
	if got := p.String(); got != "^int" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderFunctionIncludesSignatureAndBlocks(t *testing.T) {
	fn := ir.NewFunction("foo", []ir.Param{
		{Name: "count", Type: irtype.Int},
		{Name: "outer", Type: irtype.Int},
	}, irtype.Void)

	p := NewPrinter().WithColor(false)
	RenderFunction(p, fn)
	out := p.String()

	if !strings.Contains(out, "function") {
		t.Fatalf("missing function keyword: %q", out)
	}
	if !strings.Contains(out, "foo(") {
		t.Fatalf("missing name/args: %q", out)
	}
	if !strings.Contains(out, "%count") || !strings.Contains(out, "%outer") {
		t.Fatalf("missing argument names: %q", out)
	}
	if !strings.Contains(out, "entry:") {
		t.Fatalf("missing entry block header: %q", out)
	}
}

func TestInspectBasicBlockAsValue(t *testing.T) {
	fn := ir.NewFunction("f", nil, irtype.Void)
	p := NewPrinter().WithColor(false)
	InspectBasicBlockAsValue(p, fn.Entry())
	if got := p.String(); got != "label %entry" {
		t.Fatalf("got %q", got)
	}
}
