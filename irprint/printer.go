// Package irprint renders ir values as human-readable text: a small chunk
// assembler with one whitespace rule, plus an optional colorizing mode for
// keywords.
package irprint

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/hassan/ssair/irtype"
)

var defaultColor = isatty.IsTerminal(os.Stdout.Fd())

// SetDefaultColor overrides the process-wide default used by new Printers
// that don't explicitly request a color mode.
func SetDefaultColor(enabled bool) { defaultColor = enabled }

var keywordColor = color.New(color.Bold, color.FgWhite).SprintFunc()

type chunkKind int

const (
	chunkText chunkKind = iota
	chunkKeyword
	chunkType
	chunkNewline
)

type chunk struct {
	kind chunkKind
	text string
}

// Printer assembles chunks into text, inserting a single space between
// consecutive chunks unless the preceding chunk ended with a newline, the
// next chunk is a newline, or either chunk is empty.
type Printer struct {
	color  bool
	chunks []chunk
}

func NewPrinter() *Printer { return &Printer{color: defaultColor} }

// WithColor returns a Printer with the colorizing mode pinned explicitly,
// overriding the process default.
func (p *Printer) WithColor(enabled bool) *Printer {
	return &Printer{color: enabled}
}

// Text appends parts with no inter-part whitespace within this call; any
// non-string value is rendered via fmt.Sprint.
func (p *Printer) Text(parts ...interface{}) {
	var sb strings.Builder
	for _, part := range parts {
		if s, ok := part.(string); ok {
			sb.WriteString(s)
		} else {
			sb.WriteString(fmt.Sprint(part))
		}
	}
	p.push(chunkText, sb.String())
}

// Keyword appends s, wrapped in a bold escape sequence when colorizing is
// on.
func (p *Printer) Keyword(s string) {
	if p.color {
		s = keywordColor(s)
	}
	p.push(chunkKeyword, s)
}

// TypeChunk renders t with its leading "^" sigil, by handing t a scratch
// sink and folding its output into one chunk.
func (p *Printer) TypeChunk(t irtype.Type) {
	sub := &Printer{color: p.color}
	t.PrettyPrint(sub)
	p.push(chunkType, "^"+sub.String())
}

// Newline starts a fresh line; the chunk immediately following it is not
// preceded by a space.
func (p *Printer) Newline() {
	p.push(chunkNewline, "\n")
}

func (p *Printer) push(kind chunkKind, text string) {
	p.chunks = append(p.chunks, chunk{kind: kind, text: text})
}

// String renders every chunk pushed so far, applying the spacing rule.
// Empty chunks are transparent filler: they never get a space of their own
// and never block the space between the non-empty chunks around them.
func (p *Printer) String() string {
	var sb strings.Builder
	lastNonEmpty := -1
	for i, c := range p.chunks {
		if c.text == "" {
			continue
		}
		if lastNonEmpty >= 0 && !strings.HasSuffix(p.chunks[lastNonEmpty].text, "\n") && c.kind != chunkNewline {
			sb.WriteString(" ")
		}
		sb.WriteString(c.text)
		lastNonEmpty = i
	}
	return sb.String()
}
