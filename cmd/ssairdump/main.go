// Command ssairdump builds a small demonstration function, pretty-prints
// it, and dumps its instrumentation event stream as JSON. It exists to
// exercise the ir/irtype/irevent/irprint packages end to end, the way the
// compiler's own cmd once drove its lexer-to-IR pipeline.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hassan/ssair/ir"
	"github.com/hassan/ssair/irprint"
	"github.com/hassan/ssair/irtype"
)

func main() {
	b := ir.NewBuilder("foo", []ir.Param{
		{Name: "count", Type: irtype.Int},
		{Name: "outer", Type: irtype.Int},
	}, irtype.Void, ir.NewDemoScope(), true)

	count := b.Function().Arguments()[0]
	outer := b.Function().Arguments()[1]

	if _, err := b.Append("tuple_concat", []ir.Value{count, outer}, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	b.Return()

	p := irprint.NewPrinter()
	irprint.RenderFunction(p, b.Function())
	fmt.Println(p.String())

	events, err := json.MarshalIndent(b.Function().Events(), "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(events))
}
