package bpaf

import (
	"fmt"

	"go.bpaf.dev/bpaf/internal/iterutil"
)

// DescribePrimitives renders one 1-based, numbered line per primitive
// reachable in m, in depth-first tree order (not grouped into sections the
// way --help lists them). Mainly useful for
// inspecting a parser's Meta tree from a test failure message or a REPL,
// without reaching for the full RenderHelp page.
func DescribePrimitives(m Meta) []string {
	var out []string
	for i, p := range iterutil.Enumerate(Primitives(m)) {
		out = append(out, fmt.Sprintf("%d: %s", i+1, helpLeftColumn(p)))
	}
	return out
}
