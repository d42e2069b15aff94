package dot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/isograph/core"
)

// Marshal renders g as Graphviz DOT text. Directed graphs become a
// digraph with "->" edges, undirected graphs a graph with "--" edges.
// On weighted graphs every edge carries a label attribute with its
// weight; non-zero node weights become node labels "ordinal (weight)".
//
// Complexity: O(V + E).
func Marshal(g *core.Graph) string {
	var b strings.Builder

	keyword, arrow := "graph", "--"
	if g.Directed() {
		keyword, arrow = "digraph", "->"
	}
	fmt.Fprintf(&b, "%s G {\n", keyword)

	for v := 0; v < g.NodeCount(); v++ {
		w, _ := g.NodeWeight(v)
		if g.Weighted() && w != 0 {
			fmt.Fprintf(&b, "  %d [label=\"%d (%d)\"];\n", v, v, w)
			continue
		}
		fmt.Fprintf(&b, "  %d;\n", v)
	}

	for _, e := range g.Edges() {
		if g.Weighted() {
			fmt.Fprintf(&b, "  %d %s %d [label=\"%d\"];\n", e.From, arrow, e.To, e.Weight)
			continue
		}
		fmt.Fprintf(&b, "  %d %s %d;\n", e.From, arrow, e.To)
	}

	b.WriteString("}\n")

	return b.String()
}
