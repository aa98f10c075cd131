package thicket

import (
	"fmt"
	"strings"
)

// globalDebug enables the extra tree checks below. Off by default; the
// checks cost a branch per tree operation when disabled.
var globalDebug bool

// SetDebugMode turns on disposed-node panics and wide-node warnings for all
// tree operations.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("thicket debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger().Warn("thicket: node has too many children",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// DumpTree renders the subtree below n, one node per line, indented by
// depth. Each line shows kind, role, name and ID.
func DumpTree(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s role=%d %q #%d", n.Kind, n.role, n.Name, n.ID)
	switch {
	case n.Text != nil:
		fmt.Fprintf(b, " text=%q", n.Text.Content)
	case n.Ticks != nil:
		fmt.Fprintf(b, " lines=%d", n.Ticks.NumLines())
	}
	if !n.Owned {
		b.WriteString(" external")
	}
	b.WriteByte('\n')
	for _, c := range n.children {
		dumpNode(b, c, depth+1)
	}
}
