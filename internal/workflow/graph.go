package workflow

import (
	"fmt"
	"strings"
)

// Edge describes one transition of the pipeline graph. Conditional edges
// carry the routing label.
type Edge struct {
	From  Node   `json:"from"`
	To    Node   `json:"to"`
	Label string `json:"label,omitempty"`
}

func Nodes() []Node {
	return []Node{NodeGenerate, NodeValidate, NodeExecute, NodeCorrect, NodeFormat}
}

// Edges mirrors the Transition function for exporters and inspection.
func Edges() []Edge {
	return []Edge{
		{From: NodeGenerate, To: NodeValidate},
		{From: NodeValidate, To: NodeExecute, Label: "valid"},
		{From: NodeValidate, To: NodeEnd, Label: "invalid"},
		{From: NodeExecute, To: NodeFormat, Label: "success"},
		{From: NodeExecute, To: NodeCorrect, Label: "retry"},
		{From: NodeExecute, To: NodeEnd, Label: "max_retries"},
		{From: NodeCorrect, To: NodeExecute},
		{From: NodeFormat, To: NodeEnd},
	}
}

// DOT renders the graph as Graphviz text.
func DOT() string {
	var b strings.Builder
	b.WriteString("digraph askql {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded];\n")
	b.WriteString("  start [shape=circle, label=\"start\"];\n")
	b.WriteString("  end [shape=doublecircle, label=\"end\"];\n")
	for _, node := range Nodes() {
		fmt.Fprintf(&b, "  %s;\n", node)
	}
	fmt.Fprintf(&b, "  start -> %s;\n", NodeGenerate)
	for _, edge := range Edges() {
		if edge.Label != "" {
			fmt.Fprintf(&b, "  %s -> %s [label=%q];\n", edge.From, edge.To, edge.Label)
		} else {
			fmt.Fprintf(&b, "  %s -> %s;\n", edge.From, edge.To)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
