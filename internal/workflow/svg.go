package workflow

import (
	"fmt"
	"strings"
)

type point struct{ x, y float64 }

const (
	svgWidth  = 940
	svgHeight = 280
	boxWidth  = 130
	boxHeight = 44
)

// Hand-tuned layout: the happy path runs left to right, with the format and
// correct branches stacked after execute.
var nodePositions = map[string]point{
	"start":              {70, 140},
	string(NodeGenerate): {230, 140},
	string(NodeValidate): {390, 140},
	string(NodeExecute):  {550, 140},
	string(NodeFormat):   {710, 75},
	string(NodeCorrect):  {710, 205},
	string(NodeEnd):      {870, 140},
}

// SVG renders the pipeline as a standalone vector graphic.
func SVG() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", svgWidth, svgHeight, svgWidth, svgHeight)
	b.WriteString("<defs>\n")
	b.WriteString(`<marker id="arrow" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">` + "\n")
	b.WriteString(`<polygon points="0 0, 10 3.5, 0 7" fill="#444" />` + "\n")
	b.WriteString("</marker>\n</defs>\n")
	b.WriteString(`<rect x="0" y="0" width="100%" height="100%" fill="white"/>` + "\n")
	b.WriteString(`<text x="470" y="28" font-family="Arial, sans-serif" font-size="20" text-anchor="middle" fill="#222">AskQL Workflow</text>` + "\n")

	edges := append([]Edge{{From: "start", To: NodeGenerate}}, Edges()...)
	for _, edge := range edges {
		source := nodePositions[string(edge.From)]
		target := nodePositions[string(edge.To)]

		sy, ty := source.y, target.y
		// Nudge the two execute branches apart so the arrows don't overlap.
		switch {
		case edge.From == NodeExecute && edge.To == NodeFormat:
			sy -= 8
			ty += 8
		case edge.From == NodeExecute && edge.To == NodeCorrect:
			sy += 8
			ty -= 8
		}

		x1 := source.x + boxWidth/2
		x2 := target.x - boxWidth/2

		style := "stroke:#444;stroke-width:2;fill:none"
		if edge.Label != "" {
			style += ";stroke-dasharray:7,5"
		}
		fmt.Fprintf(&b, `<line x1="%g" y1="%g" x2="%g" y2="%g" style="%s" marker-end="url(#arrow)" />`+"\n", x1, sy, x2, ty, style)

		if edge.Label != "" {
			fmt.Fprintf(&b, `<text x="%g" y="%g" font-family="Arial, sans-serif" font-size="12" text-anchor="middle" fill="#333">%s</text>`+"\n",
				(x1+x2)/2, (sy+ty)/2-8, escapeXML(edge.Label))
		}
	}

	order := append([]string{"start"}, nodeNames()...)
	order = append(order, string(NodeEnd))
	for _, name := range order {
		p := nodePositions[name]
		fill := "#fad7de"
		switch name {
		case "start":
			fill = "#ffdfba"
		case string(NodeEnd):
			fill = "#baffc9"
		}
		fmt.Fprintf(&b, `<rect x="%g" y="%g" width="%d" height="%d" rx="12" ry="12" fill="%s" stroke="#333" stroke-width="1.5" />`+"\n",
			p.x-boxWidth/2, p.y-boxHeight/2, boxWidth, boxHeight, fill)
		fmt.Fprintf(&b, `<text x="%g" y="%g" font-family="Arial, sans-serif" font-size="13" text-anchor="middle" fill="#222">%s</text>`+"\n",
			p.x, p.y+5, escapeXML(name))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func nodeNames() []string {
	nodes := Nodes()
	names := make([]string, 0, len(nodes))
	for _, node := range nodes {
		names = append(names, string(node))
	}
	return names
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
