package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/askql/askql/internal/workflow"
)

func main() {
	dotPath := flag.String("dot", "askql_workflow.dot", "output path for the Graphviz file")
	svgPath := flag.String("svg", "askql_workflow.svg", "output path for the SVG file")
	flag.Parse()

	if err := os.WriteFile(*dotPath, []byte(workflow.DOT()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write dot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *dotPath)

	if err := os.WriteFile(*svgPath, []byte(workflow.SVG()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write svg: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *svgPath)
}
