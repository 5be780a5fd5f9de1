// Package nodelink renders graph search problems as node-link diagrams.
//
// # Overview
//
// [ToDOT] turns a [graphs.Graph] into Graphviz DOT source. Every arc is
// labelled with its cost, goal nodes get a double border and the start node
// a bold one. Passing the states of a solution highlights the path.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{
//	    Start:    "S",
//	    Path:     []string{"S", "D", "C", "F", "G2"},
//	    Detailed: true,
//	})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// [graphs.Graph]: github.com/matzehuels/wayfinder/pkg/problems/graphs.Graph
package nodelink
