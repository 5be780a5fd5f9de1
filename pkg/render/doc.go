// Package render draws search problems as images.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders graph problems as Graphviz diagrams:
// nodes are boxes annotated with their heuristic estimate, arcs carry their
// cost, and a solution path can be highlighted.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Start: "S", Path: report.States})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/matzehuels/wayfinder/pkg/render/nodelink
package render

import "fmt"

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png)", format)
	}
	return nil
}
