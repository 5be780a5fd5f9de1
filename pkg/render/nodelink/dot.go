package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wayfinder/pkg/problems/graphs"
	"github.com/matzehuels/wayfinder/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the heuristic estimate to node labels.
	Detailed bool

	// Start marks the initial node.
	Start string

	// Path lists the states of a solution, initial state first. Its nodes
	// and the arcs between consecutive states are highlighted.
	Path []string
}

const (
	pathColor = "#2b6cb0"
	pathFill  = "#bee3f8"
)

// ToDOT converts a graph problem to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g *graphs.Graph, opts Options) string {
	onPath := make(map[string]bool, len(opts.Path))
	pathArc := make(map[[2]string]bool, len(opts.Path))
	for i, s := range opts.Path {
		onPath[s] = true
		if i > 0 {
			pathArc[[2]string{opts.Path[i-1], s}] = true
		}
	}
	goals := make(map[string]bool)
	for _, n := range g.Goals() {
		goals[n] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=14];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(g, n, opts.Detailed))}
		if goals[n] {
			attrs = append(attrs, "peripheries=2")
		}
		if n == opts.Start {
			attrs = append(attrs, "penwidth=2.5")
		}
		if onPath[n] {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", pathFill), fmt.Sprintf("color=%q", pathColor))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", strconv.FormatFloat(e.Cost, 'g', -1, 64))}
		if pathArc[[2]string{e.From, e.To}] {
			attrs = append(attrs, fmt.Sprintf("color=%q", pathColor), "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *graphs.Graph, node string, detailed bool) string {
	if !detailed {
		return node
	}
	h, ok := g.HeuristicOf(node)
	if !ok {
		return node
	}
	return fmt.Sprintf("%s\nh = %s", node, strconv.FormatFloat(h, 'g', -1, 64))
}

// Render renders DOT source in the given format: dot returns the source
// unchanged, svg and png go through Graphviz.
func Render(dot, format string) ([]byte, error) {
	if err := render.ValidateFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case render.FormatSVG:
		return RenderSVG(dot)
	case render.FormatPNG:
		return RenderPNG(dot)
	}
	return []byte(dot), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	out, err := renderGraphviz(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderGraphviz(dot, graphviz.PNG)
}

func renderGraphviz(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one
// whose viewBox starts at the origin, so the image scales in a browser.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
