package nodelink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/wayfinder/pkg/problems/graphs"
)

func TestToDOT(t *testing.T) {
	g := graphs.Exercise()
	dot := ToDOT(g, Options{
		Start:    "S",
		Path:     []string{"S", "D", "C", "F", "G2"},
		Detailed: true,
	})

	for _, want := range []string{
		"digraph G {",
		`"S" -> "D" [label="5", color="#2b6cb0", penwidth=2.5];`,
		`"S" -> "A" [label="2"];`,
		`"F" -> "G2" [label="4", color="#2b6cb0", penwidth=2.5];`,
		`"G1" [label="G1\nh = 0", peripheries=2];`,
		`"C" [label="C\nh = 2", fillcolor="#bee3f8", color="#2b6cb0"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if !strings.Contains(dot, `"S" [label="S\nh = 7", penwidth=2.5, fillcolor=`) {
		t.Errorf("start node not bold:\n%s", dot)
	}
	// The reverse arc D -> S is not on the path.
	if strings.Contains(dot, `"D" -> "S" [label="8", color`) {
		t.Error("reverse arc should not be highlighted")
	}
}

func TestToDOTPlain(t *testing.T) {
	dot := ToDOT(graphs.ExerciseTwo(), Options{})
	if strings.Contains(dot, "h = ") {
		t.Error("plain labels should not show heuristics")
	}
	if strings.Contains(dot, "#2b6cb0") {
		t.Error("nothing should be highlighted without a path")
	}
	if got := strings.Count(dot, "->"); got != len(graphs.ExerciseTwo().Edges()) {
		t.Errorf("%d arcs in DOT, want %d", got, len(graphs.ExerciseTwo().Edges()))
	}
}

func TestRender(t *testing.T) {
	dot := ToDOT(graphs.Exercise(), Options{Start: "S"})

	out, err := Render(dot, "dot")
	if err != nil || string(out) != dot {
		t.Errorf("Render(dot) = %v, want the source back", err)
	}
	if _, err := Render(dot, "gif"); err == nil {
		t.Error("Render(gif) should fail")
	}

	svg, err := Render(dot, "svg")
	if err != nil {
		t.Fatalf("Render(svg): %v", err)
	}
	if !bytes.Contains(svg, []byte(`viewBox="0 0 `)) {
		t.Error("SVG viewBox should be normalized")
	}

	png, err := Render(dot, "png")
	if err != nil {
		t.Fatalf("Render(png): %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("PNG output lacks the PNG signature")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox = %s", out)
	}

	noBox := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(noBox); !bytes.Equal(got, noBox) {
		t.Error("SVG without viewBox should be unchanged")
	}
}
