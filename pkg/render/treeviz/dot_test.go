package treeviz

import (
	"strings"
	"testing"

	"github.com/matzehuels/stackbox/pkg/layout"
)

func testTree(t *testing.T) *layout.Tree {
	t.Helper()
	tree := layout.New(200, 100)
	root := tree.Root()
	row, err := root.AddVStackContainer("toolbar", layout.VStackItem{W: 100, H: 20})
	if err != nil {
		t.Fatal(err)
	}
	_ = row.HStack("open", layout.HStackItem{W: 20, H: 20})
	_ = root.VStack("canvas", layout.VStackItem{W: 100, H: 50})
	root.UpdateLayout()
	return tree
}

func TestToDOT(t *testing.T) {
	tests := []struct {
		name     string
		detailed bool
		want     []string
		notWant  []string
	}{
		{
			name: "simple",
			want: []string{
				`"root" [label="root"]`,
				`"toolbar" [label="toolbar"]`,
				`"open" [label="open", shape=ellipse`,
				`"root" -> "toolbar";`,
				`"root" -> "canvas";`,
				`"toolbar" -> "open";`,
			},
			notWant: []string{"size:"},
		},
		{
			name:     "detailed",
			detailed: true,
			want: []string{
				`label="root\nvstack\nsize: 200x100`,
				`label="canvas\n0,20 100x50"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(testTree(t), Options{Detailed: tt.detailed})
			if !strings.HasPrefix(dot, "digraph G {") {
				t.Fatalf("ToDOT() = %q, want digraph", dot)
			}
			for _, w := range tt.want {
				if !strings.Contains(dot, w) {
					t.Errorf("ToDOT() missing %q in\n%s", w, dot)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(dot, w) {
					t.Errorf("ToDOT() contains %q", w)
				}
			}
		})
	}
}

func TestToDOTDeclaresContainersOnce(t *testing.T) {
	dot := ToDOT(testTree(t), Options{})
	if n := strings.Count(dot, `"toolbar" [`); n != 1 {
		t.Errorf("toolbar declared %d times, want 1", n)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox() without viewBox = %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(testTree(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "toolbar") {
		t.Errorf("RenderSVG() output missing svg or node text")
	}
}
