package pipeline

import (
	"context"
	"encoding/json"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/render"
)

const dialog = `
width = 200
height = 100

[root]
mode = "vstack"

[[root.children]]
id = "title"
text = "Hello"
w = -1
h = -1
pad = 2

[[root.children]]
id = "buttons"
align = "right"

[root.children.container]
mode = "hstack"

[[root.children.container.children]]
id = "ok"
w = 40
h = 20

[[root.children.container.children]]
id = "cancel"
w = 40
h = 20
pad = 1

[[root.children]]
id = "body"
w = 10
h = 10
auto_expand = true
align = "expand"
`

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"dot", false},
		{"tree", false},
		{"png", true},
		{"SVG", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", Options{}, false},
		{"negative", Options{Width: -1}, true},
		{"too large", Options{Height: 1 << 20}, true},
		{"bad format", Options{Formats: []string{"svg", "gif"}}, true},
		{"bad palette", Options{Palette: "neon"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	var o Options
	o.SetDefaults()
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG || o.Palette != PalettePaper || o.Measurer == nil {
		t.Errorf("SetDefaults() = %+v", o)
	}
}

func TestArrangeResizesRoot(t *testing.T) {
	doc, err := Load([]byte(dialog))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		opts Options
		want image.Point
	}{
		{"document size", Options{}, image.Pt(200, 100)},
		{"both", Options{Width: 300, Height: 240}, image.Pt(300, 240)},
		{"width only", Options{Width: 120}, image.Pt(120, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, tree, err := Arrange(doc, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := image.Pt(snap.Width, snap.Height); got != tt.want {
				t.Errorf("snapshot size = %v, want %v", got, tt.want)
			}
			if got := tree.Root().ContentSize(); got != tt.want {
				t.Errorf("ContentSize() = %v, want %v", got, tt.want)
			}
			if len(snap.Frames) != 5 || len(snap.Viewports) != 2 {
				t.Errorf("snapshot has %d frames, %d viewports, want 5, 2", len(snap.Frames), len(snap.Viewports))
			}
		})
	}
}

func TestRenderArtifacts(t *testing.T) {
	doc, _ := Load([]byte(dialog))
	opts := Options{Formats: []string{FormatJSON, FormatSVG, FormatDOT, FormatSVG}, Title: "dialog"}
	snap, tree, err := Arrange(doc, opts)
	if err != nil {
		t.Fatal(err)
	}
	out, err := RenderArtifacts(snap, tree, opts)
	if err != nil {
		t.Fatalf("RenderArtifacts() error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("RenderArtifacts() returned %d formats, want 3", len(out))
	}
	if !strings.Contains(string(out[FormatSVG]), "<title>dialog</title>") {
		t.Error("svg missing title")
	}
	if !strings.Contains(string(out[FormatSVG]), ">Hello</text>") {
		t.Error("svg missing label")
	}
	if !strings.HasPrefix(string(out[FormatDOT]), "digraph G {") {
		t.Error("dot output is not a digraph")
	}
	var decoded render.Snapshot
	if err := json.Unmarshal(out[FormatJSON], &decoded); err != nil {
		t.Fatalf("json output: %v", err)
	}
	if decoded.Width != 200 {
		t.Errorf("json width = %d, want 200", decoded.Width)
	}
}

func TestRunnerCheck(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	got, err := r.Check(context.Background(), []byte(dialog))
	if err != nil {
		t.Fatal(err)
	}
	if want := image.Pt(82, 52); got != want {
		t.Errorf("Check() = %v, want %v", got, want)
	}

	if _, err := r.Check(context.Background(), []byte("[root]\nmode = 1")); err == nil {
		t.Error("Check() of a bad document should fail")
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, quietLogger())
	opts := Options{Width: 300, Height: 200, Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, []byte(dialog), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.CheckHit || first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want all misses", first.CacheInfo)
	}
	if first.MinSize != image.Pt(82, 52) {
		t.Errorf("MinSize = %v, want (82,52)", first.MinSize)
	}
	if first.Stats.Frames != 5 || first.Stats.Containers != 2 {
		t.Errorf("Stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, []byte(dialog), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.CheckHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want all hits", second.CacheInfo)
	}
	if string(second.Artifacts[FormatSVG]) != string(first.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}
	if second.Snapshot.Width != 300 {
		t.Errorf("cached snapshot width = %d, want 300", second.Snapshot.Width)
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, []byte(dialog), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("Refresh should skip cache reads")
	}
}

func TestRunnerTree(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	tree, labels, err := r.Tree([]byte(dialog), Options{Width: 400})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tree.Len())
	}
	if labels["title"] != "Hello" {
		t.Errorf("labels[title] = %q, want Hello", labels["title"])
	}
	if got := tree.Root().ContentSize().X; got != 400 {
		t.Errorf("root width = %d, want 400", got)
	}
}
