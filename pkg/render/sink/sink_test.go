package sink

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/stackbox/pkg/render"
)

func testSnapshot() render.Snapshot {
	return render.Snapshot{
		Width:  100,
		Height: 80,
		Viewports: []render.Viewport{{
			ID:      "root",
			Mode:    "vstack",
			Rect:    render.Rect{W: 100, H: 80},
			Visible: render.Rect{W: 100, H: 80},
			Clip:    render.Rect{W: 90, H: 80},
			Scrollbars: []render.Scrollbar{{
				Axis:  "vertical",
				Track: render.Rect{X: 90, W: 10, H: 80},
				Thumb: render.Rect{X: 90, Y: 10, W: 10, H: 40},
				Page:  80, Max: 159, Pos: 20,
			}},
		}},
		Frames: []render.Frame{
			{ID: "title", Parent: "root", Depth: 1, Rect: render.Rect{W: 90, H: 20}, Clip: render.Rect{W: 90, H: 20}, Label: "<a&b>"},
			{ID: "gone", Parent: "root", Depth: 1, Rect: render.Rect{Y: -40, W: 90, H: 20}, Label: "gone"},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	tests := []struct {
		name    string
		opts    []SVGOption
		want    []string
		notWant []string
	}{
		{
			name: "default",
			want: []string{
				`viewBox="0 0 100 80"`,
				`<clipPath id="clip-root"><rect x="0" y="0" width="90" height="80"/></clipPath>`,
				`clip-path="url(#clip-root)"`,
				`id="el-title"`,
				`&lt;a&amp;b&gt;`,
				`class="thumb vertical" x="90" y="10" width="10" height="40"`,
				Paper.Background,
			},
			notWant: []string{`id="el-gone"`, "<title>"},
		},
		{
			name:    "no labels",
			opts:    []SVGOption{WithoutLabels()},
			notWant: []string{"<text"},
		},
		{
			name:    "no scrollbars",
			opts:    []SVGOption{WithoutScrollbars()},
			notWant: []string{"thumb", "track"},
		},
		{
			name: "title and palette",
			opts: []SVGOption{WithTitle("a < b"), WithPalette(Blueprint)},
			want: []string{"<title>a &lt; b</title>", Blueprint.Background},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(RenderSVG(testSnapshot(), tt.opts...))
			if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
				t.Fatalf("RenderSVG() is not an svg document:\n%s", svg)
			}
			for _, w := range tt.want {
				if !strings.Contains(svg, w) {
					t.Errorf("RenderSVG() missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(svg, w) {
					t.Errorf("RenderSVG() contains %q", w)
				}
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	tests := []struct {
		name   string
		opts   []JSONOption
		frames int
		source string
	}{
		{"visible only", nil, 1, ""},
		{"with hidden", []JSONOption{WithJSONHidden()}, 2, ""},
		{"with source", []JSONOption{WithJSONSource("dialog.toml")}, 1, "dialog.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderJSON(testSnapshot(), tt.opts...)
			if err != nil {
				t.Fatalf("RenderJSON() error: %v", err)
			}
			var got struct {
				Source string         `json:"source"`
				Width  int            `json:"width"`
				Frames []render.Frame `json:"frames"`
			}
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(got.Frames) != tt.frames {
				t.Errorf("frames = %d, want %d", len(got.Frames), tt.frames)
			}
			if got.Source != tt.source {
				t.Errorf("source = %q, want %q", got.Source, tt.source)
			}
			if got.Width != 100 {
				t.Errorf("width = %d, want 100", got.Width)
			}
		})
	}
}

func TestFontSizeFor(t *testing.T) {
	tests := []struct {
		w, h float64
		n    int
		want float64
	}{
		{1000, 1000, 1, fontSizeMax},
		{1, 1, 10, fontSizeMin},
		{100, 20, 1, 12},
	}
	for _, tt := range tests {
		if got := fontSizeFor(tt.w, tt.h, tt.n); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("fontSizeFor(%v, %v, %d) = %v, want %v", tt.w, tt.h, tt.n, got, tt.want)
		}
	}
}
