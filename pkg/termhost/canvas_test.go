package termhost

import (
	"image"
	"strings"
	"testing"

	"github.com/matzehuels/stackbox/pkg/render"
)

var unitCell = image.Pt(1, 1)

func TestPaintElement(t *testing.T) {
	snap := render.Snapshot{
		Width: 8, Height: 4,
		Frames: []render.Frame{{
			ID: "a", Depth: 1,
			Rect: render.Rect{W: 6, H: 3}, Clip: render.Rect{W: 6, H: 3},
			Label: "hi",
		}},
	}
	got := paint(snap, unitCell, 8, 4).String()
	want := strings.Join([]string{
		"┌────┐  ",
		"│ hi │  ",
		"└────┘  ",
		"        ",
	}, "\n")
	if got != want {
		t.Errorf("paint() =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintClipped(t *testing.T) {
	snap := render.Snapshot{
		Frames: []render.Frame{{
			ID: "a", Depth: 1,
			Rect: render.Rect{Y: -1, W: 6, H: 3}, Clip: render.Rect{W: 6, H: 2},
			Label: "hi",
		}},
	}
	got := paint(snap, unitCell, 6, 3).String()
	want := strings.Join([]string{
		"│ hi │",
		"└────┘",
		"      ",
	}, "\n")
	if got != want {
		t.Errorf("paint() =\n%s\nwant\n%s", got, want)
	}
}

func TestPaintOneRowAndTruncation(t *testing.T) {
	snap := render.Snapshot{
		Frames: []render.Frame{{
			ID: "b", Depth: 1,
			Rect: render.Rect{W: 6, H: 1}, Clip: render.Rect{W: 6, H: 1},
			Label: "cancel",
		}},
	}
	if got, want := paint(snap, unitCell, 6, 1).String(), "[can…]"; got != want {
		t.Errorf("paint() = %q, want %q", got, want)
	}
}

func TestPaintScrollbar(t *testing.T) {
	snap := render.Snapshot{
		Viewports: []render.Viewport{{
			ID:      "root",
			Visible: render.Rect{W: 8, H: 4},
			Scrollbars: []render.Scrollbar{{
				Axis:  "vertical",
				Track: render.Rect{X: 7, W: 1, H: 4},
				Thumb: render.Rect{X: 7, Y: 1, W: 1, H: 2},
			}},
		}},
	}
	lines := strings.Split(paint(snap, unitCell, 8, 4).String(), "\n")
	var col []rune
	for _, l := range lines {
		col = append(col, []rune(l)[7])
	}
	if got := string(col); got != "░██░" {
		t.Errorf("scroll bar column = %q, want %q", got, "░██░")
	}
}

func TestCells(t *testing.T) {
	cell := image.Pt(8, 16)
	tests := []struct {
		r    render.Rect
		want box
	}{
		{render.Rect{W: 20, H: 16}, box{0, 0, 3, 1}},
		{render.Rect{X: 20, W: 20, H: 16}, box{3, 0, 5, 1}},
		{render.Rect{X: 2, Y: 2, W: 1, H: 1}, box{0, 0, 1, 1}},
		{render.Rect{Y: -24, W: 8, H: 48}, box{0, -1, 1, 2}},
	}
	for _, tt := range tests {
		if got := cells(tt.r, cell); got != tt.want {
			t.Errorf("cells(%+v) = %+v, want %+v", tt.r, got, tt.want)
		}
	}
}

func TestRenderKeepsText(t *testing.T) {
	cv := newCanvas(3, 1)
	cv.set(1, 0, 'x', kindLabel)
	if got := cv.render(); !strings.Contains(got, "x") || strings.Count(got, " ") < 2 {
		t.Errorf("render() = %q", got)
	}
}
