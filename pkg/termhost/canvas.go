package termhost

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stackbox/pkg/render"
)

type kind uint8

const (
	kindEmpty kind = iota
	kindBorder
	kindContainer
	kindLabel
	kindTrack
	kindThumb
	kindFill
)

const fillKinds = 4

type glyphs struct {
	tl, tr, bl, br, h, v rune
}

var (
	elementGlyphs   = glyphs{'┌', '┐', '└', '┘', '─', '│'}
	containerGlyphs = glyphs{'╭', '╮', '╰', '╯', '┄', '┆'}
)

// box is a half-open range of cells.
type box struct {
	x0, y0, x1, y1 int
}

func (b box) intersect(o box) box {
	return box{max(b.x0, o.x0), max(b.y0, o.y0), min(b.x1, o.x1), min(b.y1, o.y1)}
}

// cells rounds a pixel rectangle to the cells it mostly covers, at least one.
func cells(r render.Rect, cell image.Point) box {
	b := box{
		x0: roundDiv(r.X, cell.X),
		y0: roundDiv(r.Y, cell.Y),
		x1: roundDiv(r.X+r.W, cell.X),
		y1: roundDiv(r.Y+r.H, cell.Y),
	}
	b.x1 = max(b.x1, b.x0+1)
	b.y1 = max(b.y1, b.y0+1)
	return b
}

// roundDiv divides rounding half up, also for negative v.
func roundDiv(v, d int) int {
	n, m := 2*v+d, 2*d
	q := n / m
	if n%m != 0 && n < 0 {
		q--
	}
	return q
}

// canvas is a grid of cells, each a rune and a style kind.
type canvas struct {
	cols, rows int
	runes      []rune
	kinds      []kind
}

func newCanvas(cols, rows int) *canvas {
	cols, rows = max(0, cols), max(0, rows)
	c := &canvas{cols: cols, rows: rows, runes: make([]rune, cols*rows), kinds: make([]kind, cols*rows)}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

func (c *canvas) set(x, y int, r rune, k kind) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	i := y*c.cols + x
	c.runes[i], c.kinds[i] = r, k
}

// paint draws the visible frames of snap, parents first, then the scroll
// bars of every container.
func paint(snap render.Snapshot, cell image.Point, cols, rows int) *canvas {
	cv := newCanvas(cols, rows)
	for _, f := range snap.Frames {
		if !f.Visible() {
			continue
		}
		b, clip := cells(f.Rect, cell), cells(f.Clip, cell)
		if f.Container {
			cv.frame(b, clip, containerGlyphs, kindContainer)
			continue
		}
		cv.fill(b, clip, ' ', kindFill+kind(f.Depth%fillKinds))
		cv.frame(b, clip, elementGlyphs, kindBorder)
		cv.label(b, clip, f.Label)
	}
	for _, vp := range snap.Viewports {
		if vp.Visible.Empty() {
			continue
		}
		vis := cells(vp.Visible, cell)
		for _, sb := range vp.Scrollbars {
			cv.fill(cells(sb.Track, cell), vis, '░', kindTrack)
			if !sb.Thumb.Empty() {
				cv.fill(cells(sb.Thumb, cell), vis, '█', kindThumb)
			}
		}
	}
	return cv
}

func (c *canvas) fill(b, clip box, r rune, k kind) {
	in := b.intersect(clip)
	for y := in.y0; y < in.y1; y++ {
		for x := in.x0; x < in.x1; x++ {
			c.set(x, y, r, k)
		}
	}
}

// frame draws the outline of b. A one row box gets brackets instead.
func (c *canvas) frame(b, clip box, g glyphs, k kind) {
	in := b.intersect(clip)
	for y := in.y0; y < in.y1; y++ {
		for x := in.x0; x < in.x1; x++ {
			top, bottom := y == b.y0, y == b.y1-1
			left, right := x == b.x0, x == b.x1-1
			var r rune
			switch {
			case b.y1-b.y0 == 1 && left:
				r = '['
			case b.y1-b.y0 == 1 && right:
				r = ']'
			case b.y1-b.y0 == 1:
				continue
			case top && left:
				r = g.tl
			case top && right:
				r = g.tr
			case bottom && left:
				r = g.bl
			case bottom && right:
				r = g.br
			case top || bottom:
				r = g.h
			case left || right:
				r = g.v
			default:
				continue
			}
			c.set(x, y, r, k)
		}
	}
}

// label centers text inside the outline of b, on the middle row of its
// visible part, truncated with an ellipsis.
func (c *canvas) label(b, clip box, text string) {
	width := b.x1 - b.x0 - 2
	if text == "" || width <= 0 {
		return
	}
	runes := []rune(strings.ReplaceAll(text, "\n", " "))
	if len(runes) > width {
		runes = append(runes[:width-1], '…')
	}
	in := b.intersect(clip)
	if in.y1 <= in.y0 {
		return
	}
	y := in.y0 + (in.y1-in.y0-1)/2
	x0 := b.x0 + 1 + (width-len(runes))/2
	for i, r := range runes {
		if x := x0 + i; x >= in.x0 && x < in.x1 {
			c.set(x, y, r, kindLabel)
		}
	}
}

// String returns the grid without styling.
func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for y := range lines {
		lines[y] = string(c.runes[y*c.cols : (y+1)*c.cols])
	}
	return strings.Join(lines, "\n")
}

// render returns the grid with runs of equal kind styled.
func (c *canvas) render() string {
	var out strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := y * c.cols
		for x := 0; x < c.cols; {
			k, end := c.kinds[row+x], x
			for end < c.cols && c.kinds[row+end] == k {
				end++
			}
			seg := string(c.runes[row+x : row+end])
			if k == kindEmpty {
				out.WriteString(seg)
			} else {
				out.WriteString(styleFor(k).Render(seg))
			}
			x = end
		}
	}
	return out.String()
}

var (
	styleBorder    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	styleContainer = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleLabel     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	styleTrack     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	styleThumb     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleStatus    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("36"))
	styleHelp      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fillStyles = [fillKinds]lipgloss.Style{
		lipgloss.NewStyle().Background(lipgloss.Color("235")),
		lipgloss.NewStyle().Background(lipgloss.Color("236")),
		lipgloss.NewStyle().Background(lipgloss.Color("237")),
		lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
)

func styleFor(k kind) lipgloss.Style {
	switch k {
	case kindBorder:
		return styleBorder
	case kindContainer:
		return styleContainer
	case kindLabel:
		return styleLabel
	case kindTrack:
		return styleTrack
	case kindThumb:
		return styleThumb
	}
	return fillStyles[(k-kindFill)%fillKinds]
}
