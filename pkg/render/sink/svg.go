package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/stackbox/pkg/render"
)

const fontFamily = "ui-monospace, Menlo, Consolas, monospace"

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 20.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	palette    Palette
	title      string
	labels     bool
	scrollbars bool
}

func WithPalette(p Palette) SVGOption { return func(r *svgRenderer) { r.palette = p } }
func WithTitle(t string) SVGOption    { return func(r *svgRenderer) { r.title = t } }
func WithoutLabels() SVGOption        { return func(r *svgRenderer) { r.labels = false } }
func WithoutScrollbars() SVGOption    { return func(r *svgRenderer) { r.scrollbars = false } }

// RenderSVG draws the snapshot as a standalone SVG document.
func RenderSVG(s render.Snapshot, opts ...SVGOption) []byte {
	r := svgRenderer{palette: Paper, labels: true, scrollbars: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	r.renderDefs(&buf, s)
	fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		s.Width, s.Height, r.palette.Background)

	for _, f := range s.Frames {
		if !f.Visible() {
			continue
		}
		r.renderFrame(&buf, f)
	}
	if r.scrollbars {
		for _, vp := range s.Viewports {
			r.renderScrollbars(&buf, vp)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer, s render.Snapshot) {
	buf.WriteString("  <defs>\n")
	for _, vp := range s.Viewports {
		c := vp.Clip
		fmt.Fprintf(buf, `    <clipPath id="clip-%s"><rect x="%d" y="%d" width="%d" height="%d"/></clipPath>`+"\n",
			escapeXML(string(vp.ID)), c.X, c.Y, max(0, c.W), max(0, c.H))
	}
	buf.WriteString("  </defs>\n")
}

func (r *svgRenderer) renderFrame(buf *bytes.Buffer, f render.Frame) {
	class, fill, dash := "element", r.palette.fill(f.Depth), ""
	if f.Container {
		class, fill, dash = "container", "none", ` stroke-dasharray="4 2"`
	}
	id := escapeXML(string(f.ID))
	fmt.Fprintf(buf, `  <g clip-path="url(#clip-%s)">`+"\n", escapeXML(string(f.Parent)))
	fmt.Fprintf(buf, `    <rect id="el-%s" class="%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="1"%s/>`+"\n",
		id, class, f.Rect.X, f.Rect.Y, f.Rect.W, f.Rect.H, fill, r.palette.Stroke, dash)
	if r.labels && f.Label != "" && !f.Container {
		size := fontSizeFor(float64(f.Rect.W), float64(f.Rect.H), len([]rune(f.Label)))
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			float64(f.Rect.X)+float64(f.Rect.W)/2, float64(f.Rect.Y)+float64(f.Rect.H)/2,
			fontFamily, size, r.palette.Text, escapeXML(f.Label))
	}
	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) renderScrollbars(buf *bytes.Buffer, vp render.Viewport) {
	for _, sb := range vp.Scrollbars {
		t, m := sb.Track, sb.Thumb
		fmt.Fprintf(buf, `  <rect class="track %s" x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			sb.Axis, t.X, t.Y, t.W, t.H, r.palette.Track)
		if !m.Empty() {
			fmt.Fprintf(buf, `  <rect class="thumb %s" x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s"/>`+"\n",
				sb.Axis, m.X, m.Y, m.W, m.H, r.palette.Thumb)
		}
	}
}

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
