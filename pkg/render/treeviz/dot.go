package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackbox/pkg/layout"
)

// Options configures tree diagram rendering.
type Options struct {
	// Detailed adds layout state to node labels. When false, only the
	// child id is shown.
	Detailed bool
}

// ToDOT converts the container tree to Graphviz DOT format.
func ToDOT(tree *layout.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	var edges []string
	tree.Walk(func(c *layout.Container, _ int) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID(), strings.Join(containerAttrs(c, opts.Detailed), ", "))
		for _, id := range c.Children() {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", c.ID(), id))
			if _, nested := c.Nested(id); nested {
				continue
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(elementAttrs(c, id, opts.Detailed), ", "))
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func containerAttrs(c *layout.Container, detailed bool) []string {
	label := string(c.ID())
	if detailed {
		size, field, pos := c.ContentSize(), c.FieldSize(), c.ScrollPos()
		label += fmt.Sprintf("\n%s\nsize: %dx%d\nfield: %dx%d\nscroll: %d,%d",
			c.Mode(), size.X, size.Y, field.X, field.Y, pos.X, pos.Y)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if h, v := c.ScrollbarsVisible(); h || v {
		attrs = append(attrs, "color=steelblue", "penwidth=2")
	}
	return attrs
}

func elementAttrs(c *layout.Container, id layout.ChildID, detailed bool) []string {
	label := string(id)
	if detailed {
		if r, ok := c.ChildRect(id); ok {
			label += fmt.Sprintf("\n%d,%d %dx%d", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
		}
	}
	return []string{fmt.Sprintf("label=%q", label), "shape=ellipse", "style=filled", "fillcolor=whitesmoke"}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag, which sizes the drawing in
// points, with one sized in pixels from the origin.
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
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
