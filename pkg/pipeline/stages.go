package pipeline

import (
	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/render"
	"github.com/matzehuels/stackbox/pkg/render/sink"
	"github.com/matzehuels/stackbox/pkg/render/treeviz"
)

// Load parses a layout document.
func Load(src []byte) (*document.Document, error) {
	return document.Parse(src)
}

// Build creates and arranges the container tree of doc. With a size in
// opts the root is resized to it after the document's own arrangement.
func Build(doc *document.Document, opts Options) (*layout.Tree, error) {
	opts.SetDefaults()
	var lopts []layout.Option
	if opts.Logger != nil {
		lopts = append(lopts, layout.WithLogger(opts.Logger))
	}
	if opts.Scale > 0 {
		lopts = append(lopts, layout.WithScale(opts.Scale))
	}
	lopts = append(lopts, opts.LayoutOptions...)
	tree, err := doc.Build(document.WithMeasurer(opts.Measurer), document.WithLayoutOptions(lopts...))
	if err != nil {
		return nil, err
	}
	resize(tree, opts)
	return tree, nil
}

func resize(tree *layout.Tree, opts Options) {
	if opts.Width == 0 && opts.Height == 0 {
		return
	}
	root := tree.Root()
	size := root.ContentSize()
	if opts.Width > 0 {
		size.X = opts.Width
	}
	if opts.Height > 0 {
		size.Y = opts.Height
	}
	root.Dispatch(layout.ResizeEvent{Width: size.X, Height: size.Y})
}

// Arrange builds doc and flattens the result.
func Arrange(doc *document.Document, opts Options) (render.Snapshot, *layout.Tree, error) {
	tree, err := Build(doc, opts)
	if err != nil {
		return render.Snapshot{}, nil, err
	}
	return render.Take(tree, render.WithLabels(doc.Labels())), tree, nil
}

// RenderArtifacts renders every format of opts from an arranged tree and
// its snapshot.
func RenderArtifacts(snap render.Snapshot, tree *layout.Tree, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()
	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.sortedFormats() {
		data, err := renderFormat(format, snap, tree, opts)
		if err != nil {
			return nil, err
		}
		out[format] = data
	}
	return out, nil
}

func renderFormat(format string, snap render.Snapshot, tree *layout.Tree, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(snap, svgOptions(opts)...), nil
	case FormatJSON:
		var jopts []sink.JSONOption
		if opts.ShowHidden {
			jopts = append(jopts, sink.WithJSONHidden())
		}
		if opts.Title != "" {
			jopts = append(jopts, sink.WithJSONSource(opts.Title))
		}
		return sink.RenderJSON(snap, jopts...)
	case FormatDOT:
		return []byte(treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.Detailed})), nil
	case FormatTree:
		return treeviz.RenderSVG(treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.Detailed}))
	}
	return nil, ValidateFormat(format)
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Palette == PaletteBlueprint {
		out = append(out, sink.WithPalette(sink.Blueprint))
	}
	if opts.Title != "" {
		out = append(out, sink.WithTitle(opts.Title))
	}
	if opts.NoLabels {
		out = append(out, sink.WithoutLabels())
	}
	return out
}
