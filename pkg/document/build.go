package document

import (
	"image"
	"math"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
)

// BuildOption configures [Document.Build].
type BuildOption func(*buildConfig)

type buildConfig struct {
	measurer   Measurer
	layoutOpts []layout.Option
}

// WithMeasurer sets the measurer for text-sized elements.
func WithMeasurer(m Measurer) BuildOption {
	return func(c *buildConfig) { c.measurer = m }
}

// WithLayoutOptions passes options to [layout.New], after the document's
// own scale.
func WithLayoutOptions(opts ...layout.Option) BuildOption {
	return func(c *buildConfig) { c.layoutOpts = append(c.layoutOpts, opts...) }
}

// Build creates the container tree described by d, propagates the minimum
// sizes of nested containers and arranges the root at the document's size.
// Anonymous elements are given their generated ids first.
func (d *Document) Build(opts ...BuildOption) (*layout.Tree, error) {
	cfg := buildConfig{measurer: DefaultMeasurer}
	for _, opt := range opts {
		opt(&cfg)
	}
	d.assignIDs()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	lopts := append([]layout.Option{layout.WithScale(d.Scale)}, cfg.layoutOpts...)
	tree := layout.New(d.Width, d.Height, lopts...)

	root := tree.Root()
	if err := buildGroup(root, &d.Root, cfg.measurer); err != nil {
		return nil, err
	}
	root.RecalcLayout()
	root.UpdateLayout()
	return tree, nil
}

func buildGroup(c *layout.Container, g *Group, m Measurer) error {
	mode, ok := layout.ParseMode(g.Mode)
	if !ok {
		return errors.New(errors.ErrCodeInvalidMode, "container %s: unknown mode %q", c.ID(), g.Mode)
	}
	for i := range g.Children {
		e := &g.Children[i]
		id := layout.ChildID(e.ID)
		r := record(mode, e, m)
		if e.Container == nil {
			if err := register(c, id, r); err != nil {
				return err
			}
			continue
		}
		child, err := addContainer(c, id, r)
		if err != nil {
			return err
		}
		if err := buildGroup(child, e.Container, m); err != nil {
			return err
		}
	}
	return nil
}

// record converts an element to the record variant of mode.
func record(mode layout.Mode, e *Element, m Measurer) layout.Record {
	var text image.Point
	if e.Text != "" && (e.W == Measured || e.H == Measured) {
		text = m.Measure(e.Text)
	}
	w, h := extent(e.W, text.X), extent(e.H, text.Y)

	switch mode {
	case layout.ModeHStack:
		align, _ := layout.ParseAlignV(e.Align)
		size, _ := layout.ParseSizeMode(e.Size)
		return layout.HStackItem{
			W: round(w), H: round(h),
			Pad: e.Pad, Filler: e.Filler, Split: e.Split,
			AutoExpand: e.AutoExpand, Align: align, Width: size,
		}
	case layout.ModePlace:
		pos, _ := layout.ParsePlaceKind(e.Pos)
		span, _ := layout.ParsePlaceKind(e.Span)
		return layout.PlaceItem{
			X: e.X, Y: e.Y, W: w, H: h,
			PosRef: layout.ChildID(e.PosRef), SpanRef: layout.ChildID(e.SpanRef),
			Pos: pos, Span: span,
		}
	default:
		align, _ := layout.ParseAlignH(e.Align)
		size, _ := layout.ParseSizeMode(e.Size)
		return layout.VStackItem{
			W: round(w), H: round(h),
			Pad: e.Pad, Filler: e.Filler, Split: e.Split,
			AutoExpand: e.AutoExpand, Align: align, Height: size,
		}
	}
}

// extent resolves a declared size; Measured takes the measured text size
// (zero for a container, whose size is propagated from its children).
func extent(v float64, measured int) float64 {
	if v == Measured {
		return float64(measured)
	}
	return v
}

func round(v float64) int { return int(math.Round(v)) }

func register(c *layout.Container, id layout.ChildID, r layout.Record) error {
	switch it := r.(type) {
	case layout.VStackItem:
		return c.VStack(id, it)
	case layout.HStackItem:
		return c.HStack(id, it)
	case layout.PlaceItem:
		return c.Place(id, it)
	}
	return errors.New(errors.ErrCodeInternal, "unsupported record %T", r)
}

func addContainer(c *layout.Container, id layout.ChildID, r layout.Record) (*layout.Container, error) {
	switch it := r.(type) {
	case layout.VStackItem:
		return c.AddVStackContainer(id, it)
	case layout.HStackItem:
		return c.AddHStackContainer(id, it)
	case layout.PlaceItem:
		return c.AddPlaceContainer(id, it)
	}
	return nil, errors.New(errors.ErrCodeInternal, "unsupported record %T", r)
}
