package render

import (
	"image"

	"github.com/matzehuels/stackbox/pkg/layout"
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// RectOf converts an image rectangle.
func RectOf(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Image converts r back to an image rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{Min: image.Pt(r.X, r.Y), Max: image.Pt(r.X+r.W, r.Y+r.H)}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Frame is one element of a snapshot.
type Frame struct {
	ID        layout.ChildID `json:"id"`
	Parent    layout.ChildID `json:"parent"`
	Depth     int            `json:"depth"`
	Rect      Rect           `json:"rect"` // in root coordinates
	Clip      Rect           `json:"clip"` // visible part of Rect
	Container bool           `json:"container,omitempty"`
	Label     string         `json:"label,omitempty"`
}

// Visible reports whether any part of the frame is on screen.
func (f Frame) Visible() bool { return !f.Clip.Empty() }

// Scrollbar is the state of one scroll bar of a container.
type Scrollbar struct {
	Axis  string `json:"axis"`
	Track Rect   `json:"track"`
	Thumb Rect   `json:"thumb"`
	Pos   int    `json:"pos"`
	Page  int    `json:"page"`
	Max   int    `json:"max"`
}

// Viewport is the visible area of one container.
type Viewport struct {
	ID         layout.ChildID `json:"id"`
	Mode       string         `json:"mode"`
	Depth      int            `json:"depth"`
	Rect       Rect           `json:"rect"`    // content area including scroll bars
	Visible    Rect           `json:"visible"` // part of Rect inside the ancestors
	Clip       Rect           `json:"clip"`    // visible area left for children
	Field      image.Point    `json:"field"`
	Scroll     image.Point    `json:"scroll"`
	Scrollbars []Scrollbar    `json:"scrollbars,omitempty"`
}

// Snapshot is an arranged tree flattened into root coordinates.
type Snapshot struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Viewports []Viewport `json:"viewports"`
	Frames    []Frame    `json:"frames"`
}

// Option configures [Take].
type Option func(*snapshotter)

type snapshotter struct {
	labels  map[layout.ChildID]string
	metrics layout.Metrics
}

// WithLabels attaches text labels to frames.
func WithLabels(labels map[layout.ChildID]string) Option {
	return func(s *snapshotter) { s.labels = labels }
}

// Take flattens the current arrangement of tree. Children are listed in
// layout order, each nested container's children right after it.
func Take(tree *layout.Tree, opts ...Option) Snapshot {
	s := snapshotter{metrics: tree.Metrics()}
	for _, opt := range opts {
		opt(&s)
	}
	root := tree.Root()
	size := root.ContentSize()
	snap := Snapshot{Width: size.X, Height: size.Y}
	area := image.Rectangle{Max: size}
	s.container(&snap, root, area, area, 0)
	return snap
}

// container appends the viewport of c, placed at rect and clipped to clip,
// and then its children.
func (s *snapshotter) container(snap *Snapshot, c *layout.Container, rect, clip image.Rectangle, depth int) {
	hbar, vbar := c.ScrollbarsVisible()
	h, v := c.Scrollbars()
	inner := rect
	if vbar {
		inner.Max.X -= s.metrics.VScrollWidth
	}
	if hbar {
		inner.Max.Y -= s.metrics.HScrollHeight
	}
	inner = inner.Intersect(clip)

	vp := Viewport{
		ID:      c.ID(),
		Mode:    c.Mode().String(),
		Depth:   depth,
		Rect:    RectOf(rect),
		Visible: RectOf(rect.Intersect(clip)),
		Clip:    RectOf(inner),
		Field:   c.FieldSize(),
		Scroll:  c.ScrollPos(),
	}
	if hbar {
		track := image.Rectangle{
			Min: image.Pt(rect.Min.X, rect.Max.Y-s.metrics.HScrollHeight),
			Max: image.Pt(inner.Max.X, rect.Max.Y),
		}
		vp.Scrollbars = append(vp.Scrollbars, scrollbar(layout.Horizontal, track, h))
	}
	if vbar {
		track := image.Rectangle{
			Min: image.Pt(rect.Max.X-s.metrics.VScrollWidth, rect.Min.Y),
			Max: image.Pt(rect.Max.X, inner.Max.Y),
		}
		vp.Scrollbars = append(vp.Scrollbars, scrollbar(layout.Vertical, track, v))
	}
	snap.Viewports = append(snap.Viewports, vp)

	for _, id := range c.Children() {
		r, ok := c.ChildScreenRect(id)
		if !ok {
			continue
		}
		r = r.Add(rect.Min)
		f := Frame{
			ID:     id,
			Parent: c.ID(),
			Depth:  depth + 1,
			Rect:   RectOf(r),
			Clip:   RectOf(r.Intersect(inner)),
			Label:  s.labels[id],
		}
		n, nested := c.Nested(id)
		f.Container = nested
		snap.Frames = append(snap.Frames, f)
		if nested {
			s.container(snap, n, r, inner, depth+1)
		}
	}
}

// scrollbar sizes the thumb proportionally to the page within the track.
func scrollbar(axis layout.Axis, track image.Rectangle, si layout.ScrollInfo) Scrollbar {
	sb := Scrollbar{Axis: axis.String(), Track: RectOf(track), Pos: si.Pos, Page: si.Page, Max: si.Max}
	field := si.Max + 1
	length := track.Dx()
	if axis == layout.Vertical {
		length = track.Dy()
	}
	if field <= 0 || length <= 0 {
		return sb
	}
	thumbLen := max(1, min(length, length*si.Page/field))
	thumbPos := min(length-thumbLen, length*si.Pos/field)
	thumb := track
	if axis == layout.Vertical {
		thumb.Min.Y = track.Min.Y + thumbPos
		thumb.Max.Y = thumb.Min.Y + thumbLen
	} else {
		thumb.Min.X = track.Min.X + thumbPos
		thumb.Max.X = thumb.Min.X + thumbLen
	}
	sb.Thumb = RectOf(thumb)
	return sb
}

// Visible returns the frames with a visible part.
func (s Snapshot) Visible() []Frame {
	out := make([]Frame, 0, len(s.Frames))
	for _, f := range s.Frames {
		if f.Visible() {
			out = append(out, f)
		}
	}
	return out
}

// Find returns the frame with the given id.
func (s Snapshot) Find(id layout.ChildID) (Frame, bool) {
	for _, f := range s.Frames {
		if f.ID == id {
			return f, true
		}
	}
	return Frame{}, false
}

// ContainerAt returns the innermost container whose visible area holds p,
// or "" when p is outside the root.
func (s Snapshot) ContainerAt(p image.Point) layout.ChildID {
	var hit layout.ChildID
	depth := -1
	for _, vp := range s.Viewports {
		if p.In(vp.Visible.Image()) && vp.Depth > depth {
			hit, depth = vp.ID, vp.Depth
		}
	}
	return hit
}
