package layout

// Record describes how one child participates in its parent's layout.
// It is implemented by exactly [VStackItem], [HStackItem] and [PlaceItem];
// the variant must match the parent's [Mode].
type Record interface {
	mode() Mode
}

// VStackItem is the record of a child in a vertical stack.
type VStackItem struct {
	W, H int // minimum size; H is the full height when Height is SizeFixed
	Pad  int // padding on every side
	// Filler is extra height added to an auto child that does not expand.
	Filler int
	// Split is the gap below the child, after its bottom padding.
	Split int
	// AutoExpand makes an auto child share the container's free height.
	AutoExpand bool
	Align      AlignH
	Height     SizeMode
}

// HStackItem is the record of a child in a horizontal stack.
type HStackItem struct {
	W, H       int
	Pad        int
	Filler     int
	Split      int
	AutoExpand bool
	Align      AlignV
	Width      SizeMode
}

// PlaceItem is the record of an absolutely placed child.
//
// Pos resolves X and Y; Span resolves W and H. With PlaceOffset the values
// are pixel deltas applied to the rectangle of PosRef (origin) or SpanRef
// (width and height).
type PlaceItem struct {
	X, Y, W, H float64
	PosRef     ChildID
	SpanRef    ChildID
	Pos        PlaceKind
	Span       PlaceKind
}

func (VStackItem) mode() Mode { return ModeVStack }
func (HStackItem) mode() Mode { return ModeHStack }
func (PlaceItem) mode() Mode  { return ModePlace }

// stackEntry is a VStack or HStack record projected onto the stacking axis,
// so both stack modes share one algorithm.
type stackEntry struct {
	id          ChildID
	main, cross int
	pad         int
	filler      int
	split       int
	autoExpand  bool
	fixed       bool
	align       crossAlign
}

func (it VStackItem) entry(id ChildID) stackEntry {
	return stackEntry{
		id:         id,
		main:       it.H,
		cross:      it.W,
		pad:        it.Pad,
		filler:     it.Filler,
		split:      it.Split,
		autoExpand: it.AutoExpand,
		fixed:      it.Height == SizeFixed,
		align:      it.Align.cross(),
	}
}

func (it HStackItem) entry(id ChildID) stackEntry {
	return stackEntry{
		id:         id,
		main:       it.W,
		cross:      it.H,
		pad:        it.Pad,
		filler:     it.Filler,
		split:      it.Split,
		autoExpand: it.AutoExpand,
		fixed:      it.Width == SizeFixed,
		align:      it.Align.cross(),
	}
}

// withSize returns r with its declared size replaced, as done when a nested
// container's natural size is adopted. A Place record loses its span
// reference: the adopted size is absolute.
func withSize(r Record, w, h int) Record {
	switch it := r.(type) {
	case VStackItem:
		it.W, it.H = w, h
		return it
	case HStackItem:
		it.W, it.H = w, h
		return it
	case PlaceItem:
		it.W, it.H = float64(w), float64(h)
		it.SpanRef = ""
		it.Span = PlacePixel
		return it
	}
	return r
}
