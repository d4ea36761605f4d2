package layout

import "strings"

// ChildID identifies a child element within its container. Container
// identifiers are additionally unique within their [Tree].
type ChildID string

// Mode is the layout algorithm of a container.
type Mode int

const (
	ModeNone Mode = iota
	ModeVStack
	ModeHStack
	ModePlace
)

func (m Mode) String() string {
	switch m {
	case ModeVStack:
		return "vstack"
	case ModeHStack:
		return "hstack"
	case ModePlace:
		return "place"
	default:
		return "none"
	}
}

// ParseMode converts a mode name into a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "vstack":
		return ModeVStack, true
	case "hstack":
		return ModeHStack, true
	case "place":
		return ModePlace, true
	case "", "none":
		return ModeNone, true
	}
	return ModeNone, false
}

// AlignH is the horizontal alignment of a VStack child.
type AlignH int

const (
	HLeft AlignH = iota
	HCenter
	HRight
	HFill
	// HExpand stretches like HFill and additionally widens the whole stack
	// to the container width.
	HExpand
)

func (a AlignH) String() string {
	return [...]string{"left", "center", "right", "fill", "expand"}[a.cross()]
}

// AlignV is the vertical alignment of an HStack child.
type AlignV int

const (
	VTop AlignV = iota
	VCenter
	VBottom
	VFill
	// VExpand stretches like VFill and additionally heightens the whole
	// stack to the container height.
	VExpand
)

func (a AlignV) String() string {
	return [...]string{"top", "center", "bottom", "fill", "expand"}[a.cross()]
}

// crossAlign is an alignment on the axis perpendicular to the stacking axis.
type crossAlign int

const (
	crossStart crossAlign = iota
	crossCenter
	crossEnd
	crossFill
	crossExpand
)

func (a AlignH) cross() crossAlign { return clampAlign(int(a)) }
func (a AlignV) cross() crossAlign { return clampAlign(int(a)) }

func clampAlign(v int) crossAlign {
	if v < 0 || v > int(crossExpand) {
		return crossStart
	}
	return crossAlign(v)
}

// ParseAlignH converts "left", "center", "right", "fill" or "expand".
func ParseAlignH(s string) (AlignH, bool) {
	a, ok := parseCross(s, "left", "right")
	return AlignH(a), ok
}

// ParseAlignV converts "top", "center", "bottom", "fill" or "expand".
func ParseAlignV(s string) (AlignV, bool) {
	a, ok := parseCross(s, "top", "bottom")
	return AlignV(a), ok
}

func parseCross(s, start, end string) (crossAlign, bool) {
	switch strings.ToLower(s) {
	case "", start:
		return crossStart, true
	case "center", "middle":
		return crossCenter, true
	case end:
		return crossEnd, true
	case "fill":
		return crossFill, true
	case "expand":
		return crossExpand, true
	}
	return crossStart, false
}

// SizeMode says whether a stack child's extent along the stacking axis is
// fixed or may grow.
type SizeMode int

const (
	SizeAuto SizeMode = iota
	SizeFixed
)

func (s SizeMode) String() string {
	if s == SizeFixed {
		return "fixed"
	}
	return "auto"
}

// ParseSizeMode converts "auto" or "fixed".
func ParseSizeMode(s string) (SizeMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return SizeAuto, true
	case "fixed", "fix":
		return SizeFixed, true
	}
	return SizeAuto, false
}

// PlaceKind selects how a Place child's position or span is resolved.
type PlaceKind int

const (
	// PlacePixel uses the values literally.
	PlacePixel PlaceKind = iota
	// PlaceRelative scales the values as fractions of the content size.
	PlaceRelative
	// PlaceOffset adds the values to a reference child's rectangle.
	PlaceOffset
)

func (k PlaceKind) String() string {
	switch k {
	case PlaceRelative:
		return "relative"
	case PlaceOffset:
		return "offset"
	default:
		return "pixel"
	}
}

// ParsePlaceKind converts "pixel", "relative" or "offset".
func ParsePlaceKind(s string) (PlaceKind, bool) {
	switch strings.ToLower(s) {
	case "", "pixel", "px":
		return PlacePixel, true
	case "relative", "rel":
		return PlaceRelative, true
	case "offset":
		return PlaceOffset, true
	}
	return PlacePixel, false
}

// Axis selects a scroll axis.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}
