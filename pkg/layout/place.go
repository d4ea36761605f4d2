package layout

import (
	"image"
	"math"
)

// layoutPlace resolves every Place child independently and returns the
// bounding box of all of them.
//
// References resolve to the rectangle the referenced child got earlier in
// the same pass, or to its last arranged rectangle when it comes later in
// the order. A min-only pass places nothing.
func (c *Container) layoutPlace(minOnly bool) image.Point {
	resolved := make(map[ChildID]image.Rectangle, len(c.order))
	var view image.Point
	for _, id := range c.order {
		it, ok := c.records[id].(PlaceItem)
		if !ok {
			continue
		}
		r := c.resolvePlace(it, resolved)
		resolved[id] = r
		view.X = max(view.X, r.Max.X)
		view.Y = max(view.Y, r.Max.Y)
		if !minOnly {
			c.emit(id, r)
		}
	}
	return view
}

func (c *Container) resolvePlace(it PlaceItem, resolved map[ChildID]image.Rectangle) image.Rectangle {
	var pos, span image.Point
	switch it.Pos {
	case PlaceRelative:
		pos = image.Pt(scale(it.X, c.width), scale(it.Y, c.height))
	case PlaceOffset:
		ref := c.refRect(it.PosRef, resolved)
		pos = ref.Min.Add(image.Pt(round(it.X), round(it.Y)))
	default:
		pos = image.Pt(round(it.X), round(it.Y))
	}
	switch it.Span {
	case PlaceRelative:
		span = image.Pt(scale(it.W, c.width), scale(it.H, c.height))
	case PlaceOffset:
		ref := c.refRect(it.SpanRef, resolved)
		span = image.Pt(ref.Dx()+round(it.W), ref.Dy()+round(it.H))
	default:
		span = image.Pt(round(it.W), round(it.H))
	}
	return image.Rectangle{Min: pos, Max: pos.Add(span)}
}

func (c *Container) refRect(ref ChildID, resolved map[ChildID]image.Rectangle) image.Rectangle {
	if r, ok := resolved[ref]; ok {
		return r
	}
	r, ok := c.ChildRect(ref)
	c.assert(ok, "place reference to unknown child", "ref", ref)
	return r
}

func round(v float64) int            { return int(math.Round(v)) }
func scale(f float64, total int) int { return round(f * float64(total)) }
