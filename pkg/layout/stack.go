package layout

import "image"

// layoutStack arranges a VStack or HStack. Both modes run the same
// algorithm on the stacking (main) axis and the perpendicular (cross) axis;
// orient maps the result back to x and y.
//
// The first pass sums the minimum main extent and the widest cross extent.
// With minOnly set that is the result. Otherwise free main space is shared
// among the auto-expand children, the last of them taking the remainder of
// the integer division, and every child is placed.
func (c *Container) layoutStack(minOnly bool) image.Point {
	entries := c.stackEntries()

	var sizeMin, viewCross, numAuto int
	lastAuto := -1
	expand := false
	for i, e := range entries {
		sizeMin += e.main + e.pad*2 + e.split
		if !e.fixed {
			if e.autoExpand {
				numAuto++
				lastAuto = i
			} else {
				sizeMin += e.filler
			}
		}
		viewCross = max(viewCross, e.cross+e.pad*2)
		if e.align == crossExpand {
			expand = true
		}
	}
	if minOnly {
		return c.orient(sizeMin, viewCross)
	}

	contentMain, contentCross := c.height, c.width
	if c.mode == ModeHStack {
		contentMain, contentCross = c.width, c.height
	}
	if expand && contentCross > viewCross {
		viewCross = contentCross
	}
	free := max(0, contentMain-sizeMin)
	share := 0
	if numAuto > 0 {
		share = free / numAuto
	}

	remaining := free
	now, viewMain := 0, 0
	for i, e := range entries {
		length := e.main
		switch {
		case e.fixed:
		case !e.autoExpand:
			length += e.filler
		case i == lastAuto:
			length += remaining
		default:
			length += share
			remaining -= share
		}
		pos, span := crossSpan(e, viewCross)
		c.emit(e.id, c.orientRect(pos, now+e.pad, span, length))
		now += length + e.pad*2 + e.split
		viewMain = max(viewMain, now)
	}
	return c.orient(viewMain, viewCross)
}

func (c *Container) stackEntries() []stackEntry {
	entries := make([]stackEntry, 0, len(c.order))
	for _, id := range c.order {
		switch it := c.records[id].(type) {
		case VStackItem:
			entries = append(entries, it.entry(id))
		case HStackItem:
			entries = append(entries, it.entry(id))
		}
	}
	return entries
}

// crossSpan positions a child on the cross axis of a view cross extent long.
func crossSpan(e stackEntry, view int) (pos, span int) {
	switch e.align {
	case crossEnd:
		return view - e.pad - e.cross, e.cross
	case crossCenter:
		pos = view/2 - e.cross/2
		if pos <= 0 {
			pos = e.pad
		}
		return pos, e.cross
	case crossFill, crossExpand:
		return e.pad, view - e.pad*2
	}
	return e.pad, e.cross
}

// orient converts a (main, cross) size to (width, height).
func (c *Container) orient(main, cross int) image.Point {
	if c.mode == ModeHStack {
		return image.Pt(main, cross)
	}
	return image.Pt(cross, main)
}

// orientRect converts a rectangle given in (cross, main) coordinates.
func (c *Container) orientRect(crossPos, mainPos, crossLen, mainLen int) image.Rectangle {
	o := c.orient(mainPos, crossPos)
	return image.Rectangle{Min: o, Max: o.Add(c.orient(mainLen, crossLen))}
}
