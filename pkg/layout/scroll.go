package layout

import (
	"image"
	"time"

	"github.com/matzehuels/stackbox/pkg/observability"
)

// ScrollInfo is the scroll state of one axis: the field spans Min..Max, the
// visible page is Page pixels long and starts at Pos.
type ScrollInfo struct {
	Min, Max int
	Page     int
	Pos      int
}

// Limit returns the largest valid position.
func (s ScrollInfo) Limit() int { return s.Max - s.Page + 1 }

// HasRange reports whether the field is longer than the page, i.e. whether
// the axis can scroll at all.
func (s ScrollInfo) HasRange() bool { return s.Max+1 > s.Page }

// clamp keeps Pos within [Min, Max-Page+1], or at 0 when Max <= Page.
func (s *ScrollInfo) clamp() {
	if s.Max <= s.Page {
		s.Pos = 0
		return
	}
	s.Pos = min(max(s.Pos, s.Min), s.Limit())
}

// UpdateLayout arranges the children at the current scroll position,
// negotiates the scroll bars and shifts the placed children to the clamped
// scroll position. Redraw is suspended for the duration and the surface is
// invalidated afterwards.
func (c *Container) UpdateLayout() {
	if c.arranging {
		c.later(c.UpdateLayout)
		return
	}
	start := time.Now()
	c.surface.SetRedraw(false)
	old := c.ScrollPos()

	c.arranging = true
	view := c.arrange(false)
	c.arranging = false

	c.negotiate(view)
	c.surface.SetScrollbars(c.scrollH, c.scrollV)
	if d := old.Sub(c.ScrollPos()); d != (image.Point{}) {
		c.surface.Scroll(d.X, d.Y)
	}
	c.surface.SetRedraw(true)
	c.surface.Invalidate()

	c.log.Debug("layout updated",
		"mode", c.mode,
		"children", len(c.order),
		"content", c.ContentSize(),
		"view", view,
		"hbar", c.hbar,
		"vbar", c.vbar,
	)
	hooks := observability.Layout()
	hooks.OnUpdate(string(c.id), c.mode.String(), len(c.order), view.X, view.Y, time.Since(start))
	hooks.OnScrollbars(string(c.id), c.hbar, c.vbar)

	c.flush()
}

// negotiate derives both scroll ranges from the arranged view size. A bar
// appearing on one axis takes its thickness from the other axis once; two
// rounds settle the case where the second bar is only caused by the first.
func (c *Container) negotiate(view image.Point) {
	m := c.tree.cfg.metrics
	cw, ch := c.width, c.height
	c.hbar, c.vbar = false, false
	for range 2 {
		c.scrollH.Max = view.X - 1
		c.scrollH.Page = max(0, cw)
		if view.X > cw && !c.hbar {
			ch -= m.HScrollHeight
			c.hbar = true
		}
		c.scrollV.Max = view.Y - 1
		c.scrollV.Page = max(0, ch)
		if view.Y > ch && !c.vbar {
			cw -= m.VScrollWidth
			c.vbar = true
		}
	}
	c.scrollH.clamp()
	c.scrollV.clamp()
}

// arrange runs the layout pass of the container's mode and returns the view
// size. With minOnly set nothing is placed.
func (c *Container) arrange(minOnly bool) image.Point {
	switch c.mode {
	case ModeVStack, ModeHStack:
		return c.layoutStack(minOnly)
	case ModePlace:
		return c.layoutPlace(minOnly)
	}
	return image.Point{}
}

// =============================================================================
// Scroll commands
// =============================================================================

// Scroll applies a scroll bar command to one axis and shifts the placed
// children by the resulting delta without arranging them again. pos is only
// read by ScrollThumbTrack and ScrollThumbPosition.
func (c *Container) Scroll(axis Axis, cmd ScrollCommand, pos int) {
	s := &c.scrollV
	if axis == Horizontal {
		s = &c.scrollH
	}
	old := c.ScrollPos()
	switch cmd {
	case ScrollTop:
		s.Pos = s.Min
	case ScrollBottom:
		s.Pos = s.Limit()
	case ScrollLineUp:
		if s.Min < s.Pos {
			s.Pos--
		}
	case ScrollLineDown:
		if s.Pos < s.Limit() {
			s.Pos++
		}
	case ScrollPageUp:
		s.Pos = max(s.Pos-s.Page, s.Min)
	case ScrollPageDown:
		s.Pos = min(s.Pos+s.Page, s.Limit())
	case ScrollThumbTrack, ScrollThumbPosition:
		s.Pos = pos
	}
	s.clamp()
	c.surface.SetScrollbars(c.scrollH, c.scrollV)
	if d := old.Sub(c.ScrollPos()); d != (image.Point{}) {
		c.surface.Scroll(d.X, d.Y)
		c.surface.Invalidate()
	}
}

// wheel translates a wheel rotation into a thumb position. It reports false
// when the axis has no range, so the event can go to an ancestor.
func (c *Container) wheel(ev WheelEvent) bool {
	s := c.scrollV
	if ev.Axis == Horizontal {
		s = c.scrollH
	}
	if !s.HasRange() {
		return false
	}
	step := ev.Delta / WheelDelta * (s.Page / 10)
	pos := s.Pos - step
	if ev.Axis == Horizontal {
		pos = s.Pos + step
	}
	pos = min(max(pos, s.Min), s.Limit())
	c.Scroll(ev.Axis, ScrollThumbTrack, pos)
	return true
}
