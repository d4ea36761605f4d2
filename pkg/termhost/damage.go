package termhost

import (
	"image"

	"github.com/matzehuels/stackbox/pkg/layout"
)

// Damage collects the repaint requests of every container surface in a tree.
type Damage struct {
	dirty     bool
	suspended int
	repaints  int
}

// NewDamage returns a tracker with a pending repaint.
func NewDamage() *Damage { return &Damage{dirty: true} }

// Surfaces returns the factory to pass to [layout.WithSurfaces].
func (d *Damage) Surfaces() layout.SurfaceFactory {
	return func(layout.ChildID, layout.Surface) layout.Surface {
		return &surface{damage: d, redraw: true}
	}
}

// Dirty reports whether a repaint is pending and no surface has redraw
// suspended.
func (d *Damage) Dirty() bool { return d.dirty && d.suspended == 0 }

// Clear marks the screen as repainted.
func (d *Damage) Clear() {
	d.dirty = false
	d.repaints++
}

// Repaints returns the number of completed repaints.
func (d *Damage) Repaints() int { return d.repaints }

type surface struct {
	damage *Damage
	redraw bool
}

func (s *surface) Place(layout.ChildID, image.Rectangle)              {}
func (s *surface) Scroll(int, int)                                    {}
func (s *surface) SetScrollbars(layout.ScrollInfo, layout.ScrollInfo) {}
func (s *surface) Remove(layout.ChildID)                              { s.damage.dirty = true }
func (s *surface) Invalidate()                                        { s.damage.dirty = true }

func (s *surface) SetRedraw(enabled bool) {
	if enabled == s.redraw {
		return
	}
	s.redraw = enabled
	if enabled {
		s.damage.suspended--
	} else {
		s.damage.suspended++
	}
}
