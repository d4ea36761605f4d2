package layout

import "image"

// Surface is the host-side realization of one container: the native element
// that owns the container's children on screen.
//
// Rectangles passed to Place are relative to the surface's visible origin,
// i.e. already shifted by the current scroll position.
type Surface interface {
	// Place moves and resizes a child element.
	Place(id ChildID, r image.Rectangle)
	// Remove destroys a child element.
	Remove(id ChildID)
	// Scroll shifts every placed child by (dx, dy) without relayout.
	Scroll(dx, dy int)
	// SetScrollbars publishes scroll ranges, pages and positions.
	SetScrollbars(h, v ScrollInfo)
	// SetRedraw suspends (false) or resumes (true) repainting.
	SetRedraw(enabled bool)
	// Invalidate requests a full repaint of the surface.
	Invalidate()
}

// SurfaceFactory creates the surface of container id. parent is the surface
// of the enclosing container, or nil for the root.
type SurfaceFactory func(id ChildID, parent Surface) Surface

type nopSurface struct{}

func (nopSurface) Place(ChildID, image.Rectangle)       {}
func (nopSurface) Remove(ChildID)                       {}
func (nopSurface) Scroll(int, int)                      {}
func (nopSurface) SetScrollbars(ScrollInfo, ScrollInfo) {}
func (nopSurface) SetRedraw(bool)                       {}
func (nopSurface) Invalidate()                          {}
