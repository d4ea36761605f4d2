// Package layout implements the stackbox container layout engine.
//
// # Overview
//
// A [Container] arranges child elements inside a host surface using one of
// three modes, fixed by the first child that is registered:
//
//   - [ModeVStack]: children stacked top to bottom
//   - [ModeHStack]: children stacked left to right (the transposed VStack)
//   - [ModePlace]: children placed independently by pixel, relative or
//     reference-offset coordinates
//
// Containers nest. A nested container's natural (minimum) size becomes the
// declared size of its slot in the parent, computed bottom-up by
// [Container.RecalcLayout]. Arrangement then runs top-down: arranging a slot
// that holds a container resizes that container, which arranges its own
// children.
//
// # Two-pass stack layout
//
// The first pass sums the fixed footprint of every child (size, padding,
// split and, for plain auto children, filler) and counts auto-expand
// children. [Container.CheckLayout] stops here and reports that minimum.
// The second pass distributes the free space among auto-expand children;
// the last auto-expand child absorbs the integer-division remainder so the
// stack fills the container exactly.
//
// # Scroll negotiation
//
// [Container.UpdateLayout] compares the arranged view size with the content
// size. Each scroll bar that becomes necessary shrinks the other axis by its
// thickness, exactly once, which may in turn require the other scroll bar.
// Two iterations settle every case.
//
// # Host integration
//
// The engine never touches a window system. A [Surface] created by the
// host's [SurfaceFactory] receives placements, scroll shifts and scroll bar
// state; host input arrives through [Container.Dispatch].
//
// All methods must be called from the goroutine that owns the host's event
// loop. Containers are not safe for concurrent use.
package layout
