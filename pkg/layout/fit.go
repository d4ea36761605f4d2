package layout

import "image"

// Fit is the outcome of [FitWindow].
type Fit struct {
	Size image.Point // window size that fits the work area
	HBar bool        // the field needs a horizontal scroll bar
	VBar bool        // the field needs a vertical scroll bar
}

// FitWindow sizes a top-level window for a field of the given size on a
// work area (a screen without task bars). An axis that overflows is cut to
// the work area and the scroll bar it needs is added to the other axis, at
// most once per axis. Two rounds are run, as in scroll negotiation, and the
// result never exceeds the work area.
func FitWindow(field, work image.Point, m Metrics) Fit {
	f := Fit{Size: field}
	for range 2 {
		over := f.Size.Sub(work)
		if over.Y > 0 {
			f.Size.Y -= over.Y
			if !f.VBar {
				f.Size.X += m.VScrollWidth
			}
			f.VBar = true
		}
		if over.X > 0 {
			f.Size.X -= over.X
			if !f.HBar {
				f.Size.Y += m.HScrollHeight
			}
			f.HBar = true
		}
	}
	f.Size.X = min(f.Size.X, work.X)
	f.Size.Y = min(f.Size.Y, work.Y)
	return f
}
