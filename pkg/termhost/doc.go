// Package termhost runs a container tree in the terminal.
//
// It is a host adapter for [layout]: terminal cells stand in for pixels at a
// fixed cell size, and the Bubble Tea event loop supplies the host inputs.
//
//   - A window resize becomes a [layout.ResizeEvent] on the root, sized in
//     cells times the cell size.
//   - A mouse wheel rotation becomes a [layout.WheelEvent] on the innermost
//     container under the cursor; without scroll range there, it bubbles to
//     the nearest ancestor that can scroll.
//   - Arrow keys, page up/down and home/end become [layout.ScrollEvent]s on
//     the focused container (the root until tab moves the focus to another
//     container with scroll bars).
//
// Every container surface reports to a shared [Damage] tracker, and the
// model repaints only after a surface was invalidated.
//
//	damage := termhost.NewDamage()
//	tree, labels, _ := runner.Tree(src, pipeline.Options{
//	    Measurer:      termhost.Measurer(termhost.DefaultCell),
//	    LayoutOptions: []layout.Option{layout.WithSurfaces(damage.Surfaces())},
//	})
//	err := termhost.Run(termhost.New(tree, labels, damage))
package termhost
