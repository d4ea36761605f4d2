// Package sink renders a [render.Snapshot] into output formats.
//
// # SVG Output
//
// [RenderSVG] draws every container as an outlined viewport, every element
// as a filled box clipped to its container's visible area, element labels
// scaled to fit their box, and the scroll bars of every container that
// shows them:
//
//	svg := sink.RenderSVG(snap,
//	    sink.WithPalette(sink.Blueprint),
//	    sink.WithTitle("settings dialog"),
//	)
//
// # SVG Options
//
//   - [WithPalette]: colors per nesting depth ([Paper] or [Blueprint])
//   - [WithTitle]: an SVG title element
//   - [WithoutLabels]: boxes only
//   - [WithoutScrollbars]: hide scroll bar tracks and thumbs
//
// # JSON Output
//
// [RenderJSON] exports the snapshot as indented JSON for external tools
// and for the HTTP service. Hidden frames (fully scrolled or clipped out)
// are dropped unless [WithJSONHidden] is given.
//
// [render.Snapshot]: github.com/matzehuels/stackbox/pkg/render.Snapshot
package sink
