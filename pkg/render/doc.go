// Package render turns an arranged container tree into drawable output.
//
// # Overview
//
// [Take] walks a [layout.Tree] and produces a [Snapshot]: every element in
// root coordinates, shifted by the scroll positions of its ancestors and
// clipped to their visible areas, plus the scroll bars each container
// shows. A snapshot is plain data, so it is what the sinks, the terminal
// host and the HTTP service exchange.
//
//	tree, _ := doc.Build()
//	snap := render.Take(tree, render.WithLabels(doc.Labels()))
//	svg := sink.RenderSVG(snap)
//
// Output formats live in subpackages:
//
//   - [sink]: SVG and JSON renderings of a snapshot
//   - [treeviz]: the container hierarchy as a Graphviz diagram
//
// [sink]: github.com/matzehuels/stackbox/pkg/render/sink
// [treeviz]: github.com/matzehuels/stackbox/pkg/render/treeviz
package render
