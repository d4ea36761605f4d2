// Package treeviz draws the container tree of a layout as a Graphviz
// diagram.
//
// Containers become rounded boxes, plain elements become ellipses, and an
// edge runs from every container to each of its children in layout order.
// With [Options.Detailed] container labels carry the mode, content size,
// field size and scroll position, and element labels carry their placed
// rectangle.
//
//	dot := treeviz.ToDOT(tree, treeviz.Options{Detailed: true})
//	svg, err := treeviz.RenderSVG(dot)
package treeviz
