// Package document reads layout documents: TOML descriptions of a container
// tree that can be built into a [layout.Tree].
//
// # Format
//
// A document sets the root content size and describes the root container
// as a group of elements. An element with a nested container group becomes
// a child container; every other element is a leaf:
//
//	width = 320
//	height = 200
//
//	[root]
//	mode = "vstack"
//
//	[[root.children]]
//	id = "title"
//	text = "Settings"
//	w = -1
//	h = -1
//	pad = 4
//
//	[[root.children]]
//	id = "buttons"
//	align = "right"
//
//	[root.children.container]
//	mode = "hstack"
//
//	[[root.children.container.children]]
//	id = "ok"
//	w = 80
//	h = 24
//
// A size of -1 means "as large as the text", measured by a [Measurer].
// Elements without an id get a stable generated one derived from their
// position in the document.
//
// # Keys
//
// Stack elements use w, h, pad, filler, split, auto_expand, align and size
// ("auto" or "fixed"). Place elements use x, y, w, h, pos and span ("pixel",
// "relative" or "offset") and pos_ref / span_ref naming a sibling.
package document
