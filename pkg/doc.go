// Package pkg provides the core libraries for Stackbox container layout.
//
// # Overview
//
// Stackbox arranges nested containers. Each container stacks its children
// vertically or horizontally, or places them by absolute, relative or
// reference-offset coordinates. Minimum sizes propagate from nested
// containers to their parents, and a container whose content does not fit
// negotiates scroll bars with its host.
//
// # Architecture
//
// The typical data flow through Stackbox:
//
//	TOML layout document
//	         ↓
//	    [document] package (parse, validate, build the container tree)
//	         ↓
//	    [layout] package (min-size propagation, arrangement, scrolling)
//	         ↓
//	    [render] package (flatten into a snapshot of frames)
//	         ↓
//	    SVG/JSON/DOT output, or a live terminal host
//
// # Quick Start
//
// Build a tree in code and arrange it:
//
//	import "github.com/matzehuels/stackbox/pkg/layout"
//
//	tree := layout.New(200, 100)
//	root := tree.Root()
//	row, _ := root.AddVStackContainer("toolbar", layout.VStackItem{Pad: 2})
//	_ = row.HStack("open", layout.HStackItem{W: 24, H: 24})
//	_ = root.VStack("canvas", layout.VStackItem{W: 100, H: 50, AutoExpand: true})
//	root.RecalcLayout()
//
// Or arrange and render a document:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, src, pipeline.Options{Formats: []string{"svg"}})
//
// # Main Packages
//
// [layout] - The engine. [layout.Container] holds the child records of one
// mode, computes minimum sizes, arranges children and negotiates scroll
// bars. [layout.Tree] owns the containers and routes unconsumed wheel events
// to ancestors.
//
// [document] - TOML layout documents: parsing, validation and building a
// [layout.Tree] with text measured by a [document.Measurer].
//
// [render] - Snapshots of an arranged tree in root coordinates, with
// clipping and scroll bar geometry.
//
//   - [render/sink]: Output formats (SVG, JSON)
//   - [render/treeviz]: The container tree as Graphviz DOT and SVG
//
// [termhost] - A Bubble Tea host that feeds terminal resizes, mouse wheel
// and keys into a tree and draws its snapshot as a cell grid.
//
// [pipeline] - Check, arrange and render with caching, used by the CLI and
// the HTTP service.
//
// [cache] - File, Redis and null caches with instrumented access.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for layout passes and cache access.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                          # All tests
//	go test -tags stackboxdebug ./pkg/layout   # Assertions panic
//	go test -run Example ./pkg/...             # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/layout
// [document]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/render/sink
// [render/treeviz]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/render/treeviz
// [termhost]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/termhost
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/observability
package pkg
