// Package pipeline runs the load → arrange → render stages of stackbox.
//
// The CLI and the HTTP service both go through a [Runner], so a document
// arranged by one is served from the cache by the other when they share a
// Redis database.
//
// # Stages
//
//  1. Load: parse a TOML layout document ([document.Parse])
//  2. Arrange: build the container tree, resize the root to the requested
//     view and flatten it ([render.Take])
//  3. Render: produce svg, json, dot or tree (Graphviz SVG of the
//     container tree) output
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, src, pipeline.Options{
//	    Width:   800,
//	    Height:  600,
//	    Formats: []string{"svg", "json"},
//	})
//	svg := result.Artifacts["svg"]
//
// [document.Parse]: github.com/matzehuels/stackbox/pkg/document.Parse
// [render.Take]: github.com/matzehuels/stackbox/pkg/render.Take
package pipeline

import (
	"image"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbox/pkg/document"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/render"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTree = "tree"
)

// Palette names.
const (
	PalettePaper     = "paper"
	PaletteBlueprint = "blueprint"
)

// DefaultPalette is the default SVG palette.
const DefaultPalette = PalettePaper

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatTree: true,
}

// ValidPalettes is the set of supported SVG palettes.
var ValidPalettes = map[string]bool{
	PalettePaper:     true,
	PaletteBlueprint: true,
}

// Options configures a pipeline run. Zero sizes keep the document's own
// width and height.
type Options struct {
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Scale  float64 `json:"scale,omitempty"`

	Formats    []string `json:"formats,omitempty"`
	Palette    string   `json:"palette,omitempty"`
	Title      string   `json:"title,omitempty"`
	NoLabels   bool     `json:"no_labels,omitempty"`
	ShowHidden bool     `json:"show_hidden,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger        *log.Logger       `json:"-"`
	Measurer      document.Measurer `json:"-"`
	LayoutOptions []layout.Option   `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DocHash is the content hash of the source document.
	DocHash string

	// MinSize is the minimum size of the root content.
	MinSize image.Point

	// Snapshot is the arranged tree at the requested size.
	Snapshot render.Snapshot

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Frames     int
	Containers int
	CheckTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CheckHit  bool
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, dot, tree)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePalette checks that a palette name is valid.
func ValidatePalette(name string) error {
	if !ValidPalettes[name] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid palette: %q (must be one of: paper, blueprint)", name)
	}
	return nil
}

// SetDefaults fills in unset render options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Measurer == nil {
		o.Measurer = document.DefaultMeasurer
	}
}

// Validate sets defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := errors.ValidateSize("width", o.Width, document.MaxSize); err != nil {
		return err
	}
	if err := errors.ValidateSize("height", o.Height, document.MaxSize); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidatePalette(o.Palette)
}

// sortedFormats returns the formats without duplicates, in a stable order
// for cache keys.
func (o *Options) sortedFormats() []string {
	fs := slices.Clone(o.Formats)
	slices.Sort(fs)
	return slices.Compact(fs)
}
