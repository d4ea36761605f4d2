package sink

import (
	"encoding/json"

	"github.com/matzehuels/stackbox/pkg/render"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	hidden bool
	source string
}

// WithJSONHidden keeps frames that are scrolled or clipped out of view.
func WithJSONHidden() JSONOption { return func(r *jsonRenderer) { r.hidden = true } }

// WithJSONSource records the document the snapshot was built from.
func WithJSONSource(name string) JSONOption { return func(r *jsonRenderer) { r.source = name } }

type jsonOutput struct {
	Source string `json:"source,omitempty"`
	render.Snapshot
}

// RenderJSON encodes the snapshot as indented JSON.
func RenderJSON(s render.Snapshot, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if !r.hidden {
		s.Frames = s.Visible()
	}
	return json.MarshalIndent(jsonOutput{Source: r.source, Snapshot: s}, "", "  ")
}
