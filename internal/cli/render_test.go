package cli

import (
	"testing"

	"github.com/matzehuels/stackbox/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,json,dot", []string{"svg", "json", "dot"}},
		{"spaces trimmed", "svg, tree", []string{"svg", "tree"}},
		{"empty entries dropped", "json,,dot", []string{"json", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid json", []string{"json"}, false},
		{"valid dot", []string{"dot"}, false},
		{"valid tree", []string{"tree"}, false},
		{"valid all", []string{"svg", "json", "dot", "tree"}, false},
		{"invalid format", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"svg", "png"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input string
		want          string
	}{
		{"", "dialog.toml", "dialog"},
		{"", "docs/dialog.toml", "docs/dialog"},
		{"", "-", "stdin"},
		{"out.svg", "dialog.toml", "out"},
		{"out.json", "dialog.toml", "out"},
		{"out", "dialog.toml", "out"},
		{"out.png", "dialog.toml", "out.png"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{
			name:    "derived from input",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "dialog.svg"},
		},
		{
			name:    "explicit single output",
			output:  "shot.svg",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "shot.svg"},
		},
		{
			name:    "multiple formats share a base",
			output:  "out/shot.svg",
			formats: []string{"svg", "json", "tree"},
			want: map[string]string{
				"svg":  "out/shot.svg",
				"json": "out/shot.json",
				"tree": "out/shot.tree.svg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, "dialog.toml", tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("outputPaths()[%q] = %q, want %q", f, got[f], want)
				}
			}
		})
	}
}
