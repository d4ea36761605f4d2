package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
)

// Measured is the size value that asks for the text's measured size.
const Measured = -1

// idNamespace scopes the generated ids of anonymous elements.
var idNamespace = uuid.MustParse("6f1c2a52-8d0e-4d43-9a1e-5b8f0d2c7e11")

// Document is a parsed layout document.
type Document struct {
	Width  int     `toml:"width" json:"width"`
	Height int     `toml:"height" json:"height"`
	Scale  float64 `toml:"scale,omitempty" json:"scale,omitempty"`
	Root   Group   `toml:"root" json:"root"`
}

// Group is a container: its layout mode and its children in order.
type Group struct {
	Mode     string    `toml:"mode" json:"mode"`
	Children []Element `toml:"children" json:"children"`
}

// Element is one child of a group.
type Element struct {
	ID   string `toml:"id" json:"id"`
	Text string `toml:"text,omitempty" json:"text,omitempty"`

	X float64 `toml:"x,omitempty" json:"x,omitempty"`
	Y float64 `toml:"y,omitempty" json:"y,omitempty"`
	W float64 `toml:"w" json:"w"`
	H float64 `toml:"h" json:"h"`

	Pad        int    `toml:"pad,omitempty" json:"pad,omitempty"`
	Filler     int    `toml:"filler,omitempty" json:"filler,omitempty"`
	Split      int    `toml:"split,omitempty" json:"split,omitempty"`
	AutoExpand bool   `toml:"auto_expand,omitempty" json:"auto_expand,omitempty"`
	Align      string `toml:"align,omitempty" json:"align,omitempty"`
	Size       string `toml:"size,omitempty" json:"size,omitempty"`

	Pos     string `toml:"pos,omitempty" json:"pos,omitempty"`
	Span    string `toml:"span,omitempty" json:"span,omitempty"`
	PosRef  string `toml:"pos_ref,omitempty" json:"pos_ref,omitempty"`
	SpanRef string `toml:"span_ref,omitempty" json:"span_ref,omitempty"`

	Container *Group `toml:"container,omitempty" json:"container,omitempty"`
}

// Parse decodes and validates a TOML document.
func Parse(data []byte) (*Document, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes and validates a TOML document from r. Read does not close r.
func Read(r io.Reader) (*Document, error) {
	var d Document
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %s", undecoded[0])
	}
	d.assignIDs()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile reads and validates the document at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Encode writes d as TOML.
func (d *Document) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(d)
}

// Labels returns the text of every element that has one.
func (d *Document) Labels() map[layout.ChildID]string {
	labels := make(map[layout.ChildID]string)
	d.Walk(func(_ string, e *Element) {
		if e.Text != "" {
			labels[layout.ChildID(e.ID)] = e.Text
		}
	})
	return labels
}

// Walk calls fn for every element, parents before their nested children.
// path locates the element, e.g. "root.children[1].container.children[0]".
func (d *Document) Walk(fn func(path string, e *Element)) {
	walkGroup("root", &d.Root, fn)
}

func walkGroup(path string, g *Group, fn func(string, *Element)) {
	for i := range g.Children {
		e := &g.Children[i]
		p := path + ".children[" + strconv.Itoa(i) + "]"
		fn(p, e)
		if e.Container != nil {
			walkGroup(p+".container", e.Container, fn)
		}
	}
}

// assignIDs names anonymous elements after their position, so the same
// document always yields the same ids.
func (d *Document) assignIDs() {
	d.Walk(func(path string, e *Element) {
		if e.ID == "" {
			e.ID = "el-" + uuid.NewSHA1(idNamespace, []byte(path)).String()[:8]
		}
	})
}
