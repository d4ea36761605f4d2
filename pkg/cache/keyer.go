package cache

// Keyer builds cache keys for the stages of a render.
type Keyer interface {
	// CheckKey identifies the minimum size of a document.
	CheckKey(docHash string) string
	// LayoutKey identifies the arranged snapshot of a document.
	LayoutKey(docHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered output file.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the inputs of an arrangement besides the document.
type LayoutKeyOpts struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
}

// ArtifactKeyOpts are the inputs of a rendered artifact besides the document.
type ArtifactKeyOpts struct {
	Format   string        `json:"format"`
	Layout   LayoutKeyOpts `json:"layout"`
	Palette  string        `json:"palette,omitempty"`
	Title    string        `json:"title,omitempty"`
	NoLabels bool          `json:"no_labels,omitempty"`
	Hidden   bool          `json:"hidden,omitempty"`
	Detailed bool          `json:"detailed,omitempty"`
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) CheckKey(docHash string) string { return hashKey("check", docHash) }

func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

var _ Keyer = DefaultKeyer{}
