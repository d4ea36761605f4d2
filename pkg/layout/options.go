package layout

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Metrics are the host's scroll bar thicknesses in pixels.
type Metrics struct {
	VScrollWidth  int // width of a vertical scroll bar
	HScrollHeight int // height of a horizontal scroll bar
}

// DefaultMetrics are the scroll bar sizes of a 96 DPI desktop.
var DefaultMetrics = Metrics{VScrollWidth: 17, HScrollHeight: 17}

// Scaled returns m multiplied by a pre-resolved DPI scale factor.
func (m Metrics) Scaled(scale float64) Metrics {
	if scale <= 0 {
		return m
	}
	return Metrics{
		VScrollWidth:  int(math.Round(float64(m.VScrollWidth) * scale)),
		HScrollHeight: int(math.Round(float64(m.HScrollHeight) * scale)),
	}
}

// Option configures a [Tree].
type Option func(*config)

type config struct {
	rootID  ChildID
	logger  *log.Logger
	metrics Metrics
	scale   float64
	surface SurfaceFactory
	handler Handler
}

func newConfig(opts ...Option) config {
	cfg := config{
		rootID:  "root",
		metrics: DefaultMetrics,
		scale:   1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.surface == nil {
		cfg.surface = func(ChildID, Surface) Surface { return nopSurface{} }
	}
	cfg.metrics = cfg.metrics.Scaled(cfg.scale)
	return cfg
}

// WithRootID names the root container. The default is "root".
func WithRootID(id ChildID) Option { return func(c *config) { c.rootID = id } }

// WithLogger sets the logger for assertion failures and debug traces.
// Without it the engine logs nothing.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// WithMetrics overrides the unscaled scroll bar thicknesses.
func WithMetrics(m Metrics) Option { return func(c *config) { c.metrics = m } }

// WithScale applies a DPI scale factor to the scroll bar metrics.
func WithScale(f float64) Option { return func(c *config) { c.scale = f } }

// WithSurfaces sets the factory that creates the native surface of every
// container in the tree.
func WithSurfaces(f SurfaceFactory) Option { return func(c *config) { c.surface = f } }

// WithHandler installs an event router on the root container.
func WithHandler(h Handler) Option { return func(c *config) { c.handler = h } }
