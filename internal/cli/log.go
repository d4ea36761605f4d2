// Package cli implements the stackbox command-line interface.
//
// This package provides commands for checking, arranging and rendering
// layout documents, viewing them interactively in the terminal, serving
// them over HTTP, and managing the result cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Report the minimum size of a document's root content
//   - layout: Arrange a document and list the resulting frames
//   - render: Generate SVG, JSON, DOT or tree diagram outputs
//   - view: Scroll through an arranged document in the terminal
//   - serve: Run the HTTP layout service
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every container arrangement and cache access. Loggers are passed
// through context.Context.
//
// # Example
//
//	import "github.com/matzehuels/stackbox/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbox/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Rendered 3 outputs (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports layout and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnUpdate(container, mode string, children, viewW, viewH int, d time.Duration) {
	h.logger.Debug("arranged", "container", container, "mode", mode, "children", children,
		"view", [2]int{viewW, viewH}, "duration", d)
}

func (h logHooks) OnScrollbars(container string, horizontal, vertical bool) {
	if horizontal || vertical {
		h.logger.Debug("scroll bars", "container", container, "horizontal", horizontal, "vertical", vertical)
	}
}

func (h logHooks) OnAssert(container, msg string) {
	h.logger.Warn("layout assertion", "container", container, "msg", msg)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.LayoutHooks = logHooks{}
	_ observability.CacheHooks  = logHooks{}
)
