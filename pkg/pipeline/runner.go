package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and HTTP service use it to share caching logic.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can use the same Runner with different options. Every stage
// builds its own container tree.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute checks, arranges and renders src.
func (r *Runner) Execute(ctx context.Context, src []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{DocHash: cache.Hash(src)}

	start := time.Now()
	size, hit, err := r.CheckWithCacheInfo(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}
	result.MinSize = size
	result.Stats.CheckTime = time.Since(start)
	result.CacheInfo.CheckHit = hit

	start = time.Now()
	snap, hit, err := r.LayoutWithCacheInfo(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Snapshot = snap
	result.Stats.LayoutTime = time.Since(start)
	result.Stats.Frames = len(snap.Frames)
	result.Stats.Containers = len(snap.Viewports)
	result.CacheInfo.LayoutHit = hit

	r.Logger.Info("arranged document",
		"size", fmt.Sprintf("%dx%d", snap.Width, snap.Height),
		"frames", len(snap.Frames),
		"containers", len(snap.Viewports),
		"duration", result.Stats.LayoutTime)

	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// CheckWithCacheInfo returns the minimum size of the document's root
// content and whether it came from the cache.
func (r *Runner) CheckWithCacheInfo(ctx context.Context, src []byte, opts Options) (image.Point, bool, error) {
	key := r.Keyer.CheckKey(cache.Hash(src))
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var p image.Point
			if err := json.Unmarshal(data, &p); err == nil {
				return p, true, nil
			}
		}
	}

	doc, err := Load(src)
	if err != nil {
		return image.Point{}, false, err
	}
	opts.Width, opts.Height = 0, 0
	tree, err := Build(doc, r.withLogger(opts))
	if err != nil {
		return image.Point{}, false, err
	}
	size := tree.Root().CheckLayout()

	if data, err := json.Marshal(size); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLCheck)
	}
	return size, false, nil
}

// Check is a convenience wrapper that discards the cache hit info.
func (r *Runner) Check(ctx context.Context, src []byte) (image.Point, error) {
	size, _, err := r.CheckWithCacheInfo(ctx, src, Options{})
	return size, err
}

// LayoutWithCacheInfo arranges src at the size of opts and returns the
// snapshot and whether it came from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, src []byte, opts Options) (render.Snapshot, bool, error) {
	if err := opts.Validate(); err != nil {
		return render.Snapshot{}, false, err
	}
	key := r.Keyer.LayoutKey(cache.Hash(src), layoutKeyOpts(opts))
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var snap render.Snapshot
			if err := json.Unmarshal(data, &snap); err == nil {
				return snap, true, nil
			}
		}
	}

	doc, err := Load(src)
	if err != nil {
		return render.Snapshot{}, false, err
	}
	snap, _, err := Arrange(doc, r.withLogger(opts))
	if err != nil {
		return render.Snapshot{}, false, err
	}

	if data, err := json.Marshal(snap); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLLayout)
	}
	return snap, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, src []byte, opts Options) (render.Snapshot, error) {
	snap, _, err := r.LayoutWithCacheInfo(ctx, src, opts)
	return snap, err
}

// RenderWithCacheInfo renders every format of opts and reports whether all
// of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, src []byte, opts Options) (map[string][]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	hash := cache.Hash(src)
	formats := opts.sortedFormats()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(formats))
		for _, format := range formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(hash, artifactKeyOpts(opts, format)))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(formats) {
			return artifacts, true, nil
		}
	}

	doc, err := Load(src)
	if err != nil {
		return nil, false, err
	}
	snap, tree, err := Arrange(doc, r.withLogger(opts))
	if err != nil {
		return nil, false, err
	}
	rendered, err := RenderArtifacts(snap, tree, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		_ = r.Cache.Set(ctx, r.Keyer.ArtifactKey(hash, artifactKeyOpts(opts, format)), data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, src []byte, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, src, opts)
	return artifacts, err
}

// Tree loads and builds src without caching, for interactive hosts that
// keep the tree alive.
func (r *Runner) Tree(src []byte, opts Options) (*layout.Tree, map[layout.ChildID]string, error) {
	doc, err := Load(src)
	if err != nil {
		return nil, nil, err
	}
	tree, err := Build(doc, r.withLogger(opts))
	if err != nil {
		return nil, nil, err
	}
	return tree, doc.Labels(), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) withLogger(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	return opts
}

func layoutKeyOpts(o Options) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height, Scale: o.Scale}
}

func artifactKeyOpts(o Options, format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Layout:   layoutKeyOpts(o),
		Palette:  o.Palette,
		Title:    o.Title,
		NoLabels: o.NoLabels,
		Hidden:   o.ShowHidden,
		Detailed: o.Detailed,
	}
}
