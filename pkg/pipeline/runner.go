package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/levelplot/levelplot/pkg/cache"
	"github.com/levelplot/levelplot/pkg/diagram"
	"github.com/levelplot/levelplot/pkg/layout"
	"github.com/levelplot/levelplot/pkg/observability"
	"github.com/levelplot/levelplot/pkg/render"
	"github.com/levelplot/levelplot/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, as long as each goroutine owns its
// diagram.
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

// Plot runs the complete layout → resolve → render pipeline with caching.
func (r *Runner) Plot(ctx context.Context, d *diagram.Diagram, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	cols := d.Columns()
	result.Stats.ColumnCount = len(cols)
	for _, col := range cols {
		result.Stats.LevelCount += col.Len()
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, result.Stats.ColumnCount)
	l := layout.Compute(d)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, result.Stats.LevelCount, result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layout",
		"columns", result.Stats.ColumnCount,
		"levels", result.Stats.LevelCount,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Resolve
	resolveStart := time.Now()
	observability.Pipeline().OnResolveStart(ctx)
	scene := render.Resolve(d, l, opts.ResolveOptions())
	result.Scene = scene
	result.Stats.ResolveTime = time.Since(resolveStart)
	observability.Pipeline().OnResolveComplete(ctx, primitiveCount(scene), result.Stats.ResolveTime, nil)

	// Compute scene hash for cache keys and callers
	if sceneData, err := sink.RenderJSON(scene, sink.WithJSONStyle(opts.Style)); err == nil {
		result.SceneHash = cache.Hash(sceneData)
	}

	r.Logger.Info("resolved scene",
		"primitives", primitiveCount(scene),
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, d, result.SceneHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// sceneHash may be empty, in which case it is computed from the scene.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene *render.Scene, d *diagram.Diagram, sceneHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if sceneHash == "" {
		sceneData, err := sink.RenderJSON(scene, sink.WithJSONStyle(opts.Style))
		if err != nil {
			return nil, false, err
		}
		sceneHash = cache.Hash(sceneData)
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := RenderScene(scene, d, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, scene *render.Scene, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, d, "", opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func primitiveCount(s *render.Scene) int {
	return len(s.Levels) + len(s.Segments) + len(s.Arrows) + len(s.Breaks) + len(s.Texts)
}
