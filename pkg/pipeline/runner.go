package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bward3321/pixelforge/pkg/cache"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/observability"
	"github.com/bward3321/pixelforge/pkg/source"
)

const cacheKeyType = "artifact"

// Runner encapsulates export execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store export results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Load reads a sprite file into a grid.
func (r *Runner) Load(path string) (*grid.Grid, error) {
	start := time.Now()
	g, err := source.LoadFile(path)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded sprite",
		"path", path,
		"width", g.Width(),
		"height", g.Height(),
		"duration", time.Since(start))
	return g, nil
}

// Export renders every requested format, serving and storing artifacts
// through the cache. The first failing format aborts the export.
func (r *Runner) Export(ctx context.Context, g *grid.Grid, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		GridHash:  cache.Hash(g.Bytes()),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			Width:  g.Width(),
			Height: g.Height(),
			Cells:  g.Count(),
			Colors: len(g.Palette()),
		},
	}

	start := time.Now()
	for _, format := range opts.Formats {
		data, hit, err := r.exportFormat(ctx, g, format, result.GridHash, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
		result.Stats.Bytes += len(data)
		if hit {
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
		}
	}
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(opts.Formats)

	r.Logger.Info("exported",
		"formats", opts.Formats,
		"cached", len(result.CacheInfo.Hits),
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) exportFormat(ctx context.Context, g *grid.Grid, format, gridHash string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("cache hit", "format", format)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	hooks := observability.Export()
	hooks.OnExportStart(ctx, format)
	start := time.Now()
	data, err := Render(ctx, g, format, opts)
	hooks.OnExportComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered", "format", format, "bytes", len(data), "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return data, false, nil
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
