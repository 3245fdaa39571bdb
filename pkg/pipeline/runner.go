package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/staircast/staircast/pkg/cache"
	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
	"github.com/staircast/staircast/pkg/observability"
	"github.com/staircast/staircast/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
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

// Execute runs the complete resolve → geometry → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Resolve
	source := opts.SpecPath
	if opts.Spec != nil {
		source = "inline"
	}
	observability.Pipeline().OnResolveStart(ctx, source)
	resolveStart := time.Now()
	sp, resolveHit, err := r.ResolveWithCacheInfo(ctx, opts)
	result.Stats.ResolveTime = time.Since(resolveStart)
	observability.Pipeline().OnResolveComplete(ctx, source, result.Stats.ResolveTime, err)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Spec = sp
	result.Stats.StepCount = sp.NumSteps
	result.CacheInfo.ResolveHit = resolveHit

	r.Logger.Info("resolved spec",
		"steps", sp.NumSteps,
		"landings", len(sp.Landings),
		"duration", result.Stats.ResolveTime)

	// Stage 2: Geometry
	observability.Pipeline().OnGeometryStart(ctx, sp.NumSteps)
	geomStart := time.Now()
	profile, specHash, geomHit, err := r.ComputeWithCacheInfo(ctx, sp)
	result.Stats.GeometryTime = time.Since(geomStart)
	vertexCount := 0
	if profile != nil {
		vertexCount = len(profile.Polygon)
	}
	observability.Pipeline().OnGeometryComplete(ctx, sp.NumSteps, vertexCount, result.Stats.GeometryTime, err)
	if err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}
	result.Profile = profile
	result.SpecHash = specHash
	result.Stats.VertexCount = vertexCount
	result.CacheInfo.GeometryHit = geomHit

	r.Logger.Info("computed geometry",
		"vertices", vertexCount,
		"segments", len(profile.Segments),
		"duration", result.Stats.GeometryTime)

	// Stage 3: Render
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, profile, sp, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveWithCacheInfo loads and validates the spec with caching and
// returns cache hit info. Inline specs skip the cache; they are
// already parsed and only need validation.
func (r *Runner) ResolveWithCacheInfo(ctx context.Context, opts Options) (spec.Staircase, bool, error) {
	if err := opts.ValidateForResolve(); err != nil {
		return spec.Staircase{}, false, err
	}

	if opts.Spec != nil {
		sp := *opts.Spec
		sp.Landings = slices.Clone(sp.Landings)
		if err := sp.Validate(); err != nil {
			return spec.Staircase{}, false, err
		}
		sp.Normalize()
		return sp, false, nil
	}

	data, err := os.ReadFile(opts.SpecPath)
	if err != nil {
		if os.IsNotExist(err) {
			return spec.Staircase{}, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s not found", opts.SpecPath)
		}
		return spec.Staircase{}, false, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to read spec file %s", opts.SpecPath)
	}
	cacheKey := r.Keyer.SpecKey(cache.Hash(data))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var sp spec.Staircase
			if err := json.Unmarshal(cached, &sp); err == nil {
				observability.Cache().OnCacheHit(ctx, "spec")
				return sp, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "spec")
	}

	sp, err := spec.Parse(data, filepath.Ext(opts.SpecPath))
	if err != nil {
		return spec.Staircase{}, false, err
	}

	// Cache the canonical form
	if !opts.Refresh {
		if canonical, err := json.Marshal(sp); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, canonical, cache.TTLSpec)
			observability.Cache().OnCacheSet(ctx, "spec", len(canonical))
		}
	}

	return sp, false, nil
}

// Resolve is a convenience wrapper that calls ResolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Resolve(ctx context.Context, opts Options) (spec.Staircase, error) {
	sp, _, err := r.ResolveWithCacheInfo(ctx, opts)
	return sp, err
}

// ComputeWithCacheInfo computes the profile with caching and returns
// the canonical spec hash and cache hit info.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, sp spec.Staircase) (*geometry.Profile, string, bool, error) {
	canonical, err := json.Marshal(sp)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "encoding spec for cache key")
	}
	specHash := cache.Hash(canonical)
	cacheKey := r.Keyer.GeometryKey(specHash)

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var p geometry.Profile
		if err := json.Unmarshal(data, &p); err == nil {
			observability.Cache().OnCacheHit(ctx, "geometry")
			return &p, specHash, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "geometry")

	p, err := geometry.Compute(sp)
	if err != nil {
		return nil, "", false, err
	}

	// Cache the result
	if data, err := json.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGeometry)
		observability.Cache().OnCacheSet(ctx, "geometry", len(data))
	}

	return p, specHash, false, nil
}

// Compute is a convenience wrapper that calls ComputeWithCacheInfo and discards the cache hit info.
func (r *Runner) Compute(ctx context.Context, sp spec.Staircase) (*geometry.Profile, error) {
	p, _, _, err := r.ComputeWithCacheInfo(ctx, sp)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *geometry.Profile, sp spec.Staircase, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from profile data
	profileData, err := json.Marshal(p)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encoding profile for cache key")
	}
	profileHash := cache.Hash(profileData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(profileHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := Render(p, sp, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(profileHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p *geometry.Profile, sp spec.Staircase, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, sp, opts)
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
