package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/IVANSLASH/framegen/pkg/cache"
	"github.com/IVANSLASH/framegen/pkg/lattice"
	"github.com/IVANSLASH/framegen/pkg/materialize"
	"github.com/IVANSLASH/framegen/pkg/model"
	"github.com/IVANSLASH/framegen/pkg/observability"
	"github.com/IVANSLASH/framegen/pkg/section"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// modelEntry is the cached form of a generation result.
type modelEntry struct {
	Audit *lattice.Audit  `json:"audit"`
	Model json.RawMessage `json:"model"`
}

// Execute runs the complete generate → validate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	warnings, err := opts.Config.Validate()
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	for _, w := range warnings {
		opts.Logger.Warn(w)
	}

	spec, sections, err := opts.Config.Build()
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	result := &Result{
		Spec:      spec,
		Sections:  sections,
		Artifacts: make(map[string][]byte),
	}

	// Cantilever stability review. Blockers stop the run before any
	// geometry is generated; plain findings are logged and carried in
	// the result for the report.
	result.Findings = lattice.CheckCantileverStability(spec.Cantilevers)
	for _, f := range result.Findings {
		if f.Blocker {
			return nil, fmt.Errorf("%w: %s", lattice.ErrConfiguration, f.Message)
		}
		opts.Logger.Warn(f.Message)
	}

	// Stage 1: Generate
	genStart := time.Now()
	m, audit, modelHit, err := r.GenerateWithCacheInfo(ctx, spec, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Model = m
	result.Audit = audit
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.NodeCount = m.NodeCount()
	result.Stats.ElementCount = m.ElementCount()
	result.CacheInfo.ModelHit = modelHit

	if data, err := model.Marshal(m); err == nil {
		result.ModelHash = cache.Hash(data)
	}

	opts.Logger.Info("generated model",
		"nodes", m.NodeCount(),
		"elements", m.ElementCount(),
		"skipped", audit.Skipped(),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds the model with caching and returns cache hit info.
// The model is validated against the spec tolerance whether it was generated
// fresh or restored from cache.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, spec lattice.Spec, opts Options) (*model.Model, *lattice.Audit, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := cache.ModelKey(opts.Config)
	eps := spec.Tolerance()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var entry modelEntry
			if err := json.Unmarshal(data, &entry); err == nil {
				if m, err := model.Unmarshal(entry.Model); err == nil && m.Validate(eps) == nil {
					observability.Cache().OnCacheHit(ctx, "model")
					return m, entry.Audit, true, nil
				}
			}
			// Corrupt entry: drop it and regenerate
			_ = r.Cache.Delete(ctx, cacheKey)
		}
		observability.Cache().OnCacheMiss(ctx, "model")
	}

	observability.Pipeline().OnGenerateStart(ctx, spec.NumBayX, spec.NumBayY, spec.NumFloor)
	start := time.Now()

	m, audit, err := lattice.Generate(spec, lattice.Options{Logger: opts.Logger})
	if err == nil {
		err = m.Validate(eps)
	}
	var nodes, elems int
	if audit != nil {
		nodes, elems = audit.Nodes, audit.Elements()
	}
	observability.Pipeline().OnGenerateComplete(ctx, nodes, elems, time.Since(start), err)
	if err != nil {
		return nil, nil, false, err
	}

	// Cache the result
	if !opts.Refresh {
		if modelData, err := model.Marshal(m); err == nil {
			entry := modelEntry{Audit: audit, Model: modelData}
			if data, err := json.Marshal(entry); err == nil {
				_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLModel)
				observability.Cache().OnCacheSet(ctx, "model", len(data))
			}
		}
	}

	return m, audit, false, nil
}

// Generate is a convenience wrapper that discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, spec lattice.Spec, opts Options) (*model.Model, *lattice.Audit, error) {
	m, audit, _, err := r.GenerateWithCacheInfo(ctx, spec, opts)
	return m, audit, err
}

// RenderWithCacheInfo produces artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, result *Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache. Summary output embeds a fresh
	// run ID, so it is rendered every time and never cached.
	cacheable := result.ModelHash != ""
	allCached := cacheable
	artifacts := make(map[string][]byte)

	if cacheable {
		for _, format := range opts.Formats {
			if format == FormatSummary {
				allCached = false
				break
			}
			key := cache.ArtifactKey(result.ModelHash, artifactVariant(format, opts))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderArtifacts(ctx, result, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		for format, data := range rendered {
			if format == FormatSummary {
				continue
			}
			key := cache.ArtifactKey(result.ModelHash, artifactVariant(format, opts))
			_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Materialize replays the model into an analysis engine in deterministic
// order: sections, transformations, nodes, restraints, elements.
func (r *Runner) Materialize(ctx context.Context, m *model.Model, sections *section.Registry, eng materialize.Engine) (materialize.Counts, error) {
	observability.Pipeline().OnMaterializeStart(ctx, m.NodeCount(), m.ElementCount())
	start := time.Now()
	counts, err := materialize.Apply(m, sections, eng)
	observability.Pipeline().OnMaterializeComplete(ctx, time.Since(start), err)
	return counts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifactVariant distinguishes cache entries for formats whose output
// depends on options beyond the model itself.
func artifactVariant(format string, opts Options) string {
	if (format == FormatDOT || format == FormatSVG) && opts.Detailed {
		return format + ":detailed"
	}
	return format
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
