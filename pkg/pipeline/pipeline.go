// Package pipeline provides the core model generation pipeline for Framegen.
//
// This package implements the complete generate → validate → render pipeline
// that backs every CLI entry point. By centralizing this logic, we ensure
// consistent behavior across commands and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Build the node lattice and frame elements from a configuration
//  2. Validate: Check orthogonality, column verticality, and base restraints
//  3. Render: Produce output artifacts (summary, CSV tables, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Config:  cfg,
//	    Formats: []string{"summary", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/IVANSLASH/framegen/pkg/config"
	"github.com/IVANSLASH/framegen/pkg/lattice"
	"github.com/IVANSLASH/framegen/pkg/model"
	"github.com/IVANSLASH/framegen/pkg/section"
)

// Format constants for output artifacts.
const (
	FormatSummary  = "summary"
	FormatNodes    = "nodes"
	FormatElements = "elements"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatSummary:  true,
	FormatNodes:    true,
	FormatElements: true,
	FormatDOT:      true,
	FormatSVG:      true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: summary, nodes, elements, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the generation pipeline.
type Options struct {
	// Config is the building configuration to generate from.
	// If nil, the packaged defaults are used.
	Config *config.Config

	// Formats selects which artifacts to render. Defaults to summary.
	Formats []string

	// Detailed adds coordinates and section groups to DOT node labels.
	Detailed bool

	// Refresh bypasses the cache and regenerates the model.
	Refresh bool

	// Logger receives progress and skip diagnostics. Defaults to a
	// discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == nil {
		def := config.Default()
		o.Config = &def
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSummary}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the generated structural model.
	Model *model.Model

	// Audit holds generation counters and skip diagnostics. On a cache
	// hit the audit is restored from the cached entry.
	Audit *lattice.Audit

	// Spec is the generation spec derived from the configuration.
	Spec lattice.Spec

	// Sections is the cross-section registry derived from the configuration.
	Sections *section.Registry

	// Findings holds advisory cantilever stability findings.
	Findings []lattice.Finding

	// ModelHash is the content hash of the serialized model.
	ModelHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	ElementCount int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ModelHit  bool // Whether the model came from cache
	RenderHit bool // Whether all artifacts came from cache
}
