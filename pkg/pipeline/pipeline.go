// Package pipeline provides the core rendering pipeline for staircast.
//
// This package implements the complete resolve → geometry → render
// pipeline that can be used by CLI and server components. By
// centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Load and validate the staircase spec (file or inline)
//  2. Geometry: Compute the cross-section profile from the spec
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, OBJ, STL)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SpecPath: "stairs.toml",
//	    Formats:  []string{"svg"},
//	    Theme:    "blueprint",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Resolve only
//	sp, err := runner.Resolve(ctx, opts)
//
//	// Geometry with an existing spec
//	profile, err := runner.Compute(ctx, sp)
//
//	// Render with an existing profile
//	artifacts, err := runner.Render(ctx, profile, sp, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/staircast/staircast/pkg/cache"
	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
	"github.com/staircast/staircast/pkg/render"
	"github.com/staircast/staircast/pkg/spec"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 1000.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 700.0

	// DefaultTheme is the default visual theme.
	DefaultTheme = "simple"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatOBJ  = "obj"
	FormatSTL  = "stl"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatOBJ:  true,
	FormatSTL:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Resolve options. Exactly one of SpecPath or Spec must be set;
	// an inline Spec wins when both are.
	SpecPath string          `json:"spec_path,omitempty"`
	Spec     *spec.Staircase `json:"spec,omitempty"`
	Refresh  bool            `json:"refresh,omitempty"`

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Theme        string   `json:"theme,omitempty"`
	NoDimensions bool     `json:"no_dimensions,omitempty"`
	Width        float64  `json:"width,omitempty"`
	Height       float64  `json:"height,omitempty"`
	Title        string   `json:"title,omitempty"`

	// MeshWidth overrides the spec's width for OBJ/STL extrusion.
	MeshWidth float64 `json:"mesh_width,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the resolved, validated spec the run used.
	Spec spec.Staircase

	// SpecHash is the content hash of the canonical spec.
	SpecHash string

	// Profile is the computed cross-section.
	Profile *geometry.Profile

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StepCount    int
	VertexCount  int
	ResolveTime  time.Duration
	GeometryTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ResolveHit  bool // Whether the resolved spec came from cache
	GeometryHit bool // Whether the profile came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, obj, stl)", format)
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

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForResolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForResolve checks required fields for spec resolution.
func (o *Options) ValidateForResolve() error {
	if o.SpecPath == "" && o.Spec == nil {
		return errors.New(errors.ErrCodeInvalidSpec, "spec_path or spec is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := render.ThemeByName(o.Theme); err != nil {
		return err
	}
	return nil
}

// ShowDims returns whether dimension annotations should be drawn.
func (o *Options) ShowDims() bool {
	return !o.NoDimensions
}

// NeedsMesh returns true if any requested format requires extrusion.
func (o *Options) NeedsMesh() bool {
	for _, f := range o.Formats {
		if f == FormatOBJ || f == FormatSTL {
			return true
		}
	}
	return false
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Theme:     o.Theme,
		ShowDims:  o.ShowDims(),
		Width:     o.Width,
		Height:    o.Height,
		Title:     o.Title,
		MeshWidth: o.MeshWidth,
	}
}
