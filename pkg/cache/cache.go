// Package cache provides content-addressed caching for pipeline
// stages: resolved specs, computed geometry, and rendered artifacts.
//
// Keys embed the SHA-256 hash of the inputs they describe, so entries
// are immutable once written. The TTLs bound disk and memory growth
// rather than guard against staleness.
package cache

import (
	"context"
	"time"
)

// Time-to-live per pipeline stage.
const (
	// TTLSpec covers resolved specs keyed by raw document hash.
	TTLSpec = 24 * time.Hour

	// TTLGeometry covers computed profiles keyed by canonical spec hash.
	TTLGeometry = 7 * 24 * time.Hour

	// TTLArtifact covers rendered artifacts keyed by profile hash and
	// render options.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// SpecKey identifies a resolved spec by the hash of its raw document bytes.
	SpecKey(docHash string) string

	// GeometryKey identifies a computed profile by its canonical spec hash.
	GeometryKey(specHash string) string

	// ArtifactKey identifies a rendered artifact by the profile hash and
	// the render options that shaped it.
	ArtifactKey(profileHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that distinguish artifacts
// built from the same profile.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Theme     string  `json:"theme"`
	ShowDims  bool    `json:"show_dims"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Title     string  `json:"title"`
	MeshWidth float64 `json:"mesh_width"`
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// SpecKey generates a key for resolved spec caching.
func (k *DefaultKeyer) SpecKey(docHash string) string { return "spec:" + docHash }

// GeometryKey generates a key for computed profile caching.
func (k *DefaultKeyer) GeometryKey(specHash string) string { return "geom:" + specHash }

// ArtifactKey generates a key for rendered artifact caching.
// The render options are hashed into the key so that, say, a blueprint
// SVG and a plain SVG of the same profile never collide.
func (k *DefaultKeyer) ArtifactKey(profileHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", profileHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
