// Package cache provides caching for rendered artifacts.
//
// Rendering a diagram is cheap, but format conversion (PNG, PDF via
// rsvg-convert) shells out to an external tool, so the pipeline caches
// finished artifacts keyed by a hash of the resolved scene plus the render
// options. Two cache backends are provided:
//
//   - [FileCache]: persistent, for repeated local use
//   - [NullCache]: no-op, for tests or when caching is disabled
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact class. SVG output is deterministic for a given
// scene, so artifacts could live forever; a finite TTL keeps the cache
// directory from growing without bound.
const (
	ArtifactTTL = 7 * 24 * time.Hour
	SceneTTL    = 24 * time.Hour
)

// Cache is the storage backend for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts captures the render options that affect artifact bytes.
// Two renders with the same scene hash and the same opts produce identical
// output, so they share a cache entry.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	VizType     string  `json:"viz_type,omitempty"`
	Theme       string  `json:"theme,omitempty"`
	FrameWidth  float64 `json:"frame_width,omitempty"`
	FrameHeight float64 `json:"frame_height,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// SceneKey generates a key for a resolved scene given the hash of its
	// source diagram and resolve options.
	SceneKey(diagramHash string) string
	// ArtifactKey generates a key for a rendered artifact given the hash
	// of the resolved scene and the render options.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a stage prefix plus a SHA-256
// over the identifying components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey implements [Keyer].
func (k *DefaultKeyer) SceneKey(diagramHash string) string {
	return hashKey("scene", diagramHash)
}

// ArtifactKey implements [Keyer].
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
