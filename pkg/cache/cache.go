// Package cache stores computed layouts and rendered artifacts.
//
// # Backends
//
//   - [NullCache] never stores anything
//   - [FileCache] keeps entries as files, used by the CLI
//   - [RedisCache] shares entries between API servers
//
// # Keys
//
// A [Keyer] derives keys from everything that affects the output. Layout
// keys hash the viewport and grid config; artifact keys hash the layout and
// the render settings. [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// LayoutKeyOpts holds the inputs of a layout computation.
type LayoutKeyOpts struct {
	Width         float64 `json:"w"`
	Height        float64 `json:"h"`
	FrameWidth    float64 `json:"fw"`
	FrameHeight   float64 `json:"fh"`
	HexagonWidth  float64 `json:"hw"`
	HexagonHeight float64 `json:"hh"`
	LayerMode     string  `json:"mode"`
}

// ArtifactKeyOpts holds the render settings of an artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	InnerColor  string  `json:"inner"`
	OuterColor  string  `json:"outer"`
	Background  string  `json:"bg"`
	StrokeWidth float64 `json:"stroke"`
	Scale       float64 `json:"scale"`
}

// Keyer generates cache keys.
type Keyer interface {
	LayoutKey(opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<hash>".
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
