package hexgrid

import (
	"fmt"

	"github.com/matzehuels/honeycomb/pkg/errors"
)

// LayerMode selects the distance metric used for layer classification.
type LayerMode string

const (
	// LayerModeEuclidean measures straight-line distance between frame positions.
	LayerModeEuclidean LayerMode = "euclidean"

	// LayerModeHex measures the number of hex steps between cells.
	LayerModeHex LayerMode = "hex"
)

// Default geometry, matching the honeycomb background the tool was built for.
const (
	DefaultFrameWidth    = 88.0
	DefaultFrameHeight   = 100.0
	DefaultHexagonWidth  = 84.0
	DefaultHexagonHeight = 100.0
)

// MaxCells bounds the size of a single layout. Tiny frames on a large
// viewport would otherwise allocate without limit.
const MaxCells = 1 << 20

// Config describes the tiling cell (frame) and the hexagon drawn inside it.
type Config struct {
	FrameWidth    float64   `json:"frame_width" toml:"frame_width" bson:"frame_width"`
	FrameHeight   float64   `json:"frame_height" toml:"frame_height" bson:"frame_height"`
	HexagonWidth  float64   `json:"hexagon_width" toml:"hexagon_width" bson:"hexagon_width"`
	HexagonHeight float64   `json:"hexagon_height" toml:"hexagon_height" bson:"hexagon_height"`
	LayerMode     LayerMode `json:"layer_mode,omitempty" toml:"layer_mode,omitempty" bson:"layer_mode,omitempty"`
}

// DefaultConfig returns the default 88x100 frame with an 84x100 hexagon.
func DefaultConfig() Config {
	return Config{
		FrameWidth:    DefaultFrameWidth,
		FrameHeight:   DefaultFrameHeight,
		HexagonWidth:  DefaultHexagonWidth,
		HexagonHeight: DefaultHexagonHeight,
		LayerMode:     LayerModeEuclidean,
	}
}

// Mode returns the effective layer mode; the zero value means euclidean.
func (c Config) Mode() LayerMode {
	if c.LayerMode == "" {
		return LayerModeEuclidean
	}
	return c.LayerMode
}

// Validate reports an INVALID_CONFIG error if any dimension is not a positive
// finite number, or if the derived row spacing collapses to zero or below.
func (c Config) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"frame_width", c.FrameWidth},
		{"frame_height", c.FrameHeight},
		{"hexagon_width", c.HexagonWidth},
		{"hexagon_height", c.HexagonHeight},
	}
	for _, d := range dims {
		if err := errors.ValidateDimension(d.name, d.value); err != nil {
			return err
		}
	}

	switch c.Mode() {
	case LayerModeEuclidean, LayerModeHex:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown layer_mode %q (must be euclidean or hex)", c.LayerMode)
	}

	if s := VerticalStagger(c); s <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"vertical stagger must be positive, got %v (frame_width too large for hexagon_height)", s)
	}
	if s := RowStep(c); s <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"row step must be positive, got %v (hexagon_width too large for frame_width)", s)
	}
	if s := centerRowSpacing(c); s <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"hexagon_height must be less than 4x frame_height, got %v", c.HexagonHeight)
	}
	return nil
}

// String implements fmt.Stringer.
func (c Config) String() string {
	return fmt.Sprintf("frame %gx%g, hexagon %gx%g, %s layers",
		c.FrameWidth, c.FrameHeight, c.HexagonWidth, c.HexagonHeight, c.Mode())
}

// Viewport is the rectangular area the honeycomb has to cover.
type Viewport struct {
	Width  float64 `json:"width" toml:"width" bson:"width"`
	Height float64 `json:"height" toml:"height" bson:"height"`
}

// Validate reports an INVALID_CONFIG error unless both sides are positive and finite.
func (v Viewport) Validate() error {
	if err := errors.ValidateDimension("viewport width", v.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("viewport height", v.Height)
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}
