package render

import (
	"github.com/matzehuels/honeycomb/pkg/errors"
)

// Visual styles.
const (
	// StyleFill paints every hexagon with its layer color.
	StyleFill = "fill"

	// StyleOutline strokes every hexagon with its layer color.
	StyleOutline = "outline"

	// StyleClip uses the hexagons as a clip path over a radial gradient,
	// the way the honeycomb background is composed on a web page.
	StyleClip = "clip"
)

// Default colors.
const (
	DefaultInnerColor = "#ffd166"
	DefaultOuterColor = "#26547c"
	DefaultBackground = "#0b132b"
)

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleFill:    true,
	StyleOutline: true,
	StyleClip:    true,
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: fill, outline, clip)", style)
	}
	return nil
}
