package sink

import (
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
)

// RenderJSON exports the layout as indented JSON, the same document
// [hexgrid.ReadLayout] reads back.
func RenderJSON(l *hexgrid.Layout) ([]byte, error) {
	return hexgrid.MarshalLayout(l)
}
