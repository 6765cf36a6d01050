package pipeline

import (
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
)

// GenerateLayout computes the honeycomb for opts without caching.
func GenerateLayout(opts Options) (*hexgrid.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	l, err := hexgrid.Compute(opts.Viewport(), opts.Grid)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("computed grid",
		"rows", l.Dimensions.Rows,
		"cols", l.Dimensions.Cols,
		"center", [2]int{l.Dimensions.CenterRow, l.Dimensions.CenterCol},
		"layers", l.LayerCount())
	return l, nil
}
