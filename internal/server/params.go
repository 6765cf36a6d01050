package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
)

// applyQuery overrides opts with the query parameters present in q.
func applyQuery(opts *pipeline.Options, q url.Values) error {
	floats := []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"frame_width", &opts.Grid.FrameWidth},
		{"frame_height", &opts.Grid.FrameHeight},
		{"hexagon_width", &opts.Grid.HexagonWidth},
		{"hexagon_height", &opts.Grid.HexagonHeight},
		{"stroke_width", &opts.StrokeWidth},
		{"scale", &opts.Scale},
	}
	for _, f := range floats {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", f.name, raw)
		}
		*f.dst = v
	}

	if v := q.Get("layer_mode"); v != "" {
		opts.Grid.LayerMode = hexgrid.LayerMode(v)
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	for name, dst := range map[string]*string{
		"inner_color": &opts.InnerColor,
		"outer_color": &opts.OuterColor,
		"background":  &opts.Background,
	} {
		if v := q.Get(name); v != "" {
			*dst = hexColor(v)
		}
	}
	if v := q.Get("refresh"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "refresh: %q is not a boolean", v)
		}
		opts.Refresh = b
	}
	return nil
}

// hexColor adds the leading '#' that query strings usually omit.
func hexColor(v string) string {
	if strings.HasPrefix(v, "#") {
		return v
	}
	return "#" + v
}
