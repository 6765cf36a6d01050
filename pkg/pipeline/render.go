package pipeline

import (
	"fmt"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render/sink"
)

// RenderFromLayout generates artifacts in the requested formats without caching.
func RenderFromLayout(l *hexgrid.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	paint, err := opts.renderSettings().PaintOptions()
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, paint...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGPaint(paint...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(paint...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFromLayoutData renders artifacts from serialized layout JSON.
func RenderFromLayoutData(layoutData []byte, opts Options) (map[string][]byte, error) {
	l, err := hexgrid.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return RenderFromLayout(l, opts)
}
