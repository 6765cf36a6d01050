package hexgrid

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/honeycomb/pkg/errors"
)

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// The embedded config and viewport are validated and every cell layer must
// lie within the layout's boundaries.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}
	if err := l.Config.Validate(); err != nil {
		return nil, err
	}
	if err := l.Viewport.Validate(); err != nil {
		return nil, err
	}
	if len(l.Cells) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout must contain cells")
	}
	n := l.LayerCount()
	for _, c := range l.Cells {
		if c.Layer < 1 || c.Layer > n {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"cell (%d,%d) has layer %d outside 1..%d", c.Row, c.Col, c.Layer, n)
		}
	}
	return &l, nil
}

// WriteLayout writes l as JSON to w.
func WriteLayout(l *Layout, w io.Writer) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadLayout reads a Layout from r.
func ReadLayout(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return UnmarshalLayout(data)
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l *Layout, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
