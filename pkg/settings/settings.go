// Package settings loads and saves honeycomb settings as TOML.
//
// A settings file has three tables:
//
//	[grid]
//	frame_width = 88.0
//	frame_height = 100.0
//	hexagon_width = 84.0
//	hexagon_height = 100.0
//	layer_mode = "euclidean"
//
//	[viewport]
//	width = 800.0
//	height = 600.0
//
//	[render]
//	style = "fill"
//	inner_color = "#ffd166"
//	outer_color = "#26547c"
//	background = "#0b132b"
//	stroke_width = 2.0
//	scale = 2.0
//
// Missing keys keep their [Default] values, so a file may set only the
// fields it cares about.
package settings

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/render"
	"github.com/matzehuels/honeycomb/pkg/render/sink"
)

// FileName is the settings file name inside the config directory.
const FileName = "settings.toml"

// Settings is the full user-editable configuration.
type Settings struct {
	Grid     hexgrid.Config   `toml:"grid" json:"grid" bson:"grid"`
	Viewport hexgrid.Viewport `toml:"viewport" json:"viewport" bson:"viewport"`
	Render   Render           `toml:"render" json:"render" bson:"render"`
}

// Render holds the artwork settings.
type Render struct {
	Style       string  `toml:"style" json:"style" bson:"style"`
	InnerColor  string  `toml:"inner_color" json:"inner_color" bson:"inner_color"`
	OuterColor  string  `toml:"outer_color" json:"outer_color" bson:"outer_color"`
	Background  string  `toml:"background" json:"background" bson:"background"`
	StrokeWidth float64 `toml:"stroke_width" json:"stroke_width" bson:"stroke_width"`
	Scale       float64 `toml:"scale" json:"scale" bson:"scale"`
}

// Default returns the built-in settings: the 88x100 frame with an 84x100
// hexagon on an 800x600 viewport.
func Default() Settings {
	return Settings{
		Grid:     hexgrid.DefaultConfig(),
		Viewport: hexgrid.Viewport{Width: 800, Height: 600},
		Render: Render{
			Style:       render.StyleFill,
			InnerColor:  render.DefaultInnerColor,
			OuterColor:  render.DefaultOuterColor,
			Background:  render.DefaultBackground,
			StrokeWidth: sink.DefaultStrokeWidth,
			Scale:       sink.DefaultScale,
		},
	}
}

// Validate checks every field.
func (s Settings) Validate() error {
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if err := s.Viewport.Validate(); err != nil {
		return err
	}
	return s.Render.Validate()
}

// Validate checks the style, colors and numeric render settings.
func (r Render) Validate() error {
	if err := render.ValidateStyle(r.Style); err != nil {
		return err
	}
	if _, err := render.ParsePalette(r.InnerColor, r.OuterColor); err != nil {
		return err
	}
	if r.Background != "" {
		if _, err := render.ParseColor(r.Background); err != nil {
			return err
		}
	}
	if err := errors.ValidateDimension("stroke_width", r.StrokeWidth); err != nil {
		return err
	}
	return errors.ValidateDimension("scale", r.Scale)
}

// Palette returns the parsed layer palette.
func (r Render) Palette() (render.Palette, error) {
	return render.ParsePalette(r.InnerColor, r.OuterColor)
}

// PaintOptions converts the render settings into sink options.
func (r Render) PaintOptions() ([]sink.PaintOption, error) {
	pal, err := r.Palette()
	if err != nil {
		return nil, err
	}
	return []sink.PaintOption{
		sink.WithStyle(r.Style),
		sink.WithPalette(pal),
		sink.WithBackground(r.Background),
		sink.WithStrokeWidth(r.StrokeWidth),
	}, nil
}

// Decode reads TOML from r on top of [Default] and validates the result.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads a settings file. A missing file yields [Default].
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open settings %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes s as TOML.
func (s Settings) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Save validates s and writes it to path, creating parent directories.
func (s Settings) Save(path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create settings dir")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write settings %s", path)
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/honeycomb/settings.toml, falling
// back to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "get home dir")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "honeycomb", FileName), nil
}
