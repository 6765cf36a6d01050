// Package preset stores named settings.
//
// A preset is a snapshot of [settings.Settings] under a name, created when
// the user applies settings they want to keep. Stores:
//   - [MemoryStore]: in-process storage for tests and single-instance servers
//   - [FileStore]: one JSON file per preset, used by the CLI
//   - [MongoStore]: a MongoDB collection shared by API servers
//
// # Usage
//
//	p, err := preset.New("wide", s)
//	if err != nil {
//	    return err
//	}
//	if err := store.Save(ctx, p); err != nil {
//	    return err
//	}
//	p, err = preset.Resolve(ctx, store, "wide")
package preset

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

// Preset is a named settings snapshot.
type Preset struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Settings  settings.Settings `json:"settings"`
	CreatedAt time.Time         `json:"created_at"`
}

// New validates name and s and returns a preset with a fresh ID.
func New(name string, s settings.Settings) (*Preset, error) {
	name = strings.TrimSpace(name)
	if err := errors.ValidatePresetName(name); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Preset{
		ID:        uuid.New(),
		Name:      name,
		Settings:  s,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}, nil
}

// Store persists presets.
type Store interface {
	// Save inserts p or replaces the preset with the same ID.
	Save(ctx context.Context, p *Preset) error

	// Get returns a PRESET_NOT_FOUND error for unknown IDs.
	Get(ctx context.Context, id uuid.UUID) (*Preset, error)

	// List returns all presets, oldest first.
	List(ctx context.Context) ([]*Preset, error)

	// Delete returns a PRESET_NOT_FOUND error for unknown IDs.
	Delete(ctx context.Context, id uuid.UUID) error

	Close() error
}

// Resolve finds a preset by ID or, failing that, by name. When several
// presets share a name the newest wins.
func Resolve(ctx context.Context, s Store, ref string) (*Preset, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.Get(ctx, id)
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Name == ref {
			return all[i], nil
		}
	}
	return nil, notFound(ref)
}

func notFound(ref any) error {
	return errors.New(errors.ErrCodePresetNotFound, "preset %v not found", ref)
}

// sortPresets orders presets by creation time, then name.
func sortPresets(ps []*Preset) {
	slices.SortStableFunc(ps, func(a, b *Preset) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
