package preset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

func TestNew(t *testing.T) {
	p, err := New("  wide  ", settings.Default())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if p.Name != "wide" {
		t.Errorf("Name = %q, want trimmed", p.Name)
	}
	if p.ID == uuid.Nil {
		t.Error("ID should be set")
	}
	if p.CreatedAt.IsZero() || p.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want UTC timestamp", p.CreatedAt)
	}

	other, _ := New("wide", settings.Default())
	if other.ID == p.ID {
		t.Error("IDs should be unique")
	}
}

func TestNewInvalid(t *testing.T) {
	bad := settings.Default()
	bad.Grid.FrameWidth = 0

	tests := []struct {
		name     string
		preset   string
		settings settings.Settings
		code     errors.Code
	}{
		{"empty name", "   ", settings.Default(), errors.ErrCodeInvalidPreset},
		{"long name", strings.Repeat("x", 65), settings.Default(), errors.ErrCodeInvalidPreset},
		{"invalid settings", "ok", bad, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.preset, tt.settings)
			if !errors.Is(err, tt.code) {
				t.Errorf("New() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	testStore(t, s)
}

func TestFileStoreSkipsGarbage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	p, _ := New("kept", settings.Default())
	if err := s.Save(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	all, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 1 || all[0].Name != "kept" {
		t.Errorf("List() = %v, want only the valid preset", all)
	}
}

func TestFileStoreDefaultDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/data", "honeycomb", "presets"); dir != want {
		t.Errorf("DefaultDir() = %s, want %s", dir, want)
	}
}

// testStore runs the shared Store contract.
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	wide := settings.Default()
	wide.Viewport.Width = 1920

	a, _ := New("default", settings.Default())
	b, _ := New("wide", wide)
	b.CreatedAt = a.CreatedAt.Add(time.Second)

	for _, p := range []*Preset{b, a} {
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save(%s) error: %v", p.Name, err)
		}
	}

	got, err := s.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "wide" || got.Settings != wide || !got.CreatedAt.Equal(b.CreatedAt) {
		t.Errorf("Get() = %+v, want %+v", got, b)
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != b.ID {
		t.Errorf("List() order wrong: %v", all)
	}

	// Save replaces by ID.
	b.Name = "wider"
	if err := s.Save(ctx, b); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get(ctx, b.ID); got == nil || got.Name != "wider" {
		t.Errorf("Save did not replace: %+v", got)
	}

	byName, err := Resolve(ctx, s, "wider")
	if err != nil || byName.ID != b.ID {
		t.Errorf("Resolve(name) = %v, %v", byName, err)
	}
	byID, err := Resolve(ctx, s, a.ID.String())
	if err != nil || byID.Name != "default" {
		t.Errorf("Resolve(id) = %v, %v", byID, err)
	}
	if _, err := Resolve(ctx, s, "nope"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Resolve(unknown) error = %v, want PRESET_NOT_FOUND", err)
	}

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(ctx, a.ID); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get(deleted) error = %v, want PRESET_NOT_FOUND", err)
	}
	if err := s.Delete(ctx, a.ID); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Delete(deleted) error = %v, want PRESET_NOT_FOUND", err)
	}
}
