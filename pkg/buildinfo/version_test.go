package buildinfo

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-01T00:00:00Z"

	got := Current()
	if got.Version != "v1.2.3" || got.Commit != "abc123" || got.Date != "2026-01-01T00:00:00Z" {
		t.Errorf("Current() = %+v", got)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
