package render

import (
	"testing"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
)

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "simple"},
		{"simple", "simple"},
		{"Simple", "simple"},
		{"blueprint", "blueprint"},
		{"BLUEPRINT", "blueprint"},
	}

	for _, tt := range tests {
		th, err := ThemeByName(tt.name)
		if err != nil {
			t.Fatalf("ThemeByName(%q) error = %v", tt.name, err)
		}
		if th.Name() != tt.want {
			t.Errorf("ThemeByName(%q).Name() = %q, want %q", tt.name, th.Name(), tt.want)
		}
	}
}

func TestThemeByNameUnknown(t *testing.T) {
	_, err := ThemeByName("neon")
	if err == nil {
		t.Fatal("ThemeByName(neon) error = nil, want invalid theme error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidTheme {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidTheme)
	}
}

func TestThemes(t *testing.T) {
	names := Themes()
	if len(names) != 2 {
		t.Fatalf("len(Themes()) = %d, want 2", len(names))
	}
	for _, name := range names {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q) error = %v", name, err)
		}
	}
}

func TestSimpleDimensionColorsDistinct(t *testing.T) {
	th := Simple{}
	tags := []geometry.Tag{geometry.TagHeight, geometry.TagRun, geometry.TagWidth}
	seen := map[string]geometry.Tag{}
	for _, tag := range tags {
		c := th.DimensionColor(tag)
		if prev, dup := seen[c]; dup {
			t.Errorf("DimensionColor(%s) = DimensionColor(%s) = %s", tag, prev, c)
		}
		seen[c] = tag
	}
}

func TestBlueprintHasGrid(t *testing.T) {
	spacing, color := Blueprint{}.Grid()
	if spacing <= 0 {
		t.Errorf("Blueprint grid spacing = %v, want > 0", spacing)
	}
	if color == "" {
		t.Error("Blueprint grid color is empty")
	}
	if spacing, _ := (Simple{}).Grid(); spacing != 0 {
		t.Errorf("Simple grid spacing = %v, want 0", spacing)
	}
}
