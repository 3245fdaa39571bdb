package pipeline

import (
	"testing"

	"github.com/staircast/staircast/pkg/spec"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"obj", false},
		{"stl", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForResolve(t *testing.T) {
	// Missing both path and inline spec
	opts := Options{}
	if err := opts.ValidateForResolve(); err == nil {
		t.Error("Missing spec source should fail")
	}

	// Path alone is enough
	opts = Options{SpecPath: "stairs.toml"}
	if err := opts.ValidateForResolve(); err != nil {
		t.Errorf("Path-only options should pass: %v", err)
	}

	// Inline spec alone is enough
	s := spec.Default()
	opts = Options{Spec: &s}
	if err := opts.ValidateForResolve(); err != nil {
		t.Errorf("Inline spec options should pass: %v", err)
	}

	// Logger gets defaulted
	if opts.Logger == nil {
		t.Error("Logger should be defaulted")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme should be %s, got %s", DefaultTheme, opts.Theme)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width should be %f, got %f", DefaultWidth, opts.Width)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height should be %f, got %f", DefaultHeight, opts.Height)
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	opts := Options{Formats: []string{"svg", "json"}}
	if err := opts.ValidateForRender(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}

	opts = Options{Formats: []string{"docx"}}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("Invalid format should fail")
	}

	opts = Options{Theme: "neon"}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("Unknown theme should fail")
	}
}

func TestOptionsShowDims(t *testing.T) {
	opts := Options{}
	if !opts.ShowDims() {
		t.Error("Default should show dimensions")
	}

	opts.NoDimensions = true
	if opts.ShowDims() {
		t.Error("NoDimensions=true should not show dimensions")
	}
}

func TestOptionsNeedsMesh(t *testing.T) {
	opts := Options{Formats: []string{"svg", "png"}}
	if opts.NeedsMesh() {
		t.Error("2D formats should not need a mesh")
	}

	opts.Formats = []string{"svg", "stl"}
	if !opts.NeedsMesh() {
		t.Error("stl should need a mesh")
	}

	opts.Formats = []string{"obj"}
	if !opts.NeedsMesh() {
		t.Error("obj should need a mesh")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	s := spec.Default()
	opts := Options{Spec: &s}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalTheme := opts.Theme
	originalWidth := opts.Width
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Theme != originalTheme {
		t.Error("Theme changed on second call")
	}
	if opts.Width != originalWidth {
		t.Error("Width changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestOptionsArtifactKeyOpts(t *testing.T) {
	opts := Options{
		Theme:  "blueprint",
		Width:  640,
		Height: 480,
		Title:  "loft stairs",
	}

	key := opts.ArtifactKeyOpts("png")
	if key.Format != "png" {
		t.Errorf("Format should be png, got %s", key.Format)
	}
	if key.Theme != "blueprint" {
		t.Errorf("Theme should be blueprint, got %s", key.Theme)
	}
	if !key.ShowDims {
		t.Error("ShowDims should default to true")
	}
	if key.Title != "loft stairs" {
		t.Errorf("Title should carry through, got %s", key.Title)
	}
}
