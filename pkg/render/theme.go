package render

import (
	"strings"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/fonts"
	"github.com/staircast/staircast/pkg/geometry"
)

// Theme defines the visual appearance of a rendered profile.
// Implementations supply colors as #rrggbb strings consumed by both
// the SVG and the raster sinks.
type Theme interface {
	// Name identifies the theme in CLI flags and JSON output.
	Name() string
	// Background is the canvas fill.
	Background() string
	// Grid returns the spacing in viewport pixels and the line color.
	// Zero spacing disables the grid.
	Grid() (spacing float64, color string)
	// ProfileFill is the silhouette interior fill.
	ProfileFill() string
	// ProfileStroke is the silhouette outline color and width.
	ProfileStroke() (color string, width float64)
	// DimensionColor maps a dimension tag to its line and label color.
	DimensionColor(tag geometry.Tag) string
	// TextColor is the color for the title block.
	TextColor() string
	// FontFamily is the CSS font stack for vector text.
	FontFamily() string
}

// Simple is the default theme: dark outline and muted dimension colors
// on white, in the manner of a printed shop drawing.
type Simple struct{}

func (Simple) Name() string                          { return "simple" }
func (Simple) Background() string                    { return "#ffffff" }
func (Simple) Grid() (float64, string)               { return 0, "" }
func (Simple) ProfileFill() string                   { return "#e5e7eb" }
func (Simple) ProfileStroke() (string, float64)      { return "#1f2937", 2 }
func (Simple) TextColor() string                     { return "#111827" }
func (Simple) FontFamily() string                    { return fonts.FontFamily }
func (Simple) DimensionColor(tag geometry.Tag) string {
	switch tag {
	case geometry.TagHeight:
		return "#dc2626"
	case geometry.TagRun:
		return "#2563eb"
	case geometry.TagWidth:
		return "#9333ea"
	case geometry.TagRiser, geometry.TagTread:
		return "#059669"
	case geometry.TagSlab:
		return "#d97706"
	case geometry.TagLanding:
		return "#0891b2"
	default:
		return "#6b7280"
	}
}

// Blueprint renders white linework on blueprint blue with a drafting
// grid.
type Blueprint struct{}

func (Blueprint) Name() string                     { return "blueprint" }
func (Blueprint) Background() string               { return "#1e3a8a" }
func (Blueprint) Grid() (float64, string)          { return 25, "#2b4ba0" }
func (Blueprint) ProfileFill() string              { return "#27459c" }
func (Blueprint) ProfileStroke() (string, float64) { return "#ffffff", 2 }
func (Blueprint) TextColor() string                { return "#eff6ff" }
func (Blueprint) FontFamily() string               { return fonts.FontFamily }
func (Blueprint) DimensionColor(tag geometry.Tag) string {
	if tag == geometry.TagSlab {
		return "#fbbf24"
	}
	return "#bfdbfe"
}

// Themes lists the available theme names.
func Themes() []string {
	return []string{Simple{}.Name(), Blueprint{}.Name()}
}

// ThemeByName resolves a theme name, case-insensitively. An empty name
// selects the default.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "simple":
		return Simple{}, nil
	case "blueprint":
		return Blueprint{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidTheme,
			"unknown theme %q (available: %s)", name, strings.Join(Themes(), ", "))
	}
}
