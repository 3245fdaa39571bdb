package pipeline

import (
	"fmt"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/geometry"
	"github.com/staircast/staircast/pkg/mesh"
	"github.com/staircast/staircast/pkg/render"
	"github.com/staircast/staircast/pkg/spec"
)

// Render generates output artifacts in the requested formats.
func Render(p *geometry.Profile, sp spec.Staircase, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	theme, err := render.ThemeByName(opts.Theme)
	if err != nil {
		return nil, err
	}

	// OBJ and STL share one extrusion
	var m *mesh.Mesh
	if opts.NeedsMesh() {
		if m, err = extrude(p, sp, opts); err != nil {
			return nil, err
		}
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.RenderSVG(p, svgOptions(theme, opts)...)
		case FormatPNG:
			data, err = render.RenderPNG(p, pngOptions(theme, opts)...)
		case FormatPDF:
			data, err = render.RenderPDF(p, svgOptions(theme, opts)...)
		case FormatJSON:
			data, err = render.RenderJSON(p, jsonOptions(opts)...)
		case FormatOBJ:
			data = m.OBJ()
		case FormatSTL:
			data = m.STL()
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

// extrude builds the solid mesh for OBJ/STL output. The extrusion
// width is the spec's width unless overridden.
func extrude(p *geometry.Profile, sp spec.Staircase, opts Options) (*mesh.Mesh, error) {
	width := sp.Width
	if opts.MeshWidth > 0 {
		width = opts.MeshWidth
	}
	m, err := mesh.Extrude(p.Polygon, width)
	if err != nil {
		return nil, fmt.Errorf("extrude profile: %w", err)
	}
	return m, nil
}

// svgOptions builds SVG rendering options; PDF shares them since it
// converts from SVG.
func svgOptions(theme render.Theme, opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{
		render.WithSize(opts.Width, opts.Height),
		render.WithTheme(theme),
		render.WithDimensions(opts.ShowDims()),
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, render.WithTitle(opts.Title))
	}
	return svgOpts
}

func pngOptions(theme render.Theme, opts Options) []render.PNGOption {
	pngOpts := []render.PNGOption{
		render.WithPNGSize(int(opts.Width), int(opts.Height)),
		render.WithPNGTheme(theme),
		render.WithPNGDimensions(opts.ShowDims()),
	}
	if opts.Title != "" {
		pngOpts = append(pngOpts, render.WithPNGTitle(opts.Title))
	}
	return pngOpts
}

func jsonOptions(opts Options) []render.JSONOption {
	jsonOpts := []render.JSONOption{
		render.WithJSONTheme(opts.Theme),
		render.WithJSONDimensions(opts.ShowDims()),
	}
	if opts.Title != "" {
		jsonOpts = append(jsonOpts, render.WithJSONTitle(opts.Title))
	}
	return jsonOpts
}
