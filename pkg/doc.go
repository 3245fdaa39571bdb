// Package pkg provides the core libraries for Staircast staircase drawings.
//
// # Overview
//
// Staircast turns a small staircase specification into dimensioned 2D
// drawings and 3D meshes. The pkg directory is organized into three main
// areas:
//
//  1. [spec], [geometry], [mesh] - Domain logic (specs, profiles, solids)
//  2. [render] - Visualization (drawing sinks and themes)
//  3. [pipeline], [cache], [library] - Infrastructure (orchestration, storage)
//
// # Architecture
//
// The typical data flow through Staircast:
//
//	TOML/JSON spec file
//	         ↓
//	    [spec] package (load, validate, normalize)
//	         ↓
//	    [geometry] package (side profile + dimension lines)
//	         ↓
//	    [render] package (SVG/PNG/PDF/JSON)
//	    [mesh] package (OBJ/STL)
//	         ↓
//	    drawing and mesh artifacts
//
// # Quick Start
//
// Load a spec, compute its profile, and render a drawing:
//
//	import (
//	    "github.com/staircast/staircast/pkg/geometry"
//	    "github.com/staircast/staircast/pkg/mesh"
//	    "github.com/staircast/staircast/pkg/render"
//	    "github.com/staircast/staircast/pkg/spec"
//	)
//
//	// 1. Load and validate a spec
//	sp, _ := spec.Load("stairs.toml")
//
//	// 2. Compute the side profile
//	p, _ := geometry.Compute(sp)
//
//	// 3. Render to SVG
//	svg := render.RenderSVG(p, render.WithTheme(render.Blueprint{}))
//
//	// 4. Extrude into a mesh and export STL
//	m, _ := mesh.Extrude(p.Polygon, sp.Width)
//	stl := m.STL()
//
// # Main Packages
//
// ## Core Domain Logic
//
// [spec] - Staircase specifications in TOML or JSON. Strict parsing (unknown
// keys are rejected), validation with coded errors, and normalization of
// landings and defaults.
//
// [geometry] - Side-profile computation: the closed step polygon, soffit
// line, slope, and dimension annotations (riser, tread, total rise, total
// run).
//
// [mesh] - Solid geometry: ear-clipping triangulation, prism extrusion along
// the staircase width, and OBJ/binary STL export.
//
// ## Visualization
//
// [render] - Drawing sinks for the four drawing formats: SVG markup, PNG
// rasters, PDF conversion, and a JSON profile dump. Themes (simple,
// blueprint) control colors, grid, and typography.
//
// [fonts] - Embedded typefaces for raster dimension labels.
//
// ## Infrastructure
//
// [pipeline] - The resolve → compute → render pipeline shared by the CLI and
// the HTTP server. Stages are cached content-addressed, so repeated renders
// of the same spec are cheap.
//
// [cache] - Cache interface with file, Redis, and null backends, plus key
// derivation for spec, geometry, and artifact entries.
//
// [library] - Named design storage. FileStore keeps designs under the user
// config directory; MongoStore backs shared deployments.
//
// [errors] - Coded errors checked with errors.Is and rendered to users via
// UserMessage.
//
// [observability] - Structured logging setup shared by the CLI and server.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/geometry/...      # Specific package
//	go test -run Example            # Examples only
//
// [spec]: https://pkg.go.dev/github.com/staircast/staircast/pkg/spec
// [geometry]: https://pkg.go.dev/github.com/staircast/staircast/pkg/geometry
// [mesh]: https://pkg.go.dev/github.com/staircast/staircast/pkg/mesh
// [render]: https://pkg.go.dev/github.com/staircast/staircast/pkg/render
// [fonts]: https://pkg.go.dev/github.com/staircast/staircast/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/staircast/staircast/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/staircast/staircast/pkg/cache
// [library]: https://pkg.go.dev/github.com/staircast/staircast/pkg/library
// [errors]: https://pkg.go.dev/github.com/staircast/staircast/pkg/errors
// [observability]: https://pkg.go.dev/github.com/staircast/staircast/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/staircast/staircast/pkg/buildinfo
package pkg
