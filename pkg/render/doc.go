// Package render turns computed staircase profiles into drawings.
//
// # Sinks
//
// [RenderSVG] is the primary sink: a standalone SVG document with the
// silhouette, dimension lines, and an optional title block. [RenderPNG]
// rasterizes the same drawing natively via fogleman/gg with the
// embedded Go typeface, so no external tools are needed. [RenderPDF]
// pipes the SVG through the external rsvg-convert tool when it is
// installed. [RenderJSON] serializes the profile for programmatic
// consumers.
//
// # Themes
//
// Visual appearance lives behind the [Theme] interface. [Simple] is a
// printed shop drawing on white; [Blueprint] is white linework on
// blueprint blue with a drafting grid. Both sinks consume the same
// theme.
//
//	svg := render.RenderSVG(profile, render.WithTheme(render.Blueprint{}))
//	png, err := render.RenderPNG(profile, render.WithPNGScale(2))
//
// Dimension lines are colored per measurement tag. The width line runs
// along the extrusion axis and appears in profile views as a dashed
// depth cue.
package render
