package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staircast/staircast/pkg/pipeline"
)

// renderCommand creates the render command for generating artifacts from a spec.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{
		Theme:  pipeline.DefaultTheme,
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render <spec-file>",
		Short: "Render a staircase spec to drawings and meshes",
		Long: `Render a staircase spec to drawings and meshes.

The render command runs the full pipeline: it resolves the spec, computes
the cut-section geometry, and renders the requested formats. SVG, PNG, and
PDF are dimensioned section drawings; JSON is the raw profile with styling
hints; OBJ and STL are printable meshes extruded to the staircase width.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-read the spec even if cached")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, obj, stl (comma-separated)")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "visual theme: simple (default), blueprint")
	cmd.Flags().BoolVar(&opts.NoDimensions, "no-dimensions", false, "omit dimension annotations")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "frame width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "frame height")
	cmd.Flags().StringVar(&opts.Title, "title", "", "title drawn above the section")
	cmd.Flags().Float64Var(&opts.MeshWidth, "mesh-width", 0, "extrusion width for obj/stl (defaults to the spec width)")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SpecPath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering staircase...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
