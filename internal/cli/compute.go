package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staircast/staircast/pkg/pipeline"
)

// computeCommand creates the compute command for resolving a spec into geometry.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "compute <spec-file>",
		Short: "Compute staircase geometry from a spec",
		Long: `Compute staircase geometry from a spec.

The compute command resolves a spec file (TOML or JSON), runs the geometry
engine, and writes the resulting profile as JSON. The profile contains the
section polygon, per-step outlines, derived measures such as riser height
and slope, and dimension annotations.

Results are cached locally for faster subsequent runs.

Use 'render' to go directly from a spec to drawings and meshes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd.Context(), args[0], output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-read the spec even if cached")

	return cmd
}

// runCompute resolves the spec, computes the profile, and writes it as JSON.
func (c *CLI) runCompute(ctx context.Context, input, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{SpecPath: input, Refresh: refresh, Logger: c.Logger}

	spinner := newSpinnerWithContext(ctx, "Computing geometry...")
	spinner.Start()

	sp, _, err := runner.ResolveWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Spec resolution failed")
		return fmt.Errorf("resolve %s: %w", input, err)
	}

	profile, _, geoHit, err := runner.ComputeWithCacheInfo(ctx, sp)
	if err != nil {
		spinner.StopWithError("Geometry computation failed")
		return fmt.Errorf("compute: %w", err)
	}
	spinner.Stop()

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(append(data, '\n')); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Computed profile")
		printFile(output)
		printStats(sp.NumSteps, len(profile.Polygon), geoHit)
	}
	return nil
}
