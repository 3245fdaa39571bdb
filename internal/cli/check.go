package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/staircast/staircast/pkg/geometry"
	"github.com/staircast/staircast/pkg/spec"
)

// Comfort ranges for straight residential stairs, in centimetres and
// degrees. Values outside a range are flagged but never fail the check.
const (
	comfortRiserMin  = 15.0
	comfortRiserMax  = 19.0
	comfortTreadMin  = 23.0
	comfortTreadMax  = 30.0
	comfortStrideMin = 59.0 // 2R+T, Blondel's rule
	comfortStrideMax = 65.0
	comfortAngleMin  = 24.0
	comfortAngleMax  = 38.0
)

// checkCommand creates the check command for validating a spec and
// reporting its comfort numbers.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <spec-file>",
		Short: "Validate a spec and show its comfort numbers",
		Long: `Validate a spec and show its comfort numbers.

The check command parses and validates a spec file, then reports the
derived riser height, tread depth, stride length (2R+T, Blondel's rule),
and slope angle against comfortable ranges for straight residential
stairs. Out-of-range values are flagged but do not fail the check; the
command only errors when the spec itself is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0])
		},
	}
	return cmd
}

// comfortRow is one line of the check table.
type comfortRow struct {
	name    string
	value   string
	comfort string
	ok      bool
}

func (c *CLI) runCheck(input string) error {
	sp, err := spec.Load(input)
	if err != nil {
		return fmt.Errorf("load spec %s: %w", input, err)
	}

	profile, err := geometry.Compute(sp)
	if err != nil {
		return fmt.Errorf("compute geometry: %w", err)
	}

	printSuccess("Spec is valid")
	printDetail("%d steps, %d landings, %.0f cm rise over %.0f cm run",
		sp.NumSteps, len(sp.Landings), profile.TotalRise, profile.TotalRun)
	printNewline()

	riser := profile.RiserHeight
	tread := profile.StepDepth
	stride := 2*riser + tread
	angle := profile.Slope.Angle * 180 / math.Pi

	rows := []comfortRow{
		{
			name:    "Riser height",
			value:   fmt.Sprintf("%.1f cm", riser),
			comfort: fmt.Sprintf("%.0f–%.0f cm", comfortRiserMin, comfortRiserMax),
			ok:      riser >= comfortRiserMin && riser <= comfortRiserMax,
		},
		{
			name:    "Tread depth",
			value:   fmt.Sprintf("%.1f cm", tread),
			comfort: fmt.Sprintf("%.0f–%.0f cm", comfortTreadMin, comfortTreadMax),
			ok:      tread >= comfortTreadMin && tread <= comfortTreadMax,
		},
		{
			name:    "Stride (2R+T)",
			value:   fmt.Sprintf("%.1f cm", stride),
			comfort: fmt.Sprintf("%.0f–%.0f cm", comfortStrideMin, comfortStrideMax),
			ok:      stride >= comfortStrideMin && stride <= comfortStrideMax,
		},
		{
			name:    "Slope angle",
			value:   fmt.Sprintf("%.1f°", angle),
			comfort: fmt.Sprintf("%.0f–%.0f°", comfortAngleMin, comfortAngleMax),
			ok:      angle >= comfortAngleMin && angle <= comfortAngleMax,
		},
	}

	fmt.Println(comfortTable(rows))

	for _, row := range rows {
		if !row.ok {
			printWarning("%s is outside the comfortable range", row.name)
		}
	}
	return nil
}

// comfortTable renders the comfort rows as a bordered lipgloss table.
func comfortTable(rows []comfortRow) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		status := iconSuccess
		if !row.ok {
			status = iconWarning
		}
		cells[i] = []string{row.name, row.value, row.comfort, status}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Measure", "Value", "Comfortable", "").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 3 {
				if rows[row].ok {
					return lipgloss.NewStyle().Foreground(colorGreen)
				}
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			if col == 1 {
				return StyleNumber
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
