package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/spec"
)

// editCommand creates the edit command for interactively editing a spec.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <spec-file>",
		Short: "Edit a spec interactively",
		Long: `Edit a spec interactively.

The editor lists the spec fields on the left and a live-recomputed
numbers panel on the right. Navigate with the arrow keys, nudge the
selected value with +/-, add a landing with 'a', delete one with 'd',
and save with 's'. A missing file starts from the default staircase.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(args[0])
		},
	}
}

func (c *CLI) runEdit(path string) error {
	sp, err := spec.Load(path)
	if err != nil {
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			return fmt.Errorf("load spec %s: %w", path, err)
		}
		sp = spec.Default()
		printInfo("Starting from the default staircase")
	}

	p := tea.NewProgram(NewEditorModel(path, sp))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	fm, ok := finalModel.(EditorModel)
	if !ok {
		return nil
	}
	if fm.Saved {
		printSuccess("Saved %s", path)
	} else if fm.Dirty {
		printWarning("Discarded unsaved changes")
	}
	return nil
}
