package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/library"
	"github.com/staircast/staircast/pkg/pipeline"
	"github.com/staircast/staircast/pkg/spec"
)

// libraryCommand creates the library command group for managing saved designs.
func (c *CLI) libraryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Manage saved staircase designs",
		Long: `Manage saved staircase designs.

Designs live in a local file store under the XDG config directory by
default. Set STAIRCAST_MONGO_URI to use a MongoDB collection instead, or
STAIRCAST_LIBRARY_DIR to move the file store. Designs are addressed by
their full ID, a unique ID prefix, or their exact name.`,
	}

	cmd.AddCommand(c.libraryListCommand())
	cmd.AddCommand(c.librarySaveCommand())
	cmd.AddCommand(c.libraryShowCommand())
	cmd.AddCommand(c.libraryDeleteCommand())
	cmd.AddCommand(c.libraryRenderCommand())

	return cmd
}

// =============================================================================
// Subcommands
// =============================================================================

func (c *CLI) libraryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved designs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newStore(ctx)
			if err != nil {
				return fmt.Errorf("open design store: %w", err)
			}
			defer store.Close()

			designs, err := store.List(ctx)
			if err != nil {
				return fmt.Errorf("list designs: %w", err)
			}
			if len(designs) == 0 {
				printInfo("No designs saved yet")
				printNextStep("Save one", "staircast library save stairs.toml --name \"My stairs\"")
				return nil
			}

			fmt.Println(designTable(designs))
			return nil
		},
	}
}

func (c *CLI) librarySaveCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "save <spec-file>",
		Short: "Save a spec file as a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sp, err := spec.Load(args[0])
			if err != nil {
				return fmt.Errorf("load spec %s: %w", args[0], err)
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			d, err := library.New(name, description, sp)
			if err != nil {
				return err
			}

			store, err := c.newStore(ctx)
			if err != nil {
				return fmt.Errorf("open design store: %w", err)
			}
			defer store.Close()

			if err := store.Put(ctx, d); err != nil {
				return fmt.Errorf("save design: %w", err)
			}

			printSuccess("Saved %q", d.Name)
			printDetail("id %s", d.ID)
			printNextStep("Render it", "staircast library render "+shortID(d.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "design name (defaults to the file name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "design description")

	return cmd
}

func (c *CLI) libraryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a design and its spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newStore(ctx)
			if err != nil {
				return fmt.Errorf("open design store: %w", err)
			}
			defer store.Close()

			d, err := c.findDesign(ctx, store, args[0])
			if err != nil {
				return err
			}

			printKeyValue("ID", d.ID)
			printKeyValue("Name", d.Name)
			if d.Description != "" {
				printKeyValue("Description", d.Description)
			}
			printKeyValue("Created", d.CreatedAt.Format("Jan 2, 2006 15:04"))
			printKeyValue("Updated", formatRelativeTime(d.UpdatedAt))
			printNewline()

			data, err := spec.Encode(d.Spec, "")
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

func (c *CLI) libraryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newStore(ctx)
			if err != nil {
				return fmt.Errorf("open design store: %w", err)
			}
			defer store.Close()

			d, err := c.findDesign(ctx, store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(ctx, d.ID); err != nil {
				return fmt.Errorf("delete design: %w", err)
			}

			printSuccess("Deleted %q", d.Name)
			return nil
		},
	}
}

func (c *CLI) libraryRenderCommand() *cobra.Command {
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
		Use:   "render <id>",
		Short: "Render a saved design",
		Long: `Render a saved design.

Works like 'staircast render' but takes a design from the library instead
of a spec file. Output files are named after the design unless -o is set,
and the design name becomes the drawing title.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runLibraryRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, obj, stl (comma-separated)")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "visual theme: simple (default), blueprint")

	return cmd
}

func (c *CLI) runLibraryRender(ctx context.Context, id string, opts pipeline.Options, output string, noCache bool) error {
	store, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open design store: %w", err)
	}
	defer store.Close()

	d, err := c.findDesign(ctx, store, id)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Spec = &d.Spec
	opts.Title = d.Name
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("render design %s: %w", shortID(d.ID), err)
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(result.Artifacts)))

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     designBasePath(d.Name),
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// findDesign resolves ref as an exact design ID, a unique ID prefix, or
// an exact design name.
func (c *CLI) findDesign(ctx context.Context, store library.Store, ref string) (*library.Design, error) {
	d, err := store.Get(ctx, ref)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, errors.ErrCodeDesignNotFound) {
		return nil, err
	}

	designs, listErr := store.List(ctx)
	if listErr != nil {
		return nil, listErr
	}

	var matches []*library.Design
	for _, cand := range designs {
		if strings.HasPrefix(cand.ID, ref) || cand.Name == ref {
			matches = append(matches, cand)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, err
	default:
		return nil, errors.New(errors.ErrCodeDesignNotFound,
			"%q matches %d designs, use a longer id", ref, len(matches))
	}
}

// shortID returns the first group of a UUID, enough to address designs
// in a local library.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// designBasePath turns a design name into a safe output file base.
func designBasePath(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "design"
	}
	return b.String()
}

// designTable renders the design list as a bordered lipgloss table.
func designTable(designs []*library.Design) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(designs))
	for i, d := range designs {
		rows[i] = []string{
			shortID(d.ID),
			d.Name,
			fmt.Sprintf("%d", d.Spec.NumSteps),
			fmt.Sprintf("%d", len(d.Spec.Landings)),
			formatRelativeTime(d.UpdatedAt),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Steps", "Landings", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0, 4:
				return lipgloss.NewStyle().Foreground(colorDim)
			case 1:
				return lipgloss.NewStyle().Foreground(colorWhite)
			default:
				return StyleNumber
			}
		}).
		Render()
}

// formatRelativeTime renders t as a short age for table display.
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
