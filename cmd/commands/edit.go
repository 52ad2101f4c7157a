package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pluqqy/tagfield/internal/cli"
	"github.com/pluqqy/tagfield/internal/logging"
	"github.com/pluqqy/tagfield/pkg/files"
	"github.com/pluqqy/tagfield/pkg/models"
	"github.com/pluqqy/tagfield/pkg/tags"
	"github.com/pluqqy/tagfield/pkg/tui"
)

// EditResult represents the output structure for an editing session
type EditResult struct {
	Saved bool     `json:"saved" yaml:"saved"`
	Tags  []string `json:"tags" yaml:"tags"`
	Added int      `json:"registered,omitempty" yaml:"registered,omitempty"`
}

var (
	editTitle string
	editTags  []string
	editWidth int
)

// NewEditCommand creates the edit command, which is also what the bare
// tagfield command runs
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit tags interactively",
		Long: `Open the tag field in the terminal.

The UI is drawn on stderr so the saved tags can be captured from stdout.
Saved tags are added to the registry when a workspace exists.

Examples:
  # Start from scratch
  tagfield edit

  # Edit an existing set and capture the result
  TAGS=$(tagfield edit --tags go,cli)`,
		Args: cobra.NoArgs,
		RunE: RunEdit,
	}

	AddEditFlags(cmd)
	return cmd
}

// AddEditFlags registers the editor flags on cmd
func AddEditFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&editTitle, "title", "TAGS", "Title shown above the field")
	cmd.Flags().StringSliceVar(&editTags, "tags", nil, "Tags to start with (overrides initial_tags in settings)")
	cmd.Flags().IntVar(&editWidth, "width", 0, "Field width (default: terminal width)")
}

// ErrNoTerminal is returned when the editor is started without a terminal
var ErrNoTerminal = errors.New("the editor needs a terminal; use 'tagfield parse' for piped input")

// RunEdit runs an interactive editing session
func RunEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNoTerminal
	}

	ctx := cli.NewCommandContext()
	settings := ctx.LoadSettingsWithDefault()
	hasWorkspace := ctx.ValidateWorkspace() == nil

	cfg, err := cli.ControllerConfig(settings)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if cmd.Flags().Changed("tags") {
		cfg.InitialTags = editTags
	}

	registry, err := tags.NewRegistry(files.ResolvePath(settings.Field.Registry))
	if err != nil {
		return err
	}

	logger := logging.Nop()
	if hasWorkspace {
		logger, err = openSessionLogger(settings)
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	field := tui.NewTagField(tui.TagFieldConfig{
		Title:       editTitle,
		Placeholder: settings.Field.Placeholder,
		Width:       editWidth,
		Controller:  cfg,
		Registry:    registry,
		Logger:      logger,
	}, tui.TagFieldCallbacks{
		OnTagsChanged: func(current []string) {
			logger.Debug().Strs("tags", current).Msg("tags changed")
		},
	})

	if _, err := tea.NewProgram(field, tea.WithOutput(os.Stderr)).Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	result := field.Result()
	if !result.Saved {
		fmt.Fprintln(cmd.ErrOrStderr(), "Canceled")
		return nil
	}

	out := EditResult{Saved: true, Tags: result.Tags}
	if hasWorkspace {
		out.Added, err = registry.Record(result.Tags)
		if err != nil {
			logger.Error().Err(err).Msg("failed to record tags")
			cli.PrintWarning("Tags were not added to the registry: %v", err)
		}
	}

	return outputEditResult(cmd, out)
}

func outputEditResult(cmd *cobra.Command, result EditResult) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(result.Tags, ","))
		return nil
	}
}

// openSessionLogger opens the workspace log file named in the settings
func openSessionLogger(settings *models.Settings) (*logging.Logger, error) {
	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}

	name := settings.Log.File
	if name == "" {
		name = models.DefaultSettings().Log.File
	}
	path := files.ResolvePath(filepath.Join(files.LogsDir, name))
	if filepath.IsAbs(name) {
		path = name
	}

	return logging.NewFile(path, level)
}
