package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagfield/internal/cli"
	"github.com/pluqqy/tagfield/pkg/files"
	"github.com/pluqqy/tagfield/pkg/models"
	"github.com/pluqqy/tagfield/pkg/tags"
)

// TagListResult represents the output structure for tags list
type TagListResult struct {
	Registry string       `json:"registry" yaml:"registry"`
	Tags     []models.Tag `json:"tags" yaml:"tags"`
	Count    int          `json:"count" yaml:"count"`
}

var (
	tagColor       string
	tagDescription string
)

// NewTagsCommand creates the tags command and its subcommands
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage the registry of known tags",
		Long: `Manage the tag registry used for suggestions and chip colors.

Tags saved from the editor are added to the registry automatically.

Examples:
  # List known tags
  tagfield tags list

  # Register a tag with a fixed color
  tagfield tags add backend --color "#3498db" --description "Server side work"

  # Forget a tag
  tagfield tags remove backend`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateWorkspace()
		},
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsAddCommand())
	cmd.AddCommand(newTagsRemoveCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openRegistry()
			if err != nil {
				return err
			}

			result := TagListResult{
				Registry: registry.Path(),
				Tags:     registry.ListTags(),
			}
			result.Count = len(result.Tags)

			outputFormat, _ := cmd.Flags().GetString("output")
			switch outputFormat {
			case "json", "yaml":
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
			default:
				return outputTagsText(cmd, result)
			}
		},
	}
}

func outputTagsText(cmd *cobra.Command, result TagListResult) error {
	out := cmd.OutOrStdout()
	if result.Count == 0 {
		fmt.Fprintln(out, "No tags registered")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("NAME", "COLOR", "DESCRIPTION")
	for _, tag := range result.Tags {
		color := models.GetTagColor(tag.Name, tag.Color)
		table.Row(
			cli.ColorizeTag(tag.Name, color),
			color,
			cli.TruncateString(tag.Description, 50),
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d tag%s\n", result.Count, plural(result.Count))
	return nil
}

func newTagsAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or update a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openRegistry()
			if err != nil {
				return err
			}

			tag := models.Tag{
				Name:        args[0],
				Color:       tagColor,
				Description: tagDescription,
			}
			if existing, ok := registry.GetTag(tag.Name); ok {
				if !cmd.Flags().Changed("color") {
					tag.Color = existing.Color
				}
				if !cmd.Flags().Changed("description") {
					tag.Description = existing.Description
				}
			}
			if tag.Color == "" {
				tag.Color = models.GetTagColor(tag.Name, "")
			}

			if err := registry.AddTag(tag); err != nil {
				return err
			}
			if err := registry.Save(); err != nil {
				return err
			}

			cli.PrintSuccess("Saved tag '%s'", tag.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&tagColor, "color", "", "Chip color as #rrggbb (default: derived from the name)")
	cmd.Flags().StringVar(&tagDescription, "description", "", "Short description")

	return cmd
}

func newTagsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a tag from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openRegistry()
			if err != nil {
				return err
			}

			ok, err := cli.Confirm(fmt.Sprintf("Remove tag '%s'?", args[0]), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Canceled")
				return nil
			}

			if err := registry.RemoveTag(args[0]); err != nil {
				return err
			}
			if err := registry.Save(); err != nil {
				return err
			}

			cli.PrintSuccess("Removed tag '%s'", args[0])
			return nil
		},
	}
}

// openRegistry loads the registry file named in the settings
func openRegistry() (*tags.Registry, error) {
	settings := cli.NewCommandContext().LoadSettingsWithDefault()
	return tags.NewRegistry(files.ResolvePath(settings.Field.Registry))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
