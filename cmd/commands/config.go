package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagfield/internal/cli"
	"github.com/pluqqy/tagfield/pkg/files"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or check the tag field settings",
		Long: `Inspect the settings read from .tagfield/settings.yaml.

Examples:
  # Print the effective settings
  tagfield config show

  # Check that the settings file is valid
  tagfield config check`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := files.ReadSettings()
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			if outputFormat != "json" {
				outputFormat = "yaml"
			}
			return cli.OutputResults(cmd.OutOrStdout(), outputFormat, settings)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := files.ReadSettings()
			if err != nil {
				return err
			}

			cfg, err := cli.ControllerConfig(settings)
			if err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			names := make([]string, len(cfg.Separators))
			for i, sep := range cfg.Separators {
				names[i] = cli.DescribeSeparator(sep)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Separators:  %s\n", strings.Join(names, " "))
			fmt.Fprintf(out, "Letter case: %s\n", cfg.LetterCase)
			fmt.Fprintf(out, "Scroll:      %s, %s\n", cfg.Scroll.Direction, cfg.Scroll.Duration)
			cli.PrintSuccess("Settings are valid")
			return nil
		},
	})

	return cmd
}
