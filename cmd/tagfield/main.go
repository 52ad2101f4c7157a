package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagfield/cmd/commands"
	"github.com/pluqqy/tagfield/internal/cli"
	"github.com/pluqqy/tagfield/pkg/files"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quiet   bool
	noColor bool
	yes     bool
	output  string
)

var rootCmd = &cobra.Command{
	Use:   "tagfield",
	Short: "Terminal tag input field",
	Long: `Tagfield is a terminal tag input. Type tags separated by commas or spaces,
review them as colored chips, and save the result to stdout.

Run without a command to open the editor.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          commands.RunEdit,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a tagfield workspace",
	Long:  `Creates the .tagfield folder with default settings in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing tagfield workspace in %s...", cwd)

		if err := files.InitWorkspace(); err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}

		cli.PrintSuccess("Created %s", files.WorkspaceDir)
		cli.PrintInfo("Edit %s to change separators and validation", files.SettingsPath())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tagfield",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tagfield version %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(func() {
		cli.SetGlobalFlags(quiet, noColor, yes)
	})

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text, json, or yaml")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompts")
	commands.AddEditFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
