package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/tagfield/internal/cli"
	"github.com/pluqqy/tagfield/pkg/tagfield"
)

// ErrRejected is returned by parse --strict when the last candidate was rejected
var ErrRejected = errors.New("input ended with a rejected tag")

var (
	parseSeparators  []string
	parseCase        string
	parseMinLength   int
	parseMaxLength   int
	parsePattern     string
	parseStrictNames bool
	parseStrict      bool
)

// NewParseCommand creates the parse command
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Split text into tags without opening the editor",
		Long: `Type text into a tag field without a terminal UI and print the tags it produces.

The text is entered one character at a time, exactly as if typed, so a
separator commits the text before it. Whatever is still pending at the end
is submitted. Without arguments the text is read from stdin.

Settings from .tagfield/settings.yaml are used when present; flags override them.

Examples:
  # Split on commas and spaces (the defaults)
  tagfield parse "go,cli tools"

  # Lowercase everything and only accept short tags
  tagfield parse --case lower --max-length 10 "Go,Kubernetes"

  # Read from stdin and print JSON
  echo "a;b;c" | tagfield parse --separators semicolon -o json

  # Fail when the last tag was rejected
  tagfield parse --strict --pattern '^[a-z]+$' "ok,NOPE"`,
		RunE: runParse,
	}

	cmd.Flags().StringSliceVar(&parseSeparators, "separators", nil, "Separators that commit a tag (names: comma, space, semicolon, tab, pipe)")
	cmd.Flags().StringVar(&parseCase, "case", "", "Letter case applied to tags: unchanged, lower, or upper")
	cmd.Flags().IntVar(&parseMinLength, "min-length", 0, "Reject tags shorter than this")
	cmd.Flags().IntVar(&parseMaxLength, "max-length", 0, "Reject tags longer than this")
	cmd.Flags().StringVar(&parsePattern, "pattern", "", "Regular expression every tag must match")
	cmd.Flags().BoolVar(&parseStrictNames, "strict-names", false, "Only allow letters, digits, spaces, '-' and '/'")
	cmd.Flags().BoolVar(&parseStrict, "strict", false, "Exit with an error when input ends with a rejected tag")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "" {
		outputFormat = string(cli.FormatText)
	}
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	cfg, err := parseConfig(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	result := cli.ParseText(cfg, text)
	if err := cli.PrintParseResult(cmd.OutOrStdout(), outputFormat, result); err != nil {
		return err
	}

	if parseStrict && result.State == tagfield.StateErroring.String() {
		return fmt.Errorf("%w: %s", ErrRejected, result.Error)
	}
	return nil
}

// parseConfig starts from the settings file and applies the flags that were set
func parseConfig(cmd *cobra.Command) (tagfield.Config, error) {
	settings := *cli.NewCommandContext().LoadSettingsWithDefault()
	flags := cmd.Flags()

	if flags.Changed("separators") {
		settings.Field.Separators = parseSeparators
	}
	if flags.Changed("case") {
		settings.Field.LetterCase = parseCase
	}
	if flags.Changed("min-length") {
		settings.Validation.MinLength = parseMinLength
	}
	if flags.Changed("max-length") {
		settings.Validation.MaxLength = parseMaxLength
	}
	if flags.Changed("pattern") {
		settings.Validation.Pattern = parsePattern
	}
	if flags.Changed("strict-names") {
		settings.Validation.StrictNames = parseStrictNames
	}

	// Initial tags belong to the interactive field
	settings.Field.InitialTags = nil

	return cli.ControllerConfig(&settings)
}
