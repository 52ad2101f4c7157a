package cli

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// separatorNames lets flags and settings name separators a shell would mangle
var separatorNames = map[string]string{
	"space":     " ",
	"comma":     ",",
	"semicolon": ";",
	"tab":       "\t",
	"newline":   "\n",
	"pipe":      "|",
}

// ParseSeparators resolves separator names and escapes. Empty entries are
// dropped and duplicates keep their first position.
func ParseSeparators(values []string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, v := range values {
		if v == "" {
			continue
		}

		sep := v
		if named, ok := separatorNames[strings.ToLower(v)]; ok {
			sep = named
		} else {
			sep = strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\s`, " ").Replace(v)
		}

		if strings.ContainsRune(sep, '\r') {
			return nil, fmt.Errorf("invalid separator: %q", v)
		}
		if seen[sep] {
			continue
		}
		seen[sep] = true
		result = append(result, sep)
	}

	return result, nil
}

// DescribeSeparator returns a printable name for a separator
func DescribeSeparator(sep string) string {
	for name, value := range separatorNames {
		if value == sep && name != "comma" && name != "semicolon" && name != "pipe" {
			return name
		}
	}
	return fmt.Sprintf("%q", sep)
}

// CompilePattern compiles a tag pattern; an empty pattern disables the check
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
