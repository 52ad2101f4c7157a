package tagfield

import (
	"fmt"
	"strings"
)

// LetterCase is the normalization applied to every candidate tag
type LetterCase int

const (
	LetterCaseUnchanged LetterCase = iota
	LetterCaseLower
	LetterCaseUpper
)

// Apply returns s converted to the letter case. Applying it twice yields the same result.
func (c LetterCase) Apply(s string) string {
	switch c {
	case LetterCaseLower:
		return strings.ToLower(s)
	case LetterCaseUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}

func (c LetterCase) String() string {
	switch c {
	case LetterCaseLower:
		return "lower"
	case LetterCaseUpper:
		return "upper"
	default:
		return "unchanged"
	}
}

// ParseLetterCase converts a settings or flag value to a LetterCase
func ParseLetterCase(s string) (LetterCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unchanged", "none":
		return LetterCaseUnchanged, nil
	case "lower", "lowercase":
		return LetterCaseLower, nil
	case "upper", "uppercase":
		return LetterCaseUpper, nil
	default:
		return LetterCaseUnchanged, fmt.Errorf("invalid letter case: %s (must be: unchanged, lower, or upper)", s)
	}
}
