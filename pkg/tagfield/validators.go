package tagfield

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pluqqy/tagfield/pkg/models"
)

// Validator inspects a normalized candidate tag. A nil result means the tag
// is accepted; otherwise the error message becomes the controller's error.
type Validator func(tag string) error

// AcceptAll is the default validator
func AcceptAll(string) error {
	return nil
}

// MinLength rejects tags shorter than n runes
func MinLength(n int) Validator {
	return func(tag string) error {
		if utf8.RuneCountInString(tag) < n {
			return fmt.Errorf("tag must be at least %d characters", n)
		}
		return nil
	}
}

// MaxLength rejects tags longer than n runes
func MaxLength(n int) Validator {
	return func(tag string) error {
		if utf8.RuneCountInString(tag) > n {
			return fmt.Errorf("tag cannot exceed %d characters", n)
		}
		return nil
	}
}

// MatchPattern rejects tags that do not match re
func MatchPattern(re *regexp.Regexp) Validator {
	return func(tag string) error {
		if !re.MatchString(tag) {
			return fmt.Errorf("tag '%s' does not match %s", tag, re.String())
		}
		return nil
	}
}

// Forbid rejects the listed words, compared case-insensitively
func Forbid(words ...string) Validator {
	blocked := make(map[string]bool, len(words))
	for _, w := range words {
		blocked[strings.ToLower(w)] = true
	}
	return func(tag string) error {
		if blocked[strings.ToLower(tag)] {
			return fmt.Errorf("tag '%s' is not allowed", tag)
		}
		return nil
	}
}

// Strict applies the project tag-name rules (length and character set)
func Strict() Validator {
	return models.ValidateTagName
}

// Chain runs validators in order and returns the first failure
func Chain(validators ...Validator) Validator {
	return func(tag string) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v(tag); err != nil {
				return err
			}
		}
		return nil
	}
}
