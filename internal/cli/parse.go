package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pluqqy/tagfield/pkg/tagfield"
)

// ParseResult represents the output structure for the parse command
type ParseResult struct {
	Tags     []string `json:"tags" yaml:"tags"`
	Count    int      `json:"count" yaml:"count"`
	State    string   `json:"state" yaml:"state"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	Rejected []Rejection `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// Rejection is a candidate the validator refused
type Rejection struct {
	Tag   string `json:"tag" yaml:"tag"`
	Error string `json:"error" yaml:"error"`
}

// typedBuffer stands in for a text input when parsing without a terminal
type typedBuffer struct {
	strings.Builder
}

func (b *typedBuffer) Reset() {
	b.Builder.Reset()
}

// ParseText types text into a fresh controller one rune at a time, the way
// a user would, and submits whatever is left pending at the end.
func ParseText(cfg tagfield.Config, text string) ParseResult {
	buf := &typedBuffer{}
	cfg.Buffer = buf
	cfg.Focus = nil

	validate := cfg.Validator
	if validate == nil {
		validate = tagfield.AcceptAll
	}
	var candidate string
	cfg.Validator = func(tag string) error {
		candidate = tag
		return validate(tag)
	}

	ctrl := tagfield.New(cfg)
	defer ctrl.Dispose()

	// Listeners only fire after a commit here, so an error means candidate was refused
	var rejected []Rejection
	ctrl.AddListener(func() {
		if ctrl.HasError() {
			rejected = append(rejected, Rejection{Tag: candidate, Error: ctrl.ErrorMessage()})
		}
	})

	for _, r := range text {
		buf.WriteRune(r)
		ctrl.HandleTextChanged(buf.String())
	}
	ctrl.HandleSubmitted(buf.String())

	tags := ctrl.Tags()
	return ParseResult{
		Tags:     tags,
		Count:    len(tags),
		State:    ctrl.State().String(),
		Error:    ctrl.ErrorMessage(),
		Rejected: rejected,
	}
}

// PrintParseResult writes a parse result in the requested format
func PrintParseResult(w io.Writer, format string, result ParseResult) error {
	if OutputFormat(format) != FormatText {
		return OutputResults(w, format, result)
	}

	if result.Count == 0 {
		fmt.Fprintln(w, "No tags")
	} else {
		table := NewTableFormatter(w)
		table.Header("#", "TAG")
		for i, tag := range result.Tags {
			table.Row(fmt.Sprintf("%d", i+1), tag)
		}
		if err := table.Flush(); err != nil {
			return err
		}
	}

	for _, r := range result.Rejected {
		fmt.Fprintf(w, "rejected: %s (%s)\n", r.Tag, r.Error)
	}
	return nil
}
