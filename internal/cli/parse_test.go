package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagfield/pkg/tagfield"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name      string
		cfg       tagfield.Config
		text      string
		wantTags  []string
		wantState string
		wantError string
	}{
		{
			name:      "nothing typed",
			cfg:       tagfield.Config{Separators: []string{","}},
			text:      "",
			wantTags:  nil,
			wantState: "clean",
		},
		{
			name:      "comma separated",
			cfg:       tagfield.Config{Separators: []string{","}},
			text:      "go,rust, zig",
			wantTags:  []string{"go", "rust", "zig"},
			wantState: "clean",
		},
		{
			name:      "space and comma",
			cfg:       tagfield.Config{Separators: []string{",", " "}},
			text:      "one two,three",
			wantTags:  []string{"one", "two", "three"},
			wantState: "clean",
		},
		{
			name:      "leading separators never commit",
			cfg:       tagfield.Config{Separators: []string{" "}},
			text:      "   a",
			wantTags:  []string{"a"},
			wantState: "clean",
		},
		{
			name:      "letter case applied",
			cfg:       tagfield.Config{Separators: []string{" "}, LetterCase: tagfield.LetterCaseLower},
			text:      "Go RUST",
			wantTags:  []string{"go", "rust"},
			wantState: "clean",
		},
		{
			name:      "last rejection is kept",
			cfg:       tagfield.Config{Separators: []string{","}, Validator: tagfield.MinLength(3)},
			text:      "abc,de",
			wantTags:  []string{"abc"},
			wantState: "erroring",
			wantError: "tag must be at least 3 characters",
		},
		{
			name:      "initial tags kept",
			cfg:       tagfield.Config{InitialTags: []string{"x"}, Separators: []string{","}},
			text:      "y",
			wantTags:  []string{"x", "y"},
			wantState: "clean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseText(tt.cfg, tt.text)

			if tt.wantTags == nil {
				assert.Empty(t, result.Tags)
			} else {
				assert.Equal(t, tt.wantTags, result.Tags)
			}
			assert.Equal(t, len(result.Tags), result.Count)
			assert.Equal(t, tt.wantState, result.State)
			assert.Equal(t, tt.wantError, result.Error)
		})
	}
}

func TestParseText_CollectsRejections(t *testing.T) {
	cfg := tagfield.Config{
		Separators: []string{","},
		Validator:  tagfield.Forbid("todo"),
	}

	result := ParseText(cfg, "todo,ok,TODO")

	assert.Equal(t, []string{"ok"}, result.Tags)
	assert.Equal(t, []Rejection{
		{Tag: "todo", Error: "tag 'todo' is not allowed"},
		{Tag: "TODO", Error: "tag 'TODO' is not allowed"},
	}, result.Rejected)
	assert.Equal(t, "erroring", result.State)
}

func TestPrintParseResult(t *testing.T) {
	result := ParseResult{
		Tags:     []string{"go", "cli"},
		Count:    2,
		State:    "erroring",
		Error:    "tag 'x' is not allowed",
		Rejected: []Rejection{{Tag: "x", Error: "tag 'x' is not allowed"}},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintParseResult(&buf, "text", result))

		out := buf.String()
		assert.Contains(t, out, "TAG")
		assert.Contains(t, out, "1  go")
		assert.Contains(t, out, "2  cli")
		assert.Contains(t, out, "rejected: x (tag 'x' is not allowed)")
	})

	t.Run("text without tags", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintParseResult(&buf, "text", ParseResult{State: "clean"}))
		assert.Equal(t, "No tags\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintParseResult(&buf, "json", result))

		var decoded ParseResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, result, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintParseResult(&buf, "yaml", result))

		var decoded ParseResult
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, result, decoded)
		assert.Contains(t, buf.String(), "state: erroring")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.EqualError(t, PrintParseResult(&buf, "xml", result), "unsupported output format: xml")
	})
}
