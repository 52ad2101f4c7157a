package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("NAME", "COLOR")
	table.Row("go", "#00ADD8")
	table.Row("kubernetes", "#326CE5")
	require.NoError(t, table.Flush())

	out := buf.String()
	assert.Contains(t, out, "go          #00ADD8")
	assert.Contains(t, out, "kubernetes  #326CE5")
}

func TestOutputResults_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "text", "plain"))
	assert.Equal(t, "plain\n", buf.String())
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer text", 10, "much lo..."},
		{"abcdef", 2, "ab"},
		{"ééééé", 4, "é..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxLen))
		})
	}
}

func TestColorizeTag(t *testing.T) {
	restore := noColor
	defer func() { noColor = restore }()

	noColor = true
	assert.Equal(t, "go", ColorizeTag("go", "#00ADD8"))

	noColor = false
	assert.Equal(t, "go", ColorizeTag("go", "not-a-color"))
}

func TestParseHexColor(t *testing.T) {
	r, g, b, ok := parseHexColor("#00ADD8")
	require.True(t, ok)
	assert.Equal(t, []int{0x00, 0xAD, 0xD8}, []int{r, g, b})

	_, _, _, ok = parseHexColor("#fff")
	assert.False(t, ok)
	_, _, _, ok = parseHexColor("#gggggg")
	assert.False(t, ok)
}
