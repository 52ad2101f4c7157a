package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	assert.EqualError(t, ValidateOutputFormat("xml"), "invalid output format: xml (must be: text, json, or yaml)")
}

func TestParseSeparators(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"literal", []string{",", ";"}, []string{",", ";"}},
		{"named", []string{"comma", "Space", "TAB"}, []string{",", " ", "\t"}},
		{"escapes", []string{`\t`, `\s`}, []string{"\t", " "}},
		{"empty dropped", []string{"", ","}, []string{","}},
		{"duplicates dropped", []string{",", "comma", " "}, []string{",", " "}},
		{"multi character", []string{"::"}, []string{"::"}},
		{"nothing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeparators(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSeparators([]string{"\r"})
	assert.Error(t, err)
}

func TestDescribeSeparator(t *testing.T) {
	assert.Equal(t, "space", DescribeSeparator(" "))
	assert.Equal(t, "tab", DescribeSeparator("\t"))
	assert.Equal(t, `","`, DescribeSeparator(","))
}

func TestCompilePattern(t *testing.T) {
	re, err := CompilePattern("")
	assert.NoError(t, err)
	assert.Nil(t, re)

	re, err = CompilePattern(`^\w+$`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("go"))

	_, err = CompilePattern("(")
	assert.Error(t, err)
}
