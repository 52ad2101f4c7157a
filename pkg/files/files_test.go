package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagfield/pkg/models"
)

func TestInitWorkspace(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, InitWorkspace())

	for _, dir := range []string{WorkspaceDir, filepath.Join(WorkspaceDir, LogsDir)} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "expected directory %s", dir)
		assert.True(t, info.IsDir())
	}

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestInitWorkspace_KeepsExistingSettings(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.MkdirAll(WorkspaceDir, 0755))
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("field:\n  letter_case: upper\n"), 0644))

	require.NoError(t, InitWorkspace())

	settings, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, "upper", settings.Field.LetterCase)
}

func TestReadSettings_MissingFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := ReadSettings()

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestReadSettings_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: [unclosed"), 0644))

	_, err := ReadSettingsFrom(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse settings")
}

func TestWriteSettings_RoundTrip(t *testing.T) {
	chdir(t, t.TempDir())

	settings := models.DefaultSettings()
	settings.Field.Separators = []string{";"}
	settings.Validation.MinLength = 3

	require.NoError(t, WriteSettings(settings))

	_, err := os.Stat(SettingsPath() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	loaded, err := ReadSettings()
	require.NoError(t, err)
	assert.Equal(t, []string{";"}, loaded.Field.Separators)
	assert.Equal(t, 3, loaded.Validation.MinLength)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath(""))
	assert.Equal(t, filepath.Join(WorkspaceDir, "tags.yaml"), ResolvePath("tags.yaml"))
	abs := filepath.Join(t.TempDir(), "tags.yaml")
	assert.Equal(t, abs, ResolvePath(abs))
}
