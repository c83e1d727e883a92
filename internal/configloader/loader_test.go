package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 256, cfg.BufferCapacity)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.DetectLanguage)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"buffer_capacity: 512\ncolor: never\nformat: json\nextensions: [.doc]\njobs: 2\n",
	), 0o644))

	result, err := Load(dir, path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 512, result.Config.BufferCapacity)
	assert.Equal(t, "never", result.Config.Color)
	assert.Equal(t, "json", result.Config.Format)
	assert.Equal(t, []string{".doc"}, result.Config.Extensions)
	assert.Equal(t, 2, result.Config.Jobs)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadDiscoversUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName),
		[]byte("color: always\n"), 0o644))

	result, err := Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ConfigFileName), result.Path)
	assert.Equal(t, "always", result.Config.Color)
	// Unset keys keep their defaults.
	assert.Equal(t, 256, result.Config.BufferCapacity)
}

func TestLoadNoConfigFile(t *testing.T) {
	result, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Empty(t, result.Path)
	assert.Equal(t, Default(), result.Config)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: sometimes\n"), 0o644))
	_, err := Load(dir, path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o644))
	_, err = Load(dir, path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("buffer_capacity: -1\n"), 0o644))
	_, err = Load(dir, path)
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: [unterminated\n"), 0o644))
	_, err := Load(dir, path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envColor, "NEVER")
	t.Setenv(envFormat, "json")
	t.Setenv(envCapacity, "1024")
	t.Setenv(envDetectLang, "true")
	t.Setenv(envJobs, "4")

	result, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "never", result.Config.Color)
	assert.Equal(t, "json", result.Config.Format)
	assert.Equal(t, 1024, result.Config.BufferCapacity)
	assert.True(t, result.Config.DetectLanguage)
	assert.Equal(t, 4, result.Config.Jobs)
}

func TestEnvMalformedValuesIgnored(t *testing.T) {
	t.Setenv(envCapacity, "lots")
	t.Setenv(envDetectLang, "kinda")

	result, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, 256, result.Config.BufferCapacity)
	assert.False(t, result.Config.DetectLanguage)
}
