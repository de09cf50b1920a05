package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripLineComments(t *testing.T) {
	in := "// header\n{\n  // inner\n  \"a\": 1 // trailing stays\n}\n"
	got := string(stripLineComments([]byte(in)))

	assert.NotContains(t, got, "header")
	assert.NotContains(t, got, "inner")
	assert.Contains(t, got, "trailing stays")
}

func TestTemplateParsesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(configTemplate), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadFromMissingFileWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.NoFileExists(t, path)
	assert.NoDirExists(t, filepath.Dir(path))
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	written, err := WriteTemplate(path)
	require.NoError(t, err)
	assert.True(t, written)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configTemplate, string(data))

	require.NoError(t, os.WriteFile(path, []byte(`{"log": {"level": "debug"}}`), 0o600))
	written, err = WriteTemplate(path)
	require.NoError(t, err)
	assert.False(t, written)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"log": {"level": "debug"}}`, string(data))
}

func TestLoadFromFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := "// only the backend\n{\"storage\": {\"backend\": \"sqlite\", \"dir\": \"/data\"}}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/data", cfg.Storage.Dir)
	assert.Equal(t, FormatPretty, cfg.Storage.JSONFormat)
	assert.Equal(t, DefaultPageSize, cfg.List.PageSize)
	assert.Equal(t, DefaultOrder, cfg.List.Order)
	assert.Equal(t, DefaultLevel, cfg.Log.Level)
}

func TestLoadFromRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad json":    "{not json",
		"bad backend": `{"storage": {"backend": "postgres"}}`,
		"bad format":  `{"storage": {"json_format": "yaml"}}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			cfg, err := LoadFrom(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
			assert.Equal(t, defaultConfig(), cfg)
		})
	}
}

func TestLoadUsesHomeEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TBT_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte(`{"storage": {"backend": "sqlite"}}`), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
}
