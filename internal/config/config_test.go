package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points the user home directory at a scratch dir so a developer's
// real ~/.regval/config.json cannot leak into tests.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.SchemaFile)
	assert.False(t, cfg.SkipSchemaValidation)
	assert.True(t, cfg.ShowProgress)
}

func TestLoadLocalConfig(t *testing.T) {
	isolateHome(t)

	localPath := filepath.Join(t.TempDir(), ".regval.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"show_progress": false}`), 0o644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.False(t, cfg.ShowProgress)
}

func TestLoadGlobalConfig(t *testing.T) {
	home := isolateHome(t)

	globalDir := filepath.Join(home, ".regval")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"),
		[]byte(`{"skip_schema_validation": true}`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.SkipSchemaValidation)
}

func TestLoadLocalOverridesGlobal(t *testing.T) {
	home := isolateHome(t)

	globalDir := filepath.Join(home, ".regval")
	require.NoError(t, os.MkdirAll(globalDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"),
		[]byte(`{"show_progress": false}`), 0o644))

	localPath := filepath.Join(t.TempDir(), ".regval.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`{"show_progress": true}`), 0o644))

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.True(t, cfg.ShowProgress)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("REGVAL_SHOW_PROGRESS", "false")
	t.Setenv("REGVAL_SKIP_SCHEMA_VALIDATION", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.ShowProgress)
	assert.True(t, cfg.SkipSchemaValidation)
}

func TestLoadSchemaFileMustExist(t *testing.T) {
	isolateHome(t)

	localPath := filepath.Join(t.TempDir(), ".regval.json")
	require.NoError(t, os.WriteFile(localPath,
		[]byte(`{"schema_file": "/nonexistent/config.schema.json"}`), 0o644))

	_, err := Load(localPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadSchemaFileFromEnv(t *testing.T) {
	isolateHome(t)

	schemaPath := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{}`), 0o644))
	t.Setenv("REGVAL_SCHEMA_FILE", schemaPath)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, schemaPath, cfg.SchemaFile)
}

func TestLoadMalformedLocalConfig(t *testing.T) {
	isolateHome(t)

	localPath := filepath.Join(t.TempDir(), ".regval.json")
	require.NoError(t, os.WriteFile(localPath, []byte(`not json`), 0o644))

	_, err := Load(localPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading local config")
}

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	assert.Equal(t, "", defaults["schema_file"])
	assert.Equal(t, false, defaults["skip_schema_validation"])
	assert.Equal(t, true, defaults["show_progress"])
}
