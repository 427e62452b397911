package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, 5005, cfg.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "portfolio", cfg.MongoDB)
	assert.Equal(t, "static", cfg.Paths.Static)
	assert.True(t, cfg.IsDev())
}

func TestLoadYAMLWithSynonymKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("port: 8080\nnode_env: production\nmongo_url: mongodb://db:27017\ndb_name: folio\nstatic_dir: /var/content\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "folio", cfg.MongoDB)
	assert.Equal(t, "/var/content", cfg.Paths.Static)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o644))

	t.Setenv("PORT", "9001")
	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("ALLOWED_ORIGINS", "example.com, *.example.org")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "mongodb://env:27017", cfg.MongoURI)
	assert.Equal(t, []string{"example.com", "*.example.org"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
