package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKey)
	assert.Zero(t, cfg.SearchLimit())
	assert.Empty(t, cfg.InstallDir())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err, "a corrupt config file must not break the CLI")
	assert.Empty(t, cfg.APIKey)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentmart", "config.json")
	in := &Config{
		APIKey: "ak-secret",
		Defaults: &Defaults{
			Search:  &SearchDefaults{Limit: 25},
			Install: &InstallDefaults{Dir: "/opt/skills"},
		},
	}
	require.NoError(t, Save(path, in))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "config holds a credential")

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ak-secret", out.APIKey)
	assert.Equal(t, 25, out.SearchLimit())
	assert.Equal(t, "/opt/skills", out.InstallDir())
}

func TestDefaultsAccessorsNilSafe(t *testing.T) {
	var cfg *Config
	assert.Zero(t, cfg.SearchLimit())
	assert.Empty(t, cfg.InstallDir())

	cfg = &Config{}
	assert.Zero(t, cfg.SearchLimit())
	assert.Empty(t, cfg.InstallDir())
}
