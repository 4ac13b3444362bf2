package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bhasha.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_call_depth: 50\ngc_stress: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxCallDepth)
	assert.True(t, cfg.GCStress)
	assert.Equal(t, Default().GCThreshold, cfg.GCThreshold)
	assert.Equal(t, Default().GCGrowth, cfg.GCGrowth)
}
