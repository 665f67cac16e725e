package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocal(t *testing.T) {
	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.GetWindowWidth())
	assert.Equal(t, 800, cfg.GetWindowHeight())
	assert.Equal(t, "Vector Playground", cfg.GetWindowTitle())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 90.0, cfg.GetRotateDegrees())
	assert.Equal(t, 2000, cfg.GetRotateIntervalMs())
	assert.InDelta(t, 0.15, cfg.GetFollowRate(), 1e-9)

	sceneFile := cfg.GetSceneFile()
	assert.True(t, filepath.IsAbs(sceneFile))
	assert.Equal(t, "scene.hjson", filepath.Base(sceneFile))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "640")
	t.Setenv("WINDOW_TITLE", "override")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ROTATE_DEGREES", "-45")
	t.Setenv("SCENE_FILE", "/tmp/other.hjson")

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 800, cfg.GetWindowHeight())
	assert.Equal(t, "override", cfg.GetWindowTitle())
	assert.Equal(t, "error", cfg.GetLogLevel())
	assert.Equal(t, -45.0, cfg.GetRotateDegrees())
	assert.Equal(t, "/tmp/other.hjson", cfg.GetSceneFile())
}

func TestMissingEnvironmentFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("doesnotexist")
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.GetWindowWidth())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.Empty(t, cfg.GetSceneFile())
}
