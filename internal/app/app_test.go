package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cornellbox/internal/config"
	"github.com/Faultbox/cornellbox/internal/engine/camera"
)

func TestSceneOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Mode = "fly"
	cfg.Camera.MoveSpeed = 2.5
	cfg.Scene.Animate = false

	opts, err := SceneOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, camera.ModeFly, opts.CameraMode)
	assert.Equal(t, float32(2.5), opts.MoveSpeed)
	assert.Equal(t, float32(0.5), opts.DragRotateScale)
	assert.False(t, opts.Animate)
	assert.True(t, opts.MirrorWallsEnabled)

	cfg.Camera.Mode = "dolly"
	_, err = SceneOptions(cfg)
	assert.Error(t, err)
}
