package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 3200.0, cfg.World.LevelWidth)
	assert.Equal(t, 40.0, cfg.World.TileSize)
	assert.Equal(t, 0.8, cfg.Gravity.Accel)
	assert.Equal(t, 15.0, cfg.Gravity.MaxFallSpeed)
	assert.Equal(t, -15.0, cfg.Jump.Impulse)
	assert.Equal(t, 0.8, cfg.Movement.Friction)
	assert.Equal(t, 20.0, cfg.Combat.StompTolerance)
	assert.Equal(t, 50, cfg.Scoring.Coin)
	assert.Equal(t, 100, cfg.Scoring.Stomp)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	require.NotNil(t, cfg.Physics)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{})

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read physics.json")
}

func TestLoader_MalformedJSON(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"physics.json": &fstest.MapFile{Data: []byte("{not json")},
	})

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse physics.json")
}
