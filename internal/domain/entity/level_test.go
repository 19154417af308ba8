package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLevel() *Level {
	return &Level{
		Index:    1,
		Width:    800,
		Height:   600,
		TileSize: 40,
		SpawnX:   80,
		SpawnY:   512,
		Entities: []*Entity{
			{ID: 1, Kind: KindPlatform, X: 0, Y: 560, W: 40, H: 40},
			{ID: 2, Kind: KindEnemy, X: 300, Y: 520, W: 40, H: 40, PatrolMin: 200, PatrolMax: 400, Dir: -1},
			{ID: 3, Kind: KindCoin, X: 120, Y: 500, W: 24, H: 24},
			{ID: 4, Kind: KindFlag, X: 700, Y: 440, W: 40, H: 120},
		},
	}
}

func TestLevel_Validate(t *testing.T) {
	require.NoError(t, createTestLevel().Validate())
}

func TestLevel_Validate_InvertedPatrolRange(t *testing.T) {
	lvl := createTestLevel()
	lvl.Entities[1].PatrolMin = 500
	lvl.Entities[1].PatrolMax = 100

	err := lvl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patrol range")
}

func TestLevel_Validate_BadDirection(t *testing.T) {
	lvl := createTestLevel()
	lvl.Entities[1].Dir = 0

	err := lvl.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direction")
}

func TestLevel_Validate_NonPositiveSize(t *testing.T) {
	lvl := createTestLevel()
	lvl.Entities[0].W = 0

	require.Error(t, lvl.Validate())
}

func TestLevel_Flag(t *testing.T) {
	lvl := createTestLevel()
	flag := lvl.Flag()
	require.NotNil(t, flag)
	assert.Equal(t, KindFlag, flag.Kind)

	lvl.Entities = lvl.Entities[:3]
	assert.Nil(t, lvl.Flag())
}
