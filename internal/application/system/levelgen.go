package system

import (
	"fmt"

	"github.com/younwookim/coinrun/internal/domain/entity"
	"github.com/younwookim/coinrun/internal/infrastructure/config"
)

// Level 1 layout tables. All positions are world pixels; the layout is
// fixed data so generation is byte-for-byte reproducible and the level
// plays identically on every run.
const coinSize = 24.0

type platformRun struct {
	x, y  float64
	tiles int
}

var (
	// Floor gap intervals [start, end): no floor tile is laid inside.
	floorGaps = [][2]float64{
		{640, 760},
		{1480, 1600},
		{2280, 2440},
	}

	platformRuns = []platformRun{
		{x: 240, y: 440, tiles: 3},
		{x: 520, y: 320, tiles: 3},
		{x: 880, y: 440, tiles: 4},
		{x: 1240, y: 360, tiles: 3},
		{x: 1620, y: 440, tiles: 3},
		{x: 1960, y: 320, tiles: 4},
		{x: 2320, y: 420, tiles: 3},
		{x: 2680, y: 360, tiles: 3},
	}

	enemySpawnX = []float64{500, 1100, 1700, 2200, 2700}

	groundCoinX = []float64{400, 980, 1380, 2050, 2500}
)

// GenerateLevel builds the full entity set for the given level index.
// Only index 1 is defined; other indices are an extension point and
// return an error for now.
func GenerateLevel(cfg *config.PhysicsConfig, index int) (*entity.Level, error) {
	if index != 1 {
		return nil, fmt.Errorf("level %d is not defined", index)
	}

	tile := cfg.World.TileSize
	floorY := cfg.World.Height - tile

	lvl := &entity.Level{
		Index:    index,
		Width:    cfg.World.LevelWidth,
		Height:   cfg.World.Height,
		TileSize: tile,
		SpawnX:   cfg.Player.SpawnX,
		SpawnY:   floorY - cfg.Player.Height,
	}

	var nextID entity.EntityID = 1
	add := func(e entity.Entity) {
		e.ID = nextID
		nextID++
		lvl.Entities = append(lvl.Entities, &e)
	}

	// Floor row, skipping the gap hazards.
	for x := 0.0; x < cfg.World.LevelWidth; x += tile {
		if inFloorGap(x) {
			continue
		}
		add(entity.Entity{Kind: entity.KindPlatform, X: x, Y: floorY, W: tile, H: tile})
	}

	// Elevated platforms, each with a coin over its second tile.
	for _, run := range platformRuns {
		for i := 0; i < run.tiles; i++ {
			add(entity.Entity{Kind: entity.KindPlatform, X: run.x + float64(i)*tile, Y: run.y, W: tile, H: tile})
		}
		add(entity.Entity{
			Kind: entity.KindCoin,
			X:    run.x + tile + (tile-coinSize)/2,
			Y:    run.y - tile,
			W:    coinSize,
			H:    coinSize,
		})
	}

	// Patrol enemies, initially walking left.
	for _, x := range enemySpawnX {
		add(entity.Entity{
			Kind:      entity.KindEnemy,
			X:         x,
			Y:         floorY - cfg.Enemy.Height,
			W:         cfg.Enemy.Width,
			H:         cfg.Enemy.Height,
			VX:        -cfg.Enemy.Speed,
			PatrolMin: x - cfg.Enemy.PatrolHalfRange,
			PatrolMax: x + cfg.Enemy.PatrolHalfRange,
			Dir:       -1,
		})
	}

	// Ground coins.
	for _, x := range groundCoinX {
		add(entity.Entity{Kind: entity.KindCoin, X: x, Y: floorY - 60, W: coinSize, H: coinSize})
	}

	// Goal flag near the far end, tall enough to walk into.
	add(entity.Entity{
		Kind: entity.KindFlag,
		X:    cfg.World.LevelWidth - 160,
		Y:    floorY - 3*tile,
		W:    tile,
		H:    3 * tile,
	})

	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %d: %w", index, err)
	}
	return lvl, nil
}

func inFloorGap(x float64) bool {
	for _, gap := range floorGaps {
		if x >= gap[0] && x < gap[1] {
			return true
		}
	}
	return false
}
