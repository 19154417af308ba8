package config

// PhysicsConfig is the root config for physics.json. Every simulation
// constant lives here; all velocities are pixels per tick, not per
// second, and are added directly to positions each frame.
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	World    WorldConfig    `json:"world"`
	Player   PlayerConfig   `json:"player"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Gravity  GravityConfig  `json:"gravity"`
	Enemy    EnemyConfig    `json:"enemy"`
	Combat   CombatConfig   `json:"combat"`
	Scoring  ScoringConfig  `json:"scoring"`
	Camera   CameraConfig   `json:"camera"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type WorldConfig struct {
	LevelWidth float64 `json:"levelWidth"`
	Height     float64 `json:"height"`
	TileSize   float64 `json:"tileSize"`
	// FallMargin is how far below the world bottom the player may fall
	// before the run ends.
	FallMargin float64 `json:"fallMargin"`
}

type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	SpawnX float64 `json:"spawnX"`
}

type MovementConfig struct {
	MoveSpeed float64 `json:"moveSpeed"`
	// Friction multiplies horizontal velocity every tick without input,
	// so speed decays exponentially instead of stopping dead.
	Friction float64 `json:"friction"`
}

type JumpConfig struct {
	Impulse float64 `json:"impulse"`
	// CutThreshold is the minimum upward speed at which an early jump
	// release still halves the remaining velocity (short hop).
	CutThreshold float64 `json:"cutThreshold"`
}

type GravityConfig struct {
	Accel        float64 `json:"accel"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
}

type EnemyConfig struct {
	Speed           float64 `json:"speed"`
	PatrolHalfRange float64 `json:"patrolHalfRange"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
}

type CombatConfig struct {
	// StompTolerance is the maximum vertical penetration (player bottom
	// past enemy top, in pixels) still classified as a stomp rather
	// than a death. Tuning value carried over from the original game;
	// change with care.
	StompTolerance float64 `json:"stompTolerance"`
	BounceImpulse  float64 `json:"bounceImpulse"`
}

type ScoringConfig struct {
	Coin  int `json:"coin"`
	Stomp int `json:"stomp"`
}

type CameraConfig struct {
	// AnchorRatio places the player this fraction of the viewport width
	// from the left edge.
	AnchorRatio float64 `json:"anchorRatio"`
}
