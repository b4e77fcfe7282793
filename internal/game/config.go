package game

import "time"

// Playfield - the logical coordinate space all entities live in.
// Rendering scales it to whatever terminal it lands on.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0
)

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Player
const (
	InitialLives   = 3
	ExtraLifeScore = 10000 // One bonus life per threshold crossed
)

// Waves
const (
	BaseAsteroids = 3 // Wave n spawns BaseAsteroids + n large asteroids
	// lineageUnits is the total asteroid count one large asteroid produces
	// across its full split tree (1 large + 2 medium + 4 small). Used to
	// pace the background beat by wave progress.
	lineageUnits = 7
)

// Delays, in seconds of simulation time.
const (
	RespawnDelay    = 2.0 // Hidden time between disintegration end and respawn
	GameOverDelay   = 3.0 // From fatal hit to the game-over overlay
	WaveSpawnDelay  = 3.0 // From wave clear to the next wave spawning
	BeatResumeDelay = 0.5 // From wave spawn to the beat restarting
)

// Rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS

	// Max render resolution; larger terminals get a centered render area.
	MaxTermWidth  = 200
	MaxTermHeight = 75
)
