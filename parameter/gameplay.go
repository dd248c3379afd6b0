package parameter

import (
	"math"
	"time"
)

// World
const (
	// WorldWidth and WorldHeight are the playfield extent in world units
	WorldWidth  = 800.0
	WorldHeight = 600.0

	// BoundThickness is the depth of the four walls placed just outside the playfield
	BoundThickness = 100.0
)

// Player
const (
	PlayerRadius = 24.0

	// DragScale amplifies pointer motion into player motion
	DragScale = 3.0

	// EaseDivisor: each frame the player covers 1/EaseDivisor of the remaining distance to target
	EaseDivisor = 4.0
)

// Foe
const (
	FoeRadius = 40.0
	FoeSides  = 3

	// FoeLinearSpeed is 2 units per step at 60 Hz
	FoeLinearSpeed = 120.0
	// FoeAngularSpeed in radians per second
	FoeAngularSpeed = 0.25

	FoeCount = 1

	// FoeShotCooldown is the minimum game time between two shots of one foe
	FoeShotCooldown = 5 * time.Second

	// FoeSightFraction scales world width into the line-of-sight ray length
	FoeSightFraction = 0.5

	// FoeSpawnPadding places foes outside the visible area; negative means beyond the edge
	FoeSpawnPadding = -100.0
)

// FoeSpawnEdge is the edge (0 top, 1 right, 2 bottom, 3 left) of the initial foe
const FoeSpawnEdge = 2

// Bullet
const (
	BulletRadius      = 8.0
	BulletSpeedFactor = 1.5
	BulletMaxSpeed    = 300.0
	BulletRestitution = 1.0
	BulletLifetime    = 12 * time.Second
)

// Collectible
const (
	CollectibleRadius  = 12.0
	CollectiblePadding = 50.0
	CollectibleCount   = 4
	CollectiblePoints  = 1
)

// Difficulty ramp applied to every foe per collected item, uncapped
const (
	// LinearSpeedStep is 0.1 units per step at 60 Hz
	LinearSpeedStep  = 6.0
	AngularSpeedStep = 0.01
)

// FoeFacingForEdge returns the initial facing of a foe spawned on edge, pointing into the playfield
func FoeFacingForEdge(edge int) float64 {
	return float64(edge%4+1) * math.Pi / 2
}
