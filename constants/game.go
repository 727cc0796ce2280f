package constants

import "time"

// Game Loop Timing
const (
	// FrameInterval is the target frame budget (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the input event channel
	EventQueueSize = 100
)

// Camera & Movement
const (
	// FOV controls the horizontal field of view via the arctangent warp
	FOV = 0.66

	// MoveSpeed is the per-frame translation step in map cells
	MoveSpeed = 0.05

	// RotationSpeed is the per-frame heading step in radians
	RotationSpeed = 0.03
)

// Raycasting
const (
	// AxisEpsilon disables stepping along an axis whose direction
	// component is effectively zero
	AxisEpsilon = 1e-4

	// DistanceSentinel stands in for an infinite per-cell step delta
	DistanceSentinel = 1e30

	// MinWallDistance floors the projection divisor so a wall touching
	// the camera cannot blow up the slice height
	MinWallDistance = 0.1
)

// Wall Shading
const (
	// ShadeMinDistance and ShadeMaxDistance clamp the distance fed into
	// the logarithmic depth compression
	ShadeMinDistance = 0.1
	ShadeMaxDistance = 15.0
)

// 256-color palette bands, six steps each
const (
	// WallNearBase..WallNearTop: bright warm yellows for close walls
	WallNearBase = 220
	WallNearTop  = 226

	// WallFarBase..WallFarTop: dark reds for distant walls
	WallFarBase = 88
	WallFarTop  = 94

	// CeilingBase..CeilingTop: sky blues, lighter near the horizon
	CeilingBase = 39
	CeilingTop  = 45

	// FloorBase..FloorTop: neutral grays, darker toward the bottom edge
	FloorBase = 238
	FloorTop  = 244
)

// Player Spawn
const (
	SpawnX     = 2.0
	SpawnY     = 2.0
	SpawnAngle = 0.0
)
