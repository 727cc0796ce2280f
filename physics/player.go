package physics

import (
	"math"

	"github.com/lixenwraith/ray-crawler/constants"
	"github.com/lixenwraith/ray-crawler/input"
	"github.com/lixenwraith/ray-crawler/world"
)

// Player is the single piece of cross-frame mutable state: a continuous
// position inside the grid and a heading kept in [0, 2π).
type Player struct {
	X     float64
	Y     float64
	Angle float64
}

// NewPlayer returns a player at the fixed spawn point.
func NewPlayer() Player {
	return Player{
		X:     constants.SpawnX,
		Y:     constants.SpawnY,
		Angle: constants.SpawnAngle,
	}
}

// Update applies one frame of intents. Movement intents sum into a single
// candidate displacement in the player's local frame, committed atomically
// only if the destination cell is empty; a blocked displacement is
// rejected whole, both axes together. Rotation is applied afterwards and
// the heading re-normalized.
//
// The return value reports whether a non-zero displacement was rejected
// by collision.
func (p *Player) Update(grid *world.Grid, intents input.Intents) bool {
	sin := math.Sin(p.Angle)
	cos := math.Cos(p.Angle)

	var moveX, moveY, rotate float64

	if intents.Has(input.Forward) {
		moveX += cos * constants.MoveSpeed
		moveY += sin * constants.MoveSpeed
	}
	if intents.Has(input.Backward) {
		moveX -= cos * constants.MoveSpeed
		moveY -= sin * constants.MoveSpeed
	}
	if intents.Has(input.StrafeLeft) {
		moveX += sin * constants.MoveSpeed
		moveY -= cos * constants.MoveSpeed
	}
	if intents.Has(input.StrafeRight) {
		moveX -= sin * constants.MoveSpeed
		moveY += cos * constants.MoveSpeed
	}
	if intents.Has(input.RotateLeft) {
		rotate -= constants.RotationSpeed
	}
	if intents.Has(input.RotateRight) {
		rotate += constants.RotationSpeed
	}

	blocked := false
	if moveX != 0 || moveY != 0 {
		newX := p.X + moveX
		newY := p.Y + moveY

		// Out-of-bounds lookups read as Wall, so the boundary check is
		// folded into the cell check
		if grid.Lookup(int(math.Floor(newX)), int(math.Floor(newY))) == world.Empty {
			p.X = newX
			p.Y = newY
		} else {
			blocked = true
		}
	}

	p.Angle += rotate

	// Wrap instead of modulo: handles arbitrary excursions on both sides
	for p.Angle < 0 {
		p.Angle += 2 * math.Pi
	}
	for p.Angle >= 2*math.Pi {
		p.Angle -= 2 * math.Pi
	}

	return blocked
}
