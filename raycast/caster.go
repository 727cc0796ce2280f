package raycast

import (
	"math"

	"github.com/lixenwraith/ray-crawler/constants"
	"github.com/lixenwraith/ray-crawler/world"
)

// Caster shoots rays through a grid and reports wall distances.
type Caster struct {
	grid *world.Grid
}

// NewCaster creates a caster over the given grid.
func NewCaster(grid *world.Grid) *Caster {
	return &Caster{grid: grid}
}

// RayAngle returns the world-space angle of the ray for a screen column.
// The arctangent warp keeps the projection rectilinear rather than
// spherical across the field of view.
func RayAngle(playerAngle float64, column, screenWidth int) float64 {
	cameraX := 2.0*float64(column)/float64(screenWidth) - 1.0
	return playerAngle + math.Atan(cameraX*constants.FOV)
}

// Cast walks the grid from (originX, originY) along angle until it hits
// a wall and returns the perpendicular distance to the hit, measured
// along the camera's forward axis to avoid fisheye distortion.
//
// DDA traversal: the ray advances one cell boundary at a time, always
// along the axis whose next crossing is nearer. Leaving the grid counts
// as hitting the implicit outer wall, so the loop always terminates.
func (c *Caster) Cast(originX, originY, angle float64) float64 {
	sin := math.Sin(angle)
	cos := math.Cos(angle)

	// Distance along the ray to cross one full cell per axis. A near-zero
	// direction component gets a sentinel so that axis never wins a step.
	deltaX := constants.DistanceSentinel
	if math.Abs(cos) >= constants.AxisEpsilon {
		deltaX = math.Abs(1.0 / cos)
	}
	deltaY := constants.DistanceSentinel
	if math.Abs(sin) >= constants.AxisEpsilon {
		deltaY = math.Abs(1.0 / sin)
	}

	stepX, stepY := 1, 1
	if cos < 0 {
		stepX = -1
	}
	if sin < 0 {
		stepY = -1
	}

	mapX := int(math.Floor(originX))
	mapY := int(math.Floor(originY))

	// Distance along the ray to the first boundary crossing per axis
	var sideDistX, sideDistY float64
	if cos < 0 {
		sideDistX = (originX - float64(mapX)) * deltaX
	} else {
		sideDistX = (float64(mapX) + 1.0 - originX) * deltaX
	}
	if sin < 0 {
		sideDistY = (originY - float64(mapY)) * deltaY
	} else {
		sideDistY = (float64(mapY) + 1.0 - originY) * deltaY
	}

	sideHit := false
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			sideHit = false
		} else {
			sideDistY += deltaY
			mapY += stepY
			sideHit = true
		}

		if c.grid.Lookup(mapX, mapY) == world.Wall {
			break
		}
	}

	// Back off the final step delta on the axis that produced the hit:
	// this yields the perpendicular distance rather than the Euclidean one.
	if sideHit {
		return sideDistY - deltaY
	}
	return sideDistX - deltaX
}
