package render

import (
	"math"

	"github.com/lixenwraith/ray-crawler/constants"
)

// Shading maps distances and vertical positions onto a small set of
// 256-color palette bands. Discrete banding keeps the output inside
// terminal-safe indexed colors while log compression of distance gives
// finer gradation up close than far away.

// WallShade converts a perpendicular wall distance to a palette index.
// Close walls land in the bright warm band, far walls in the dark red
// band; the index is monotonically non-increasing as distance grows.
func WallShade(distance float64) int {
	d := clampF(distance, constants.ShadeMinDistance, constants.ShadeMaxDistance)

	logDist := math.Log(d + 1.0)
	maxLog := math.Log(constants.ShadeMaxDistance + 1.0)
	normalized := 1.0 - logDist/maxLog

	if normalized > 0.5 {
		warm := float64(constants.WallNearBase) + (normalized-0.5)*12.0
		return int(clampF(warm, constants.WallNearBase, constants.WallNearTop))
	}
	dark := float64(constants.WallFarBase) + normalized*12.0
	return int(clampF(dark, constants.WallFarBase, constants.WallFarTop))
}

// CeilingShade converts a normalized vertical distance from the horizon
// line (0 at the horizon, 1 at the top edge) to a sky-blue palette index.
func CeilingShade(distFromHorizon float64) int {
	t := clampF(distFromHorizon, 0, 1)
	shade := float64(constants.CeilingBase) + t*6.0
	return int(clampF(shade, constants.CeilingBase, constants.CeilingTop))
}

// FloorShade converts a normalized vertical distance from the horizon
// line to a gray palette index.
func FloorShade(distFromHorizon float64) int {
	t := clampF(distFromHorizon, 0, 1)
	shade := float64(constants.FloorBase) + t*6.0
	return int(clampF(shade, constants.FloorBase, constants.FloorTop))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
