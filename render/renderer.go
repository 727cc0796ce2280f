package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-crawler/constants"
	"github.com/lixenwraith/ray-crawler/physics"
	"github.com/lixenwraith/ray-crawler/raycast"
)

// halfBlock renders its upper half in the foreground color and its lower
// half in the background color, packing two vertical samples per cell
const halfBlock = '▀'

// Renderer draws full frames to a tcell screen. It owns a framebuffer of
// palette indices at double the character-row resolution, rebuilt from
// scratch every frame, plus the last seen screen dimensions for resize
// detection. A single game loop owns the renderer; nothing here is safe
// for concurrent use.
type Renderer struct {
	screen tcell.Screen
	caster *raycast.Caster

	// framebuffer, row-major, doubleHeight rows by width columns
	buffer []int

	lastWidth  int
	lastHeight int
}

// NewRenderer creates a renderer over the given screen and caster.
func NewRenderer(screen tcell.Screen, caster *raycast.Caster) *Renderer {
	return &Renderer{
		screen: screen,
		caster: caster,
	}
}

// Frame renders one complete frame for the player state and flushes it
// in a single update. The screen size is re-queried every call; a size
// change forces a full clear and resync before drawing, otherwise only
// changed cells are emitted. Reports whether a resync happened.
func (r *Renderer) Frame(p physics.Player) bool {
	width, height := r.screen.Size()

	resynced := false
	if width != r.lastWidth || height != r.lastHeight {
		r.screen.Clear()
		r.screen.Sync()
		r.lastWidth = width
		r.lastHeight = height
		resynced = true
	}

	if width <= 0 || height <= 0 {
		return resynced
	}

	doubleHeight := height * 2
	if len(r.buffer) != width*doubleHeight {
		r.buffer = make([]int, width*doubleHeight)
	}

	r.fill(p, width, doubleHeight)
	r.blit(width, height)
	r.screen.Show()

	return resynced
}

// fill rebuilds the framebuffer: one ray per column, wall slice centered
// on the horizon, ceiling above and floor below graded by distance from
// the slice edges.
func (r *Renderer) fill(p physics.Player, width, doubleHeight int) {
	for x := 0; x < width; x++ {
		angle := raycast.RayAngle(p.Angle, x, width)
		dist := r.caster.Cast(p.X, p.Y, angle)

		lineHeight := int(float64(doubleHeight) / math.Max(dist, constants.MinWallDistance))
		drawStart := (doubleHeight - lineHeight) / 2
		if drawStart < 0 {
			drawStart = 0
		}
		drawEnd := (doubleHeight + lineHeight) / 2
		if drawEnd > doubleHeight {
			drawEnd = doubleHeight
		}

		wall := WallShade(dist)

		for y := 0; y < doubleHeight; y++ {
			switch {
			case y >= drawStart && y < drawEnd:
				r.buffer[y*width+x] = wall
			case y < drawStart:
				r.buffer[y*width+x] = CeilingShade(float64(drawStart-y) / float64(doubleHeight))
			default:
				r.buffer[y*width+x] = FloorShade(float64(y-drawEnd) / float64(doubleHeight))
			}
		}
	}
}

// blit packs each pair of framebuffer rows into one character row using
// the half-block glyph: upper sample as foreground, lower as background.
func (r *Renderer) blit(width, height int) {
	for y := 0; y < height; y++ {
		upper := y * 2 * width
		lower := upper + width

		for x := 0; x < width; x++ {
			style := tcell.StyleDefault.
				Foreground(tcell.PaletteColor(r.buffer[upper+x])).
				Background(tcell.PaletteColor(r.buffer[lower+x]))
			r.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}
