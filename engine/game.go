package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-crawler/audio"
	"github.com/lixenwraith/ray-crawler/constants"
	"github.com/lixenwraith/ray-crawler/input"
	"github.com/lixenwraith/ray-crawler/physics"
	"github.com/lixenwraith/ray-crawler/raycast"
	"github.com/lixenwraith/ray-crawler/render"
	"github.com/lixenwraith/ray-crawler/world"
)

// Game is the single owner of all mutable state: the player, the
// renderer's cached dimensions, and the event queue. The loop is
// strictly sequential; the only other goroutine is the event pump,
// which shares nothing but the channel.
type Game struct {
	screen   tcell.Screen
	grid     *world.Grid
	player   physics.Player
	renderer *render.Renderer
	sound    *audio.Sound

	events chan tcell.Event
}

// NewGame wires a game over the fixed built-in level.
func NewGame(screen tcell.Screen, sound *audio.Sound) *Game {
	grid := world.Default()

	return &Game{
		screen:   screen,
		grid:     grid,
		player:   physics.NewPlayer(),
		renderer: render.NewRenderer(screen, raycast.NewCaster(grid)),
		sound:    sound,
		events:   make(chan tcell.Event, constants.EventQueueSize),
	}
}

// Run drives the input/update/render loop until a quit intent arrives.
// Each frame drains pending input without blocking, applies the intents,
// renders, then sleeps out the remainder of the frame budget. A slow
// frame simply runs the next one immediately; there is no catch-up.
func (g *Game) Run() {
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			g.events <- ev
		}
	}()

	for {
		frameStart := time.Now()

		intents := g.drainEvents()
		if intents.Has(input.Quit) {
			return
		}

		if g.player.Update(g.grid, intents) {
			g.sound.Bump()
		}
		g.renderer.Frame(g.player)

		if elapsed := time.Since(frameStart); elapsed < constants.FrameInterval {
			time.Sleep(constants.FrameInterval - elapsed)
		}
	}
}

// drainEvents collects everything queued right now and folds key presses
// into the frame's intent set. Unbound keys and other event kinds fall
// through; resize is picked up by the renderer's per-frame size query.
func (g *Game) drainEvents() input.Intents {
	var intents input.Intents
	for {
		select {
		case ev := <-g.events:
			if key, ok := ev.(*tcell.EventKey); ok {
				intents |= input.FromKey(key)
			}
		default:
			return intents
		}
	}
}
