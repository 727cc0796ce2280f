package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-crawler/constants"
	"github.com/lixenwraith/ray-crawler/physics"
	"github.com/lixenwraith/ray-crawler/raycast"
	"github.com/lixenwraith/ray-crawler/world"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	return screen
}

func TestFrameDeterministic(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	defer screen.Fini()

	r := NewRenderer(screen, raycast.NewCaster(world.Default()))
	p := physics.NewPlayer()

	r.Frame(p)
	first := make([]int, len(r.buffer))
	copy(first, r.buffer)

	r.Frame(p)

	if len(first) != len(r.buffer) {
		t.Fatalf("framebuffer size changed between identical frames: %d vs %d", len(first), len(r.buffer))
	}
	for i := range first {
		if first[i] != r.buffer[i] {
			t.Fatalf("framebuffer differs at index %d: %d vs %d", i, first[i], r.buffer[i])
		}
	}
}

func TestFrameResizeResync(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	defer screen.Fini()

	r := NewRenderer(screen, raycast.NewCaster(world.Default()))
	p := physics.NewPlayer()

	if !r.Frame(p) {
		t.Error("first frame must resync against unknown dimensions")
	}
	if r.Frame(p) {
		t.Error("unchanged dimensions must not resync")
	}

	screen.SetSize(60, 20)
	if !r.Frame(p) {
		t.Error("size change must force a resync")
	}
	if r.lastWidth != 60 || r.lastHeight != 20 {
		t.Errorf("cached dimensions = %dx%d, want 60x20", r.lastWidth, r.lastHeight)
	}

	if r.Frame(p) {
		t.Error("dimensions already cached, second frame must not resync")
	}
}

func TestFrameBufferLayout(t *testing.T) {
	const width, height = 40, 12
	screen := newTestScreen(t, width, height)
	defer screen.Fini()

	r := NewRenderer(screen, raycast.NewCaster(world.Default()))
	r.Frame(physics.NewPlayer())

	doubleHeight := height * 2
	center := width / 2

	// Top edge is ceiling, horizon is wall, bottom edge is floor
	top := r.buffer[0*width+center]
	if top < constants.CeilingBase || top > constants.CeilingTop {
		t.Errorf("top sample %d not in ceiling band", top)
	}

	mid := r.buffer[(doubleHeight/2)*width+center]
	nearBand := mid >= constants.WallNearBase && mid <= constants.WallNearTop
	farBand := mid >= constants.WallFarBase && mid <= constants.WallFarTop
	if !nearBand && !farBand {
		t.Errorf("horizon sample %d not in a wall band", mid)
	}

	bottom := r.buffer[(doubleHeight-1)*width+center]
	if bottom < constants.FloorBase || bottom > constants.FloorTop {
		t.Errorf("bottom sample %d not in floor band", bottom)
	}
}

func TestFrameEmitsHalfBlocks(t *testing.T) {
	const width, height = 20, 8
	screen := newTestScreen(t, width, height)
	defer screen.Fini()

	r := NewRenderer(screen, raycast.NewCaster(world.Default()))
	r.Frame(physics.NewPlayer())

	for _, pos := range [][2]int{{0, 0}, {width / 2, height / 2}, {width - 1, height - 1}} {
		primary, _, style, _ := screen.GetContent(pos[0], pos[1])
		if primary != halfBlock {
			t.Errorf("cell (%d,%d) rune = %q, want half block", pos[0], pos[1], primary)
		}

		fg, bg, _ := style.Decompose()
		if !fg.Valid() || !bg.Valid() {
			t.Errorf("cell (%d,%d) missing explicit colors", pos[0], pos[1])
		}
	}
}
