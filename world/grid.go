package world

// Cell is the occupancy state of a single map cell
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

// Grid is an immutable 2D occupancy map. It is constructed once at
// startup and shared read-only for the process lifetime.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// defaultRows is the compiled-in level: '1' = wall, '0' = empty
var defaultRows = []string{
	"111111111111111111111111",
	"100000000011000000000001",
	"100000000011000000000001",
	"100000000011000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"100000000000000000000001",
	"111111111111111111111111",
}

// New builds a grid from row strings where '1' marks a wall and any
// other byte marks empty space.
func New(rows []string) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}

	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			if row[x] == '1' {
				g.cells[y*width+x] = Wall
			}
		}
	}

	return g
}

// Default returns the fixed built-in level.
func Default() *Grid {
	return New(defaultRows)
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Lookup returns the cell at (x, y). Any coordinate outside the grid
// reads as Wall, so the boundary acts as an implicit outer wall and
// traversals over the grid always terminate.
func (g *Grid) Lookup(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Wall
	}
	return g.cells[y*g.width+x]
}
