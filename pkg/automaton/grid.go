// Package automaton implements a 3D binary cellular automaton with B4/S4
// Moore-neighborhood rules. It predates the diffusion core and shares only
// its region import/export interface pattern; cells are single bytes
// holding 0 or 1.
package automaton

// Grid is a dense 3D array of binary cells, laid out row-major like the
// diffusion field: index = (z*H + y)*W + x.
type Grid struct {
	W, H, D int16
	Cells   []uint8

	generation uint64
}

// NewGrid allocates a zeroed grid.
func NewGrid(w, h, d int16) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if d <= 0 {
		d = 1
	}
	return &Grid{W: w, H: h, D: d, Cells: make([]uint8, int(w)*int(h)*int(d))}
}

// Index returns the linear slice index for (x, y, z).
func (g *Grid) Index(x, y, z int16) int {
	return (int(z)*int(g.H)+int(y))*int(g.W) + int(x)
}

// InBounds reports whether (x, y, z) lies inside the grid.
func (g *Grid) InBounds(x, y, z int16) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D
}

// Set writes one cell, normalizing nonzero to 1. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(x, y, z int16, value uint8) {
	if g.InBounds(x, y, z) {
		if value != 0 {
			value = 1
		}
		g.Cells[g.Index(x, y, z)] = value
	}
}

// Get reads one cell, returning 0 for out-of-bounds coordinates.
func (g *Grid) Get(x, y, z int16) uint8 {
	if g.InBounds(x, y, z) {
		return g.Cells[g.Index(x, y, z)]
	}
	return 0
}

// Generation returns the number of completed steps.
func (g *Grid) Generation() uint64 { return g.generation }

// countNeighbors sums the Moore neighborhood (26 surrounding cells).
func (g *Grid) countNeighbors(x, y, z int16) uint8 {
	var count uint8
	for dz := int16(-1); dz <= 1; dz++ {
		for dy := int16(-1); dy <= 1; dy++ {
			for dx := int16(-1); dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if g.InBounds(x+dx, y+dy, z+dz) {
					count += g.Cells[g.Index(x+dx, y+dy, z+dz)]
				}
			}
		}
	}
	return count
}

// Step advances the grid one generation under B4/S4: a cell is alive next
// generation iff it has exactly four alive Moore neighbors, whether or not
// it is alive now.
func (g *Grid) Step() {
	next := make([]uint8, len(g.Cells))
	for z := int16(0); z < g.D; z++ {
		for y := int16(0); y < g.H; y++ {
			for x := int16(0); x < g.W; x++ {
				if g.countNeighbors(x, y, z) == 4 {
					next[g.Index(x, y, z)] = 1
				}
			}
		}
	}
	g.Cells = next
	g.generation++
}
