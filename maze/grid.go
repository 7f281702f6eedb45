package maze

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/roomgen/direction"
	"github.com/lixenwraith/roomgen/prng"
)

// Cell states
const (
	Open   = true
	Closed = false
)

// Dump glyphs
const (
	GlyphOpen   = '.'
	GlyphClosed = '#'
)

// BoundaryWeight is what Look reports for forced walls: they pull on neighbor
// counts less than an open cell but are not plain closed ground
const BoundaryWeight = 0.3

// WallFunc marks cells that can never be opened
type WallFunc func(x, y int) bool

type Point struct {
	X, Y int
}

// Grid is a rectangular field of open/closed cells with an obstacle predicate
// and its own generator. Rows are indexed cells[y][x].
type Grid struct {
	W, H  int
	cells [][]bool
	wall  WallFunc
	rng   prng.Rand
}

// New returns a fully closed grid. Panics on non-positive dimensions.
func New(w, h int, wall WallFunc, rng prng.Rand) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("maze: invalid grid size %dx%d", w, h))
	}
	return &Grid{W: w, H: h, cells: makeCells(w, h), wall: wall, rng: rng}
}

func makeCells(w, h int) [][]bool {
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
	}
	return cells
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// IsWall reports forced walls: out of bounds or marked by the predicate
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.wall != nil && g.wall(x, y)
}

// Open reports whether (x, y) is an open cell. Out of bounds is never open.
func (g *Grid) Open(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x]
}

// Set stores a cell state. Panics out of bounds.
func (g *Grid) Set(x, y int, open bool) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("maze: set (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	g.cells[y][x] = open
}

// Look weighs a cell for neighbor counting: 1 open, 0 closed, BoundaryWeight forced wall
func (g *Grid) Look(x, y int) float64 {
	if g.IsWall(x, y) {
		return BoundaryWeight
	}
	if g.cells[y][x] {
		return 1
	}
	return 0
}

// Rand exposes the grid's generator
func (g *Grid) Rand() *prng.Rand { return &g.rng }

// Count returns the number of open cells
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Bools returns a deep copy of the cells, true = passable
func (g *Grid) Bools() [][]bool {
	out := makeCells(g.W, g.H)
	for y, row := range g.cells {
		copy(out[y], row)
	}
	return out
}

// String dumps the grid one row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for _, row := range g.cells {
		writeRow(&sb, row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, row []bool) {
	for _, c := range row {
		if c {
			sb.WriteByte(GlyphOpen)
		} else {
			sb.WriteByte(GlyphClosed)
		}
	}
}

// neighborSum adds Look over the given directions around (x, y)
func (g *Grid) neighborSum(x, y int, dirs []direction.Dir) float64 {
	sum := 0.0
	for _, d := range dirs {
		dx, dy := direction.Delta(d)
		sum += g.Look(x+dx, y+dy)
	}
	return sum
}
