package maze

import (
	"fmt"

	"github.com/lixenwraith/roomgen/direction"
	"github.com/lixenwraith/roomgen/prng"
)

// Random start attempts before falling back to a scan
const startAttempts = 64

// frontier is a closed cell two steps from the carved region. back points to
// the stepping stone that would join it.
type frontier struct {
	p    Point
	back direction.Dir
}

// Carve runs randomized Prim over the two-step lattice from start, or from a
// random odd-lattice cell when start is nil. Corridors and walls are one cell
// wide; on a (2n+1)-sized grid the result is a spanning tree.
func (g *Grid) Carve(start *Point) {
	var s Point
	if start != nil {
		s = *start
		if g.IsWall(s.X, s.Y) {
			panic(fmt.Sprintf("maze: carve start (%d,%d) is a wall", s.X, s.Y))
		}
	} else {
		var ok bool
		if s, ok = g.randomStart(); !ok {
			return
		}
	}

	g.cells[s.Y][s.X] = Open
	front := g.expand(nil, s)

	for len(front) > 0 {
		f := prng.PickRemove(&g.rng, &front)
		if g.cells[f.p.Y][f.p.X] {
			continue
		}
		dx, dy := direction.Delta(f.back)
		stone := Point{f.p.X + dx, f.p.Y + dy}
		if g.IsWall(stone.X, stone.Y) {
			continue
		}
		g.cells[f.p.Y][f.p.X] = Open
		g.cells[stone.Y][stone.X] = Open
		front = g.expand(front, f.p)
	}
}

// expand queues the closed, non-wall cells two steps from p
func (g *Grid) expand(front []frontier, p Point) []frontier {
	for _, d := range direction.Cardinal {
		dx, dy := direction.Delta(d)
		t := Point{p.X + 2*dx, p.Y + 2*dy}
		if g.IsWall(t.X, t.Y) || g.cells[t.Y][t.X] {
			continue
		}
		front = append(front, frontier{p: t, back: direction.Opposite(d)})
	}
	return front
}

func (g *Grid) randomStart() (Point, bool) {
	for i := 0; i < startAttempts; i++ {
		x := g.latticeCoord(g.W)
		y := g.latticeCoord(g.H)
		if !g.IsWall(x, y) {
			return Point{x, y}, true
		}
	}
	for y := latticeFirst(g.H); y < g.H; y += 2 {
		for x := latticeFirst(g.W); x < g.W; x += 2 {
			if !g.IsWall(x, y) {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// latticeCoord draws an odd coordinate below n, or 0 when n < 2
func (g *Grid) latticeCoord(n int) int {
	if n/2 == 0 {
		return 0
	}
	return 1 + 2*g.rng.Intn(n/2)
}

func latticeFirst(n int) int {
	if n/2 == 0 {
		return 0
	}
	return 1
}
