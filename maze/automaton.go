package maze

import "github.com/lixenwraith/roomgen/direction"

// Neighbor thresholds for the smoothing passes
const (
	trimKeep  = 2.0 // open cell survives with this much cardinal support
	growBirth = 4.0 // closed cell opens with this much 8-neighborhood support
)

// WeightFunc scales noise probability per cell
type WeightFunc func(x, y int) float64

// Uniform weighs every cell 1
func Uniform(x, y int) float64 { return 1 }

// Trim erodes for the given rounds: an open cell stays open only while its
// cardinal neighbors sum to at least 2. Never opens a cell.
func (g *Grid) Trim(rounds int) {
	for ; rounds > 0; rounds-- {
		next := g.Bools()
		for y, row := range g.cells {
			for x, open := range row {
				if open && g.neighborSum(x, y, direction.Cardinal[:]) < trimKeep {
					next[y][x] = Closed
				}
			}
		}
		g.cells = next
	}
}

// Grow dilates for the given rounds: a closed, non-wall cell opens when its
// 8 neighbors sum to at least 4. Never closes a cell.
func (g *Grid) Grow(rounds int) {
	for ; rounds > 0; rounds-- {
		next := g.Bools()
		for y, row := range g.cells {
			for x, open := range row {
				if !open && !g.IsWall(x, y) && g.neighborSum(x, y, direction.All[:]) >= growBirth {
					next[y][x] = Open
				}
			}
		}
		g.cells = next
	}
}

// Noise flips cells at random. Each non-wall cell takes one draw in row-major
// order; an open cell closes when the draw is below closeRate*w, a closed cell
// opens when it is below openRate*w. Forced walls are skipped.
func (g *Grid) Noise(closeRate, openRate float64, weight WeightFunc) {
	if weight == nil {
		weight = Uniform
	}
	for y, row := range g.cells {
		for x, open := range row {
			if g.IsWall(x, y) {
				continue
			}
			roll := g.rng.Float64()
			w := weight(x, y)
			if open {
				if roll < closeRate*w {
					row[x] = Closed
				}
			} else if roll < openRate*w {
				row[x] = Open
			}
		}
	}
}

// Loss is single-rate noise: a positive rate only closes open cells, a
// negative rate only opens closed ones.
func (g *Grid) Loss(rate float64, weight WeightFunc) {
	g.Noise(rate, -rate, weight)
}
