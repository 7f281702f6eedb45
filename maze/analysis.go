package maze

import "github.com/lixenwraith/roomgen/direction"

// Regions counts cardinal-connected open areas
func (g *Grid) Regions() int {
	seen := makeCells(g.W, g.H)
	regions := 0
	var stack []Point
	for y, row := range g.cells {
		for x, open := range row {
			if !open || seen[y][x] {
				continue
			}
			regions++
			seen[y][x] = true
			stack = append(stack[:0], Point{x, y})
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range direction.Cardinal {
					dx, dy := direction.Delta(d)
					nx, ny := p.X+dx, p.Y+dy
					if g.Open(nx, ny) && !seen[ny][nx] {
						seen[ny][nx] = true
						stack = append(stack, Point{nx, ny})
					}
				}
			}
		}
	}
	return regions
}

// RandomOpen picks an open cell with the grid's own generator
func (g *Grid) RandomOpen() (Point, bool) {
	n := g.Count()
	if n == 0 {
		return Point{}, false
	}
	k := g.rng.Intn(n)
	for y, row := range g.cells {
		for x, open := range row {
			if !open {
				continue
			}
			if k == 0 {
				return Point{x, y}, true
			}
			k--
		}
	}
	return Point{}, false
}
