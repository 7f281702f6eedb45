package maze

import (
	"testing"

	"github.com/lixenwraith/roomgen/direction"
	"github.com/lixenwraith/roomgen/prng"
)

// components returns the number of cardinal-connected open regions and the
// number of adjacent open pairs
func components(g *Grid) (regions, edges int) {
	seen := make([][]bool, g.H)
	for y := range seen {
		seen[y] = make([]bool, g.W)
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.Open(x, y) {
				continue
			}
			if g.Open(x+1, y) {
				edges++
			}
			if g.Open(x, y+1) {
				edges++
			}
			if seen[y][x] {
				continue
			}
			regions++
			queue := []Point{{x, y}}
			seen[y][x] = true
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for _, d := range direction.Cardinal {
					dx, dy := direction.Delta(d)
					nx, ny := p.X+dx, p.Y+dy
					if g.Open(nx, ny) && !seen[ny][nx] {
						seen[ny][nx] = true
						queue = append(queue, Point{nx, ny})
					}
				}
			}
		}
	}
	return regions, edges
}

// TestCarve_SpanningTree verifies a single cycle-free region covering the lattice
func TestCarve_SpanningTree(t *testing.T) {
	for _, seed := range []string{"a", "b", "c", "carve-3"} {
		g := New(21, 15, nil, prng.New(seed))
		g.Carve(nil)

		regions, edges := components(g)
		if regions != 1 {
			t.Errorf("seed %q: %d regions", seed, regions)
		}
		if open := g.Count(); edges != open-1 {
			t.Errorf("seed %q: %d adjacent pairs for %d open cells, want tree", seed, edges, open)
		}

		// Every room cell of the lattice is reached
		for y := 1; y < g.H; y += 2 {
			for x := 1; x < g.W; x += 2 {
				if !g.Open(x, y) {
					t.Fatalf("seed %q: lattice cell (%d,%d) not carved", seed, x, y)
				}
			}
		}
		// Borders and even/even cells stay closed
		for x := 0; x < g.W; x++ {
			if g.Open(x, 0) || g.Open(x, g.H-1) {
				t.Fatalf("seed %q: border opened at x=%d", seed, x)
			}
		}
		if want := 10*7 + 10*7 - 1; g.Count() != want {
			t.Errorf("seed %q: %d open cells, want %d", seed, g.Count(), want)
		}
	}
}

func TestCarve_ExplicitStart(t *testing.T) {
	g := New(9, 9, nil, prng.New("start"))
	g.Carve(&Point{7, 7})
	if !g.Open(7, 7) {
		t.Error("start cell not open")
	}
	if regions, _ := components(g); regions != 1 {
		t.Errorf("%d regions", regions)
	}
}

func TestCarve_StartOnWallPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("carving from a wall did not panic")
		}
	}()
	g := New(9, 9, func(x, y int) bool { return x == 1 && y == 1 }, prng.New("wall"))
	g.Carve(&Point{1, 1})
}

// TestCarve_HonorsWalls checks forced walls stay closed and split the carve
func TestCarve_HonorsWalls(t *testing.T) {
	wall := func(x, y int) bool { return x == 5 }
	g := New(11, 11, wall, prng.New("split-wall"))
	g.Carve(nil)

	for y := 0; y < g.H; y++ {
		if g.Open(5, y) {
			t.Fatalf("forced wall opened at (5,%d)", y)
		}
	}
	left, right := 0, 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Open(x, y) {
				if x < 5 {
					left++
				} else {
					right++
				}
			}
		}
	}
	if left > 0 && right > 0 {
		t.Errorf("carve crossed a full wall: %d left, %d right", left, right)
	}
	if regions, edges := components(g); regions != 1 || edges != g.Count()-1 {
		t.Errorf("regions=%d edges=%d open=%d", regions, edges, g.Count())
	}
}

func TestCarve_AllWallsIsNoop(t *testing.T) {
	g := New(7, 7, func(x, y int) bool { return true }, prng.New("blocked"))
	g.Carve(nil)
	if g.Count() != 0 {
		t.Errorf("%d cells opened on a fully walled grid", g.Count())
	}
}

func TestCarve_Deterministic(t *testing.T) {
	a := New(31, 21, nil, prng.New("same"))
	b := New(31, 21, nil, prng.New("same"))
	a.Carve(nil)
	b.Carve(nil)
	if a.String() != b.String() {
		t.Error("same seed carved different mazes")
	}
}
