package maze

import (
	"testing"

	"github.com/lixenwraith/roomgen/prng"
)

func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := New(len(rows[0]), len(rows), nil, prng.New(t.Name()))
	for y, row := range rows {
		for x, c := range row {
			g.Set(x, y, c == GlyphOpen)
		}
	}
	return g
}

func TestNew_StartsClosed(t *testing.T) {
	g := New(7, 5, nil, prng.New("closed"))
	if g.Count() != 0 {
		t.Errorf("new grid has %d open cells", g.Count())
	}
	if len(g.Bools()) != 5 || len(g.Bools()[0]) != 7 {
		t.Error("Bools has wrong shape")
	}
}

func TestNew_InvalidSizePanics(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) did not panic", size[0], size[1])
				}
			}()
			New(size[0], size[1], nil, prng.New("x"))
		}()
	}
}

func TestIsWall_OutOfBoundsAndPredicate(t *testing.T) {
	g := New(4, 3, func(x, y int) bool { return x == 2 && y == 1 }, prng.New("wall"))
	tests := []struct {
		x, y int
		want bool
	}{
		{-1, 0, true},
		{0, -1, true},
		{4, 0, true},
		{0, 3, true},
		{2, 1, true},
		{0, 0, false},
		{3, 2, false},
	}
	for _, tt := range tests {
		if got := g.IsWall(tt.x, tt.y); got != tt.want {
			t.Errorf("IsWall(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLook_Weights(t *testing.T) {
	g := New(3, 3, func(x, y int) bool { return x == 1 && y == 1 }, prng.New("look"))
	g.Set(0, 0, Open)
	if got := g.Look(0, 0); got != 1 {
		t.Errorf("open Look = %v", got)
	}
	if got := g.Look(2, 2); got != 0 {
		t.Errorf("closed Look = %v", got)
	}
	if got := g.Look(-1, 0); got != BoundaryWeight {
		t.Errorf("out of bounds Look = %v", got)
	}
	if got := g.Look(1, 1); got != BoundaryWeight {
		t.Errorf("forced wall Look = %v", got)
	}
}

func TestBools_IsCopy(t *testing.T) {
	g := gridFrom(t, "..", "#.")
	b := g.Bools()
	b[0][0] = false
	if !g.Open(0, 0) {
		t.Error("mutating Bools result changed the grid")
	}
}

func TestString_Glyphs(t *testing.T) {
	g := gridFrom(t, ".#.", "##.")
	if got, want := g.String(), ".#.\n##.\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSet_OutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set outside the grid did not panic")
		}
	}()
	New(2, 2, nil, prng.New("set")).Set(2, 0, Open)
}
