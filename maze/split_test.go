package maze

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/roomgen/prng"
)

// TestSplit_StitchRoundTrip verifies shape and reassembly
func TestSplit_StitchRoundTrip(t *testing.T) {
	g := New(12, 8, nil, prng.New("split"))
	g.Loss(-0.5, nil)
	want := g.Bools()

	rooms := g.Split(4, 2)
	if len(rooms) != 4 || len(rooms[0]) != 3 {
		t.Fatalf("got %dx%d rooms, want 3x4", len(rooms[0]), len(rooms))
	}
	for ry, row := range rooms {
		for rx, room := range row {
			if room.W != 4 || room.H != 2 {
				t.Errorf("room (%d,%d) is %dx%d", rx, ry, room.W, room.H)
			}
		}
	}
	if got := Stitch(rooms); !reflect.DeepEqual(got, want) {
		t.Error("stitched rooms differ from the source grid")
	}
}

func TestSplit_RoomsAreIndependent(t *testing.T) {
	g := New(6, 6, nil, prng.New("independent"))
	g.Loss(-0.5, nil)
	parent := *g.Rand()
	rooms := g.Split(3, 3)

	// Cells are copies
	rooms[0][0].Set(0, 0, !rooms[0][0].Open(0, 0))
	if rooms[0][0].Open(0, 0) == g.Open(0, 0) {
		t.Error("room cells alias the parent")
	}

	// Generators start from the parent state and evolve alone
	if *rooms[1][1].Rand() != parent {
		t.Error("room generator is not a clone of the parent")
	}
	rooms[0][1].Rand().Next()
	rooms[0][1].Loss(-1, nil)
	if *g.Rand() != parent {
		t.Error("room draws moved the parent generator")
	}
	if *rooms[1][0].Rand() != parent {
		t.Error("room draws moved a sibling generator")
	}
}

func TestSplit_ShiftsWalls(t *testing.T) {
	g := New(6, 4, func(x, y int) bool { return x == 4 && y == 3 }, prng.New("shift"))
	rooms := g.Split(3, 2)
	room := rooms[1][1]
	if !room.IsWall(1, 1) {
		t.Error("parent wall not visible at room (1,1)")
	}
	if room.IsWall(0, 0) {
		t.Error("unexpected wall at room (0,0)")
	}
	if !room.IsWall(3, 0) || !room.IsWall(-1, 0) {
		t.Error("room bounds not walls")
	}
}

func TestSplit_NotDivisiblePanics(t *testing.T) {
	for _, div := range [][2]int{{3, 5}, {4, 3}, {0, 5}, {5, -5}} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Split(%d, %d) did not panic", div[0], div[1])
					return
				}
				if msg, _ := r.(string); !strings.Contains(msg, "not divisible") {
					t.Errorf("unexpected panic %v", r)
				}
			}()
			New(10, 10, nil, prng.New("div")).Split(div[0], div[1])
		}()
	}
}

func TestStitch_RaggedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ragged stitch did not panic")
		}
	}()
	rng := prng.New("ragged")
	Stitch([][]*Grid{
		{New(2, 2, nil, rng), New(2, 2, nil, rng)},
		{New(2, 2, nil, rng)},
	})
}

func TestRender_Gap(t *testing.T) {
	g := gridFrom(t,
		".#..",
		"#.##",
	)
	got := Render(g.Split(2, 1), 1)
	want := ".# ..\n\n#. ##\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}
