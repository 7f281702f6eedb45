package maze

import (
	"fmt"
	"strings"
)

// Split tiles the grid into subW x subH rooms, indexed rooms[ry][rx]. Each room
// owns a copy of its rows, a clone of the parent generator as it stands now,
// and the parent's wall predicate shifted into room coordinates.
// Panics unless both dimensions divide evenly.
func (g *Grid) Split(subW, subH int) [][]*Grid {
	if subW <= 0 || subH <= 0 || g.W%subW != 0 || g.H%subH != 0 {
		panic(fmt.Sprintf("maze: split %dx%d by %dx%d: not divisible", g.W, g.H, subW, subH))
	}
	nx, ny := g.W/subW, g.H/subH
	rooms := make([][]*Grid, ny)
	for ry := range rooms {
		rooms[ry] = make([]*Grid, nx)
		for rx := range rooms[ry] {
			ox, oy := rx*subW, ry*subH
			room := New(subW, subH, g.shiftedWall(ox, oy), g.rng.Clone())
			for y := 0; y < subH; y++ {
				copy(room.cells[y], g.cells[oy+y][ox:ox+subW])
			}
			rooms[ry][rx] = room
		}
	}
	return rooms
}

func (g *Grid) shiftedWall(ox, oy int) WallFunc {
	return func(x, y int) bool { return g.IsWall(x+ox, y+oy) }
}

// Stitch reassembles rooms produced by Split into one cell array.
// Panics on a ragged arrangement.
func Stitch(rooms [][]*Grid) [][]bool {
	if len(rooms) == 0 || len(rooms[0]) == 0 {
		return nil
	}
	subW, subH := rooms[0][0].W, rooms[0][0].H
	nx := len(rooms[0])
	out := makeCells(nx*subW, len(rooms)*subH)
	for ry, row := range rooms {
		if len(row) != nx {
			panic(fmt.Sprintf("maze: stitch row %d has %d rooms, want %d", ry, len(row), nx))
		}
		for rx, room := range row {
			if room.W != subW || room.H != subH {
				panic(fmt.Sprintf("maze: stitch room (%d,%d) is %dx%d, want %dx%d", rx, ry, room.W, room.H, subW, subH))
			}
			for y, cells := range room.cells {
				copy(out[ry*subH+y][rx*subW:], cells)
			}
		}
	}
	return out
}

// Render dumps a room arrangement with gap blank columns and rows between rooms
func Render(rooms [][]*Grid, gap int) string {
	var sb strings.Builder
	spacer := strings.Repeat(" ", gap)
	for ry, row := range rooms {
		if ry > 0 {
			for i := 0; i < gap; i++ {
				sb.WriteByte('\n')
			}
		}
		if len(row) == 0 {
			continue
		}
		for y := 0; y < row[0].H; y++ {
			for rx, room := range row {
				if rx > 0 {
					sb.WriteString(spacer)
				}
				writeRow(&sb, room.cells[y])
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
