// Package direction maps the eight compass directions to grid deltas.
// Y grows southward, matching row-major [y][x] grids.
package direction

// Dir is a compass direction
type Dir uint8

const (
	N Dir = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Count is the number of directions
const Count = 8

var (
	// Cardinal is the 4-neighborhood
	Cardinal = [4]Dir{N, E, S, W}
	// All is the 8-neighborhood, clockwise from N
	All = [Count]Dir{N, NE, E, SE, S, SW, W, NW}
)

var deltas = [Count][2]int{
	N:  {0, -1},
	NE: {1, -1},
	E:  {1, 0},
	SE: {1, 1},
	S:  {0, 1},
	SW: {-1, 1},
	W:  {-1, 0},
	NW: {-1, -1},
}

var names = [Count]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the unit step for d
func Delta(d Dir) (dx, dy int) {
	v := deltas[d]
	return v[0], v[1]
}

// FromDelta inverts Delta. Components outside [-1, 1] or (0, 0) report false.
func FromDelta(dx, dy int) (Dir, bool) {
	for _, d := range All {
		if deltas[d][0] == dx && deltas[d][1] == dy {
			return d, true
		}
	}
	return 0, false
}

// Opposite returns the direction rotated by 180 degrees
func Opposite(d Dir) Dir { return (d + Count/2) % Count }

// Cardinal reports whether d is one of N, E, S, W
func (d Dir) Cardinal() bool { return d%2 == 0 }

func (d Dir) String() string {
	if d >= Count {
		return "?"
	}
	return names[d]
}
