package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/roomgen/direction"
	"github.com/lixenwraith/roomgen/m64"
	"github.com/lixenwraith/roomgen/prng"
)

// Smoothing schedule for the terrain pass
const (
	trimRounds = 5
	growRounds = 7
)

type Config struct {
	RoomsX, RoomsY int // Room arrangement
	RoomW, RoomH   int // Tiles per room

	// Seed text (empty = time-based, recorded in Result.Seed)
	Seed string

	// Noise rates for the room-connectivity maze and the terrain.
	// Positive closes openings, negative opens walls, 0 disables.
	CoarseLoss float64
	FineLoss   float64
}

// DefaultConfig returns a 4x3 arrangement of 15x11 rooms with light noise
func DefaultConfig() Config {
	return Config{
		RoomsX:     4,
		RoomsY:     3,
		RoomW:      15,
		RoomH:      11,
		CoarseLoss: 0.1,
		FineLoss:   0.05,
	}
}

// Validate reports a config Generate would reject
func (c Config) Validate() error {
	var errs []error
	if c.RoomsX < 1 || c.RoomsY < 1 {
		errs = append(errs, fmt.Errorf("room count %dx%d must be positive", c.RoomsX, c.RoomsY))
	}
	if c.RoomW < 1 || c.RoomH < 1 {
		errs = append(errs, fmt.Errorf("room size %dx%d must be positive", c.RoomW, c.RoomH))
	}
	for _, r := range []struct {
		name string
		v    float64
	}{{"coarse loss", c.CoarseLoss}, {"fine loss", c.FineLoss}} {
		if math.IsNaN(r.v) || r.v < -1 || r.v > 1 {
			errs = append(errs, fmt.Errorf("%s %v outside [-1, 1]", r.name, r.v))
		}
	}
	return errors.Join(errs...)
}

type Result struct {
	Seed  string
	State [2]uint64 // generator state before the first draw

	Coarse  *Grid     // (2*RoomsX+1) x (2*RoomsY+1) room connectivity
	Terrain *Grid     // full tile map
	Rooms   [][]*Grid // Terrain split per room, Rooms[ry][rx]
}

// Generate builds a room map seeded from cfg.Seed, or from the clock when empty.
// Panics on an invalid config.
func Generate(cfg Config) Result {
	var rng prng.Rand
	seed := cfg.Seed
	if seed == "" {
		rng, seed = prng.NewTime()
	} else {
		rng = prng.New(seed)
	}
	res := GenerateWith(cfg, rng)
	res.Seed = seed
	return res
}

// GenerateWith builds a room map from an explicit generator state, e.g. one
// restored with prng.FromState. cfg.Seed is copied to the result untouched.
func GenerateWith(cfg Config, rng prng.Rand) Result {
	if err := cfg.Validate(); err != nil {
		panic("maze: " + err.Error())
	}
	s0, s1 := rng.State()

	// 1. Room connectivity: one lattice cell per room, stepping stones are doors
	coarse := New(2*cfg.RoomsX+1, 2*cfg.RoomsY+1, nil, rng)
	coarse.Carve(nil)
	coarse.Loss(cfg.CoarseLoss, Uniform)

	// 2. Terrain maze gated by the doors, continuing the same stream
	terrain := New(cfg.RoomsX*cfg.RoomW, cfg.RoomsY*cfg.RoomH, RoomWall(coarse, cfg.RoomW, cfg.RoomH), coarse.rng)
	terrain.Carve(nil)

	// 3. Erode dead ends, roughen, round into blobs, erode the leftovers
	terrain.Trim(trimRounds)
	terrain.Loss(cfg.FineLoss, Uniform)
	terrain.Grow(growRounds)
	terrain.Trim(trimRounds)

	return Result{
		Seed:    cfg.Seed,
		State:   [2]uint64{s0, s1},
		Coarse:  coarse,
		Terrain: terrain,
		Rooms:   terrain.Split(cfg.RoomW, cfg.RoomH),
	}
}

// RoomWall derives the terrain obstacle predicate from a room connectivity
// maze. A tile on a room edge maps to the coarse cell in that edge's direction
// (corners to the diagonal, which is never open); interior tiles map to the
// room's own cell. The tile is a wall when that coarse cell is closed.
// The coarse cells are snapshotted.
func RoomWall(coarse *Grid, roomW, roomH int) WallFunc {
	cells := coarse.Bools()
	cw, ch := coarse.W, coarse.H
	return func(x, y int) bool {
		rx, lx := m64.DivMod(x, roomW)
		ry, ly := m64.DivMod(y, roomH)
		cx, cy := 2*rx+1, 2*ry+1
		if d, ok := edgeDir(lx, ly, roomW, roomH); ok {
			dx, dy := direction.Delta(d)
			cx, cy = cx+dx, cy+dy
		}
		if cx < 0 || cx >= cw || cy < 0 || cy >= ch {
			return true
		}
		return !cells[cy][cx]
	}
}

// edgeDir classifies a room-local tile; interior tiles report false
func edgeDir(lx, ly, w, h int) (direction.Dir, bool) {
	return direction.FromDelta(edgeStep(lx, w), edgeStep(ly, h))
}

func edgeStep(l, n int) int {
	switch l {
	case 0:
		return -1
	case n - 1:
		return 1
	}
	return 0
}
