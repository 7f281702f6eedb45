package main

import (
	"flag"
	"fmt"
	"io"
	rand2 "math/rand/v2"
	"os"
	"testing"

	"github.com/lixenwraith/roomgen/maze"
	"github.com/lixenwraith/roomgen/prng"
)

// benchmark is one named stage timed with testing.Benchmark
type benchmark struct {
	name  string
	calls int // inner calls per iteration, for the per-call column
	fn    func(b *testing.B)
}

func rngBenchmarks(n, bound int) []benchmark {
	return []benchmark{
		{"prng.Rand.Next", n, func(b *testing.B) {
			rng := prng.New("bench")
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = rng.Next()
				}
			}
		}},
		{"prng.Rand.Intn", n, func(b *testing.B) {
			rng := prng.New("bench")
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = rng.Intn(bound)
				}
			}
		}},
		{"prng.Rand.Float64", n, func(b *testing.B) {
			rng := prng.New("bench")
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = rng.Float64()
				}
			}
		}},
		{"math/rand/v2.PCG.IntN", n, func(b *testing.B) {
			rng := rand2.New(rand2.NewPCG(12345, 67890))
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = rng.IntN(bound)
				}
			}
		}},
	}
}

// stageBenchmarks times each generation stage on a terrain sized like cfg
func stageBenchmarks(cfg maze.Config) []benchmark {
	w, h := cfg.RoomsX*cfg.RoomW, cfg.RoomsY*cfg.RoomH
	carved := func() *maze.Grid {
		g := maze.New(w, h, nil, prng.New("bench"))
		g.Carve(nil)
		return g
	}

	return []benchmark{
		{"Carve", 1, func(b *testing.B) {
			for b.Loop() {
				carved()
			}
		}},
		{"Trim(5)", 1, func(b *testing.B) {
			g := carved()
			for b.Loop() {
				g.Trim(5)
			}
		}},
		{"Grow(7)", 1, func(b *testing.B) {
			g := carved()
			for b.Loop() {
				g.Grow(7)
			}
		}},
		{"Loss", 1, func(b *testing.B) {
			g := carved()
			for b.Loop() {
				g.Loss(0.05, maze.Uniform)
			}
		}},
		{"Split", 1, func(b *testing.B) {
			g := carved()
			for b.Loop() {
				_ = g.Split(cfg.RoomW, cfg.RoomH)
			}
		}},
		{"Generate", 1, func(b *testing.B) {
			c := cfg
			c.Seed = "bench"
			for b.Loop() {
				_ = maze.Generate(c)
			}
		}},
	}
}

func report(out io.Writer, title string, benchmarks []benchmark) {
	fmt.Fprintf(out, "%s\n\n", title)
	fmt.Fprintf(out, "%-28s %14s %12s\n", "Name", "ns/op", "ns/call")
	fmt.Fprintln(out, "--------------------------------------------------------")

	for _, bm := range benchmarks {
		result := testing.Benchmark(bm.fn)
		if result.N == 0 {
			fmt.Fprintf(out, "%-28s %14s\n", bm.name, "failed")
			continue
		}
		nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
		fmt.Fprintf(out, "%-28s %11.1f ns %9.2f ns\n", bm.name, nsPerOp, nsPerOp/float64(bm.calls))
	}
	fmt.Fprintln(out)
}

func main() {
	roomsX := flag.Int("rooms-x", 4, "rooms across")
	roomsY := flag.Int("rooms-y", 3, "rooms down")
	roomW := flag.Int("room-w", 15, "room width")
	roomH := flag.Int("room-h", 11, "room height")
	calls := flag.Int("calls", 100, "generator calls per iteration")
	flag.Parse()

	cfg := maze.DefaultConfig()
	cfg.RoomsX, cfg.RoomsY, cfg.RoomW, cfg.RoomH = *roomsX, *roomsY, *roomW, *roomH
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	report(os.Stdout, fmt.Sprintf("Generator: %d calls per iteration, bound=1000", *calls), rngBenchmarks(*calls, 1000))
	report(os.Stdout, fmt.Sprintf("Stages: %dx%d rooms of %dx%d", cfg.RoomsX, cfg.RoomsY, cfg.RoomW, cfg.RoomH), stageBenchmarks(cfg))

	// Same seed, same stream
	fmt.Println("Stream check (seed=bench, 5 values, bound=100):")
	a, b := prng.New("bench"), prng.New("bench")
	fmt.Print("  first:  ")
	for i := 0; i < 5; i++ {
		fmt.Printf("%3d ", a.Intn(100))
	}
	fmt.Print("\n  second: ")
	for i := 0; i < 5; i++ {
		fmt.Printf("%3d ", b.Intn(100))
	}
	fmt.Println()
}
