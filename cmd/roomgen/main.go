package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/roomgen/config"
	"github.com/lixenwraith/roomgen/logging"
	"github.com/lixenwraith/roomgen/maze"
	"github.com/lixenwraith/roomgen/store"
)

type options struct {
	cfg config.Config

	interactive bool
	stitch      bool
	gap         int
	hex         bool
	stats       bool

	save string
	load string
	list bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := options{cfg: cfg}
	opts.cfg.Bind(flag.CommandLine)
	flag.BoolVar(&opts.interactive, "i", false, "prompt for settings in a loop")
	flag.BoolVar(&opts.stitch, "stitch", false, "print one combined grid instead of separated rooms")
	flag.IntVar(&opts.gap, "gap", 1, "blank columns/rows between rooms")
	flag.BoolVar(&opts.hex, "hex", false, "print a fingerprint of the terrain generator state")
	flag.BoolVar(&opts.stats, "stats", false, "print per-room statistics")
	flag.StringVar(&opts.save, "save", "", "store the generated map under this name")
	flag.StringVar(&opts.load, "load", "", "replay a stored map by name")
	flag.BoolVar(&opts.list, "list", false, "list stored maps")
	flag.Parse()

	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if _, err := logging.Setup(os.Stderr, opts.cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()
	if opts.interactive {
		err = interactive(ctx, opts, os.Stdin, os.Stdout)
	} else {
		err = run(ctx, opts, os.Stdout)
	}
	if err != nil {
		slog.Error("roomgen failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	var db *store.Store
	if opts.save != "" || opts.load != "" || opts.list {
		var err error
		if db, err = store.Open(opts.cfg.DBPath); err != nil {
			return err
		}
		defer db.Close()
	}

	if opts.list {
		return listSnapshots(ctx, db, out)
	}

	mcfg := opts.cfg.Maze()
	var res maze.Result
	if opts.load != "" {
		snap, err := db.Load(ctx, opts.load)
		if err != nil {
			return err
		}
		mcfg = snap.Config
		res = snap.Replay()
		slog.Debug("replayed snapshot", "name", snap.Name, "seed", snap.Config.Seed)
	} else {
		start := time.Now()
		res = maze.Generate(mcfg)
		slog.Debug("generated", "seed", res.Seed, "took", time.Since(start),
			"rooms", fmt.Sprintf("%dx%d", mcfg.RoomsX, mcfg.RoomsY))
	}

	fmt.Fprintf(out, "seed: %s\n", res.Seed)
	if opts.hex {
		// Hex advances the stream, so draw from a copy
		rng := *res.Terrain.Rand()
		fmt.Fprintf(out, "state: %016x %016x\nnext: %s\n", res.State[0], res.State[1], rng.Hex())
	}
	if opts.stitch {
		fmt.Fprint(out, res.Terrain.String())
	} else {
		fmt.Fprint(out, maze.Render(res.Rooms, opts.gap))
	}
	if opts.stats {
		writeStats(out, res.Rooms)
	}

	if opts.save != "" {
		if err := db.Save(ctx, store.FromResult(opts.save, mcfg, res)); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %q to %s\n", opts.save, opts.cfg.DBPath)
	}
	return nil
}

func listSnapshots(ctx context.Context, db *store.Store, out io.Writer) error {
	snaps, err := db.List(ctx)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Fprintln(out, "no stored maps")
		return nil
	}
	for _, s := range snaps {
		c := s.Config
		fmt.Fprintf(out, "%-16s %dx%d rooms of %dx%d  seed=%q  loss=%g/%g  %s\n",
			s.Name, c.RoomsX, c.RoomsY, c.RoomW, c.RoomH, c.Seed, c.CoarseLoss, c.FineLoss,
			s.CreatedAt.Format(time.DateTime))
	}
	return nil
}

type roomStats struct {
	open, regions int
	spawn         maze.Point
	hasSpawn      bool
}

// writeStats analyzes rooms concurrently; each room draws only from its own generator
func writeStats(out io.Writer, rooms [][]*maze.Grid) {
	stats := make([][]roomStats, len(rooms))
	var wg sync.WaitGroup
	for ry, row := range rooms {
		stats[ry] = make([]roomStats, len(row))
		for rx, room := range row {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s := roomStats{open: room.Count(), regions: room.Regions()}
				s.spawn, s.hasSpawn = room.RandomOpen()
				stats[ry][rx] = s
			}()
		}
	}
	wg.Wait()

	for ry, row := range stats {
		for rx, s := range row {
			room := rooms[ry][rx]
			spawn := "-"
			if s.hasSpawn {
				spawn = fmt.Sprintf("(%d,%d)", s.spawn.X, s.spawn.Y)
			}
			fmt.Fprintf(out, "room %d,%d: open %d/%d regions %d spawn %s\n",
				rx, ry, s.open, room.W*room.H, s.regions, spawn)
		}
	}
}

// --- Interactive mode ---

func interactive(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprintln(out, "\n=== ROOM TERRAIN GENERATOR ===")
		c := &opts.cfg
		c.RoomsX = getInt(reader, out, "Rooms across", c.RoomsX)
		c.RoomsY = getInt(reader, out, "Rooms down", c.RoomsY)
		c.RoomW = getInt(reader, out, "Room width", c.RoomW)
		c.RoomH = getInt(reader, out, "Room height", c.RoomH)
		c.Seed = getString(reader, out, "Seed (blank = clock)", "")
		c.CoarseLoss = getFloat(reader, out, "Coarse loss [-1, 1]", c.CoarseLoss)
		c.FineLoss = getFloat(reader, out, "Fine loss [-1, 1]", c.FineLoss)

		if err := c.Validate(); err != nil {
			fmt.Fprintln(out, err)
		} else if err := run(ctx, opts, out); err != nil {
			return err
		}

		fmt.Fprint(out, "\nGenerate another? [Y/n]: ")
		cont, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			return nil
		}
	}
}

func getString(r *bufio.Reader, out io.Writer, prompt, def string) string {
	fmt.Fprintf(out, "%s (default %q): ", prompt, def)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func getInt(r *bufio.Reader, out io.Writer, prompt string, def int) int {
	s := getString(r, out, prompt, strconv.Itoa(def))
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, out io.Writer, prompt string, def float64) float64 {
	s := getString(r, out, prompt, strconv.FormatFloat(def, 'g', -1, 64))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	return max(-1, min(1, v))
}
