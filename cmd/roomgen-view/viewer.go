package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roomgen/audio"
	"github.com/lixenwraith/roomgen/config"
	"github.com/lixenwraith/roomgen/maze"
	"github.com/lixenwraith/roomgen/store"
)

const (
	lossStep    = 0.05
	saveTimeout = 2 * time.Second
)

var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleOpen    = styleBase.Foreground(tcell.ColorDarkOliveGreen)
	styleClosed  = styleBase.Foreground(tcell.ColorSaddleBrown)
	styleDoor    = styleBase.Foreground(tcell.ColorYellow)
	styleStatus  = styleBase.Reverse(true)
	styleMessage = styleBase.Foreground(tcell.ColorAqua)
)

const (
	glyphOpen   = '·'
	glyphClosed = '█'
)

type viewer struct {
	screen tcell.Screen
	cfg    config.Config
	res    maze.Result

	showCoarse bool
	message    string

	sound *audio.SoundManager
	db    *store.Store
}

func newViewer(screen tcell.Screen, cfg config.Config) *viewer {
	screen.SetStyle(styleBase)
	return &viewer{screen: screen, cfg: cfg}
}

// regenerate builds a new map from seed; empty seed uses the clock
func (v *viewer) regenerate(seed string) {
	mcfg := v.cfg.Maze()
	mcfg.Seed = seed
	start := time.Now()
	v.res = maze.Generate(mcfg)
	v.cfg.Seed = v.res.Seed
	slog.Info("generated", "seed", v.res.Seed, "took", time.Since(start))

	if v.sound != nil {
		t := v.res.Terrain
		v.sound.PlayChime(float64(t.Count()) / float64(t.W*t.H))
	}
}

// nextSeed derives a follow-up seed from the terrain generator so that
// stepping through maps is itself reproducible
func (v *viewer) nextSeed() string {
	rng := *v.res.Terrain.Rand()
	return rng.Hex()
}

func (v *viewer) run(ctx context.Context) {
	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventChan:
			if !ok || !v.handle(ev) {
				return
			}
			v.draw()
		}
	}
}

// handle applies one event; false means quit
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	v.message = ""
	switch r {
	case 'q':
		return false
	case 'r':
		v.regenerate("")
	case 'n':
		v.regenerate(v.nextSeed())
	case 'c':
		v.showCoarse = !v.showCoarse
	case '+', '=':
		v.adjustLoss(lossStep)
	case '-':
		v.adjustLoss(-lossStep)
	case 's':
		v.save()
	}
	return true
}

func (v *viewer) adjustLoss(delta float64) {
	v.cfg.FineLoss = math.Round(max(-1, min(1, v.cfg.FineLoss+delta))*100) / 100
	v.regenerate(v.res.Seed)
}

func (v *viewer) save() {
	if v.db == nil {
		v.message = "no snapshot store"
		if v.sound != nil {
			v.sound.PlayError()
		}
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	name := v.res.Seed
	if err := v.db.Save(ctx, store.FromResult(name, v.cfg.Maze(), v.res)); err != nil {
		slog.Error("save failed", "name", name, "err", err)
		v.message = "save failed: " + err.Error()
		if v.sound != nil {
			v.sound.PlayError()
		}
		return
	}
	v.message = fmt.Sprintf("saved %q", name)
}

// --- Drawing ---

func (v *viewer) draw() {
	v.screen.Clear()
	if v.showCoarse {
		v.drawGrid(v.res.Coarse, 0, 0, nil)
	} else {
		v.drawRooms()
	}
	v.drawStatus()
	v.screen.Show()
}

// drawRooms lays rooms out with one blank column and row between them
func (v *viewer) drawRooms() {
	for ry, row := range v.res.Rooms {
		for rx, room := range row {
			ox := rx * (room.W + 1)
			oy := ry * (room.H + 1)
			v.drawGrid(room, ox, oy, room)
		}
	}
}

// drawGrid paints g at (ox, oy). Open edge tiles of a room are doors.
func (v *viewer) drawGrid(g *maze.Grid, ox, oy int, room *maze.Grid) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			glyph, style := glyphClosed, styleClosed
			if g.Open(x, y) {
				glyph, style = glyphOpen, styleOpen
				if room != nil && (x == 0 || y == 0 || x == room.W-1 || y == room.H-1) {
					style = styleDoor
				}
			}
			v.screen.SetContent(ox+x, oy+y, glyph, nil, style)
		}
	}
}

func (v *viewer) drawStatus() {
	w, h := v.screen.Size()
	if h == 0 {
		return
	}
	t := v.res.Terrain
	status := fmt.Sprintf(" seed %s | loss %.2f/%.2f | open %d%% | r:new n:next c:coarse +/-:loss s:save q:quit ",
		v.res.Seed, v.cfg.CoarseLoss, v.cfg.FineLoss, 100*t.Count()/(t.W*t.H))
	v.drawText(0, h-1, w, status, styleStatus)
	if v.message != "" && h > 1 {
		v.drawText(0, h-2, w, v.message, styleMessage)
	}
}

func (v *viewer) drawText(x, y, maxW int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= maxW {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
