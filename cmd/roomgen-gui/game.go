//go:build ebiten

package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/roomgen/config"
	"github.com/lixenwraith/roomgen/maze"
)

// Game adapts the room generator to the ebiten.Game interface.
type Game struct {
	cfg    config.Config
	res    maze.Result
	layout roomLayout
	scale  int

	img *ebiten.Image
	buf []byte

	showHUD bool
	dirty   bool
}

func newGame(cfg config.Config, scale int) *Game {
	g := &Game{cfg: cfg, scale: scale, showHUD: true}
	g.layout = roomLayout{roomsX: cfg.RoomsX, roomsY: cfg.RoomsY, roomW: cfg.RoomW, roomH: cfg.RoomH, gap: 1}
	w, h := g.layout.size()
	g.img = ebiten.NewImage(w, h)
	g.buf = make([]byte, 4*w*h)
	g.regenerate(cfg.Seed)
	return g
}

func (g *Game) regenerate(seed string) {
	mcfg := g.cfg.Maze()
	mcfg.Seed = seed
	g.res = maze.Generate(mcfg)
	g.cfg.Seed = g.res.Seed
	g.dirty = true
	slog.Debug("generated", "seed", g.res.Seed)
}

// Update handles key input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate("")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		rng := *g.res.Terrain.Rand()
		g.regenerate(rng.Hex())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	return nil
}

// Draw renders the rooms, re-uploading pixels only after a regeneration.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.layout.fill(g.buf, g.res.Rooms)
		g.img.WritePixels(g.buf)
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	if g.showHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %s\nr:new n:next h:hud q:quit", g.res.Seed))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.size()
	return w * g.scale, h * g.scale
}
