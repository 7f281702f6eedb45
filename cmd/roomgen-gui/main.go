//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/roomgen/config"
	"github.com/lixenwraith/roomgen/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 6, "pixels per tile")
	tps := flag.Int("tps", 30, "ticks per second")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if _, err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	game := newGame(cfg, max(1, *scale))
	w, h := game.layout.size()

	ebiten.SetWindowTitle("roomgen")
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(w*game.scale, h*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("run game", "err", err)
		os.Exit(1)
	}
}
