package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/roomgen/audio"
	"github.com/lixenwraith/roomgen/config"
	"github.com/lixenwraith/roomgen/logging"
	"github.com/lixenwraith/roomgen/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Bind(flag.CommandLine)
	sound := flag.Bool("sound", false, "play a chime for every generated map")
	logPath := flag.String("log", "", "log file (default: discard)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The screen owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := logging.OpenFile(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	if _, err := logging.Setup(logOut, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mROOMGEN-VIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	v := newViewer(screen, cfg)

	if *sound {
		v.sound = audio.NewSoundManager()
		if err := v.sound.Initialize(); err != nil {
			// Non-fatal, the viewer works without sound
			slog.Warn("audio initialization failed", "err", err)
		}
		defer v.sound.Cleanup()
	}

	if db, err := store.Open(cfg.DBPath); err != nil {
		slog.Warn("snapshot store unavailable", "path", cfg.DBPath, "err", err)
	} else {
		v.db = db
		defer db.Close()
	}

	v.regenerate(cfg.Seed)
	v.run(context.Background())
	screen.Fini()
}
