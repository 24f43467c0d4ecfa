// Command d20term shows a live histogram of d20 rolls in the terminal.
//
// Usage:
//
//	d20term [-fps 30] [-rolls 10000] [-seed 0] [-v]
//
// Press F5 or r to reset the counts; Escape, Ctrl-C or q to quit.
// Debug logs go to stderr, so redirect it when using -v.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/d20hist"
	"github.com/gogpu/d20hist/integration/d20term"
)

func main() {
	var (
		fps     = flag.Int("fps", 30, "frames per second")
		rolls   = flag.Int("rolls", d20hist.DefaultRollsPerTick, "dice rolled per frame")
		seed    = flag.Uint64("seed", 0, "random seed (0 = nondeterministic)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	d20hist.SetLogger(logger)

	if *fps <= 0 {
		logger.Error("invalid frame rate", "fps", *fps)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("create screen", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("init screen", "err", err)
		os.Exit(1)
	}

	opts := []d20hist.Option{d20hist.WithRollsPerTick(*rolls)}
	if *seed != 0 {
		opts = append(opts, d20hist.WithSeed(*seed))
	}
	r, err := d20term.New(screen, d20hist.New(1, 1, opts...))
	if err != nil {
		screen.Fini()
		logger.Error("create renderer", "err", err)
		os.Exit(1)
	}

	run(screen, r, time.Second/time.Duration(*fps))
	screen.Fini()
}

// run ticks and renders until a quit key arrives.
func run(screen tcell.Screen, r *d20term.Renderer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch actionFor(ev) {
				case actionReset:
					r.Reset()
				case actionQuit:
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				r.Sync()
			}

		case <-ticker.C:
			r.Tick()
			r.Render()
		}
	}
}

type action int

const (
	actionNone action = iota
	actionReset
	actionQuit
)

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyF5:
		return actionReset
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return actionReset
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}
