// Command d20viz shows a live histogram of d20 rolls in a GPU window.
//
// Usage:
//
//	d20viz [-width 800] [-height 600] [-rolls 10000] [-seed 0] [-v]
//
// Press F5 to reset the counts and Escape to quit.
package main

import (
	"flag"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gogpu/d20hist"
	"github.com/gogpu/d20hist/integration/d20canvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
)

func main() {
	var (
		width   = flag.Int("width", 800, "initial window width")
		height  = flag.Int("height", 600, "initial window height")
		title   = flag.String("title", "d20 visualizer", "window title")
		rolls   = flag.Int("rolls", d20hist.DefaultRollsPerTick, "dice rolled per frame")
		seed    = flag.Uint64("seed", 0, "random seed (0 = nondeterministic)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)
	d20hist.SetLogger(logger)

	if *width < minSize || *height < minSize {
		logger.Error("window too small", "width", *width, "height", *height, "min", minSize)
		os.Exit(1)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(*title).
		WithSize(*width, *height).
		WithContinuousRender(true))

	opts := []d20hist.Option{d20hist.WithRollsPerTick(*rolls)}
	if *seed != 0 {
		opts = append(opts, d20hist.WithSeed(*seed))
	}
	state := d20hist.New(uint32(*width), uint32(*height), opts...)

	var (
		canvas *d20canvas.Canvas
		reset  atomic.Bool
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			// Minimized.
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			canvas, err = d20canvas.New(provider, state)
			if err != nil {
				logger.Error("create canvas", "err", err)
				app.Quit()
				return
			}
		}

		if err := canvas.Resize(w, h); err != nil {
			logger.Error("resize", "err", err)
			return
		}
		if reset.Swap(false) {
			if err := canvas.Reset(); err != nil {
				logger.Error("reset", "err", err)
			}
		}
		if err := canvas.Tick(); err != nil {
			logger.Error("tick", "err", err)
			return
		}
		if err := canvas.RenderTo(d20canvas.FromGPUContext(dc.AsTextureDrawer())); err != nil {
			logger.Error("render", "err", err)
			app.Quit()
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		switch actionFor(key) {
		case actionReset:
			reset.Store(true)
		case actionQuit:
			app.Quit()
		}
	})

	app.OnClose(func() {
		if canvas != nil {
			_ = canvas.Close()
		}
	})

	if err := app.Run(); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

// minSize is the smallest accepted window edge in pixels.
const minSize = 100

type action int

const (
	actionNone action = iota
	actionReset
	actionQuit
)

func actionFor(key gpucontext.Key) action {
	switch key {
	case gpucontext.KeyF5:
		return actionReset
	case gpucontext.KeyEscape:
		return actionQuit
	default:
		return actionNone
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
