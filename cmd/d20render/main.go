// Command d20render runs the d20 histogram headless and saves the final frame.
//
// Usage:
//
//	d20render [-width 800] [-height 600] [-ticks 100] [-seed 1] [-output d20.png]
//
// The output format follows the file extension: .png, .bmp, .tif or .tiff.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/d20hist"
	"github.com/gogpu/d20hist/internal/snapshot"
	"golang.org/x/text/language"
)

type config struct {
	width, height int
	ticks         int
	seed          uint64
	rolls         int
	scale         int
	output        string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 600, "image height")
	flag.IntVar(&cfg.ticks, "ticks", 100, "number of updates before the snapshot")
	flag.Uint64Var(&cfg.seed, "seed", 1, "random seed")
	flag.IntVar(&cfg.rolls, "rolls", d20hist.DefaultRollsPerTick, "dice rolled per update")
	flag.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for the saved image")
	flag.StringVar(&cfg.output, "output", "d20.png", "output file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	d20hist.SetLogger(logger)

	state, err := render(cfg)
	if err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}

	if err := snapshot.Summary(os.Stdout, state, language.English); err != nil {
		logger.Error("summary failed", "err", err)
		os.Exit(1)
	}
	logger.Info("snapshot saved", "output", cfg.output, "width", cfg.width*max(cfg.scale, 1), "height", cfg.height*max(cfg.scale, 1))
}

// render simulates cfg.ticks updates and saves the final frame.
func render(cfg config) (*d20hist.State, error) {
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	if _, err := snapshot.FormatFromPath(cfg.output); err != nil {
		return nil, err
	}

	state := d20hist.New(uint32(cfg.width), uint32(cfg.height),
		d20hist.WithSeed(cfg.seed),
		d20hist.WithRollsPerTick(cfg.rolls))
	for range cfg.ticks {
		state.Update()
	}

	frame := d20hist.NewFrame(cfg.width, cfg.height)
	state.DrawFrame(frame)

	if err := snapshot.Save(cfg.output, snapshot.Scale(frame.Image(), cfg.scale)); err != nil {
		return nil, fmt.Errorf("save %s: %w", cfg.output, err)
	}
	return state, nil
}
