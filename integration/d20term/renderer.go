// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package d20term

import (
	"context"
	"errors"
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/d20hist"
)

// HalfBlock is the rune drawn in every cell.
const HalfBlock = '▀'

var (
	// ErrNilScreen is returned when a nil tcell.Screen is passed.
	ErrNilScreen = errors.New("d20term: nil screen")

	// ErrNilState is returned when a nil histogram state is passed.
	ErrNilState = errors.New("d20term: nil state")
)

// Renderer draws a histogram State onto a tcell.Screen.
type Renderer struct {
	screen tcell.Screen
	state  *d20hist.State
	frame  *d20hist.Frame
}

// New creates a Renderer and sizes state to the screen.
// The screen must already be initialized.
func New(screen tcell.Screen, state *d20hist.State) (*Renderer, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if state == nil {
		return nil, ErrNilState
	}

	w, h := state.Size()
	r := &Renderer{
		screen: screen,
		state:  state,
		frame:  d20hist.NewFrame(int(w), int(h)),
	}
	r.Sync()
	return r, nil
}

// State returns the histogram state driven by the renderer.
func (r *Renderer) State() *d20hist.State {
	return r.state
}

// Sync resizes the state and frame to match the screen.
// It reports whether the pixel size changed. A screen with no cells leaves
// the previous size in place.
func (r *Renderer) Sync() bool {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return false
	}

	width, height := cols, rows*2
	if w, h := r.frame.Size(); w == width && h == height {
		return false
	}

	r.frame.Resize(width, height)
	r.state.SetSize(uint32(width), uint32(height))

	d20hist.Logger().LogAttrs(context.Background(), slog.LevelInfo, "d20term: resized",
		slog.Int("cols", cols),
		slog.Int("rows", rows))
	return true
}

// Tick advances the simulation by one update.
func (r *Renderer) Tick() {
	r.state.Update()
}

// Reset zeroes the histogram counts.
func (r *Renderer) Reset() {
	r.state.Reset()
}

// Render rasterizes the state and shows it on the screen.
func (r *Renderer) Render() {
	r.Sync()
	r.state.DrawFrame(r.frame)

	cols, rows := r.screen.Size()
	width, height := r.frame.Size()
	cols = min(cols, width)
	rows = min(rows, height/2)

	for row := range rows {
		for col := range cols {
			upper := r.frame.RGBAAt(col, 2*row)
			lower := r.frame.RGBAAt(col, 2*row+1)
			style := tcell.StyleDefault.Foreground(toColor(upper)).Background(toColor(lower))
			r.screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}
	r.screen.Show()
}

// toColor converts an opaque pixel to a true-color tcell color.
func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
