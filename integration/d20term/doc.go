// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package d20term presents a d20hist histogram on a terminal through tcell.
//
// Each terminal cell shows two vertically stacked pixels using the upper half
// block rune: the foreground paints the upper pixel and the background paints
// the lower one. A screen of cols x rows cells is therefore a cols x 2*rows
// pixel canvas.
//
// # Usage
//
//	screen, _ := tcell.NewScreen()
//	_ = screen.Init()
//	r, _ := d20term.New(screen, d20hist.New(1, 1))
//	for range ticker.C {
//	    r.Tick()
//	    r.Render()
//	}
//
// Renderer is NOT safe for concurrent use. Feed key events to the goroutine
// that calls Tick and Render.
package d20term
