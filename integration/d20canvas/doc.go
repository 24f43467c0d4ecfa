// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package d20canvas presents a d20hist histogram in a gogpu GPU window.
//
// The data flow per frame is:
//
//	d20hist.State (Update) -> Frame (CPU, RGBA) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas owns the pixel buffer the rasterizer writes into and manages the
// texture upload pipeline:
//
//   - Tick advances the simulation and marks the canvas dirty
//   - Resize keeps the frame and the state layout in step with the window
//   - RenderTo redraws the frame if dirty, uploads it, and draws the texture
//
// # Usage
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if canvas == nil {
//	        canvas, _ = d20canvas.New(app.GPUContextProvider(), d20hist.New(w, h))
//	    }
//	    _ = canvas.Resize(dc.Width(), dc.Height())
//	    _ = canvas.Tick()
//	    _ = canvas.RenderTo(d20canvas.FromGPUContext(dc.AsTextureDrawer()))
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Drive it from the draw callback and
// hand input events to it through a flag or channel.
//
// # Integration Without Window Dependencies
//
// Canvas talks to the GPU through the small TextureDrawer interface.
// FromGPUContext adapts a gpucontext.TextureDrawer, so the package never
// imports gogpu itself and tests can substitute an in-memory drawer.
package d20canvas
