// Package d20hist simulates a twenty-sided die and renders a live histogram
// of its rolls into a raw RGBA pixel buffer.
//
// # Overview
//
// A [State] owns twenty running counters, one per face, and the column layout
// derived from the canvas size. Each call to [State.Update] rolls a batch of
// dice (10,000 by default) and, when the tallest bar would overflow the
// canvas, shrinks every counter in proportion to its size. [State.Draw]
// rasterizes the counters into a pixel buffer as twenty vertical bars that
// grow from the bottom edge, one pixel per unit count.
//
// # Quick Start
//
//	s := d20hist.New(800, 600)
//	frame := d20hist.NewFrame(800, 600)
//
//	for range 60 {
//	    s.Update()
//	}
//	s.DrawFrame(frame)
//	_ = frame.SavePNG("histogram.png")
//
// # Harness Contract
//
// The package does no windowing or event handling. A harness owns the pixel
// buffer and drives the state once per tick:
//
//   - resize: [State.SetSize] with the new canvas size, then resize the buffer
//   - tick: [State.Update]
//   - redraw: [State.Draw] with a buffer of exactly 4*width*height bytes
//   - reset: [State.Reset]
//
// Ready-made harnesses live in integration/d20canvas (gogpu windows),
// integration/d20term (tcell terminals) and cmd/d20render (image files).
//
// # Coloring
//
// Bars use a teal [GradientPalette]. The face with the highest count is drawn
// in the theme's win color and the face with the lowest count in its lose
// color; ties go to the lowest face. See [Theme] and [WithTheme].
//
// # Determinism
//
// Rolls come from a [Roller]. [WithSeed] and [WithRoller] make Update fully
// reproducible, which the tests rely on.
package d20hist
