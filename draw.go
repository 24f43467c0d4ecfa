package d20hist

import (
	"image/color"

	"github.com/gogpu/d20hist/internal/assert"
)

// Draw rasterizes the histogram into buf.
//
// buf holds width*height RGBA pixels, 4 bytes each, in row-major order with
// the first row at the top of the image. Bars grow upward from the bottom
// row. Within a column, counts fill pixels bottom-up and left to right, one
// pixel per unit, so a column of width w shows count/w full rows.
//
// Each pixel gets exactly one color: the theme background outside bars, the
// theme win color for the winning face, the theme lose color for the losing
// face, and the face's palette color otherwise. Draw does not modify s and
// does not allocate.
//
// Draw panics if len(buf) != 4*width*height for the current size.
func (s *State) Draw(buf []byte) {
	assert.That(uint64(len(buf)) == 4*uint64(s.width)*uint64(s.height),
		"buffer length %d does not match %dx%d canvas", len(buf), s.width, s.height)
	s.rasterize(buf)
}

// DrawFrame rasterizes the histogram into f.
// It panics if f's size differs from the state's size.
func (s *State) DrawFrame(f *Frame) {
	assert.That(f.Width() == int(s.width) && f.Height() == int(s.height),
		"frame is %dx%d, state is %dx%d", f.Width(), f.Height(), s.width, s.height)
	s.rasterize(f.Data())
}

// rasterize writes every pixel of buf in a single pass over the rows.
func (s *State) rasterize(buf []byte) {
	width := uint64(s.width)
	height := uint64(s.height)
	cw := uint64(s.columnWidth)
	left := uint64(s.leftMargin)
	cutoff := left + cw*Faces
	bg := s.theme.Background

	var bars [Faces]color.RGBA
	for face := range bars {
		bars[face] = s.barColor(face)
	}

	stride := width * 4
	for row := range height {
		// Logical y counts from the bottom row of the image.
		y := height - 1 - row
		line := buf[row*stride : (row+1)*stride]

		for x := range width {
			c := bg
			if x >= left && x < cutoff {
				face := (x - left) / cw
				barX := x - left - face*cw
				if y*cw+barX+1 <= s.counts[face] {
					c = bars[face]
				}
			}
			o := x * 4
			line[o+0] = c.R
			line[o+1] = c.G
			line[o+2] = c.B
			line[o+3] = c.A
		}
	}
}

// barColor returns the color of face's highlighted pixels.
// The winner takes precedence over the loser when both are the same face.
func (s *State) barColor(face int) color.RGBA {
	switch face {
	case s.winning:
		return s.theme.Win
	case s.losing:
		return s.theme.Lose
	default:
		return s.palette[face]
	}
}
