package d20hist

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/d20hist/internal/assert"
)

// Frame is an owned RGBA pixel buffer sized to a canvas.
//
// Pixels are stored row-major, 4 bytes per pixel, first row at the top, which
// is the layout Draw writes and image.RGBA reads. Frame implements
// image.Image.
type Frame struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewFrame creates a frame with the given dimensions.
// It panics if width or height is not positive.
func NewFrame(width, height int) *Frame {
	assert.That(width > 0 && height > 0, "invalid frame size: width=%d, height=%d", width, height)
	return &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Size returns width and height as a convenience.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Data returns the raw pixel data (RGBA format).
// The slice aliases the frame and is invalidated by Resize.
func (f *Frame) Data() []uint8 {
	return f.data
}

// Resize changes the frame dimensions, reusing the backing array when it is
// large enough. Pixel contents are undefined afterwards; draw before reading.
// It panics if width or height is not positive.
func (f *Frame) Resize(width, height int) {
	assert.That(width > 0 && height > 0, "invalid frame size: width=%d, height=%d", width, height)
	if f.width == width && f.height == height {
		return
	}

	n := width * height * 4
	if cap(f.data) >= n {
		f.data = f.data[:n]
	} else {
		f.data = make([]uint8, n)
	}
	f.width = width
	f.height = height
}

// Image returns an image.RGBA view of the frame that shares its memory.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.data,
		Stride: f.width * 4,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}

// RGBAAt returns the color of a single pixel.
// Out-of-bounds coordinates return the zero color.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := (y*f.width + x) * 4
	return color.RGBA{R: f.data[i+0], G: f.data[i+1], B: f.data[i+2], A: f.data[i+3]}
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// EncodePNG writes the frame to w in PNG format.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := f.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
