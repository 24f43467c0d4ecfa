package d20hist

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(16, 9)
	if w, h := f.Size(); w != 16 || h != 9 {
		t.Errorf("Size() = (%d, %d), want (16, 9)", w, h)
	}
	if len(f.Data()) != 16*9*4 {
		t.Errorf("len(Data()) = %d, want %d", len(f.Data()), 16*9*4)
	}
	if f.Bounds() != image.Rect(0, 0, 16, 9) {
		t.Errorf("Bounds() = %v", f.Bounds())
	}
	if f.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not color.RGBAModel")
	}
}

func TestNewFrameInvalidPanics(t *testing.T) {
	expectPanic(t, "invalid frame size", func() { NewFrame(0, 10) })
	expectPanic(t, "invalid frame size", func() { NewFrame(10, -1) })
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(100, 100)
	backing := &f.Data()[0]

	f.Resize(50, 50)
	if w, h := f.Size(); w != 50 || h != 50 {
		t.Fatalf("Size() = (%d, %d), want (50, 50)", w, h)
	}
	if len(f.Data()) != 50*50*4 {
		t.Errorf("len(Data()) = %d, want %d", len(f.Data()), 50*50*4)
	}
	if &f.Data()[0] != backing {
		t.Error("shrinking Resize reallocated the buffer")
	}

	f.Resize(200, 100)
	if len(f.Data()) != 200*100*4 {
		t.Errorf("len(Data()) = %d after grow, want %d", len(f.Data()), 200*100*4)
	}
}

func TestFrameImageSharesMemory(t *testing.T) {
	f := NewFrame(4, 3)
	img := f.Image()

	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	img.SetRGBA(2, 1, want)

	if got := f.RGBAAt(2, 1); got != want {
		t.Errorf("RGBAAt(2, 1) = %v, want %v", got, want)
	}
	if got := f.At(2, 1); got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}
}

func TestFrameRGBAAtOutOfBounds(t *testing.T) {
	f := NewFrame(4, 3)
	for _, p := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		if got := f.RGBAAt(p.x, p.y); got != (color.RGBA{}) {
			t.Errorf("RGBAAt(%d, %d) = %v, want zero", p.x, p.y, got)
		}
	}
}

func TestFrameEncodePNG(t *testing.T) {
	s := New(40, 10)
	s.SetCount(3, 15)
	f := NewFrame(40, 10)
	s.DrawFrame(f)

	var buf bytes.Buffer
	if err := f.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != f.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", img.Bounds(), f.Bounds())
	}
	r, g, b, a := img.At(6, 9).RGBA()
	want := GradientPalette()[3]
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B || uint8(a>>8) != want.A {
		t.Errorf("decoded bar pixel = (%d, %d, %d, %d), want %v", r>>8, g>>8, b>>8, a>>8, want)
	}
}

func TestFrameSavePNG(t *testing.T) {
	f := NewFrame(8, 8)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	if err := f.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}
