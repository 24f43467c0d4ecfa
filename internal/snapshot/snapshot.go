// Package snapshot writes histogram frames to image files and prints
// per-face summaries.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/d20hist"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

// String returns the conventional extension of the format without the dot.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// keeping bar edges sharp. Factors below 2 return img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save encodes img to path, choosing the format from the extension.
func Save(path string, img image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Encode(f, img, format)
}

// Summary prints one line per face with locale-grouped counts, marking the
// winning and losing faces, followed by the total.
func Summary(w io.Writer, s *d20hist.State, tag language.Tag) error {
	p := message.NewPrinter(tag)
	winning, hasWinner := s.WinningFace()
	losing, hasLoser := s.LosingFace()

	for face, count := range s.Counts() {
		mark := ""
		switch {
		case hasWinner && face == winning:
			mark = " (most)"
		case hasLoser && face == losing:
			mark = " (least)"
		}
		if _, err := p.Fprintf(w, "%2d: %d%s\n", face+1, count, mark); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "total: %d after %d ticks\n", s.Total(), s.Ticks())
	return err
}
