package d20hist

import (
	"context"
	"log/slog"
	"math"
	"math/bits"

	"github.com/gogpu/d20hist/internal/assert"
)

const (
	// Faces is the number of faces on the simulated die.
	Faces = 20

	// DefaultRollsPerTick is the number of dice rolled by each Update.
	DefaultRollsPerTick = 10000

	// NoFace marks an unset winning or losing face.
	NoFace = -1
)

// State owns the numeric state of the histogram: one counter per face, the
// column layout derived from the canvas size, the current winning and losing
// faces, and the colors used to draw them.
//
// Face indices run from 0 to Faces-1; the face value shown on the die is the
// index plus one.
//
// A State is not safe for concurrent use. Harnesses call Update and Draw
// sequentially from one goroutine.
type State struct {
	counts  [Faces]uint64
	winning int
	losing  int

	width       uint32
	height      uint32
	columnWidth uint32
	leftMargin  uint32

	palette Palette
	theme   Theme

	roller       Roller
	rollsPerTick int
	ticks        uint64
}

// New creates a State for a canvas of the given size.
// All counts start at zero and the winning and losing faces are unset until
// the first Update.
//
// New panics if width or height is zero.
func New(width, height uint32, opts ...Option) *State {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &State{
		winning:      NoFace,
		losing:       NoFace,
		palette:      GradientPalette(),
		theme:        o.theme,
		roller:       o.roller,
		rollsPerTick: o.rollsPerTick,
	}
	s.SetSize(width, height)
	return s
}

// SetSize stores new canvas dimensions and recomputes the column layout.
//
// The column width is width/20, at least 1. The leftover pixels are split
// into a left margin that centers the 20 columns. Counts are not touched, and
// calling SetSize again with the same size is a no-op.
//
// SetSize panics if width or height is zero. Canvases narrower than 20 pixels
// are accepted but columns past the right edge are not drawn.
func (s *State) SetSize(width, height uint32) {
	assert.That(width > 0 && height > 0, "invalid size: width=%d, height=%d (both must be > 0)", width, height)

	s.width = width
	s.height = height
	s.columnWidth = max(width/Faces, 1)
	s.leftMargin = (width - min(width, s.columnWidth*Faces)) / 2

	if l, ok := debugEnabled(); ok {
		l.LogAttrs(context.Background(), slog.LevelDebug, "d20hist: layout",
			slog.Uint64("width", uint64(width)),
			slog.Uint64("height", uint64(height)),
			slog.Uint64("column_width", uint64(s.columnWidth)),
			slog.Uint64("left_margin", uint64(s.leftMargin)))
	}
}

// Update advances the simulation by one tick.
//
// It rolls the configured number of dice, re-ranks the faces, and shrinks all
// counts proportionally when the tallest bar no longer fits in its column.
// After Update returns, no count exceeds Capacity.
func (s *State) Update() {
	for range s.rollsPerTick {
		face := s.roller.IntN(Faces)
		assert.That(face >= 0 && face < Faces, "roller returned %d, want [0, %d)", face, Faces)
		s.counts[face]++
	}
	s.ticks++

	s.normalize(s.rankFaces())
}

// rankFaces records the faces with the highest and lowest counts and returns
// the highest count. Only a strict improvement moves a face, so ties resolve
// to the lowest index. When all counts are equal on a fresh State, both faces
// resolve to 0.
func (s *State) rankFaces() uint64 {
	minFound := uint64(math.MaxUint64)
	var maxFound uint64
	for face, count := range s.counts {
		if count > maxFound {
			maxFound = count
			s.winning = face
		}
		if count < minFound {
			minFound = count
			s.losing = face
		}
	}
	return maxFound
}

// normalize shrinks every count in proportion to its share of the capacity
// when maxFound overflows it.
//
// The excess is rounded down to a whole number of pixel rows, so small
// overflows leave the proportional pass with nothing to remove; the final
// clamp trims that sub-row remainder.
func (s *State) normalize(maxFound uint64) {
	capacity := s.Capacity()
	if maxFound <= capacity {
		return
	}

	adjustment := maxFound - capacity
	adjustment -= adjustment % uint64(s.columnWidth)

	for face, count := range s.counts {
		count -= min(shareOf(adjustment, count, capacity), count)
		s.counts[face] = min(count, capacity)
	}

	if l, ok := debugEnabled(); ok {
		l.LogAttrs(context.Background(), slog.LevelDebug, "d20hist: normalized counts",
			slog.Uint64("max", maxFound),
			slog.Uint64("capacity", capacity),
			slog.Uint64("adjustment", adjustment))
	}
}

// shareOf returns floor(adjustment*count/capacity) using a 128-bit
// intermediate product. Quotients that do not fit in 64 bits saturate.
func shareOf(adjustment, count, capacity uint64) uint64 {
	hi, lo := bits.Mul64(adjustment, count)
	if hi >= capacity {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, capacity)
	return q
}

// Reset zeroes every count. Layout and the last winning and losing faces are
// kept until the next Update.
func (s *State) Reset() {
	s.counts = [Faces]uint64{}
}

// Counts returns a copy of the per-face counters.
func (s *State) Counts() [Faces]uint64 {
	return s.counts
}

// Count returns the counter of one face. It panics if face is out of range.
func (s *State) Count(face int) uint64 {
	assert.That(face >= 0 && face < Faces, "face %d out of range [0, %d)", face, Faces)
	return s.counts[face]
}

// SetCount overwrites the counter of one face without re-ranking faces.
// It panics if face is out of range.
func (s *State) SetCount(face int, n uint64) {
	assert.That(face >= 0 && face < Faces, "face %d out of range [0, %d)", face, Faces)
	s.counts[face] = n
}

// SetCounts overwrites all counters without re-ranking faces.
func (s *State) SetCounts(counts [Faces]uint64) {
	s.counts = counts
}

// Total returns the sum of all counters.
func (s *State) Total() uint64 {
	var total uint64
	for _, c := range s.counts {
		total += c
	}
	return total
}

// Capacity returns the largest count a single column can show: one unit per
// pixel of the column.
func (s *State) Capacity() uint64 {
	return uint64(s.columnWidth) * uint64(s.height)
}

// WinningFace returns the face with the highest count as of the last Update.
// ok is false before the first Update.
func (s *State) WinningFace() (face int, ok bool) {
	return s.winning, s.winning != NoFace
}

// LosingFace returns the face with the lowest count as of the last Update.
// ok is false before the first Update.
func (s *State) LosingFace() (face int, ok bool) {
	return s.losing, s.losing != NoFace
}

// Size returns the canvas dimensions.
func (s *State) Size() (width, height uint32) {
	return s.width, s.height
}

// ColumnWidth returns the width in pixels of each face's column.
func (s *State) ColumnWidth() uint32 {
	return s.columnWidth
}

// LeftMargin returns the number of background pixels left of the first column.
func (s *State) LeftMargin() uint32 {
	return s.leftMargin
}

// Palette returns the per-face bar colors.
func (s *State) Palette() Palette {
	return s.palette
}

// Theme returns the background, winner and loser colors.
func (s *State) Theme() Theme {
	return s.theme
}

// RollsPerTick returns the number of dice rolled by each Update.
func (s *State) RollsPerTick() int {
	return s.rollsPerTick
}

// Ticks returns the number of Update calls so far. Reset does not clear it.
func (s *State) Ticks() uint64 {
	return s.ticks
}
