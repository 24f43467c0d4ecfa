package d20hist

import (
	"bytes"
	"image/color"
	"testing"
)

// pixelAt returns the color of buffer pixel (x, row), row 0 being the top.
func pixelAt(buf []byte, width, x, row int) color.RGBA {
	i := (row*width + x) * 4
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func newBuffer(s *State) []byte {
	w, h := s.Size()
	return make([]byte, 4*int(w)*int(h))
}

func TestDrawEmptyStateIsBackground(t *testing.T) {
	s := New(400, 100)
	buf := newBuffer(s)
	s.Draw(buf)

	bg := DefaultTheme().Background
	for i := 0; i < len(buf); i += 4 {
		if got := pixelAt(buf, 400, (i/4)%400, (i/4)/400); got != bg {
			t.Fatalf("pixel %d = %v, want background %v", i/4, got, bg)
		}
	}
}

func TestDrawUniformScenario(t *testing.T) {
	// Every column is 20x100 = 2000 pixels, exactly the count.
	s := New(400, 100)
	var counts [Faces]uint64
	for face := range counts {
		counts[face] = 2000
	}
	s.SetCounts(counts)

	buf := newBuffer(s)
	s.Draw(buf)

	palette := GradientPalette()
	for row := range 100 {
		for x := range 400 {
			want := palette[x/20]
			if got := pixelAt(buf, 400, x, row); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want palette[%d] %v", x, row, got, x/20, want)
			}
		}
	}
}

func TestDrawFillsBottomUpLeftToRight(t *testing.T) {
	s := New(400, 100)
	s.SetCount(0, 25)
	buf := newBuffer(s)
	s.Draw(buf)

	bar := GradientPalette()[0]
	bg := DefaultTheme().Background

	// Bottom row (buffer row 99) holds counts 1..20.
	for x := range 20 {
		if got := pixelAt(buf, 400, x, 99); got != bar {
			t.Errorf("bottom row x=%d = %v, want bar", x, got)
		}
	}
	// Second row holds counts 21..25.
	for x := range 20 {
		want := bg
		if x < 5 {
			want = bar
		}
		if got := pixelAt(buf, 400, x, 98); got != want {
			t.Errorf("row 98 x=%d = %v, want %v", x, got, want)
		}
	}
	// Nothing above.
	for x := range 20 {
		if got := pixelAt(buf, 400, x, 97); got != bg {
			t.Errorf("row 97 x=%d = %v, want background", x, got)
		}
	}
	// Neighbouring empty column stays background.
	if got := pixelAt(buf, 400, 20, 99); got != bg {
		t.Errorf("face 1 bottom pixel = %v, want background", got)
	}
}

func TestDrawWinLoseColors(t *testing.T) {
	s := New(400, 100)
	for face := range Faces {
		s.SetCount(face, 20)
	}
	s.winning = 2
	s.losing = 5

	buf := newBuffer(s)
	s.Draw(buf)

	theme := DefaultTheme()
	palette := GradientPalette()
	tests := []struct {
		face int
		want color.RGBA
	}{
		{2, theme.Win},
		{5, theme.Lose},
		{0, palette[0]},
		{19, palette[19]},
	}
	for _, tt := range tests {
		if got := pixelAt(buf, 400, tt.face*20+10, 99); got != tt.want {
			t.Errorf("face %d = %v, want %v", tt.face, got, tt.want)
		}
	}
}

func TestDrawWinnerTakesPrecedence(t *testing.T) {
	s := New(400, 100)
	s.SetCount(0, 1)
	s.winning = 0
	s.losing = 0

	buf := newBuffer(s)
	s.Draw(buf)

	if got := pixelAt(buf, 400, 0, 99); got != DefaultTheme().Win {
		t.Errorf("pixel = %v, want win color", got)
	}
}

func TestDrawUnhighlightedWinnerIsBackground(t *testing.T) {
	s := New(400, 100)
	s.winning = 4
	buf := newBuffer(s)
	s.Draw(buf)

	if got := pixelAt(buf, 400, 4*20, 99); got != DefaultTheme().Background {
		t.Errorf("empty winning column = %v, want background", got)
	}
}

func TestDrawMargins(t *testing.T) {
	// 410 wide: column width 20, left margin 5, right margin 5.
	s := New(410, 10)
	for face := range Faces {
		s.SetCount(face, s.Capacity())
	}
	buf := newBuffer(s)
	s.Draw(buf)

	bg := DefaultTheme().Background
	palette := GradientPalette()
	for row := range 10 {
		for _, x := range []int{0, 4, 405, 409} {
			if got := pixelAt(buf, 410, x, row); got != bg {
				t.Errorf("margin pixel (%d, %d) = %v, want background", x, row, got)
			}
		}
		if got := pixelAt(buf, 410, 5, row); got != palette[0] {
			t.Errorf("first column pixel (5, %d) = %v, want palette[0]", row, got)
		}
		if got := pixelAt(buf, 410, 404, row); got != palette[19] {
			t.Errorf("last column pixel (404, %d) = %v, want palette[19]", row, got)
		}
	}
}

func TestDrawNarrowCanvas(t *testing.T) {
	s := New(10, 4)
	for face := range Faces {
		s.SetCount(face, 4)
	}
	buf := newBuffer(s)
	s.Draw(buf)

	palette := GradientPalette()
	for x := range 10 {
		if got := pixelAt(buf, 10, x, 0); got != palette[x] {
			t.Errorf("column %d = %v, want palette[%d]", x, got, x)
		}
	}
}

func TestDrawCoverageAndIdempotence(t *testing.T) {
	s := New(333, 77, WithSeed(11))
	for range 5 {
		s.Update()
	}

	first := newBuffer(s)
	s.Draw(first)

	second := bytes.Repeat([]byte{0xab}, len(first))
	s.Draw(second)

	if !bytes.Equal(first, second) {
		t.Fatal("Draw is not idempotent over the same state")
	}

	theme := s.Theme()
	allowed := map[color.RGBA]bool{theme.Background: true, theme.Win: true, theme.Lose: true}
	for _, c := range s.Palette() {
		allowed[c] = true
	}
	for i := 0; i < len(first)/4; i++ {
		if c := pixelAt(first, 333, i%333, i/333); !allowed[c] {
			t.Fatalf("pixel %d has unexpected color %v", i, c)
		}
	}
}

func TestDrawDoesNotMutateState(t *testing.T) {
	s := New(200, 50, WithSeed(5))
	s.Update()
	before := *s

	s.Draw(newBuffer(s))

	if before.counts != s.counts || before.winning != s.winning || before.losing != s.losing {
		t.Error("Draw mutated the state")
	}
}

func TestDrawCustomTheme(t *testing.T) {
	theme := Theme{
		Background: color.RGBA{R: 1, G: 2, B: 3, A: 255},
		Win:        color.RGBA{R: 4, G: 5, B: 6, A: 255},
		Lose:       color.RGBA{R: 7, G: 8, B: 9, A: 255},
	}
	s := New(40, 2, WithTheme(theme))
	s.SetCount(0, 1)
	s.winning = 0

	buf := newBuffer(s)
	s.Draw(buf)

	if got := pixelAt(buf, 40, 0, 1); got != theme.Win {
		t.Errorf("bar pixel = %v, want %v", got, theme.Win)
	}
	if got := pixelAt(buf, 40, 39, 0); got != theme.Background {
		t.Errorf("background pixel = %v, want %v", got, theme.Background)
	}
}

func TestDrawBufferMismatchPanics(t *testing.T) {
	s := New(400, 100)
	expectPanic(t, "buffer length", func() { s.Draw(make([]byte, 400*100*4-1)) })

	s.SetSize(200, 100)
	expectPanic(t, "does not match 200x100", func() { s.Draw(make([]byte, 400*100*4)) })
}

func TestDrawFrame(t *testing.T) {
	s := New(120, 30, WithSeed(2))
	s.Update()

	f := NewFrame(120, 30)
	s.DrawFrame(f)

	buf := newBuffer(s)
	s.Draw(buf)
	if !bytes.Equal(f.Data(), buf) {
		t.Error("DrawFrame output differs from Draw")
	}

	expectPanic(t, "frame is 60x30", func() { s.DrawFrame(NewFrame(60, 30)) })
}
