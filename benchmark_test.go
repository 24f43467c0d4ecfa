package d20hist

import "testing"

func BenchmarkUpdate(b *testing.B) {
	s := New(1920, 1080, WithSeed(1))
	b.ReportAllocs()
	for b.Loop() {
		s.Update()
	}
}

func BenchmarkDraw1080p(b *testing.B) {
	s := New(1920, 1080, WithSeed(1))
	for range 100 {
		s.Update()
	}
	buf := make([]byte, 1920*1080*4)
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		s.Draw(buf)
	}
}

func BenchmarkDrawFrame720p(b *testing.B) {
	s := New(1280, 720, WithSeed(1))
	for range 100 {
		s.Update()
	}
	f := NewFrame(1280, 720)
	b.ReportAllocs()
	for b.Loop() {
		s.DrawFrame(f)
	}
}
