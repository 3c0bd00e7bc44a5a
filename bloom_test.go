package main

import "testing"

// TestBloomSaturatesAt255 covers spec.md §8 scenario 6: a framebuffer
// filled with (200,200,200) must never overflow a channel above 255
// after one bloom pass.
func TestBloomSaturatesAt255(t *testing.T) {
	fb := NewFramebuffer(16)
	for i := range fb.Color {
		fb.Color[i] = Color{200, 200, 200}
	}

	ApplyBloom(fb)

	for i, c := range fb.Color {
		if c.R > 255 || c.G > 255 || c.B > 255 {
			t.Errorf("pixel %d overflowed: %v", i, c)
		}
	}
}

// TestBloomNeverDarkens: bloom is a purely additive blend, so every
// output channel must be at least as large as the input.
func TestBloomNeverDarkens(t *testing.T) {
	fb := NewFramebuffer(16)
	for i := range fb.Color {
		fb.Color[i] = Color{10, 20, 30}
	}
	before := append([]Color(nil), fb.Color...)

	ApplyBloom(fb)

	for i, c := range fb.Color {
		if c.R < before[i].R || c.G < before[i].G || c.B < before[i].B {
			t.Errorf("pixel %d darkened: %v -> %v", i, before[i], c)
		}
	}
}

func BenchmarkApplyBloom(b *testing.B) {
	fb := NewFramebuffer(64)
	for i := range fb.Color {
		fb.Color[i] = Color{150, 150, 150}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyBloom(fb)
	}
}
