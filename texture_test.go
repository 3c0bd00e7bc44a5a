package main

import "testing"

func TestBilinearAtIntegerUVEqualsNearest(t *testing.T) {
	var tex Texture2D
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			tex.set(x, y, Color{uint8(x % 256), uint8(y % 256), 0})
		}
	}

	cases := []struct{ u, v float64 }{
		{10, 20}, {0, 0}, {60, 60}, {100, 5},
	}
	for _, c := range cases {
		nearest := tex.SampleNearest(c.u, c.v)
		bilinear := tex.SampleBilinear(c.u+0.5, c.v+0.5)
		if nearest != bilinear {
			t.Errorf("at (%v,%v): SampleBilinear(u+0.5,v+0.5)=%v, SampleNearest(u,v)=%v", c.u, c.v, bilinear, nearest)
		}
	}
}

// TestBilinearAtIntegerUVEqualsNearestSharpEdge covers spec.md §8's
// round-trip law with a texture where a gradient can't coincidentally
// mask an unweighted four-tap average: tex[10,10]=0 but its three
// neighbors are 200, so an unweighted average would read 150, while
// the correctly weighted sample at the exact grid point must reduce to
// the single texel tex[10,10]=0.
func TestBilinearAtIntegerUVEqualsNearestSharpEdge(t *testing.T) {
	var tex Texture2D
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			tex.set(x, y, Color{200, 200, 200})
		}
	}
	tex.set(10, 10, Color{0, 0, 0})

	nearest := tex.SampleNearest(10, 10)
	bilinear := tex.SampleBilinear(10.5, 10.5)
	if nearest != bilinear {
		t.Errorf("SampleBilinear(10.5,10.5)=%v, want SampleNearest(10,10)=%v", bilinear, nearest)
	}
}

func TestBilinearSentinelCenterAbortsPixel(t *testing.T) {
	var tex Texture2D
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			tex.set(x, y, ColorWhite)
		}
	}
	tex.set(64, 64, transparentSentinel)

	got := tex.SampleBilinear(64.5, 64.5)
	if !got.isSentinel() {
		t.Errorf("SampleBilinear with sentinel center = %v, want the sentinel (caller aborts the pixel)", got)
	}
}

func TestBilinearSentinelNeighborDoesNotBleedOrOverflow(t *testing.T) {
	var tex Texture2D
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			tex.set(x, y, ColorWhite)
		}
	}
	// One of the four taps around (64.5, 64.5) is the sentinel, but the
	// center texel (64,64) is opaque, so the sampler must substitute the
	// center color for that tap rather than blending the sentinel in.
	tex.set(65, 65, transparentSentinel)

	got := tex.SampleBilinear(64.5, 64.5)
	if got.isSentinel() {
		t.Errorf("sentinel neighbor propagated to SampleBilinear result: %v", got)
	}
	if got != ColorWhite {
		t.Errorf("SampleBilinear = %v, want ColorWhite (sentinel neighbor replaced by center)", got)
	}
}

func TestSampleDispatch(t *testing.T) {
	var tex Texture2D
	tex.set(5, 5, Color{1, 2, 3})
	if got := tex.Sample(5, 5, false); got != (Color{1, 2, 3}) {
		t.Errorf("Sample(nearest) = %v", got)
	}
	if got := tex.Sample(5, 5, true); got.isSentinel() {
		t.Errorf("Sample(bilinear) returned sentinel unexpectedly: %v", got)
	}
}

func BenchmarkSampleBilinear(b *testing.B) {
	var tex Texture2D
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tex.SampleBilinear(32.3, 64.7)
	}
}
