package main

import "math"

// BloomBuffer is the 32×32 floating-point accumulator of §4.6. It is
// reallocated per frame (§3).
type BloomBuffer struct {
	cells [BloomBufferSize * BloomBufferSize]RGBf
}

func NewBloomBuffer() *BloomBuffer {
	return &BloomBuffer{}
}

func (b *BloomBuffer) at(x, y int) RGBf {
	x = clampInt(x, 0, BloomBufferSize-1)
	y = clampInt(y, 0, BloomBufferSize-1)
	return b.cells[y*BloomBufferSize+x]
}

// ApplyBloom implements §4.6 in full: accumulate every framebuffer pixel
// into its downsampled cell, then bilinearly upsample back into the
// framebuffer with a saturating additive blend.
func ApplyBloom(fb *Framebuffer) {
	buf := NewBloomBuffer()
	n := fb.N

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := fb.Color[fb.idx(x, y)]
			cx := x * BloomBufferSize / n
			cy := y * BloomBufferSize / n
			cx = clampInt(cx, 0, BloomBufferSize-1)
			cy = clampInt(cy, 0, BloomBufferSize-1)
			cell := &buf.cells[cy*BloomBufferSize+cx]
			cell.R += float64(c.R) * 0.001
			cell.G += float64(c.G) * 0.001
			cell.B += float64(c.B) * 0.001
		}
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			bu := float64(x) * BloomBufferSize / float64(n)
			bv := float64(y) * BloomBufferSize / float64(n)
			sample := sampleBloomBilinear(buf, bu, bv)

			idx := fb.idx(x, y)
			fb.Color[idx] = fb.Color[idx].addSaturating(sample.R, sample.G, sample.B)
		}
	}
}

// sampleBloomBilinear samples the bloom buffer bilinearly, clamping
// indices to [0,31] with no wraparound (§4.6). Like SampleBilinear, the
// four taps sit on the grid shifted half a cell back from (u,v)
// (original_source/3DRasterizer.cpp's FilterBloom, `x -= 0.5; y -=
// 0.5`), so the blend weights are the fractional part of that shifted
// coordinate.
func sampleBloomBilinear(buf *BloomBuffer, u, v float64) RGBf {
	su, sv := u-0.5, v-0.5
	ix, iy := int(math.Floor(su)), int(math.Floor(sv))
	fx, fy := su-float64(ix), sv-float64(iy)

	c00 := buf.at(ix, iy)
	c10 := buf.at(ix+1, iy)
	c01 := buf.at(ix, iy+1)
	c11 := buf.at(ix+1, iy+1)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	return RGBf{
		R: c00.R*w00 + c10.R*w10 + c01.R*w01 + c11.R*w11,
		G: c00.G*w00 + c10.G*w10 + c01.G*w01 + c11.G*w11,
		B: c00.B*w00 + c10.B*w10 + c01.B*w01 + c11.B*w11,
	}
}
