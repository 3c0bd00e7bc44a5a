package main

// ApplyDOFBlur implements §4.7: for every pixel whose stored reciprocal
// depth is below the threshold (i.e. far from the camera), replace it
// with a weighted box average of same-threshold neighbors within a
// radius of cfg.BlurSize.
func ApplyDOFBlur(fb *Framebuffer, cfg Config) {
	n := fb.N
	r := cfg.BlurSize
	if r <= 0 {
		return
	}

	src := make([]Color, len(fb.Color))
	copy(src, fb.Color)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := fb.idx(x, y)
			if fb.Depth[idx] >= DOFDepthThreshold {
				continue
			}

			var sumR, sumG, sumB, sumW float64
			for j := -r; j <= r; j++ {
				ny := y + j
				if ny < 0 || ny >= n {
					continue
				}
				for i := -r; i <= r; i++ {
					nx := x + i
					if nx < 0 || nx >= n {
						continue
					}
					nIdx := fb.idx(nx, ny)
					if fb.Depth[nIdx] >= DOFDepthThreshold {
						continue
					}
					w := (float64(r) - absFloat(float64(i))/float64(r)) * (float64(r) - absFloat(float64(j))/float64(r))
					c := src[nIdx]
					sumR += float64(c.R) * w
					sumG += float64(c.G) * w
					sumB += float64(c.B) * w
					sumW += w
				}
			}

			if sumW == 0 {
				continue
			}
			fb.Color[idx] = Color{
				R: uint8(clamp(sumR/sumW, 0, 255)),
				G: uint8(clamp(sumG/sumW, 0, 255)),
				B: uint8(clamp(sumB/sumW, 0, 255)),
			}
		}
	}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
