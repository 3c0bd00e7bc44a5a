package main

import "math"

// Framebuffer owns the color and depth buffers for one frame (§3:
// "frame-owned", same size, indexed y*N+x).
type Framebuffer struct {
	N     int
	Color []Color
	Depth []float64 // stores 1/z; larger = nearer (§4.4)
}

func NewFramebuffer(n int) *Framebuffer {
	return &Framebuffer{
		N:     n,
		Color: make([]Color, n*n),
		Depth: make([]float64, n*n),
	}
}

// Clear implements §2 step 1: color to black, depth to 0.
func (fb *Framebuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = ColorBlack
		fb.Depth[i] = 0
	}
}

func (fb *Framebuffer) idx(x, y int) int { return y*fb.N + x }

// DrawTriangle rasterizes one clipped, projected triangle (§4.3). The
// teacher's rasterizer_common.go/rasterizer_triangle.go express this as
// two near-duplicated top-half/bottom-half scanline blocks; this single
// function replaces both, parameterized by a long edge (v0→v2, active
// across the whole y range) and a short edge that switches from v0→v1
// to v1→v2 at the middle vertex, per §9 Design Notes.
func (fb *Framebuffer) DrawTriangle(st ScreenTriangle, tex *Texture2D, cfg Config) {
	fb.drawTriangleBand(st, tex, cfg, 0, fb.N-1)
}

// drawTriangleBand is DrawTriangle restricted to scanlines [bandMin,
// bandMax]. Splitting on y this way lets SPEC_FULL.md §5.1's opt-in
// tile-parallel path run one goroutine per disjoint row band with no
// shared-write races, since each goroutine only ever touches its own
// rows of fb.Color/fb.Depth.
func (fb *Framebuffer) drawTriangleBand(st ScreenTriangle, tex *Texture2D, cfg Config, bandMin, bandMax int) {
	n := float64(fb.N)

	// y-sorted indices, used only to find each scanline's x bounds.
	order := [3]int{0, 1, 2}
	if st.P[order[0]].Y > st.P[order[1]].Y {
		order[0], order[1] = order[1], order[0]
	}
	if st.P[order[1]].Y > st.P[order[2]].Y {
		order[1], order[2] = order[2], order[1]
	}
	if st.P[order[0]].Y > st.P[order[1]].Y {
		order[0], order[1] = order[1], order[0]
	}
	v0, v1, v2 := st.P[order[0]], st.P[order[1]], st.P[order[2]]

	y0 := v0.Y * n
	y1 := v1.Y * n
	y2 := v2.Y * n

	yStart := int(math.Ceil(minF(y0, minF(y1, y2))))
	yEnd := int(math.Floor(maxF(y0, maxF(y1, y2))))
	if yStart > bandMax || yEnd < bandMin {
		return
	}
	yStart = clampInt(yStart, bandMin, bandMax)
	yEnd = clampInt(yEnd, bandMin, bandMax)

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)
		xLong := edgeX(y0, v0.X*n, y2, v2.X*n, fy)

		var xShort float64
		if fy < y1 {
			xShort = edgeX(y0, v0.X*n, y1, v1.X*n, fy)
		} else {
			xShort = edgeX(y1, v1.X*n, y2, v2.X*n, fy)
		}

		xLeft, xRight := xLong, xShort
		if xLeft > xRight {
			xLeft, xRight = xRight, xLeft
		}

		scanStart := int(math.Ceil(xLeft))
		scanEnd := int(math.Floor(xRight))
		scanStart = clampInt(scanStart, 0, fb.N-1)
		scanEnd = clampInt(scanEnd, 0, fb.N-1)

		for x := scanStart; x < scanEnd; x++ {
			fb.shadePixel(x, y, st, n, scanStart, scanEnd, int(y0), tex, cfg)
		}
	}
}

// edgeX linearly interpolates the x of an edge at height y. When the
// edge has zero height (ya==yb) it returns xa rather than dividing by
// zero — the "sentinel large slope, skip safely" case of §4.3, applied
// symmetrically to whichever edge happens to be degenerate rather than
// only the left edge (the source's leftSlope=1000 bug, §9 Design Notes).
func edgeX(ya, xa, yb, xb, y float64) float64 {
	if yb == ya {
		return xa
	}
	t := (y - ya) / (yb - ya)
	return xa + t*(xb-xa)
}

// shadePixel implements §4.3 steps 1-5 for a single pixel.
func (fb *Framebuffer) shadePixel(x, y int, st ScreenTriangle, n float64, scanStart, scanEnd, topY int, tex *Texture2D, cfg Config) {
	if !cfg.FillTris {
		return
	}

	px, py := float64(x), float64(y)
	p := [3]struct {
		x, y, invZ float64
	}{
		{st.P[0].X * n, st.P[0].Y * n, st.P[0].InvZ},
		{st.P[1].X * n, st.P[1].Y * n, st.P[1].InvZ},
		{st.P[2].X * n, st.P[2].Y * n, st.P[2].InvZ},
	}

	a := [3]struct{ x, y float64 }{}
	for k := 0; k < 3; k++ {
		if p[k].invZ == 0 {
			return
		}
		a[k].x = (p[k].x - px) / p[k].invZ
		a[k].y = (p[k].y - py) / p[k].invZ
	}

	den := (a[1].y-a[2].y)*(a[0].x-a[2].x) + (a[2].x-a[1].x)*(a[0].y-a[2].y)
	var w1, w2 float64
	if den != 0 {
		w1 = ((a[1].y-a[2].y)*(-a[2].x) + (a[2].x-a[1].x)*(-a[2].y)) / den
		w2 = ((a[2].y-a[0].y)*(-a[2].x) + (a[0].x-a[2].x)*(-a[2].y)) / den
	}
	w3 := 1 - w1 - w2

	d := p[0].invZ*w1 + p[1].invZ*w2 + p[2].invZ*w3

	idx := fb.idx(x, y)
	if d <= fb.Depth[idx] {
		return
	}

	u := clamp(st.P[0].UV.U*w1+st.P[1].UV.U*w2+st.P[2].UV.U*w3, 0, 127)
	v := clamp(st.P[0].UV.V*w1+st.P[1].UV.V*w2+st.P[2].UV.V*w3, 0, 127)
	lr := st.P[0].Light.R8()*w1 + st.P[1].Light.R8()*w2 + st.P[2].Light.R8()*w3
	lg := st.P[0].Light.G8()*w1 + st.P[1].Light.G8()*w2 + st.P[2].Light.G8()*w3
	lb := st.P[0].Light.B8()*w1 + st.P[1].Light.B8()*w2 + st.P[2].Light.B8()*w3

	var color Color
	if cfg.ShadeFlat {
		color = ColorWhite
	} else {
		color = tex.Sample(u, v, cfg.TextureFilter)
	}

	if color.isSentinel() {
		return
	}

	if cfg.VertexColor {
		color = color.subtractSaturating(lr, lg, lb)
	}
	if cfg.FaceLighting {
		fl := float64(st.FaceLight)
		color = color.subtractSaturating(fl, fl, fl)
	}
	if cfg.Fog {
		invD := 1.0 / d
		if invD > 20 {
			amount := (invD - 20) * cfg.FogDepth
			color = color.subtractSaturating(amount, amount, amount)
		}
	}

	if cfg.Wireframe {
		nearLeft := x-scanStart <= 2
		nearRight := scanEnd-x <= 2
		nearTop := absInt(y-topY) <= 4
		if nearLeft || nearRight || nearTop {
			color = ColorGray
		}
	}

	fb.Color[idx] = color
	fb.Depth[idx] = d
}

func (c Color) R8() float64 { return float64(c.R) }
func (c Color) G8() float64 { return float64(c.G) }
func (c Color) B8() float64 { return float64(c.B) }
