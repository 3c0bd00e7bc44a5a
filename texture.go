package main

import (
	"image"
	"math"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "image/jpeg"
	_ "image/png"
)

// Texture2D is a fixed 128×128 RGB bitmap, origin at bottom-left (§3,
// §6). Stored row-major with row 0 at the bottom, matching the texture
// loader contract's "row y of the source becomes row (127-y)".
type Texture2D struct {
	Pixels [TextureSize * TextureSize]Color
}

func (t *Texture2D) at(x, y int) Color {
	x = clampInt(x, 0, TextureSize-1)
	y = clampInt(y, 0, TextureSize-1)
	return t.Pixels[y*TextureSize+x]
}

func (t *Texture2D) set(x, y int, c Color) {
	t.Pixels[y*TextureSize+x] = c
}

// SampleNearest implements the nearest branch of §4.5.
func (t *Texture2D) SampleNearest(u, v float64) Color {
	u = clamp(u, 0, TextureSize-1)
	v = clamp(v, 0, TextureSize-1)
	return t.at(int(u), int(v))
}

// SampleBilinear implements the bilinear branch of §4.5: center texel C,
// four half-texel-offset taps each substituted with C when they land on
// the transparent sentinel (so transparent texels never bleed into a
// neighboring opaque sample), then the standard bilinear weights. If C
// itself is the sentinel the sampler returns the sentinel so the caller
// aborts the pixel.
func (t *Texture2D) SampleBilinear(u, v float64) Color {
	u = clamp(u, 0, TextureSize-1)
	v = clamp(v, 0, TextureSize-1)

	ix, iy := int(u), int(v)
	center := t.at(ix, iy)
	if center.isSentinel() {
		return transparentSentinel
	}

	// The four taps sit on the grid shifted half a texel back from the
	// query point (the original's `x -= 0.5; y -= 0.5`), so the blend
	// weights must be the fractional part of that same shifted
	// coordinate, not of the raw query (u,v) — otherwise an integer
	// query samples the average of its four neighbors instead of
	// reproducing the nearest texel.
	su, sv := u-0.5, v-0.5

	tap := func(dx, dy float64) Color {
		c := t.at(int(math.Floor(su+dx)), int(math.Floor(sv+dy)))
		if c.isSentinel() {
			return center
		}
		return c
	}

	c00 := tap(0, 0)
	c10 := tap(1, 0)
	c01 := tap(0, 1)
	c11 := tap(1, 1)

	fx := su - math.Floor(su)
	fy := sv - math.Floor(sv)
	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	// Floating-point accumulation then a single saturating cast, per
	// §9 Design Notes: the source mixes signed/unsigned arithmetic and
	// can over/underflow near texel boundaries.
	r := float64(c00.R)*w00 + float64(c10.R)*w10 + float64(c01.R)*w01 + float64(c11.R)*w11
	g := float64(c00.G)*w00 + float64(c10.G)*w10 + float64(c01.G)*w01 + float64(c11.G)*w11
	b := float64(c00.B)*w00 + float64(c10.B)*w10 + float64(c01.B)*w01 + float64(c11.B)*w11

	return Color{
		R: uint8(clamp(r, 0, 255)),
		G: uint8(clamp(g, 0, 255)),
		B: uint8(clamp(b, 0, 255)),
	}
}

// Sample dispatches on the filter flag, matching §4.3 step 4's "bilinear
// when applyTextureFilter, nearest otherwise".
func (t *Texture2D) Sample(u, v float64, bilinear bool) Color {
	if bilinear {
		return t.SampleBilinear(u, v)
	}
	return t.SampleNearest(u, v)
}

// LoadTexture implements the texture loader contract of §6: decode any
// supported image, resample to 128×128 with golang.org/x/image/draw
// (carried from drsaluml-mu-bmd-to-webp's go.mod, which wires the same
// package for texture resampling), and flip rows so the source's bottom
// row becomes row 0.
func LoadTexture(path string) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	resized := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.CatmullRom.Scale(resized, resized.Bounds(), src, src.Bounds(), draw.Over, nil)

	var tex Texture2D
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			tex.set(x, TextureSize-1-y, Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return &tex, nil
}
