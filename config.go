package main

// Config carries every feature flag the rasterizer consults. A single
// instance is threaded through the frame loop instead of package-level
// globals so the pipeline stays re-entrant at the caller's discretion.
type Config struct {
	FillTris           bool
	Wireframe          bool
	Fog                bool
	FaceLighting       bool
	LightTracksCamera  bool
	VertexColor        bool
	ShadeFlat          bool
	TextureFilter      bool // true = bilinear, false = nearest
	Bloom              bool
	DOFBlur            bool
	Spin               bool
	ParallelRasterize  bool // opt-in tile-parallel path, see SPEC_FULL.md §5.1

	FOV        float64
	CameraNear float64
	FogDepth   float64
	BlurSize   int
	SpinSpeed  float64
}

// DefaultConfig matches the starting state of the original engine: fill
// and vertex color on, everything else off, fov and near plane at the
// values used throughout spec.md's worked examples.
func DefaultConfig() Config {
	return Config{
		FillTris:    true,
		VertexColor: true,
		FOV:         1.0,
		CameraNear:  1.0,
		FogDepth:    1.0,
		BlurSize:    3,
		SpinSpeed:   0.01,
	}
}

// Face lighting values produced by the light-origin probe (§4.1) are
// remapped from [-1,+1] into this range. The ×100 scaling that produces
// it is preserved from the original engine for visual parity; this
// constant documents the resulting range rather than leaving it as an
// unexplained magic number at each call site.
const (
	FaceLightMin = 0
	FaceLightMax = 200
)

const (
	TextureSize     = 128
	BloomBufferSize = 32

	// DoF threshold: DepthBuffer stores 1/z; z > ~27 corresponds to
	// reciprocal depth below this value.
	DOFDepthThreshold = 0.037

	// transparentSentinel marks a texel that must never be drawn.
	sentinelR, sentinelG, sentinelB = 255, 0, 255
)
