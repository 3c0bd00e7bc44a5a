package main

import "sync"

// Scene holds the mesh instances, camera and config for one running
// session, and drives the per-frame velocity integration named in §4.8
// (grounded on original_source/3DRasterizer.cpp's UpdatePhysics).
type Scene struct {
	Instances []*MeshInstance
	Camera    *Camera
	Config    Config
}

func NewScene(cfg Config) *Scene {
	return &Scene{Camera: NewCamera(), Config: cfg}
}

func (s *Scene) AddInstance(inst *MeshInstance) {
	s.Instances = append(s.Instances, inst)
}

// Frame integrates camera velocity and, when Config.Spin is set,
// advances every instance's Y rotation — the spin toggled by the SPACE
// key in the input contract (§6).
func (s *Scene) Frame(dt float64) {
	s.Camera.Integrate(dt)
	if s.Config.Spin {
		for _, inst := range s.Instances {
			inst.Rotation.Y += s.Config.SpinSpeed * dt
		}
	}
}

// Draw runs §2 steps 2-3 for every instance/triangle in the scene,
// writing into fb.
func (s *Scene) Draw(fb *Framebuffer, tex *Texture2D) {
	for _, inst := range s.Instances {
		for _, tri := range inst.Mesh.Triangles {
			transformed, ok := transformTriangle(tri, inst, s.Camera, s.Config)
			if !ok {
				continue
			}
			for _, screenTri := range clipAndProject(transformed, s.Config) {
				fb.DrawTriangle(screenTri, tex, s.Config)
			}
		}
	}

	if s.Config.Bloom {
		ApplyBloom(fb)
	}
	if s.Config.DOFBlur {
		ApplyDOFBlur(fb, s.Config)
	}
}

// drawBands is the number of row bands DrawParallel splits a frame
// into; each band is rasterized by its own goroutine.
const drawBands = 4

// DrawParallel implements SPEC_FULL.md §5.1's opt-in tile-parallel
// rasterization path: the transform/clip/project stage runs once,
// sequentially, and the resulting screen triangles are rasterized by
// drawBands goroutines, each restricted to a disjoint row range so no
// two goroutines ever write the same framebuffer pixel.
func (s *Scene) DrawParallel(fb *Framebuffer, tex *Texture2D) {
	var triangles []ScreenTriangle
	for _, inst := range s.Instances {
		for _, tri := range inst.Mesh.Triangles {
			transformed, ok := transformTriangle(tri, inst, s.Camera, s.Config)
			if !ok {
				continue
			}
			triangles = append(triangles, clipAndProject(transformed, s.Config)...)
		}
	}

	bandHeight := (fb.N + drawBands - 1) / drawBands
	var wg sync.WaitGroup
	for b := 0; b < drawBands; b++ {
		yMin := b * bandHeight
		if yMin >= fb.N {
			break
		}
		yMax := yMin + bandHeight - 1
		if yMax >= fb.N {
			yMax = fb.N - 1
		}
		wg.Add(1)
		go func(yMin, yMax int) {
			defer wg.Done()
			for _, st := range triangles {
				fb.drawTriangleBand(st, tex, s.Config, yMin, yMax)
			}
		}(yMin, yMax)
	}
	wg.Wait()

	if s.Config.Bloom {
		ApplyBloom(fb)
	}
	if s.Config.DOFBlur {
		ApplyDOFBlur(fb, s.Config)
	}
}
