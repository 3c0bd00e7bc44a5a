package main

import "testing"

func TestFrameIntegratesCameraVelocity(t *testing.T) {
	s := NewScene(DefaultConfig())
	s.Camera.Velocity = Vec3{X: 2, Y: 0, Z: 0}
	s.Camera.YawVelocity = 1

	s.Frame(0.5)

	if s.Camera.Position.X != 1 {
		t.Errorf("camera.Position.X = %v, want 1", s.Camera.Position.X)
	}
	if s.Camera.Rotation.Y != 0.5 {
		t.Errorf("camera.Rotation.Y = %v, want 0.5", s.Camera.Rotation.Y)
	}
}

func TestFrameSpinsInstancesOnlyWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spin = true
	cfg.SpinSpeed = 2

	s := NewScene(cfg)
	inst := NewMeshInstance(&Mesh{})
	s.AddInstance(inst)

	s.Frame(1)
	if inst.Rotation.Y != 2 {
		t.Errorf("spin-enabled instance rotation.Y = %v, want 2", inst.Rotation.Y)
	}

	cfg.Spin = false
	s.Config = cfg
	s.Frame(1)
	if inst.Rotation.Y != 2 {
		t.Errorf("rotation.Y changed after disabling spin: %v, want unchanged 2", inst.Rotation.Y)
	}
}

// TestDrawAndDrawParallelAgree: splitting the frame into row bands must
// not change what gets drawn relative to the single-threaded path.
func TestDrawAndDrawParallelAgree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShadeFlat = true

	tri := triangleAt(Vec3{-1, -1, 5}, Vec3{1, -1, 5}, Vec3{0, 1, 5})
	mesh := &Mesh{Triangles: []Triangle{tri}}

	s1 := NewScene(cfg)
	s1.AddInstance(NewMeshInstance(mesh))
	fb1 := NewFramebuffer(16)
	fb1.Clear()
	s1.Draw(fb1, &Texture2D{})

	s2 := NewScene(cfg)
	s2.AddInstance(NewMeshInstance(mesh))
	fb2 := NewFramebuffer(16)
	fb2.Clear()
	s2.DrawParallel(fb2, &Texture2D{})

	for i := range fb1.Color {
		if fb1.Color[i] != fb2.Color[i] {
			t.Fatalf("pixel %d differs: sequential=%v parallel=%v", i, fb1.Color[i], fb2.Color[i])
		}
	}
}
