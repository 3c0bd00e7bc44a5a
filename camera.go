package main

// Camera holds the position and Euler rotation used by the view
// transform (§4.1 steps 4/6) plus the velocity state the input
// contract (§6) mutates each frame. A simple position+yaw/pitchRoll
// model replaces the teacher's general Transform/quaternion camera —
// nothing downstream needs arbitrary affine composition once rotation
// is expressed with rotateEuler (matrix.go).
type Camera struct {
	Position Vec3
	Rotation Vec3 // X=pitch, Y=yaw, Z=roll

	// Velocities, set by input handling and integrated each frame by
	// Scene.Frame (§4.8 supplement).
	Velocity    Vec3 // strafe X, vertical Y, forward Z
	YawVelocity float64
	PitchVel    float64
	RollVel     float64
}

func NewCamera() *Camera {
	return &Camera{Position: Vec3{0, 0, 0}}
}

// ToView transforms a world-space point into view space: translate by
// -Position, then rotate by -Rotation (camera steps 4 and 6 of §4.1,
// applied to an already model/light-probe-transformed vertex upstream).
func (c *Camera) ToView(p Vec3) Vec3 {
	v := p.Sub(c.Position)
	return rotateEuler(v, Vec3{-c.Rotation.X, -c.Rotation.Y, -c.Rotation.Z})
}

// ViewDirection returns the normalized direction from a world-space
// point to the camera. The light-tracks-camera lighting override (§4.1
// step 7) does not call it; transformTriangle reuses the back-face
// test's dot product there.
func (c *Camera) ViewDirection(p Vec3) Vec3 {
	return c.Position.Sub(p).Normalize()
}

// Integrate applies the camera's velocity state for one frame, matching
// original_source/3DRasterizer.cpp's UpdatePhysics velocity integration
// (§4.8 supplement).
func (c *Camera) Integrate(dt float64) {
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
	c.Rotation.Y += c.YawVelocity * dt
	c.Rotation.X += c.PitchVel * dt
	c.Rotation.Z += c.RollVel * dt
}
