package main

import "math"

// rotateEuler applies the composite rotation R = R_x(rot.X) · R_y(rot.Y) ·
// R_z(rot.Z) to v, i.e. rotate around Z first, then Y, then X — the
// order spec.md §4.1 and the GLOSSARY's "Euler composite rotation" both
// name. This replaces the teacher's general Matrix4x4/quaternion
// machinery (ComposeMatrix, Invert, CreateOrthographicMatrix): nothing
// in this pipeline needs a full affine matrix stack once the camera
// model is the simple position+yaw/pitch/roll one spec.md §3 describes,
// so the rotation is expressed directly the way
// original_source/3DRasterizer.cpp's own Rotate() does.
func rotateEuler(v Vec3, rot Vec3) Vec3 {
	v = rotateAxisZ(v, rot.Z)
	v = rotateAxisY(v, rot.Y)
	v = rotateAxisX(v, rot.X)
	return v
}

func rotateAxisX(v Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

func rotateAxisY(v Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

func rotateAxisZ(v Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}
