package main

// lightOrigin is the fixed offset the per-face lighting probe (§4.1
// step 3) adds to every world-space vertex, which puts the single light
// at -lightOrigin in world space. The original engine hardcodes a single
// directional light's origin; spec.md's non-goals rule out multi-light
// support, so this stays a single fixed point rather than a slice of
// lights (compare the teacher's LightingSystem, which loops over
// []*Light — dropped, see DESIGN.md).
var lightOrigin = Vec3{0, 0, -50}

// transformTriangle implements §4.1 in full: model rotate/translate,
// light-origin probe, camera translate, back-face cull test, camera
// rotate, and the light-tracks-camera override. It returns the
// triangle with Coord in view space and FaceLight set, or ok=false if
// the triangle is back-facing.
func transformTriangle(tri Triangle, inst *MeshInstance, cam *Camera, cfg Config) (Triangle, bool) {
	var world [3]Vec3
	for i, v := range tri.P {
		rotated := rotateEuler(v.Coord, inst.Rotation)
		world[i] = rotated.Add(inst.Position)
	}

	// Lighting probe: shift so the light sits at the origin, measure the
	// face normal against the direction to p0, then shift back.
	var lit [3]Vec3
	for i, w := range world {
		lit[i] = w.Add(lightOrigin)
	}
	faceNormal := faceNormalOf(lit)
	probeDot := faceNormal.Dot(lit[0].Normalize())
	faceLight := remapDotToLightRange(probeDot)

	// Camera translate: shift so the camera sits at the origin.
	var view [3]Vec3
	for i, w := range world {
		view[i] = w.Sub(cam.Position)
	}

	// Back-face test in this camera-relative (not yet rotated) frame.
	viewNormal := faceNormalOf(view)
	viewDot := viewNormal.Dot(view[0].Normalize())
	if viewDot >= 0 {
		return Triangle{}, false
	}

	if cfg.LightTracksCamera {
		faceLight = remapDotToLightRange(viewDot)
	}

	out := tri
	out.FaceLight = faceLight
	for i := range view {
		out.P[i].Coord = rotateEuler(view[i], Vec3{-cam.Rotation.X, -cam.Rotation.Y, -cam.Rotation.Z})
	}
	return out, true
}

func faceNormalOf(p [3]Vec3) Vec3 {
	e1 := p[1].Sub(p[0])
	e2 := p[2].Sub(p[0])
	return e1.Cross(e2).Normalize()
}

// remapDotToLightRange maps a normal·direction dot product from [-1,+1]
// to the 8-bit darkening range [0,200] (§4.1, §9 Design Notes: "preserve
// the ×100 magic constant but document the range").
func remapDotToLightRange(dot float64) uint8 {
	v := (dot + 1.0) * 100.0
	if v < FaceLightMin {
		v = FaceLightMin
	}
	if v > FaceLightMax {
		v = FaceLightMax
	}
	return uint8(v)
}
