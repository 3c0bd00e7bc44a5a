package main

// Vertex carries everything the rasterizer interpolates per triangle
// (spec.md §3): object-space position, a vertex-lit color and a texture
// coordinate.
type Vertex struct {
	Coord Vec3
	Light Color
	UV    UV
}

// Triangle is a transient, per-draw value: three vertices plus the
// per-face darkening factor computed by the lighting probe (§4.1).
type Triangle struct {
	P         [3]Vertex
	FaceLight uint8
}

// Mesh is an immutable, loaded-once sequence of triangles (§3: "loaded
// once, read-only").
type Mesh struct {
	Triangles []Triangle
}

// MeshInstance places a Mesh in the scene; position and rotation are the
// only fields simulation code mutates between frames (§3: "mutated by
// simulation").
type MeshInstance struct {
	Mesh     *Mesh
	Position Vec3
	Rotation Vec3
}

func NewMeshInstance(mesh *Mesh) *MeshInstance {
	return &MeshInstance{Mesh: mesh}
}
