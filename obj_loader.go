package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ implements the mesh loader contract of §6: parse a Wavefront
// OBJ file into a Mesh of Triangles carrying position, UV and
// vertex-color-as-light. Grounded on the teacher's obj_loader.go
// (bufio.Scanner line-by-line parsing of v/vn/vt/f records); vertex
// normals are not needed downstream (the rasterizer derives its own
// face normal per triangle, §4.1) so vn records are skipped, and the
// normal index of a v/vt/vn or v//vn face field is ignored.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var positions []Vec3
	var uvs []UV
	var colors []Color
	var mesh Mesh

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, c, err := parseVertexLine(fields[1:])
			if err != nil {
				return nil, err
			}
			positions = append(positions, p)
			colors = append(colors, c)
		case "vt":
			uv, err := parseUVLine(fields[1:])
			if err != nil {
				return nil, err
			}
			uvs = append(uvs, uv)
		case "f":
			tri, err := parseFaceLine(fields[1:], positions, uvs, colors)
			if err != nil {
				return nil, err
			}
			mesh.Triangles = append(mesh.Triangles, tri...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &mesh, nil
}

// parseVertexLine parses "v x y z [r g b]". Vertex color, when present,
// is inverted and scaled per §6: stored light.r = 255 - r*255, so "no
// color" (white, 1 1 1) means no darkening.
func parseVertexLine(fields []string) (Vec3, Color, error) {
	if len(fields) < 3 {
		return Vec3{}, Color{}, fmt.Errorf("obj: malformed v line")
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Vec3{}, Color{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Vec3{}, Color{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Vec3{}, Color{}, err
	}

	color := ColorBlack
	if len(fields) >= 6 {
		r, rerr := strconv.ParseFloat(fields[3], 64)
		g, gerr := strconv.ParseFloat(fields[4], 64)
		b, berr := strconv.ParseFloat(fields[5], 64)
		if rerr == nil && gerr == nil && berr == nil {
			color = Color{
				R: uint8(clamp(255-r*255, 0, 255)),
				G: uint8(clamp(255-g*255, 0, 255)),
				B: uint8(clamp(255-b*255, 0, 255)),
			}
		}
	}

	return Vec3{X: x, Y: y, Z: z}, color, nil
}

func parseUVLine(fields []string) (UV, error) {
	if len(fields) < 2 {
		return UV{}, fmt.Errorf("obj: malformed vt line")
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return UV{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return UV{}, err
	}
	return UV{U: u * TextureSize, V: v * TextureSize}, nil
}

// parseFaceLine parses "f v1[/vt1[/vn1]] v2... v3..." and fan-
// triangulates faces with more than 3 vertices, matching the teacher's
// parseFaceVertex support for v, v/vt, v/vt/vn and v//vn forms.
func parseFaceLine(fields []string, positions []Vec3, uvs []UV, colors []Color) ([]Triangle, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("obj: face needs at least 3 vertices")
	}

	verts := make([]Vertex, len(fields))
	for i, field := range fields {
		parts := strings.Split(field, "/")
		vi, err := parseOBJIndex(parts[0], len(positions))
		if err != nil {
			return nil, err
		}

		vtx := Vertex{Coord: positions[vi], Light: colors[vi]}
		if len(parts) >= 2 && parts[1] != "" {
			ti, err := parseOBJIndex(parts[1], len(uvs))
			if err != nil {
				return nil, err
			}
			vtx.UV = uvs[ti]
		}
		verts[i] = vtx
	}

	var tris []Triangle
	for i := 1; i+1 < len(verts); i++ {
		tris = append(tris, Triangle{P: [3]Vertex{verts[0], verts[i], verts[i+1]}})
	}
	return tris, nil
}

func parseOBJIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = count + i
	} else {
		i--
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("obj: index %d out of range [0,%d)", i, count)
	}
	return i, nil
}
