package geometry

import (
	"github.com/Faultbox/cornellbox/pkg/math"
)

// cubeFace describes one face of an axis-aligned box.
// Corners are listed counter-clockwise when seen from outside, in units of
// the half extents.
type cubeFace struct {
	normal  math.Vec3
	corners [4]math.Vec3
}

var cubeFaces = [6]cubeFace{
	// +Z (front)
	{math.Vec3{X: 0, Y: 0, Z: 1}, [4]math.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	// -Z (back)
	{math.Vec3{X: 0, Y: 0, Z: -1}, [4]math.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
	// -X (left)
	{math.Vec3{X: -1, Y: 0, Z: 0}, [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
	// +X (right)
	{math.Vec3{X: 1, Y: 0, Z: 0}, [4]math.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
	// +Y (top)
	{math.Vec3{X: 0, Y: 1, Z: 0}, [4]math.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
	// -Y (bottom)
	{math.Vec3{X: 0, Y: -1, Z: 0}, [4]math.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
}

// Cube builds an axis-aligned box centered at the origin with the given
// extents. Each face owns its 4 vertices so normals stay flat:
// 24 vertices and 36 indices.
func Cube(sx, sy, sz float32) *Mesh {
	half := math.Vec3{X: sx / 2, Y: sy / 2, Z: sz / 2}
	b := newBuilder(24, 36)

	for _, face := range cubeFaces {
		base := b.base()
		for _, c := range face.corners {
			b.vertex(c.Mul(half), face.normal)
		}
		b.indices = append(b.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return b.mesh()
}

// UniformCube builds a cube with equal extents.
func UniformCube(size float32) *Mesh {
	return Cube(size, size, size)
}
