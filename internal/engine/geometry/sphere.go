package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cornellbox/pkg/math"
)

// MinSegments is the lowest tessellation Sphere accepts.
const MinSegments = 3

// Sphere builds a UV sphere centered at the origin.
// Rings walk the polar angle φ from 0 (top) to π and segments walk the
// azimuth θ from 0 to 2π, producing (segments+1)² vertices and
// 2·segments² triangles. Normals are the unit-radius positions.
func Sphere(radius float32, segments int) *Mesh {
	if segments < MinSegments {
		segments = MinSegments
	}
	stride := segments + 1
	b := newBuilder(stride*stride, segments*segments*6)

	for i := 0; i <= segments; i++ {
		phi := math32.Pi * float32(i) / float32(segments)
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

		for j := 0; j <= segments; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(segments)
			n := math.Vec3{
				X: sinPhi * math32.Cos(theta),
				Y: cosPhi,
				Z: sinPhi * math32.Sin(theta),
			}
			b.vertex(n.Scale(radius), n)
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			v0 := uint32(i*stride + j)
			v1 := v0 + 1
			v2 := uint32((i+1)*stride + j)
			v3 := v2 + 1

			// Counter-clockwise seen from outside.
			b.indices = append(b.indices,
				v0, v1, v2,
				v1, v3, v2,
			)
		}
	}

	return b.mesh()
}
