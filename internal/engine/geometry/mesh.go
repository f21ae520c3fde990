// Package geometry builds the procedural meshes used by the room, the solids
// and the light markers.
package geometry

import (
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Mesh holds immutable triangle data ready for GPU upload.
// Positions and Normals are flat xyz arrays with one normal per vertex.
// Triangles are wound counter-clockwise when seen from outside.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// Bounds holds an axis-aligned bounding box in mesh space.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns vertex i.
func (m *Mesh) Position(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	return math.Vec3{X: m.Normals[i*3], Y: m.Normals[i*3+1], Z: m.Normals[i*3+2]}
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() Bounds {
	if m.VertexCount() == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Position(0), Max: m.Position(0)}
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Position(i)
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}

// InterleavedStride is the number of floats per vertex in Interleaved.
const InterleavedStride = 6

// Interleaved returns position and normal interleaved per vertex for a
// single vertex buffer.
func (m *Mesh) Interleaved() []float32 {
	n := m.VertexCount()
	out := make([]float32, 0, n*InterleavedStride)
	for i := 0; i < n; i++ {
		out = append(out, m.Positions[i*3:i*3+3]...)
		out = append(out, m.Normals[i*3:i*3+3]...)
	}
	return out
}

// builder accumulates vertices while a mesh is generated.
type builder struct {
	positions []float32
	normals   []float32
	indices   []uint32
}

func newBuilder(vertices, indices int) *builder {
	return &builder{
		positions: make([]float32, 0, vertices*3),
		normals:   make([]float32, 0, vertices*3),
		indices:   make([]uint32, 0, indices),
	}
}

func (b *builder) vertex(p, n math.Vec3) {
	b.positions = append(b.positions, p.X, p.Y, p.Z)
	b.normals = append(b.normals, n.X, n.Y, n.Z)
}

func (b *builder) base() uint32 {
	return uint32(len(b.positions) / 3)
}

func (b *builder) mesh() *Mesh {
	return &Mesh{Positions: b.positions, Normals: b.normals, Indices: b.indices}
}
