package scene

import (
	"github.com/Faultbox/cornellbox/internal/engine/geometry"
	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/internal/engine/picking"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Kind classifies an entity.
type Kind int

const (
	KindWall Kind = iota
	KindSolid
	KindMarker
)

// String returns a readable kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindSolid:
		return "solid"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Entity is a renderable object: a wall, a solid or a light marker.
type Entity struct {
	Name string
	Kind Kind

	Position math.Vec3
	Rotation math.Vec3 // Euler angles in degrees
	Scale    math.Vec3

	// Spin is the animation speed in degrees per second per axis.
	Spin math.Vec3

	Visible bool

	// Mesh is built once and never modified.
	Mesh *geometry.Mesh

	// Flags drive Material; Base is never modified after construction.
	Flags    material.Flags
	Base     material.Material
	Material material.Material

	// Light is the index of the light a marker follows, -1 otherwise.
	Light int
}

// Model returns the model matrix T * R * S.
func (e *Entity) Model() math.Mat4 {
	return math.Compose(e.Position, e.Rotation, e.Scale)
}

// WorldBounds returns the world-space box enclosing the mesh.
func (e *Entity) WorldBounds() picking.AABB {
	b := e.Mesh.Bounds()
	return picking.TransformAABB(picking.AABB{Min: b.Min, Max: b.Max}, e.Model())
}

func newEntity(name string, kind Kind, mesh *geometry.Mesh, position math.Vec3, base material.Material) *Entity {
	return &Entity{
		Name:     name,
		Kind:     kind,
		Position: position,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Visible:  true,
		Mesh:     mesh,
		Base:     base,
		Material: material.Resolve(material.Flags{}, base),
		Light:    -1,
	}
}
