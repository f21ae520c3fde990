package scene

import (
	"github.com/Faultbox/cornellbox/internal/engine/geometry"
	"github.com/Faultbox/cornellbox/internal/engine/lighting"
	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// DrawItem is everything the rasterizer needs to draw one entity.
type DrawItem struct {
	Name     string
	Mesh     *geometry.Mesh
	Model    math.Mat4
	Normal   math.Mat3
	Material material.Material
}

// FrameUniforms are the values shared by every draw call of a frame.
type FrameUniforms struct {
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3
	Lights     lighting.Uniforms
	ClearColor math.Vec3
}

// RenderList returns the visible entities, opaque ones first and then
// transparent ones, each group in insertion order.
func (s *State) RenderList() []DrawItem {
	items := make([]DrawItem, 0, len(s.entities))
	var transparent []DrawItem

	for _, e := range s.entities {
		if !e.Visible {
			continue
		}
		model := e.Model()
		item := DrawItem{
			Name:     e.Name,
			Mesh:     e.Mesh,
			Model:    model,
			Normal:   model.NormalMatrix(),
			Material: e.Material,
		}
		if e.Material.IsTransparent() {
			transparent = append(transparent, item)
			continue
		}
		items = append(items, item)
	}
	return append(items, transparent...)
}

// Frame returns the per-frame uniforms for the given viewport aspect ratio.
func (s *State) Frame(aspect float32) FrameUniforms {
	return FrameUniforms{
		View:       s.active.ViewMatrix(),
		Projection: s.active.ProjectionMatrix(aspect),
		CameraPos:  s.active.Eye(),
		Lights:     s.lights.Uniforms(),
		ClearColor: BackgroundColor,
	}
}
