package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Ambient is the fraction of the diffuse color added regardless of lights.
const Ambient = 0.1

// Shade evaluates the fragment shader's lighting model on the CPU:
//
//	color = emission + sum(diffuse + specular) + Ambient*diffuse
//
// with Lambert diffuse and Phong specular per light. The specular term is
// skipped when shininess is zero. The result is not clamped.
func Shade(point, normal, viewPos math.Vec3, m material.Material, u Uniforms) (math.Vec3, float32) {
	n := normal.Normalize()
	viewDir := viewPos.Sub(point).Normalize()

	result := m.Emission
	for i := 0; i < u.Count && i < MaxLights; i++ {
		lightDir := u.Positions[i].Sub(point).Normalize()
		color := u.Colors[i].Scale(u.Intensities[i])

		diff := math32.Max(n.Dot(lightDir), 0)
		result = result.Add(color.Mul(m.Diffuse).Scale(diff))

		if m.Shininess > 0 {
			reflectDir := lightDir.Negate().Reflect(n)
			spec := math32.Pow(math32.Max(viewDir.Dot(reflectDir), 0), m.Shininess)
			result = result.Add(color.Mul(m.Specular).Scale(spec))
		}
	}

	result = result.Add(m.Diffuse.Scale(Ambient))
	return result, m.Alpha
}
