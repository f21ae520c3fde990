// Package material holds surface coefficients and the rules that derive an
// entity's effective material from its base material and toggle flags.
//
// Mirror and transparency are emulated: no reflection or refraction pass
// exists, the flags only swap Phong coefficients and alpha.
package material

import (
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Coefficients applied by the toggles.
const (
	MirrorSpecular  = 0.8
	MirrorShininess = 120.0
	MirrorRoughness = 0.1

	MirrorWallSpecular  = 0.9
	MirrorWallShininess = 200.0

	TransparentAlpha = 0.4
	OpaqueAlpha      = 1.0
)

// Material describes a surface for the Phong shader.
type Material struct {
	Diffuse  math.Vec3
	Specular math.Vec3
	Emission math.Vec3

	// Shininess is the Phong exponent. Zero disables the specular term.
	Shininess float32
	Alpha     float32

	// Roughness is carried for display only; the shader ignores it.
	Roughness float32
}

// Flags are the per-entity toggles. They are the source of truth; the
// effective material is always recomputed from them.
type Flags struct {
	Mirror      bool
	Transparent bool
}

// Diffuse returns an opaque, non-specular material of the given color.
func Diffuse(color math.Vec3) Material {
	return Material{
		Diffuse:   color,
		Alpha:     OpaqueAlpha,
		Roughness: 0.5,
	}
}

// IsTransparent reports whether the material needs blending.
func (m Material) IsTransparent() bool {
	return m.Alpha < OpaqueAlpha
}

// Resolve derives the effective material for a solid. It only reads base and
// flags, so toggling a flag on and off restores the base coefficients.
func Resolve(flags Flags, base Material) Material {
	m := base
	if flags.Mirror {
		m.Specular = gray(MirrorSpecular)
		m.Shininess = MirrorShininess
		m.Roughness = MirrorRoughness
	} else {
		m.Specular = math.Zero
		m.Shininess = 0
	}
	if flags.Transparent {
		m.Alpha = TransparentAlpha
	} else {
		m.Alpha = OpaqueAlpha
	}
	return m
}

// ResolveWall derives the effective material for a wall. The mirror wall
// override applies only when the wall is the selected one and mirror walls
// are globally enabled.
func ResolveWall(base Material, selected, enabled bool) Material {
	m := Resolve(Flags{}, base)
	if selected && enabled {
		m.Specular = gray(MirrorWallSpecular)
		m.Shininess = MirrorWallShininess
		m.Roughness = MirrorRoughness
	}
	return m
}

// ResolveMarker derives the material of a light marker: it glows in the
// light's color while the light is on and goes dark when it is off. Markers
// are unlit, so only the emission term contributes.
func ResolveMarker(base Material, lightColor math.Vec3, enabled bool) Material {
	m := Resolve(Flags{}, base)
	m.Diffuse = math.Zero
	if enabled {
		m.Emission = lightColor
	} else {
		m.Emission = math.Zero
	}
	return m
}

func gray(v float32) math.Vec3 {
	return math.Vec3{X: v, Y: v, Z: v}
}
