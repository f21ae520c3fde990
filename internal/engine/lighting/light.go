// Package lighting provides point lights and the fixed-size uniform bundle
// the shader consumes.
package lighting

import (
	"github.com/Faultbox/cornellbox/pkg/math"
)

// MaxLights is the number of light slots in the shader.
const MaxLights = 4

// Keyboard intensity limits.
const (
	MinIntensity = 0.1
	MaxIntensity = 2.0
)

// Light is a point light. There is no attenuation.
type Light struct {
	Name      string
	Position  math.Vec3
	Color     math.Vec3 // RGB color (0-1 range)
	Intensity float32
	Enabled   bool
	Movable   bool
}

// Set holds lights in insertion order. The order decides the uniform slot.
type Set struct {
	lights []Light
}

// NewSet creates a set holding the given lights in order.
func NewSet(lights ...Light) *Set {
	s := &Set{lights: make([]Light, 0, len(lights))}
	for _, l := range lights {
		s.Add(l)
	}
	return s
}

// Add appends a light and returns its index.
func (s *Set) Add(l Light) int {
	s.lights = append(s.lights, l)
	return len(s.lights) - 1
}

// Len returns the number of lights, enabled or not.
func (s *Set) Len() int { return len(s.lights) }

// At returns a copy of light i.
func (s *Set) At(i int) (Light, bool) {
	if i < 0 || i >= len(s.lights) {
		return Light{}, false
	}
	return s.lights[i], true
}

// All returns a copy of every light in insertion order.
func (s *Set) All() []Light {
	out := make([]Light, len(s.lights))
	copy(out, s.lights)
	return out
}

// Index returns the index of the light with the given name, or -1.
func (s *Set) Index(name string) int {
	for i := range s.lights {
		if s.lights[i].Name == name {
			return i
		}
	}
	return -1
}

// Move translates light i. Out-of-range indices are ignored.
func (s *Set) Move(i int, delta math.Vec3) {
	if i < 0 || i >= len(s.lights) {
		return
	}
	s.lights[i].Position = s.lights[i].Position.Add(delta)
}

// AdjustIntensity changes the intensity of light i, clamped to
// [MinIntensity, MaxIntensity]. Out-of-range indices are ignored.
func (s *Set) AdjustIntensity(i int, delta float32) {
	if i < 0 || i >= len(s.lights) {
		return
	}
	l := &s.lights[i]
	l.Intensity = math.Clamp(l.Intensity+delta, MinIntensity, MaxIntensity)
}

// Toggle flips the enabled state of light i. Out-of-range indices are ignored.
func (s *Set) Toggle(i int) {
	if i < 0 || i >= len(s.lights) {
		return
	}
	s.lights[i].Enabled = !s.lights[i].Enabled
}

// Uniforms is the per-frame light bundle. Only the first Count slots are
// meaningful; the rest are zero.
type Uniforms struct {
	Positions   [MaxLights]math.Vec3
	Colors      [MaxLights]math.Vec3
	Intensities [MaxLights]float32
	Count       int
}

// Uniforms packs the enabled lights in insertion order, dropping any past
// the MaxLights-th.
func (s *Set) Uniforms() Uniforms {
	var u Uniforms
	for _, l := range s.lights {
		if !l.Enabled {
			continue
		}
		if u.Count == MaxLights {
			break
		}
		u.Positions[u.Count] = l.Position
		u.Colors[u.Count] = l.Color
		u.Intensities[u.Count] = l.Intensity
		u.Count++
	}
	return u
}

// GetPositions returns positions as a flat array for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (u *Uniforms) GetPositions() [MaxLights * 3]float32 {
	return flatten(&u.Positions)
}

// GetColors returns colors as a flat array for GPU upload.
// Format: [r0, g0, b0, r1, g1, b1, ...]
func (u *Uniforms) GetColors() [MaxLights * 3]float32 {
	return flatten(&u.Colors)
}

// GetIntensities returns intensities for GPU upload.
func (u *Uniforms) GetIntensities() [MaxLights]float32 {
	return u.Intensities
}

func flatten(v *[MaxLights]math.Vec3) [MaxLights * 3]float32 {
	var out [MaxLights * 3]float32
	for i := range v {
		out[i*3+0] = v[i].X
		out[i*3+1] = v[i].Y
		out[i*3+2] = v[i].Z
	}
	return out
}
