package lighting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/pkg/math"
)

func numbered(n int) []Light {
	lights := make([]Light, n)
	for i := range lights {
		lights[i] = Light{
			Name:      fmt.Sprintf("l%d", i),
			Position:  math.V3(float32(i), 0, 0),
			Color:     math.V3(1, 1, 1),
			Intensity: 1,
			Enabled:   true,
		}
	}
	return lights
}

func TestUniformsTruncatesToMaxLights(t *testing.T) {
	s := NewSet(numbered(5)...)
	u := s.Uniforms()

	require.Equal(t, MaxLights, u.Count)
	for i := 0; i < MaxLights; i++ {
		assert.Equal(t, float32(i), u.Positions[i].X, "slot %d", i)
	}
}

func TestUniformsSkipsDisabled(t *testing.T) {
	lights := numbered(5)
	lights[1].Enabled = false
	s := NewSet(lights...)
	u := s.Uniforms()

	require.Equal(t, 4, u.Count)
	got := []float32{u.Positions[0].X, u.Positions[1].X, u.Positions[2].X, u.Positions[3].X}
	assert.Equal(t, []float32{0, 2, 3, 4}, got)
}

func TestUniformsZeroFill(t *testing.T) {
	s := NewSet(numbered(2)...)
	s.Toggle(0)
	u := s.Uniforms()

	assert.Equal(t, 1, u.Count)
	assert.Equal(t, float32(1), u.Positions[0].X)
	for i := 1; i < MaxLights; i++ {
		assert.Equal(t, math.Zero, u.Positions[i])
		assert.Equal(t, float32(0), u.Intensities[i])
	}
}

func TestFlatArrays(t *testing.T) {
	s := NewSet(Light{
		Position:  math.V3(0, 12, -5),
		Color:     math.V3(1, 1, 0.9),
		Intensity: 1.2,
		Enabled:   true,
	})
	u := s.Uniforms()

	pos := u.GetPositions()
	assert.Equal(t, [3]float32{0, 12, -5}, [3]float32(pos[0:3]))
	assert.Equal(t, float32(0), pos[3])

	col := u.GetColors()
	assert.Equal(t, float32(0.9), col[2])
	assert.Equal(t, float32(1.2), u.GetIntensities()[0])
}

func TestAdjustIntensityClamps(t *testing.T) {
	s := NewSet(numbered(1)...)

	for i := 0; i < 30; i++ {
		s.AdjustIntensity(0, 0.1)
	}
	l, _ := s.At(0)
	assert.Equal(t, float32(MaxIntensity), l.Intensity)

	for i := 0; i < 30; i++ {
		s.AdjustIntensity(0, -0.1)
	}
	l, _ = s.At(0)
	assert.Equal(t, float32(MinIntensity), l.Intensity)
}

func TestOutOfRangeIsNoop(t *testing.T) {
	s := NewSet(numbered(2)...)
	before := s.All()

	for _, i := range []int{-1, 2, 100} {
		s.Move(i, math.V3(1, 1, 1))
		s.AdjustIntensity(i, 1)
		s.Toggle(i)
		_, ok := s.At(i)
		assert.False(t, ok)
	}
	assert.Equal(t, before, s.All())
}

func TestMoveAndIndex(t *testing.T) {
	s := NewSet(numbered(3)...)
	i := s.Index("l2")
	require.Equal(t, 2, i)
	assert.Equal(t, -1, s.Index("missing"))

	s.Move(i, math.V3(0.5, -0.5, 1))
	l, ok := s.At(i)
	require.True(t, ok)
	assert.Equal(t, math.V3(2.5, -0.5, 1), l.Position)
}

func TestShade(t *testing.T) {
	red := material.Diffuse(math.V3(1, 0, 0))
	up := math.V3(0, 1, 0)
	overhead := NewSet(Light{
		Position:  math.V3(0, 10, 0),
		Color:     math.V3(1, 1, 1),
		Intensity: 1,
		Enabled:   true,
	})

	t.Run("ambient only without lights", func(t *testing.T) {
		c, a := Shade(math.Zero, up, math.V3(0, 5, 5), red, Uniforms{})
		assert.InDelta(t, 0.1, c.X, 1e-6)
		assert.Equal(t, float32(0), c.Y)
		assert.Equal(t, float32(1), a)
	})

	t.Run("lambert head-on", func(t *testing.T) {
		c, _ := Shade(math.Zero, up, math.V3(0, 5, 5), red, overhead.Uniforms())
		assert.InDelta(t, 1.1, c.X, 1e-5)
		assert.InDelta(t, 0, c.Y, 1e-6)
	})

	t.Run("light behind surface", func(t *testing.T) {
		c, _ := Shade(math.Zero, up.Negate(), math.V3(0, 5, 5), red, overhead.Uniforms())
		assert.InDelta(t, 0.1, c.X, 1e-6)
	})

	t.Run("emission adds", func(t *testing.T) {
		glow := material.ResolveMarker(red, math.V3(0, 0, 1), true)
		c, _ := Shade(math.Zero, up, math.V3(0, 5, 5), glow, Uniforms{})
		assert.InDelta(t, 1, c.Z, 1e-6)
	})

	t.Run("mirror highlight", func(t *testing.T) {
		mirror := material.Resolve(material.Flags{Mirror: true}, red)
		// View straight along the reflected ray: full specular.
		c, _ := Shade(math.Zero, up, math.V3(0, 5, 0), mirror, overhead.Uniforms())
		assert.InDelta(t, 1.1+0.8, c.X, 1e-4)
		assert.InDelta(t, 0.8, c.Y, 1e-4)
	})

	t.Run("alpha passes through", func(t *testing.T) {
		glass := material.Resolve(material.Flags{Transparent: true}, red)
		_, a := Shade(math.Zero, up, math.V3(0, 5, 5), glass, overhead.Uniforms())
		assert.Equal(t, float32(material.TransparentAlpha), a)
	})
}
