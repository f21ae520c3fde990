package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cornellbox/pkg/math"
)

var roomInterior = Box{
	Min: math.Vec3{X: -7, Y: -7, Z: -9.5},
	Max: math.Vec3{X: 7, Y: 7, Z: 4.5},
}

func cameras() map[string]Camera {
	return map[string]Camera{
		"orbit": NewOrbitCamera(),
		"fly":   NewFlyCamera(roomInterior),
	}
}

func TestFrontIsUnit(t *testing.T) {
	for name, c := range cameras() {
		t.Run(name, func(t *testing.T) {
			for _, yaw := range []float32{-720, -90, 0, 33.3, 180, 1e4} {
				for _, pitch := range []float32{-89, -45, 0, 12.5, 89} {
					e := newEuler(yaw, pitch)
					assert.InDelta(t, 1, e.Front().Length(), 1e-5, "yaw=%v pitch=%v", yaw, pitch)
					assert.InDelta(t, 1, e.Right().Length(), 1e-5)
					assert.InDelta(t, 1, e.Up().Length(), 1e-5)
					assert.InDelta(t, 0, e.Front().Dot(e.Right()), 1e-5)
					assert.InDelta(t, 0, e.Front().Dot(e.Up()), 1e-5)
				}
			}
			c.Rotate(123, -45)
			assert.InDelta(t, 1, c.Front().Length(), 1e-5)
		})
	}
}

func TestDefaultOrientationLooksDownNegativeZ(t *testing.T) {
	c := NewOrbitCamera()
	f := c.Front()
	assert.InDelta(t, 0, f.X, 1e-6)
	assert.InDelta(t, 0, f.Y, 1e-6)
	assert.InDelta(t, -1, f.Z, 1e-6)
	assert.InDelta(t, 1, c.Right().X, 1e-6)
	assert.InDelta(t, 1, c.Up().Y, 1e-6)
}

func TestPitchClamp(t *testing.T) {
	for name, c := range cameras() {
		t.Run(name, func(t *testing.T) {
			// Mouse up (negative dy) raises the pitch.
			c.Rotate(0, -10)
			assert.Equal(t, float32(5), c.Pitch())

			c.Rotate(0, -1000)
			assert.Equal(t, float32(MaxPitch), c.Pitch())

			c.Rotate(0, 5000)
			assert.Equal(t, float32(MinPitch), c.Pitch())
			assert.Greater(t, c.Up().Y, float32(0), "basis must not flip at the clamp")
		})
	}
}

func TestRotateYaw(t *testing.T) {
	c := NewOrbitCamera()
	c.Rotate(20, 0)
	assert.Equal(t, float32(DefaultYaw+10), c.Yaw())
	assert.Equal(t, float32(0), c.Pitch())
}

func TestOrbitPan(t *testing.T) {
	c := NewOrbitCamera()
	c.Pan(0.1, 0.2)
	assert.InDelta(t, 1, c.PanOffset().X, 1e-6)
	assert.InDelta(t, -2, c.PanOffset().Y, 1e-6)

	eye := c.Eye()
	assert.InDelta(t, 1, eye.X, 1e-6)
	assert.InDelta(t, -2, eye.Y, 1e-6)
	assert.Equal(t, OrbitDefaultPosition, c.Position(), "pan must not move the base position")

	// The eye maps to the view-space origin.
	p := c.ViewMatrix().TransformPoint(eye)
	assert.InDelta(t, 0, p.Length(), 1e-4)
}

func TestOrbitZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Zoom(5)
	assert.Equal(t, float32(50), c.FOV())
	c.Zoom(-10)
	assert.Equal(t, float32(70), c.FOV())

	c.Zoom(100)
	assert.Equal(t, float32(MinFOV), c.FOV())
	c.Zoom(-100)
	assert.Equal(t, float32(MaxFOV), c.FOV())
}

func TestOrbitMoveIsNoop(t *testing.T) {
	c := NewOrbitCamera()
	c.Move(1, 1, 1, 1)
	assert.Equal(t, OrbitDefaultPosition, c.Eye())
}

func TestOrbitReset(t *testing.T) {
	c := NewOrbitCamera()
	want := *c

	c.Rotate(300, -77)
	c.Pan(4, -9)
	c.Zoom(13)
	c.Reset()

	assert.Equal(t, OrbitDefaultPosition, c.Position())
	assert.Equal(t, math.Vec2{}, c.PanOffset())
	assert.Equal(t, float32(DefaultYaw), c.Yaw())
	assert.Equal(t, float32(DefaultPitch), c.Pitch())
	assert.Equal(t, float32(DefaultFOV), c.FOV())
	assert.Equal(t, want, *c)
}

func TestFlyMoveForward(t *testing.T) {
	c := NewFlyCamera(roomInterior)
	c.Move(1, 0, 0, 0.1)
	assert.InDelta(t, 3.5-DefaultMoveSpeed*0.1, c.Eye().Z, 1e-5)
	assert.InDelta(t, 0, c.Eye().X, 1e-5)
}

func TestFlyClampedToRoom(t *testing.T) {
	c := NewFlyCamera(roomInterior)
	for i := 0; i < 1000; i++ {
		c.Move(-1, 1, 1, 0.1)
		require.True(t, roomInterior.Contains(c.Eye()), "step %d left the room: %v", i, c.Eye())
	}
	assert.Equal(t, roomInterior.Max, c.Eye())

	c.Pan(-1e6, 1e6)
	assert.Equal(t, roomInterior.Min.X, c.Eye().X)
	assert.Equal(t, roomInterior.Min.Y, c.Eye().Y)
}

func TestFlyZoomIsNoop(t *testing.T) {
	c := NewFlyCamera(roomInterior)
	c.Zoom(10)
	assert.Equal(t, float32(DefaultFOV), c.FOV())
}

func TestFlyReset(t *testing.T) {
	c := NewFlyCamera(roomInterior)
	want := *c

	c.Rotate(-50, 30)
	c.Move(1, -1, 0.5, 2)
	c.Reset()

	assert.Equal(t, FlyDefaultPosition, c.Eye())
	assert.Equal(t, float32(DefaultYaw), c.Yaw())
	assert.Equal(t, float32(DefaultPitch), c.Pitch())
	assert.Equal(t, want, *c)
}

func TestProjectionUsesFOV(t *testing.T) {
	c := NewOrbitCamera()
	wide := c.ProjectionMatrix(1.5)
	c.Zoom(10)
	narrow := c.ProjectionMatrix(1.5)
	assert.Greater(t, narrow[5], wide[5], "narrower FOV should have a larger focal term")
	assert.Equal(t, math.Identity(), c.ProjectionMatrix(0))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("fly")
	require.NoError(t, err)
	assert.Equal(t, ModeFly, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeOrbit, m)

	_, err = ParseMode("dolly")
	assert.Error(t, err)
	assert.Equal(t, "fly", ModeFly.String())
}
