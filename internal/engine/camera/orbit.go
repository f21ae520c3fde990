package camera

import (
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Orbit camera defaults.
const (
	DefaultPanSpeed  = 10.0
	DefaultZoomSpeed = 2.0
)

// OrbitDefaultPosition is where the orbit camera starts: in front of the
// open side of the room, looking down -Z.
var OrbitDefaultPosition = math.Vec3{X: 0, Y: 0, Z: 20}

// OrbitCamera views the room from outside. Panning moves a 2D offset added
// to the eye, and zooming changes the field of view.
type OrbitCamera struct {
	euler

	position math.Vec3
	pan      math.Vec2
	fov      float32

	Near float32
	Far  float32

	// Sensitivity
	PanSpeed  float32
	ZoomSpeed float32
}

// NewOrbitCamera creates an orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		euler:     newEuler(DefaultYaw, DefaultPitch),
		Near:      DefaultNear,
		Far:       DefaultFar,
		PanSpeed:  DefaultPanSpeed,
		ZoomSpeed: DefaultZoomSpeed,
	}
	c.Reset()
	return c
}

// Mode implements Camera.
func (c *OrbitCamera) Mode() Mode { return ModeOrbit }

// Pan offsets the eye in screen space. Dragging down moves the view down.
func (c *OrbitCamera) Pan(dx, dy float32) {
	c.pan = c.pan.Add(math.Vec2{X: dx, Y: -dy}.Scale(c.PanSpeed))
}

// Zoom narrows the field of view for positive amounts, clamped to
// [MinFOV, MaxFOV].
func (c *OrbitCamera) Zoom(amount float32) {
	c.fov = math.Clamp(c.fov-amount*c.ZoomSpeed, MinFOV, MaxFOV)
}

// Move is a no-op: the orbit camera is driven by the mouse only.
func (c *OrbitCamera) Move(forward, right, up, dt float32) {}

// Reset restores position, orientation, pan offset and field of view.
func (c *OrbitCamera) Reset() {
	c.position = OrbitDefaultPosition
	c.pan = math.Vec2{}
	c.fov = DefaultFOV
	c.setOrientation(DefaultYaw, DefaultPitch)
}

// Position returns the camera position without the pan offset.
func (c *OrbitCamera) Position() math.Vec3 { return c.position }

// PanOffset returns the accumulated pan offset.
func (c *OrbitCamera) PanOffset() math.Vec2 { return c.pan }

// Eye returns the world-space eye position including the pan offset.
func (c *OrbitCamera) Eye() math.Vec3 {
	return c.position.Add(math.Vec3{X: c.pan.X, Y: c.pan.Y})
}

// FOV returns the vertical field of view in degrees.
func (c *OrbitCamera) FOV() float32 { return c.fov }

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return c.view(c.Eye())
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.fov), aspect, c.Near, c.Far)
}
