package camera

import (
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Fly camera defaults.
const (
	DefaultMoveSpeed   = 5.0
	DefaultStrafeSpeed = 0.1
)

// FlyDefaultPosition is where the fly camera starts: just inside the open
// side of the room.
var FlyDefaultPosition = math.Vec3{X: 0, Y: 0, Z: 3.5}

// Box is an axis-aligned region the fly camera may not leave.
type Box struct {
	Min, Max math.Vec3
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box) Contains(p math.Vec3) bool {
	return p.Clamp(b.Min, b.Max) == p
}

// FlyCamera walks inside the room. Movement is integrated from held keys and
// the position is clamped to an interior box after every step. The field of
// view is fixed.
type FlyCamera struct {
	euler

	position math.Vec3
	bounds   Box

	Near float32
	Far  float32

	// Sensitivity
	MoveSpeed   float32
	StrafeSpeed float32
}

// NewFlyCamera creates a fly camera confined to bounds.
func NewFlyCamera(bounds Box) *FlyCamera {
	c := &FlyCamera{
		euler:       newEuler(DefaultYaw, DefaultPitch),
		bounds:      bounds,
		Near:        DefaultNear,
		Far:         DefaultFar,
		MoveSpeed:   DefaultMoveSpeed,
		StrafeSpeed: DefaultStrafeSpeed,
	}
	c.Reset()
	return c
}

// Mode implements Camera.
func (c *FlyCamera) Mode() Mode { return ModeFly }

// Move integrates movement along front, right and world up over dt seconds,
// then clamps the position to the interior box.
func (c *FlyCamera) Move(forward, right, up, dt float32) {
	delta := c.front.Scale(forward).
		Add(c.right.Scale(right)).
		Add(WorldUp.Scale(up))
	c.setPosition(c.position.Add(delta.Scale(c.MoveSpeed * dt)))
}

// Pan strafes along the camera right and up vectors.
func (c *FlyCamera) Pan(dx, dy float32) {
	delta := c.right.Scale(dx * c.StrafeSpeed).Add(c.up.Scale(-dy * c.StrafeSpeed))
	c.setPosition(c.position.Add(delta))
}

// Zoom is a no-op: the fly camera has a fixed field of view.
func (c *FlyCamera) Zoom(amount float32) {}

// Reset restores position and orientation.
func (c *FlyCamera) Reset() {
	c.setPosition(FlyDefaultPosition)
	c.setOrientation(DefaultYaw, DefaultPitch)
}

// Bounds returns the interior box.
func (c *FlyCamera) Bounds() Box { return c.bounds }

// Eye returns the world-space position.
func (c *FlyCamera) Eye() math.Vec3 { return c.position }

// FOV returns the fixed vertical field of view in degrees.
func (c *FlyCamera) FOV() float32 { return DefaultFOV }

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return c.view(c.position)
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *FlyCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(DefaultFOV), aspect, c.Near, c.Far)
}

func (c *FlyCamera) setPosition(p math.Vec3) {
	c.position = p.Clamp(c.bounds.Min, c.bounds.Max)
}
