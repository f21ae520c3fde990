// Package camera provides the two camera styles used to look at the room:
// an orbit camera viewing the box from outside and a fly camera walking
// inside it. Both share the same Euler-angle orientation math.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cornellbox/pkg/math"
)

// Orientation and projection limits shared by every camera.
const (
	MinPitch = -89.0
	MaxPitch = 89.0

	MinFOV = 10.0
	MaxFOV = 120.0

	DefaultYaw   = -90.0
	DefaultPitch = 0.0
	DefaultFOV   = 60.0
	DefaultNear  = 0.1
	DefaultFar   = 100.0

	DefaultRotationSpeed = 0.5
)

// WorldUp is the up direction used to derive the camera basis.
var WorldUp = math.UnitY

// Mode identifies a camera style.
type Mode int

const (
	ModeOrbit Mode = iota
	ModeFly
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFly:
		return "fly"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a config name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "orbit", "":
		return ModeOrbit, nil
	case "fly":
		return ModeFly, nil
	default:
		return ModeOrbit, fmt.Errorf("unknown camera mode %q", s)
	}
}

// Camera is the capability shared by both camera styles.
// The getters are pure and never change camera state.
type Camera interface {
	Mode() Mode

	// Rotate turns the camera by mouse deltas (yaw += dx, pitch -= dy).
	Rotate(dx, dy float32)
	// Pan shifts the view sideways and vertically.
	Pan(dx, dy float32)
	// Zoom narrows the field of view for positive amounts.
	Zoom(amount float32)
	// Move integrates keyboard movement over dt seconds.
	Move(forward, right, up, dt float32)
	// Reset restores the documented defaults.
	Reset()

	Eye() math.Vec3
	Yaw() float32
	Pitch() float32
	FOV() float32
	Front() math.Vec3
	Right() math.Vec3
	Up() math.Vec3

	ViewMatrix() math.Mat4
	ProjectionMatrix(aspect float32) math.Mat4
}

// euler holds yaw/pitch in degrees and the basis derived from them.
type euler struct {
	yaw, pitch float32

	// RotationSpeed scales mouse deltas into degrees.
	RotationSpeed float32

	front, right, up math.Vec3
}

func newEuler(yaw, pitch float32) euler {
	e := euler{RotationSpeed: DefaultRotationSpeed}
	e.setOrientation(yaw, pitch)
	return e
}

// Rotate applies a mouse delta. Moving the mouse up (negative dy) raises
// the pitch; the pitch is clamped to [MinPitch, MaxPitch] to avoid flipping.
func (e *euler) Rotate(dx, dy float32) {
	e.setOrientation(e.yaw+dx*e.RotationSpeed, e.pitch-dy*e.RotationSpeed)
}

func (e *euler) setOrientation(yaw, pitch float32) {
	e.yaw = yaw
	e.pitch = math.Clamp(pitch, MinPitch, MaxPitch)
	e.updateVectors()
}

func (e *euler) updateVectors() {
	yaw, pitch := math.Radians(e.yaw), math.Radians(e.pitch)
	e.front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	e.right = e.front.Cross(WorldUp).Normalize()
	e.up = e.right.Cross(e.front).Normalize()
}

// Yaw returns the horizontal angle in degrees.
func (e *euler) Yaw() float32 { return e.yaw }

// Pitch returns the vertical angle in degrees.
func (e *euler) Pitch() float32 { return e.pitch }

// Front returns the unit viewing direction.
func (e *euler) Front() math.Vec3 { return e.front }

// Right returns the unit right vector.
func (e *euler) Right() math.Vec3 { return e.right }

// Up returns the unit up vector of the camera basis.
func (e *euler) Up() math.Vec3 { return e.up }

func (e *euler) view(eye math.Vec3) math.Mat4 {
	return math.LookAtBasis(eye, e.front, e.right, e.up)
}

var (
	_ Camera = (*OrbitCamera)(nil)
	_ Camera = (*FlyCamera)(nil)
)
