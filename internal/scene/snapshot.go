package scene

import (
	"fmt"

	"github.com/Faultbox/cornellbox/internal/engine/camera"
	"github.com/Faultbox/cornellbox/internal/engine/lighting"
	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// FPSCounter counts frames over one-second windows.
type FPSCounter struct {
	frames int
	window float32
	fps    float32
}

// Tick records one frame of dt seconds.
func (c *FPSCounter) Tick(dt float32) {
	c.frames++
	c.window += dt
	if c.window >= 1 {
		c.fps = float32(c.frames) / c.window
		c.frames = 0
		c.window = 0
	}
}

// FPS returns the rate measured over the last complete window.
func (c *FPSCounter) FPS() float32 { return c.fps }

// ObjectState is the toggle state of one solid.
type ObjectState struct {
	Name  string
	Flags material.Flags
}

// Snapshot is a read-only copy of what the HUD shows.
type Snapshot struct {
	CameraMode camera.Mode
	CameraPos  math.Vec3
	Yaw        float32
	Pitch      float32
	FOV        float32

	FPS float32

	Objects  []ObjectState
	Selected string

	MirrorWall         string
	MirrorWallsEnabled bool

	MovingLight int
	Lights      []lighting.Light

	HUDVisible bool
}

// Snapshot copies the HUD state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		CameraMode:         s.active.Mode(),
		CameraPos:          s.active.Eye(),
		Yaw:                s.active.Yaw(),
		Pitch:              s.active.Pitch(),
		FOV:                s.active.FOV(),
		FPS:                s.fps.FPS(),
		MirrorWall:         s.mirrorWall,
		MirrorWallsEnabled: s.mirrorWallsEnabled,
		MovingLight:        s.movingLight,
		Lights:             s.lights.All(),
		HUDVisible:         s.showHUD,
		Selected:           s.selected,
	}
	for _, e := range s.entities {
		if e.Kind == KindSolid {
			snap.Objects = append(snap.Objects, ObjectState{Name: e.Name, Flags: e.Flags})
		}
	}
	return snap
}

// MovingLightState returns the light moved by the keyboard.
func (s Snapshot) MovingLightState() (lighting.Light, bool) {
	if s.MovingLight < 0 || s.MovingLight >= len(s.Lights) {
		return lighting.Light{}, false
	}
	return s.Lights[s.MovingLight], true
}

// Summary is a one-line description of the snapshot.
func (s Snapshot) Summary() string {
	wall := s.MirrorWall
	switch {
	case wall == "":
		wall = NoMirrorWall
	case !s.MirrorWallsEnabled:
		wall += " (off)"
	}
	line := fmt.Sprintf("%s cam (%.1f, %.1f, %.1f) yaw %.0f pitch %.0f fov %.0f | %.0f fps | mirror wall: %s",
		s.CameraMode, s.CameraPos.X, s.CameraPos.Y, s.CameraPos.Z, s.Yaw, s.Pitch, s.FOV, s.FPS, wall)
	if l, ok := s.MovingLightState(); ok {
		line += fmt.Sprintf(" | light %s (%.1f, %.1f, %.1f) x%.1f", l.Name, l.Position.X, l.Position.Y, l.Position.Z, l.Intensity)
	}
	return line
}
