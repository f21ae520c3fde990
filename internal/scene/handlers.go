package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cornellbox/internal/engine/camera"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Key identifies a keyboard key the scene reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyU
	KeyR
	KeyC
	KeyM
	KeyV
	KeyTab
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyPlus
	KeyMinus
	Key1
	Key2
	KeyF12
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// ToggleKind is a HUD action.
type ToggleKind int

const (
	ToggleMirror ToggleKind = iota
	ToggleTransparent
	SelectMirrorWall
	ToggleMirrorWalls
	ToggleLight
	NextMovingLight
	ResetCamera
	ToggleHUD
)

var toggleNames = map[ToggleKind]string{
	ToggleMirror:      "mirror",
	ToggleTransparent: "transparent",
	SelectMirrorWall:  "mirror_wall",
	ToggleMirrorWalls: "mirror_walls",
	ToggleLight:       "light",
	NextMovingLight:   "next_light",
	ResetCamera:       "reset_camera",
	ToggleHUD:         "hud",
}

// String returns the action name.
func (k ToggleKind) String() string {
	if name, ok := toggleNames[k]; ok {
		return name
	}
	return "unknown"
}

// OnMouseButton records a button press or release.
func (s *State) OnMouseButton(button MouseButton, pressed bool) {
	s.dragging[button] = pressed
}

// OnMouseMove forwards relative motion as a drag of the held button. The
// left button wins when several are held.
func (s *State) OnMouseMove(dx, dy float32) {
	for _, b := range []MouseButton{ButtonLeft, ButtonRight} {
		if s.dragging[b] {
			s.OnMouseDrag(b, dx, dy)
			return
		}
	}
}

// OnMouseDrag applies a drag delta in pixels. Left drag rotates the camera,
// right drag pans it.
func (s *State) OnMouseDrag(button MouseButton, dx, dy float32) {
	switch button {
	case ButtonLeft:
		s.active.Rotate(dx*s.opts.DragRotateScale, dy*s.opts.DragRotateScale)
	case ButtonRight:
		s.active.Pan(dx*s.opts.DragPanScale, dy*s.opts.DragPanScale)
	}
}

// OnScroll zooms the camera. Positive dy scrolls up and zooms in.
func (s *State) OnScroll(dy float32) {
	s.active.Zoom(dy * s.opts.ScrollZoomScale)
}

// OnKey handles a key press or release.
func (s *State) OnKey(key Key, pressed bool) {
	flying := s.active.Mode() == camera.ModeFly

	if isMoveKey(key) && flying {
		s.held[key] = pressed
		return
	}
	if !pressed {
		return
	}

	switch key {
	case KeyEscape:
		s.Quit()
	case KeyU:
		s.showHUD = !s.showHUD
	case KeyR:
		s.ResetCamera()
	case KeyC:
		s.SwitchCamera()
	case KeyTab:
		s.NextMovingLight()
	case KeyM:
		s.mirrorWallsEnabled = !s.mirrorWallsEnabled
	case KeyV:
		s.OnToggleRequest(s.nextMirrorWall(), SelectMirrorWall)
	case Key1:
		s.lights.Toggle(0)
	case Key2:
		s.lights.Toggle(1)
	case KeyF12:
		s.screenshot = true
	case KeyPlus:
		s.lights.AdjustIntensity(s.movingLight, IntensityStep)
	case KeyMinus:
		s.lights.AdjustIntensity(s.movingLight, -IntensityStep)
	default:
		if delta, ok := lightDelta(key); ok {
			s.lights.Move(s.movingLight, delta)
		}
	}
}

func isMoveKey(key Key) bool {
	switch key {
	case KeyW, KeyA, KeyS, KeyD, KeyQ, KeyE:
		return true
	}
	return false
}

// lightDelta maps a key to a moving light step. WASD move in the horizontal
// plane, Q and E raise and lower.
func lightDelta(key Key) (math.Vec3, bool) {
	switch key {
	case KeyW, KeyUp:
		return math.V3(0, 0, -LightStep), true
	case KeyS, KeyDown:
		return math.V3(0, 0, LightStep), true
	case KeyA, KeyLeft:
		return math.V3(-LightStep, 0, 0), true
	case KeyD, KeyRight:
		return math.V3(LightStep, 0, 0), true
	case KeyQ, KeyPageUp:
		return math.V3(0, LightStep, 0), true
	case KeyE, KeyPageDown:
		return math.V3(0, -LightStep, 0), true
	}
	return math.Zero, false
}

// OnToggleRequest applies a HUD action. target names the solid, wall or
// light the action refers to; it is ignored by actions without a target.
// Unknown targets are no-ops.
func (s *State) OnToggleRequest(target string, kind ToggleKind) {
	switch kind {
	case ToggleMirror:
		if e := s.solid(target); e != nil {
			s.SetMirror(target, !e.Flags.Mirror)
			s.selected = target
		}
	case ToggleTransparent:
		if e := s.solid(target); e != nil {
			s.SetTransparent(target, !e.Flags.Transparent)
			s.selected = target
		}
	case SelectMirrorWall:
		s.SelectMirrorWall(target)
	case ToggleMirrorWalls:
		s.mirrorWallsEnabled = !s.mirrorWallsEnabled
	case ToggleLight:
		s.lights.Toggle(s.lights.Index(target))
	case NextMovingLight:
		s.NextMovingLight()
	case ResetCamera:
		s.ResetCamera()
	case ToggleHUD:
		s.showHUD = !s.showHUD
	default:
		return
	}
	s.log.Debug("toggle", zap.Stringer("kind", kind), zap.String("target", target))
}
