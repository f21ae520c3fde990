// Package scene holds the Cornell box: its entities, lights and cameras, the
// per-frame update that derives materials from toggles, and the handlers the
// input layer calls.
//
// All state lives on State and is owned by the frame loop goroutine.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cornellbox/internal/engine/camera"
	"github.com/Faultbox/cornellbox/internal/engine/lighting"
	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/internal/engine/picking"
	"github.com/Faultbox/cornellbox/internal/logger"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Keyboard step sizes.
const (
	LightStep      = 0.5
	IntensityStep  = 0.1
	DefaultMovable = 1
)

// Options configures a new State.
type Options struct {
	CameraMode camera.Mode

	// Input scales applied before the camera's own sensitivity.
	DragRotateScale float32
	DragPanScale    float32
	ScrollZoomScale float32

	// MoveSpeed is the fly camera speed in units per second.
	MoveSpeed float32

	Animate            bool
	MirrorWallsEnabled bool
	ShowHUD            bool
}

// DefaultOptions returns the default scene options.
func DefaultOptions() Options {
	return Options{
		CameraMode:         camera.ModeOrbit,
		DragRotateScale:    0.5,
		DragPanScale:       0.01,
		ScrollZoomScale:    2,
		MoveSpeed:          camera.DefaultMoveSpeed,
		Animate:            true,
		MirrorWallsEnabled: true,
		ShowHUD:            true,
	}
}

// State is the whole scene. It replaces what would otherwise be globals:
// drag state, mirror wall selection, the moving light and the held keys.
type State struct {
	opts Options
	log  *zap.Logger

	entities []*Entity
	byName   map[string]*Entity

	lights *lighting.Set

	orbit  *camera.OrbitCamera
	fly    *camera.FlyCamera
	active camera.Camera

	dragging map[MouseButton]bool
	held     map[Key]bool

	mirrorWall         string
	pendingMirrorWall  string
	hasPending         bool
	mirrorWallsEnabled bool

	movingLight int

	// selected is the solid last targeted by a toggle.
	selected string

	elapsed float32
	fps     FPSCounter

	showHUD    bool
	running    bool
	screenshot bool
}

// New builds the scene with the given options.
func New(opts Options) *State {
	s := &State{
		opts:               opts,
		log:                logger.Named("scene"),
		byName:             make(map[string]*Entity),
		lights:             lighting.NewSet(),
		orbit:              camera.NewOrbitCamera(),
		fly:                camera.NewFlyCamera(Interior()),
		dragging:           make(map[MouseButton]bool),
		held:               make(map[Key]bool),
		mirrorWallsEnabled: opts.MirrorWallsEnabled,
		movingLight:        DefaultMovable,
		showHUD:            opts.ShowHUD,
		running:            true,
	}
	if opts.MoveSpeed > 0 {
		s.fly.MoveSpeed = opts.MoveSpeed
	}
	s.active = s.orbit
	if opts.CameraMode == camera.ModeFly {
		s.active = s.fly
	}

	s.build()
	s.RefreshMaterials()
	s.syncMarkers()

	s.log.Debug("scene built",
		zap.Int("entities", len(s.entities)),
		zap.Int("lights", s.lights.Len()),
		zap.Stringer("camera", s.active.Mode()),
	)
	return s
}

func (s *State) add(e *Entity) {
	s.entities = append(s.entities, e)
	s.byName[e.Name] = e
}

// Entities returns the entities in insertion order.
func (s *State) Entities() []*Entity { return s.entities }

// Entity returns the entity with the given name, or nil.
func (s *State) Entity(name string) *Entity { return s.byName[name] }

// Lights returns the light set.
func (s *State) Lights() *lighting.Set { return s.lights }

// Camera returns the active camera.
func (s *State) Camera() camera.Camera { return s.active }

// Running reports whether the frame loop should continue.
func (s *State) Running() bool { return s.running }

// Quit ends the frame loop after the current frame.
func (s *State) Quit() { s.running = false }

// HUDVisible reports whether the HUD should be drawn.
func (s *State) HUDVisible() bool { return s.showHUD }

// MirrorWall returns the selected mirror wall, or "" for none.
func (s *State) MirrorWall() string { return s.mirrorWall }

// MirrorWallsEnabled reports the global mirror wall switch.
func (s *State) MirrorWallsEnabled() bool { return s.mirrorWallsEnabled }

// Selected returns the solid last targeted by a toggle and its world bounds.
func (s *State) Selected() (string, picking.AABB, bool) {
	e := s.solid(s.selected)
	if e == nil || !e.Visible {
		return "", picking.AABB{}, false
	}
	return e.Name, e.WorldBounds(), true
}

// MovingLight returns the index of the light moved by the keyboard.
func (s *State) MovingLight() int { return s.movingLight }

// TakeScreenshotRequest reports and clears a pending screenshot request.
func (s *State) TakeScreenshotRequest() bool {
	req := s.screenshot
	s.screenshot = false
	return req
}

// SetMirror sets the mirror flag of a solid. Unknown names are ignored.
// The material changes on the next RefreshMaterials.
func (s *State) SetMirror(name string, on bool) {
	if e := s.solid(name); e != nil {
		e.Flags.Mirror = on
	}
}

// SetTransparent sets the transparent flag of a solid. Unknown names are
// ignored. The material changes on the next RefreshMaterials.
func (s *State) SetTransparent(name string, on bool) {
	if e := s.solid(name); e != nil {
		e.Flags.Transparent = on
	}
}

func (s *State) solid(name string) *Entity {
	e := s.byName[name]
	if e == nil || e.Kind != KindSolid {
		return nil
	}
	return e
}

// SelectMirrorWall queues a mirror wall selection, applied by the next
// Update. NoMirrorWall or "" clears it; unknown names are ignored.
func (s *State) SelectMirrorWall(name string) {
	if name == NoMirrorWall {
		name = ""
	}
	if name != "" && !isMirrorWall(name) {
		return
	}
	s.pendingMirrorWall = name
	s.hasPending = true
}

// nextMirrorWall returns the wall after the current selection in
// MirrorWalls order, wrapping to NoMirrorWall after the last one. A pending
// selection counts as current so repeated presses within a frame advance.
func (s *State) nextMirrorWall() string {
	current := s.mirrorWall
	if s.hasPending {
		current = s.pendingMirrorWall
	}
	if current == "" {
		return MirrorWalls[0]
	}
	for i, w := range MirrorWalls {
		if w == current && i+1 < len(MirrorWalls) {
			return MirrorWalls[i+1]
		}
	}
	return NoMirrorWall
}

func isMirrorWall(name string) bool {
	for _, w := range MirrorWalls {
		if w == name {
			return true
		}
	}
	return false
}

// SetMirrorWallsEnabled sets the global mirror wall switch.
func (s *State) SetMirrorWallsEnabled(on bool) {
	s.mirrorWallsEnabled = on
}

// NextMovingLight cycles the light moved by the keyboard.
func (s *State) NextMovingLight() {
	if n := s.lights.Len(); n > 0 {
		s.movingLight = (s.movingLight + 1) % n
	}
}

// SwitchCamera toggles between the orbit and fly cameras. Held keys are
// released so movement does not carry over.
func (s *State) SwitchCamera() {
	if s.active.Mode() == camera.ModeOrbit {
		s.active = s.fly
	} else {
		s.active = s.orbit
	}
	clear(s.held)
	s.log.Info("camera switched", zap.Stringer("mode", s.active.Mode()))
}

// ResetCamera restores the active camera defaults.
func (s *State) ResetCamera() {
	s.active.Reset()
}

// Update advances the scene by dt seconds.
func (s *State) Update(dt float32) {
	// 1. Camera movement from held keys.
	if s.active.Mode() == camera.ModeFly {
		forward, right, up := s.heldAxes()
		if forward != 0 || right != 0 || up != 0 {
			s.active.Move(forward, right, up, dt)
		}
	}

	// 2. Pending mirror wall selection.
	if s.hasPending {
		if s.pendingMirrorWall != s.mirrorWall {
			s.log.Debug("mirror wall selected", zap.String("wall", s.pendingMirrorWall))
		}
		s.mirrorWall = s.pendingMirrorWall
		s.hasPending = false
	}

	// 3. Materials.
	s.RefreshMaterials()

	// 4. Markers follow their lights.
	s.syncMarkers()

	// 5. Animation.
	if s.opts.Animate {
		s.elapsed += dt
		for _, e := range s.entities {
			if e.Spin != math.Zero {
				e.Rotation = e.Spin.Scale(s.elapsed)
			}
		}
	}
}

// RecordFrame feeds the FPS counter with the wall-clock duration of the
// last frame in seconds. It is separate from Update, whose dt is the fixed
// simulation step.
func (s *State) RecordFrame(elapsed float32) {
	s.fps.Tick(elapsed)
}

// RefreshMaterials recomputes every effective material from the entity's
// base material and flags.
func (s *State) RefreshMaterials() {
	for _, e := range s.entities {
		switch e.Kind {
		case KindWall:
			e.Material = material.ResolveWall(e.Base, e.Name == s.mirrorWall, s.mirrorWallsEnabled)
		case KindSolid:
			e.Material = material.Resolve(e.Flags, e.Base)
		case KindMarker:
			l, ok := s.lights.At(e.Light)
			e.Material = material.ResolveMarker(e.Base, l.Color, ok && l.Enabled)
		}
	}
}

func (s *State) syncMarkers() {
	for _, e := range s.entities {
		if e.Kind != KindMarker {
			continue
		}
		if l, ok := s.lights.At(e.Light); ok {
			e.Position = l.Position
		}
	}
}

func (s *State) heldAxes() (forward, right, up float32) {
	axis := func(pos, neg Key) float32 {
		var v float32
		if s.held[pos] {
			v++
		}
		if s.held[neg] {
			v--
		}
		return v
	}
	return axis(KeyW, KeyS), axis(KeyD, KeyA), axis(KeyQ, KeyE)
}
