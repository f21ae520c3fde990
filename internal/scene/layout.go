package scene

import (
	"github.com/Faultbox/cornellbox/internal/engine/camera"
	"github.com/Faultbox/cornellbox/internal/engine/geometry"
	"github.com/Faultbox/cornellbox/internal/engine/lighting"
	"github.com/Faultbox/cornellbox/internal/engine/material"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Room dimensions.
const (
	RoomSize      = 15.0
	WallThickness = 0.2

	// Margin keeps the fly camera off the wall surfaces.
	Margin = 0.5
)

// Wall names. The front wall closes the box but is never drawn.
const (
	WallLeft    = "left"
	WallRight   = "right"
	WallBack    = "back"
	WallFloor   = "floor"
	WallCeiling = "ceiling"
	WallFront   = "front"

	// NoMirrorWall clears the mirror wall selection.
	NoMirrorWall = "none"
)

// MirrorWalls lists the walls that can be selected as the mirror wall.
var MirrorWalls = []string{WallLeft, WallRight, WallBack, WallFloor, WallCeiling}

// Light names.
const (
	LightMain = "main"
	LightFill = "fill"
)

// BackgroundColor is the clear color.
var BackgroundColor = math.Vec3{X: 0.2, Y: 0.2, Z: 0.3}

type wallSpec struct {
	name     string
	position math.Vec3
	size     math.Vec3
	color    math.Vec3
	visible  bool
}

var walls = []wallSpec{
	{WallLeft, math.V3(-7.6, 0, -5), math.V3(WallThickness, RoomSize, 10), math.V3(0.9, 0.1, 0.1), true},
	{WallRight, math.V3(7.6, 0, -5), math.V3(WallThickness, RoomSize, 10), math.V3(0.1, 0.9, 0.1), true},
	{WallBack, math.V3(0, 0, -10.1), math.V3(RoomSize, RoomSize, WallThickness), math.V3(0.9, 0.9, 0.9), true},
	{WallFloor, math.V3(0, -7.6, -5), math.V3(RoomSize, WallThickness, 10), math.V3(0.8, 0.8, 0.8), true},
	{WallCeiling, math.V3(0, 7.6, -5), math.V3(RoomSize, WallThickness, 10), math.V3(0.9, 0.9, 0.9), true},
	{WallFront, math.V3(0, 0, 5.1), math.V3(RoomSize, RoomSize, WallThickness), math.V3(0, 0, 0), false},
}

type solidSpec struct {
	name     string
	mesh     func() *geometry.Mesh
	position math.Vec3
	color    math.Vec3
	spin     math.Vec3
}

var solids = []solidSpec{
	{"cube1", func() *geometry.Mesh { return geometry.UniformCube(3) }, math.V3(-5, -4, -8), math.V3(1, 1, 0), math.V3(0, 0.3, 0)},
	{"cube2", func() *geometry.Mesh { return geometry.UniformCube(2.5) }, math.V3(5, -4, -8), math.V3(0, 0.7, 1), math.Zero},
	{"sphere1", func() *geometry.Mesh { return geometry.Sphere(2, 32) }, math.V3(0, 3, -10), math.V3(1, 0, 1), math.V3(0.21, 0.15, 0)},
	{"sphere2", func() *geometry.Mesh { return geometry.Sphere(1.5, 24) }, math.V3(-2, -2, -5), math.V3(1, 0.5, 0), math.Zero},
}

type lightSpec struct {
	light        lighting.Light
	markerRadius float32
	markerSegs   int
}

var lights = []lightSpec{
	{lighting.Light{
		Name:      LightMain,
		Position:  math.V3(0, 12, -5),
		Color:     math.V3(1, 1, 0.9),
		Intensity: 1.2,
		Enabled:   true,
	}, 0.5, 16},
	{lighting.Light{
		Name:      LightFill,
		Position:  math.V3(-8, 5, -3),
		Color:     math.V3(0.8, 0.9, 1),
		Intensity: 0.8,
		Enabled:   true,
		Movable:   true,
	}, 0.4, 16},
}

// MarkerName returns the entity name of a light's marker.
func MarkerName(light string) string {
	return "light_" + light
}

// Interior returns the box the fly camera is confined to: the inside of the
// six walls shrunk by Margin.
func Interior() camera.Box {
	half := float32(RoomSize / 2)
	back := walls[2].position.Z + WallThickness/2
	front := walls[5].position.Z - WallThickness/2
	return camera.Box{
		Min: math.V3(-half+Margin, -half+Margin, back+Margin),
		Max: math.V3(half-Margin, half-Margin, front-Margin),
	}
}

func (s *State) build() {
	for _, w := range walls {
		e := newEntity(w.name, KindWall, geometry.Cube(w.size.X, w.size.Y, w.size.Z), w.position, material.Diffuse(w.color))
		e.Visible = w.visible
		s.add(e)
	}

	for _, sol := range solids {
		e := newEntity(sol.name, KindSolid, sol.mesh(), sol.position, material.Diffuse(sol.color))
		e.Spin = sol.spin
		s.add(e)
	}

	for _, l := range lights {
		i := s.lights.Add(l.light)
		e := newEntity(MarkerName(l.light.Name), KindMarker, geometry.Sphere(l.markerRadius, l.markerSegs),
			l.light.Position, material.Diffuse(math.Zero))
		e.Light = i
		s.add(e)
	}
}
